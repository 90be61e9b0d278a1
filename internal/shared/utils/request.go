package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/apperror"
	"library-backend/internal/shared/hateoas"
)

// ParseID reads a positive int64 path parameter.
func ParseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.InvalidInput("Invalid " + name + " format")
	}
	return id, nil
}

// PageRequestFromQuery reads page, size, sort and direction.
// Malformed numbers fall back to defaults; Normalize clamps the rest.
// sort may carry its own direction as "field,dir".
func PageRequestFromQuery(c *gin.Context) hateoas.PageRequest {
	req := hateoas.PageRequest{
		Page:      queryInt(c, "page", 0),
		Size:      queryInt(c, "size", hateoas.DefaultPageSize),
		Direction: hateoas.ParseDirection(c.Query("direction")),
	}

	sort, dir, hasDir := strings.Cut(c.Query("sort"), ",")
	if hasDir && c.Query("direction") == "" {
		req.Direction = hateoas.ParseDirection(dir)
	}
	req.Sort = sort

	return req
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}
