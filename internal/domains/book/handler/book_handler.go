package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/response"
	"library-backend/internal/shared/utils"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// GET /api/book/v1/:id
func (h *BookHandler) FindByID(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	dto, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Render(c, http.StatusOK, dto)
}

// GET /api/book/v1?page=0&size=12&direction=asc&sort=title
func (h *BookHandler) FindAll(c *gin.Context) {
	page, err := h.service.FindAll(c.Request.Context(), utils.PageRequestFromQuery(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Render(c, http.StatusOK, page)
}

// POST /api/book/v1 always creates; an id in the body is ignored.
func (h *BookHandler) Create(c *gin.Context) {
	dto, err := response.Bind[book.BookDTO](c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), dto)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Render(c, http.StatusOK, created)
}

// PUT /api/book/v1
func (h *BookHandler) Update(c *gin.Context) {
	dto, err := response.Bind[book.BookDTO](c)
	if err != nil {
		response.FromError(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), dto)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Render(c, http.StatusOK, updated)
}

// DELETE /api/book/v1/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
