package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/person"
	"library-backend/internal/shared/response"
	"library-backend/internal/shared/utils"
)

type PersonHandler struct {
	service person.Service
}

func NewPersonHandler(svc person.Service) *PersonHandler {
	return &PersonHandler{
		service: svc,
	}
}

// GET /api/person/v1/:id
func (h *PersonHandler) FindByID(c *gin.Context) {
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

// GET /api/person/v1?page=0&size=12&direction=asc&sort=firstName
func (h *PersonHandler) FindAll(c *gin.Context) {
	page, err := h.service.FindAll(c.Request.Context(), utils.PageRequestFromQuery(c))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Render(c, http.StatusOK, page)
}

// POST /api/person/v1
func (h *PersonHandler) Create(c *gin.Context) {
	dto, err := response.Bind[person.PersonDTO](c)
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

// PUT /api/person/v1
func (h *PersonHandler) Update(c *gin.Context) {
	dto, err := response.Bind[person.PersonDTO](c)
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

// PATCH /api/person/v1/:id
func (h *PersonHandler) Disable(c *gin.Context) {
	id, err := utils.ParseID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}

	dto, err := h.service.Disable(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Render(c, http.StatusOK, dto)
}

// DELETE /api/person/v1/:id
func (h *PersonHandler) Delete(c *gin.Context) {
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
