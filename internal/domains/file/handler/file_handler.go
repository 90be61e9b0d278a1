package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/file"
	"library-backend/internal/shared/apperror"
	"library-backend/internal/shared/response"
)

type FileHandler struct {
	service file.Service
}

func NewFileHandler(svc file.Service) *FileHandler {
	return &FileHandler{
		service: svc,
	}
}

// POST /api/file/v1/uploadFile, multipart field "file"
func (h *FileHandler) UploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.FromError(c, apperror.InvalidInput("Missing multipart field \"file\""))
		return
	}

	upload, closeFn, err := openUpload(header)
	if err != nil {
		response.FromError(c, err)
		return
	}
	defer closeFn()

	dto, err := h.service.Store(c.Request.Context(), upload)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Render(c, http.StatusOK, dto)
}

// POST /api/file/v1/uploadMultipleFiles, multipart field "files"
func (h *FileHandler) UploadMultipleFiles(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.FromError(c, apperror.InvalidInput("Malformed multipart form"))
		return
	}

	headers := form.File["files"]
	uploads := make([]file.Upload, 0, len(headers))
	for _, header := range headers {
		upload, closeFn, err := openUpload(header)
		if err != nil {
			response.FromError(c, err)
			return
		}
		defer closeFn()
		uploads = append(uploads, upload)
	}

	stored, err := h.service.StoreAll(c.Request.Context(), uploads)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Render(c, http.StatusOK, file.UploadListDTO{Files: stored})
}

// GET /api/file/v1/downloadFile/:fileName
func (h *FileHandler) DownloadFile(c *gin.Context) {
	obj, err := h.service.Load(c.Request.Context(), c.Param("fileName"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	defer obj.Body.Close()

	c.DataFromReader(http.StatusOK, obj.Size, obj.ContentType, obj.Body, map[string]string{
		"Content-Disposition": `attachment; filename="` + obj.Key + `"`,
	})
}

func openUpload(header *multipart.FileHeader) (file.Upload, func(), error) {
	f, err := header.Open()
	if err != nil {
		return file.Upload{}, nil, apperror.InvalidInput("Unable to read uploaded file")
	}
	return file.Upload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        f,
	}, func() { _ = f.Close() }, nil
}
