package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"bhavesh/backend/internal/service"
)

type UploadHandler struct {
	uploads service.UploadService
}

type uploadResponse struct {
	URL      string `json:"url"`
	FileName string `json:"filename"`
}

func NewUploadHandler(uploads service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

func (h *UploadHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/uploads", h.Upload)
}

// Upload stores a single multipart file and returns its public URL.
func (h *UploadHandler) Upload(c echo.Context) error {
	header, err := c.FormFile("file")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	src, err := header.Open()
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	defer src.Close()

	stored, err := h.uploads.Upload(c.Request().Context(), service.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Reader:      src,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, uploadResponse{URL: stored.URL, FileName: stored.Filename})
}
