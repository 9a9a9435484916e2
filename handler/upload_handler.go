package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tieubaoca/docextractor/service"
	"github.com/tieubaoca/docextractor/types"
)

type UploadHandler struct {
	syllabusService *service.SyllabusService
	maxSize         int64
}

func NewUploadHandler(syllabusService *service.SyllabusService, maxSize int64) *UploadHandler {
	return &UploadHandler{
		syllabusService: syllabusService,
		maxSize:         maxSize,
	}
}

func (h *UploadHandler) UploadDocumentHandler(c *gin.Context) {
	// leave room for the multipart envelope around the file itself
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxSize+1<<20)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			sendError(c, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		sendError(c, http.StatusBadRequest, "Invalid file")
		return
	}
	defer file.Close()

	if header.Size > h.maxSize {
		sendError(c, http.StatusRequestEntityTooLarge, "File too large")
		return
	}
	data, err := io.ReadAll(file)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid file")
		return
	}

	res, err := h.syllabusService.Ingest(c.Request.Context(), header.Filename, data)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "File processed successfully",
		Data:    res,
	})
}
