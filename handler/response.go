package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tieubaoca/docextractor/database"
	"github.com/tieubaoca/docextractor/service"
	"github.com/tieubaoca/docextractor/types"
)

func sendError(c *gin.Context, status int, message string) {
	c.JSON(status, types.DataResponse{
		Status:  false,
		Message: message,
	})
}

// sendServiceError maps service and store errors to HTTP statuses.
func sendServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		sendError(c, http.StatusNotFound, "Course not found")
	case errors.Is(err, service.ErrUnsupportedFileType):
		sendError(c, http.StatusBadRequest, "Only PDF files are allowed")
	case errors.Is(err, service.ErrInvalidSyllabus):
		sendError(c, http.StatusBadRequest, "Invalid syllabus format")
	case errors.Is(err, service.ErrUndecodablePDF):
		sendError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrSearchDisabled):
		sendError(c, http.StatusNotImplemented, err.Error())
	case errors.Is(err, service.ErrNoArchive):
		sendError(c, http.StatusNotFound, "Document not found")
	default:
		c.Error(err)
		sendError(c, http.StatusInternalServerError, err.Error())
	}
}
