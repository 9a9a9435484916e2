package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tieubaoca/docextractor/service"
	"github.com/tieubaoca/docextractor/types"
)

const defaultSearchLimit = 5

type SearchHandler struct {
	syllabusService *service.SyllabusService
}

func NewSearchHandler(syllabusService *service.SyllabusService) *SearchHandler {
	return &SearchHandler{syllabusService: syllabusService}
}

func (h *SearchHandler) HandleSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		sendError(c, http.StatusBadRequest, "Query parameter q is required")
		return
	}
	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			sendError(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	hits, err := h.syllabusService.SearchTopics(c.Request.Context(), query, limit)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   types.TopicSearchResponse{Query: query, Hits: hits},
	})
}
