package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tieubaoca/docextractor/service"
)

type CourseHandler struct {
	syllabusService *service.SyllabusService
}

func NewCourseHandler(syllabusService *service.SyllabusService) *CourseHandler {
	return &CourseHandler{syllabusService: syllabusService}
}

// HandleListCourses responds with [{course_code, title}].
func (h *CourseHandler) HandleListCourses(c *gin.Context) {
	courses, err := h.syllabusService.ListCourses(c.Request.Context())
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// HandleGetCourse responds with the stored units of a course, keyed unit_<N>.
func (h *CourseHandler) HandleGetCourse(c *gin.Context) {
	course, err := h.syllabusService.GetCourse(c.Request.Context(), c.Param("code"))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) HandleGetSections(c *gin.Context) {
	course, err := h.syllabusService.GetCourseSections(c.Request.Context(), c.Param("code"))
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// ServeDocument streams the newest archived PDF of a course.
func (h *CourseHandler) ServeDocument(c *gin.Context) {
	code := c.Param("code")
	path, err := h.syllabusService.DocumentPath(code)
	if err != nil {
		sendServiceError(c, err)
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%s.pdf", code))
	c.File(path)
}
