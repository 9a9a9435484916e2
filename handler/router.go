package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tieubaoca/docextractor/logger"
	"github.com/tieubaoca/docextractor/middleware"
	"github.com/tieubaoca/docextractor/service"
)

type RouterConfig struct {
	AllowOrigins  []string
	UploadSecret  string
	MaxUploadSize int64
}

// NewRouter wires the HTTP surface around a syllabus service.
func NewRouter(syllabusService *service.SyllabusService, log *logger.Logger, cfg RouterConfig) *gin.Engine {
	uploadHandler := NewUploadHandler(syllabusService, cfg.MaxUploadSize)
	courseHandler := NewCourseHandler(syllabusService)
	searchHandler := NewSearchHandler(syllabusService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.AllowOrigins))

	router.GET("/healthcheck", HealthCheck)
	router.POST("/upload/", middleware.RequireUploadToken(cfg.UploadSecret), uploadHandler.UploadDocumentHandler)
	router.GET("/courses/", courseHandler.HandleListCourses)

	course := router.Group("/course/:code")
	{
		course.GET("", courseHandler.HandleGetCourse)
		course.GET("/sections", courseHandler.HandleGetSections)
		course.GET("/document", courseHandler.ServeDocument)
	}
	router.GET("/topics/search", searchHandler.HandleSearch)

	return router
}
