package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/academic-records/internal/middleware"
	"github.com/noah-isme/academic-records/internal/service"
	"github.com/noah-isme/academic-records/pkg/config"
	"github.com/noah-isme/academic-records/pkg/logger"
	"github.com/noah-isme/academic-records/pkg/middleware/cors"
	"github.com/noah-isme/academic-records/pkg/middleware/requestid"
)

// RouterDeps bundles what the HTTP surface needs.
type RouterDeps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Metrics  *service.MetricsService
	Academic *service.AcademicService
	Exports  *service.ExportService
}

// NewRouter mounts every records endpoint under the configured API prefix.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestid.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(cors.New(deps.Config.CORS.AllowedOrigins))
	if deps.Config.Metrics.Enabled {
		r.Use(middleware.Metrics(deps.Metrics))
	}

	metricsHandler := NewMetricsHandler(deps.Metrics)
	r.GET("/health", metricsHandler.Health)
	if deps.Config.Metrics.Enabled {
		r.GET("/metrics", metricsHandler.Prometheus)
	}
	if deps.Config.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	courses := NewCourseHandler(deps.Academic)
	sections := NewSectionHandler(deps.Academic)
	students := NewStudentHandler(deps.Academic, deps.Exports)
	professors := NewProfessorHandler(deps.Academic)
	schedule := NewScheduleHandler(deps.Academic, deps.Exports)

	api := r.Group(deps.Config.APIPrefix)

	courseGroup := api.Group("/courses")
	courseGroup.GET("", courses.List)
	courseGroup.POST("", courses.Create)
	courseGroup.GET("/:courseId", courses.Get)
	courseGroup.POST("/:courseId/prerequisites", courses.AddPrerequisite)
	courseGroup.GET("/:courseId/sections", courses.ListSections)
	courseGroup.POST("/:courseId/sections", courses.ScheduleSection)
	courseGroup.GET("/:courseId/sections/:sectionNo", sections.Get)
	courseGroup.PUT("/:courseId/sections/:sectionNo/instructor", sections.AgreeToTeach)
	courseGroup.POST("/:courseId/sections/:sectionNo/enrollments", sections.Enroll)
	courseGroup.PUT("/:courseId/sections/:sectionNo/grades", sections.PostGrade)

	studentGroup := api.Group("/students")
	studentGroup.POST("", students.Create)
	studentGroup.GET("/:id", students.Get)
	studentGroup.PUT("/:id/advisor", students.AssignAdvisor)
	studentGroup.GET("/:id/plan", students.Plan)
	studentGroup.POST("/:id/plan", students.AddToPlan)
	studentGroup.GET("/:id/transcript", students.Transcript)
	studentGroup.GET("/:id/gpa", students.GPA)

	professorGroup := api.Group("/professors")
	professorGroup.POST("", professors.Create)
	professorGroup.GET("/:id", professors.Get)

	scheduleGroup := api.Group("/schedule")
	scheduleGroup.GET("", schedule.Grid)
	scheduleGroup.GET("/sections", schedule.Sections)

	return r
}
