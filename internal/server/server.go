package server

import (
	"net/http"
	"strings"

	"github.com/edava/student-records-api/internal/config"
	"github.com/edava/student-records-api/pkg/database"
	"github.com/edava/student-records-api/pkg/validation"

	courseHttp "github.com/edava/student-records-api/internal/modules/course/delivery/http"
	courseRepo "github.com/edava/student-records-api/internal/modules/course/repository"
	courseService "github.com/edava/student-records-api/internal/modules/course/service"

	resultHttp "github.com/edava/student-records-api/internal/modules/result/delivery/http"
	resultRepo "github.com/edava/student-records-api/internal/modules/result/repository"
	resultService "github.com/edava/student-records-api/internal/modules/result/service"

	studentHttp "github.com/edava/student-records-api/internal/modules/student/delivery/http"
	studentRepo "github.com/edava/student-records-api/internal/modules/student/repository"
	studentService "github.com/edava/student-records-api/internal/modules/student/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
	db     *gorm.DB
}

func New(cfg *config.Config, db *gorm.DB) *Server {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	s := &Server{engine: engine, db: db}

	v := validation.New(cfg.DisposableEmailDomains)

	studentRepository := studentRepo.NewStudentRepository(db)
	studentSvc := studentService.NewStudentService(studentRepository)
	studentHandler := studentHttp.NewStudentHandler(studentSvc, v)

	courseRepository := courseRepo.NewCourseRepository(db)
	courseSvc := courseService.NewCourseService(courseRepository)
	courseHandler := courseHttp.NewCourseHandler(courseSvc, v)

	resultRepository := resultRepo.NewResultRepository(db)
	resultSvc := resultService.NewResultService(resultRepository)
	resultHandler := resultHttp.NewResultHandler(resultSvc, v)

	engine.GET("/health", s.health)

	students := engine.Group("/students")
	{
		students.GET("", studentHandler.List)
		students.GET("/:id", studentHandler.Get)
		students.POST("", studentHandler.Create)
		students.DELETE("/:id", studentHandler.Delete)
	}

	courses := engine.Group("/courses")
	{
		courses.GET("", courseHandler.List)
		courses.GET("/:id", courseHandler.Get)
		courses.POST("", courseHandler.Create)
		courses.DELETE("/:id", courseHandler.Delete)
	}

	results := engine.Group("/results")
	{
		results.GET("", resultHandler.List)
		results.POST("", resultHandler.Upsert)
		results.DELETE("/:id", resultHandler.Delete)
	}

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) health(c *gin.Context) {
	if err := database.Ping(s.db); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN", "message": "Database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "API is running fine."})
}
