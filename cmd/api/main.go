package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/online-school-api/api/swagger"
	"github.com/noah-isme/online-school-api/internal/handler"
	"github.com/noah-isme/online-school-api/internal/middleware"
	"github.com/noah-isme/online-school-api/internal/repository"
	"github.com/noah-isme/online-school-api/internal/service"
	"github.com/noah-isme/online-school-api/pkg/config"
	"github.com/noah-isme/online-school-api/pkg/database"
	"github.com/noah-isme/online-school-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/online-school-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/online-school-api/pkg/middleware/requestid"
)

// @title Online School API
// @version 1.0.0
// @description CRUD API for students, teachers, courses, lessons and enrollments
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()

	teacherRepo := repository.NewTeacherRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)

	teacherSvc := service.NewTeacherService(teacherRepo, courseRepo, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, enrollmentRepo, validate, logr)
	courseSvc := service.NewCourseService(courseRepo, lessonRepo, enrollmentRepo, validate, logr)
	lessonSvc := service.NewLessonService(lessonRepo, validate, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, validate, logr)
	statsSvc := service.NewStatsService(studentRepo, teacherRepo, courseRepo, lessonRepo, enrollmentRepo, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
		r.Use(middleware.Metrics(metricsSvc))
		r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	routes := handler.Routes{
		Teachers:    handler.NewTeacherHandler(teacherSvc),
		Students:    handler.NewStudentHandler(studentSvc),
		Courses:     handler.NewCourseHandler(courseSvc),
		Lessons:     handler.NewLessonHandler(lessonSvc),
		Enrollments: handler.NewEnrollmentHandler(enrollmentSvc),
		Stats:       handler.NewStatsHandler(statsSvc),
	}
	routes.Register(r.Group(cfg.APIPrefix))

	if cfg.Static.Enabled {
		r.Static("/app", cfg.Static.Dir)
		r.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/app/")
		})
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logr.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Sugar().Errorw("shutdown failed", "error", err)
	}
}
