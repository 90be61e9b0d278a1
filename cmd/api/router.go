package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/file"
	"library-backend/internal/domains/person"
	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.Metrics(c.Metrics),
	)

	router.GET("/metrics", gin.WrapH(c.Metrics.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))
	}

	setupAuthRoutes(router, c)

	secured := router.Group("", middleware.AuthMiddleware(c.JWTManager))
	setupPersonRoutes(secured, c)
	setupBookRoutes(secured, c)
	setupFileRoutes(secured, c)

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(r *gin.Engine, c *container.Container) {
	auth := r.Group("/auth")
	{
		auth.POST("/signin", c.AuthHandler.SignIn)
		auth.PUT("/refresh/:username", c.AuthHandler.Refresh)
	}
}

// ========================================
// PERSON ROUTES
// ========================================
func setupPersonRoutes(r *gin.RouterGroup, c *container.Container) {
	persons := r.Group(person.BasePath)
	{
		persons.GET("", c.PersonHandler.FindAll)
		persons.GET("/:id", c.PersonHandler.FindByID)
		persons.POST("", c.PersonHandler.Create)
		persons.PUT("", c.PersonHandler.Update)
		persons.PATCH("/:id", c.PersonHandler.Disable)
		persons.DELETE("/:id", c.PersonHandler.Delete)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(r *gin.RouterGroup, c *container.Container) {
	books := r.Group(book.BasePath)
	{
		books.GET("", c.BookHandler.FindAll)
		books.GET("/:id", c.BookHandler.FindByID)
		books.POST("", c.BookHandler.Create)
		books.PUT("", c.BookHandler.Update)
		books.DELETE("/:id", c.BookHandler.Delete)
	}
}

// ========================================
// FILE ROUTES
// ========================================
func setupFileRoutes(r *gin.RouterGroup, c *container.Container) {
	files := r.Group(file.BasePath)
	{
		files.POST("/uploadFile", c.FileHandler.UploadFile)
		files.POST("/uploadMultipleFiles", c.FileHandler.UploadMultipleFiles)
		files.GET("/downloadFile/:fileName", c.FileHandler.DownloadFile)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		status := http.StatusOK
		if health["status"] != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, health)
	}
}
