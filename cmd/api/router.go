package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Melodious-nub/bnp-digital-backend/internal/shared/middleware"
	"github.com/Melodious-nub/bnp-digital-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))
		v1.GET("/db-test", databaseTestHandler(c))

		setupAuthRoutes(v1, c)
		setupLocationRoutes(v1, c)
		setupCandidateRoutes(v1, c)
		setupTeamRoutes(v1, c)
		setupGalleryRoutes(v1, c)
		setupContactRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.RegisterHandler.Register)
		auth.POST("/login", c.AuthHandler.Login)

		authed := auth.Group("")
		authed.Use(middleware.AuthMiddleware(c.JWTManager))
		{
			authed.GET("/me", c.AuthHandler.Me)
			authed.PUT("/change-password", c.AuthHandler.ChangePassword)
			authed.PUT("/profile", c.CandidateHandler.UpdateOwn)
		}
	}
}

// ========================================
// LOCATION ROUTES
// ========================================
func setupLocationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	locations := v1.Group("/locations")
	{
		locations.GET("/divisions", c.LocationHandler.GetDivisions)
		locations.GET("/districts", c.LocationHandler.GetDistricts)
	}
}

// ========================================
// CANDIDATE ROUTES
// ========================================
func setupCandidateRoutes(v1 *gin.RouterGroup, c *container.Container) {
	candidates := v1.Group("/candidates")
	{
		candidates.GET("", c.CandidateHandler.ListByDistrict)
		candidates.GET("/:slug", c.CandidateHandler.GetProfile)
		candidates.GET("/:slug/team", c.TeamHandler.GetTeamBySlug)

		admin := candidates.Group("")
		admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.SuperAdminOnly())
		{
			admin.PATCH("/:slug", c.CandidateHandler.Update)
			admin.PUT("/:slug/photo", c.CandidateHandler.UpdatePhoto)
		}
	}
}

// ========================================
// TEAM ROUTES
// ========================================
func setupTeamRoutes(v1 *gin.RouterGroup, c *container.Container) {
	team := v1.Group("/team")
	{
		// Central party roster, public
		team.GET("", c.TeamHandler.GetGlobalTeam)

		manage := team.Group("/manage")
		manage.Use(middleware.AuthMiddleware(c.JWTManager))
		{
			manage.GET("", c.TeamHandler.GetOwnTeam)
			manage.POST("", c.TeamHandler.AddMember)
			manage.PUT("/:id", c.TeamHandler.UpdateMember)
			manage.DELETE("/:id", c.TeamHandler.DeleteMember)
		}
	}
}

// ========================================
// GALLERY ROUTES
// ========================================
func setupGalleryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	gallery := v1.Group("/gallery")
	gallery.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		gallery.POST("", c.MediaHandler.UploadOwn)
		gallery.DELETE("/:id", c.MediaHandler.DeleteOwn)
	}
}

// ========================================
// CONTACT ROUTES
// ========================================
func setupContactRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// Public submission from candidate microsites
	v1.POST("/contact", c.ContactHandler.Submit)

	messages := v1.Group("/messages")
	messages.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		messages.GET("", c.ContactHandler.ListMine)
		messages.PATCH("/:id/read", c.ContactHandler.MarkRead)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.SuperAdminOnly())
	{
		admin.GET("/candidates", c.CandidateHandler.ListAll)
		admin.POST("/candidates/import", c.ImportHandler.Import)
		admin.POST("/gallery", c.MediaHandler.UploadForSlug)
		admin.GET("/messages", c.ContactHandler.ListAll)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
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
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}

// ========================================
// DATABASE TEST HANDLER
// ========================================
func databaseTestHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Database not connected",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var version string
		err := appCtx.DB.Pool.QueryRow(ctx, "SELECT version()").Scan(&version)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Query failed: %v", err),
			})
			return
		}

		stats := appCtx.DB.Pool.Stat()

		redisTest := "not tested"
		if appCtx.Cache != nil {
			testKey := "test:connection"
			testValue := map[string]string{"test": "data", "timestamp": time.Now().Format(time.RFC3339)}

			if err := appCtx.Cache.Set(ctx, testKey, testValue, 10*time.Second); err == nil {
				var retrieved map[string]string
				found, _ := appCtx.Cache.Get(ctx, testKey, &retrieved)
				if found {
					redisTest = "ok - set/get working"
				} else {
					redisTest = "warning - set ok but get failed"
				}
				_ = appCtx.Cache.Delete(ctx, testKey)
			} else {
				redisTest = fmt.Sprintf("error: %v", err)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Database test successful",
			"database": gin.H{
				"postgres_version": version,
				"pool_stats": gin.H{
					"total_connections":    stats.TotalConns(),
					"idle_connections":     stats.IdleConns(),
					"acquired_connections": stats.AcquiredConns(),
					"max_connections":      stats.MaxConns(),
				},
			},
			"cache": gin.H{
				"status": redisTest,
			},
		})
	}
}
