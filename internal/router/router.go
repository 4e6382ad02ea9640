package router

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/psgtech/techresolve-api/internal/config"
	"github.com/psgtech/techresolve-api/internal/database"
	"github.com/psgtech/techresolve-api/internal/handlers"
	"github.com/psgtech/techresolve-api/internal/service"
	"github.com/psgtech/techresolve-api/internal/utils"
	pkgutils "github.com/psgtech/techresolve-api/pkg/utils"
)

// SetupRouter configures all API routes
func SetupRouter(
	cfg *config.Config,
	db *database.DB,
	complaintService *service.ComplaintService,
	adminService *service.AdminService,
) *gin.Engine {
	router := gin.Default()

	if cfg.CORS.Enabled {
		router.Use(corsMiddleware(&cfg.CORS))
	}

	// Tag every request with an id for log correlation
	router.Use(func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = pkgutils.GenerateID()
		}
		c.Header("X-Request-ID", requestID)
		c.Next()
	})

	// Global middleware to extract the acting admin from headers. Routes
	// that require an admin enforce presence separately.
	router.Use(func(c *gin.Context) {
		if raw := c.GetHeader("admin-id"); raw != "" {
			if adminID, err := strconv.ParseInt(raw, 10, 64); err == nil {
				c.Set(utils.AdminIDContextKey, adminID)
			}
		}
		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Create handlers
	complaintHandler := handlers.NewComplaintHandler(complaintService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes: submission and tracking
		v1.POST("/complaints", complaintHandler.SubmitComplaint)
		v1.GET("/complaints/track/:code", complaintHandler.TrackComplaint)
		v1.GET("/labs", complaintHandler.ListLabs)

		v1.POST("/admin/login", adminHandler.Login)

		// Admin routes
		admin := v1.Group("/admin", requireAdmin())
		{
			admin.GET("/dashboard", complaintHandler.Dashboard)
			admin.GET("/admins", adminHandler.ListAdmins)

			admin.GET("/complaints", complaintHandler.ListComplaints)
			admin.GET("/complaints/:id", complaintHandler.GetComplaint)
			admin.PUT("/complaints/:id", complaintHandler.UpdateComplaint)
			admin.POST("/complaints/:id/view-duration", complaintHandler.RecordViewDuration)
		}

		// Superadmin routes: admin directory management
		superadmin := v1.Group("/superadmin", requireSuperadmin(&cfg.Superadmin))
		{
			superadmin.POST("/admins", adminHandler.CreateAdmin)
			superadmin.GET("/admins", adminHandler.ListAllAdmins)
			superadmin.DELETE("/admins/:id", adminHandler.DeleteAdmin)
			superadmin.POST("/admins/:id/restore", adminHandler.RestoreAdmin)
		}
	}

	return router
}

// requireAdmin rejects requests that carry no admin identity
func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.GetAdminIDFromContext(c); !ok {
			utils.SendUnauthorizedError(c, "Admin identity is required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// requireSuperadmin enforces basic auth against the configured superadmin
// credentials
func requireSuperadmin(cfg *config.SuperadminConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := c.Request.BasicAuth()
		if !ok || !cfg.ValidateCredentials(email, password) {
			c.Header("WWW-Authenticate", `Basic realm="superadmin"`)
			utils.SendUnauthorizedError(c, "Superadmin credentials are required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// corsMiddleware applies the configured CORS policy
func corsMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := strings.Join(cfg.AllowedOrigins, ", ")
	allowedMethods := strings.Join(cfg.AllowedMethods, ", ")
	allowedHeaders := strings.Join(cfg.AllowedHeaders, ", ")

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigins)
		c.Header("Access-Control-Allow-Methods", allowedMethods)
		c.Header("Access-Control-Allow-Headers", allowedHeaders)
		if cfg.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}
		if cfg.MaxAge > 0 {
			c.Header("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
