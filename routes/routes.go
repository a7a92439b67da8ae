package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pulse-afisha-api/config"
	"pulse-afisha-api/controllers"
	"pulse-afisha-api/middleware"
	"pulse-afisha-api/models"
	"pulse-afisha-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, cfg.TokenExpiryMinutes, emailService)
	userController := controllers.NewUserController(db)
	categoryController := controllers.NewCategoryController(db)
	eventController := controllers.NewEventController(db)
	rsvpController := controllers.NewRSVPController(db)
	favoriteController := controllers.NewFavoriteController(db)
	organizerRequestController := controllers.NewOrganizerRequestController(db)
	supportTicketController := controllers.NewSupportTicketController(db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public, rate limited)
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(10, 5))
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/forgot-password", authController.ForgotPassword)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// Public catalog routes: guests see published events only
	v1.GET("/categories", categoryController.GetCategories)
	v1.GET("/events", eventController.GetEvents)
	v1.GET("/events/:id", eventController.GetEvent)
	v1.GET("/events/:id/rsvp/stats", rsvpController.GetRSVPStats)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(db, cfg.JWTSecret))
	{
		users := protected.Group("/users")
		{
			users.GET("/me", userController.GetProfile)
			users.PUT("/me", userController.UpdateProfile)
		}

		protected.POST("/events/:id/rsvp", rsvpController.SetRSVP)
		protected.GET("/events/:id/rsvp/my", rsvpController.GetMyRSVP)
		protected.GET("/rsvp/my", rsvpController.GetMyRSVPs)

		favorites := protected.Group("/favorites")
		{
			favorites.GET("", favoriteController.GetFavorites)
			favorites.GET("/:id", favoriteController.IsFavorite)
			favorites.POST("/:id", favoriteController.AddFavorite)
			favorites.DELETE("/:id", favoriteController.RemoveFavorite)
		}

		tickets := protected.Group("/support-tickets")
		{
			tickets.POST("", supportTicketController.CreateTicket)
			tickets.GET("/my", supportTicketController.GetMyTickets)
		}

		requests := protected.Group("/organizer-requests")
		{
			requests.POST("", organizerRequestController.CreateRequest)
			requests.GET("/my", organizerRequestController.GetMyRequests)
		}

		// Organizer routes (admins included)
		organizers := protected.Group("")
		organizers.Use(middleware.RequireRoles(models.RoleOrganizer, models.RoleAdmin))
		{
			organizers.POST("/events", eventController.CreateEvent)
			organizers.GET("/events/my", eventController.GetMyEvents)
			organizers.GET("/events/:id/manage", eventController.GetEventForManage)
			organizers.PUT("/events/:id", eventController.UpdateEvent)
			organizers.DELETE("/events/:id", eventController.DeleteEvent)
			organizers.POST("/events/:id/submit", eventController.SubmitEvent)
			organizers.POST("/events/:id/archive", eventController.ArchiveEvent)
			organizers.GET("/events/:id/rsvp/list", rsvpController.ListEventRSVPs)
		}

		// Admin routes
		admin := protected.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin))
		{
			admin.POST("/categories", categoryController.CreateCategory)
			admin.PUT("/categories/:id", categoryController.UpdateCategory)
			admin.DELETE("/categories/:id", categoryController.DeleteCategory)

			adminEvents := admin.Group("/admin/events")
			{
				adminEvents.GET("", eventController.GetModerationQueue)
				adminEvents.POST("/:id/publish", eventController.PublishEvent)
				adminEvents.POST("/:id/reject", eventController.RejectEvent)
				adminEvents.DELETE("/:id", eventController.DeleteEvent)
			}

			adminUsers := admin.Group("/admin/users")
			{
				adminUsers.GET("", userController.ListUsers)
				adminUsers.PATCH("/:id/role", userController.UpdateUserRole)
				adminUsers.PATCH("/:id/block", userController.UpdateUserBlock)
			}

			adminRequests := admin.Group("/admin/organizer-requests")
			{
				adminRequests.GET("", organizerRequestController.ListRequests)
				adminRequests.POST("/:id/approve", organizerRequestController.ApproveRequest)
				adminRequests.POST("/:id/reject", organizerRequestController.RejectRequest)
			}

			adminTickets := admin.Group("/admin/support-tickets")
			{
				adminTickets.GET("", supportTicketController.ListTickets)
				adminTickets.POST("/:id/reply", supportTicketController.ReplyTicket)
				adminTickets.POST("/:id/close", supportTicketController.CloseTicket)
				adminTickets.DELETE("/:id", supportTicketController.DeleteTicket)
			}
		}
	}
}

// SetupCORS allows the configured frontend origins to call the API.
func SetupCORS(allowedOrigins string) gin.HandlerFunc {
	origins := strings.Split(allowedOrigins, ",")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		for _, allowed := range origins {
			allowed = strings.TrimSpace(allowed)
			if allowed == "*" || allowed == origin {
				c.Header("Access-Control-Allow-Origin", allowed)
				break
			}
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
