package routes

import (
	"net/http"
	"time"

	"taily/handlers"
	"taily/middleware"
	"taily/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup, signin, and signout endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.User.RegisterUserHandler)
		api.POST("/login", hb.User.AuthenticateUserHandler)
		api.POST("/logout", middleware.JWTAuthMiddleware(hb.UserRepo), hb.User.LogoutHandler)
	}
}

// RegisterUserRoutes registers the authenticated account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.GET("/me", hb.User.GetMeHandler)
		api.PUT("/me", hb.User.UpdateUserHandler)
		api.DELETE("/me", hb.User.DeleteUserHandler)
	}
}

// RegisterProviderRoutes registers the public browse surface and the
// sitter's listing management.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		// Public browse over approved listings.
		api.GET("", hb.Provider.BrowseProvidersHandler)

		// Sitter's own listing. Registered before the :id routes so "me"
		// never falls through to the ID lookup.
		own := api.Group("/me")
		own.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRoles(models.RoleSitter))
		own.GET("", hb.Provider.GetMyListingHandler)
		own.PUT("", hb.Provider.UpdateMyListingHandler)

		api.GET("/:id", hb.Provider.GetProviderByIDHandler)
		api.GET("/:id/reviews", hb.Provider.GetProviderReviewsHandler)
	}
}

// RegisterBookingRoutes registers the reservation lifecycle, reviews, and
// per-booking chat. Everything here requires a session.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
	{
		api.POST("", middleware.RequireRoles(models.RoleUser, models.RoleAdmin), hb.Booking.CreateBookingHandler)
		api.GET("/mine", hb.Booking.GetMyBookingsHandler)
		api.GET("/provider", middleware.RequireRoles(models.RoleSitter), hb.Booking.GetProviderBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingByIDHandler)
		api.PATCH("/:id/status", hb.Booking.UpdateBookingStatusHandler)

		api.POST("/:id/review", hb.Review.SubmitReviewHandler)
		api.GET("/:id/review", hb.Review.GetBookingReviewHandler)

		api.POST("/:id/chat", hb.Chat.SendMessageHandler)
		api.GET("/:id/chat", hb.Chat.GetMessagesHandler)
		api.POST("/:id/chat/read", hb.Chat.MarkReadHandler)
		api.GET("/:id/chat/stream", hb.Chat.StreamHandler)
	}
}

// RegisterRequestRoutes registers the open lead-submission endpoint.
func RegisterRequestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/requests", hb.Request.SubmitRequestHandler)
}

// RegisterBlogRoutes registers the public article reads.
func RegisterBlogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/blogs")
	{
		api.GET("", hb.Blog.GetAllBlogsHandler)
		api.GET("/:id", hb.Blog.GetBlogByIDHandler)
	}
}

// RegisterStorageRoutes registers media uploads for sitters and admins.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRoles(models.RoleSitter, models.RoleAdmin))
	{
		api.POST("/:bucket", hb.Storage.UploadFileHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for moderation operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRoles(models.RoleAdmin))
	{
		api.GET("/users", hb.Admin.GetAllUsersHandler)
		api.GET("/providers", hb.Admin.GetAllProvidersHandler)
		api.PATCH("/providers/:id/approval", hb.Admin.SetProviderApprovalHandler)
		api.DELETE("/providers/:id", hb.Admin.DeleteProviderHandler)
		api.GET("/bookings", hb.Admin.GetAllBookingsHandler)

		api.GET("/requests", hb.Request.GetAllRequestsHandler)
		api.PATCH("/requests/:id/status", hb.Request.UpdateRequestStatusHandler)
		api.DELETE("/requests/:id", hb.Request.DeleteRequestHandler)

		api.POST("/blogs", hb.Blog.CreateBlogHandler)
		api.PUT("/blogs/:id", hb.Blog.UpdateBlogHandler)
		api.DELETE("/blogs/:id", hb.Blog.DeleteBlogHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Taily"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterRequestRoutes(r, hb)
	RegisterBlogRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
