package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taily/config"
	"taily/cron"
	"taily/database"
	blogRepoPkg "taily/database/repository/blog"
	bookingRepoPkg "taily/database/repository/booking"
	chatRepoPkg "taily/database/repository/chat"
	providerRepoPkg "taily/database/repository/provider"
	requestRepoPkg "taily/database/repository/request"
	reviewRepoPkg "taily/database/repository/review"
	userRepoPkg "taily/database/repository/user"
	"taily/handlers"
	"taily/routes"
	"taily/services/blog"
	"taily/services/booking"
	"taily/services/chat"
	"taily/services/notification"
	"taily/services/provider"
	"taily/services/request"
	"taily/services/review"
	"taily/services/tasks"
	"taily/services/user"
	"taily/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	bookRepo := bookingRepoPkg.NewMongoBookingRepo()
	revRepo := reviewRepoPkg.NewMongoReviewRepo()
	reqRepo := requestRepoPkg.NewMongoRequestRepo()
	chRepo := chatRepoPkg.NewMongoChatRepo()
	blgRepo := blogRepoPkg.NewMongoBlogRepo()

	// services.
	notificationService, err := notification.NewDefaultNotificationService(userRepo, provRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	reminderScheduler := tasks.NewReminderScheduler()
	defer reminderScheduler.Close()

	userService := &user.DefaultUserService{
		Repo:         userRepo,
		ProviderRepo: provRepo,
	}
	providerService := &provider.DefaultProviderService{
		Repo:       provRepo,
		ReviewRepo: revRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:         bookRepo,
		ProviderRepo: provRepo,
		UserRepo:     userRepo,
		ReviewRepo:   revRepo,
		Notifier:     notificationService,
		Scheduler:    reminderScheduler,
	}
	reviewService := &review.DefaultReviewService{
		Repo:        revRepo,
		BookingRepo: bookRepo,
		UserRepo:    userRepo,
	}
	requestService := &request.DefaultRequestService{
		Repo: reqRepo,
	}
	chatService := &chat.DefaultChatService{
		Repo:         chRepo,
		BookingRepo:  bookRepo,
		ProviderRepo: provRepo,
	}
	blogService := &blog.DefaultBlogService{
		Repo: blgRepo,
	}

	// Background worker for completion reminders.
	cron.InitReminderWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		User:     &handlers.UserHandler{UserService: userService},
		Provider: &handlers.ProviderHandler{ProviderService: providerService},
		Booking:  &handlers.BookingHandler{BookingService: bookingService},
		Review:   &handlers.ReviewHandler{ReviewService: reviewService},
		Request:  &handlers.RequestHandler{RequestService: requestService},
		Chat:     &handlers.ChatHandler{ChatService: chatService},
		Blog:     &handlers.BlogHandler{BlogService: blogService},
		Admin: &handlers.AdminHandler{
			UserService:     userService,
			ProviderService: providerService,
			BookingService:  bookingService,
		},
		Storage: handlers.NewStorageHandler(cloudinaryStorageService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
