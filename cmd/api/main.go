package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/command"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/query"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/application/services"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/domain/event"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/bus"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/cloudinary"
	httpHandler "github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/http"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/mongo"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/payos"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/internal/infrastructure/projection"
	"github.com/FarhanAlam-Official/SewaBazaar-sub007/pkg/jwt"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded")
	}

	log.Println("Starting SewaBazaar API (Event Sourcing)...")

	mongoConfig := &mongo.MongoConfig{
		URI:      getEnv("MONGO_URI", ""),
		Database: getEnv("MONGO_DATABASE", "sewabazaar"),
		Timeout:  30 * time.Second,
	}

	// Initialize MongoDB client
	mongoClient, err := mongo.NewMongoClient(mongoConfig)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Close(); err != nil {
			log.Printf("Error closing MongoDB connection: %v", err)
		}
	}()

	if err := mongoClient.Ping(); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB successfully")

	// Initialize infrastructure
	database := mongoClient.GetDatabase()
	eventBus := bus.NewAsyncEventBus()
	uowFactory := mongo.NewMongoUnitOfWorkFactory(mongoClient.GetClient(), database)

	userProjection := projection.NewMongoUserProjection(database)
	bookingProjection := projection.NewMongoBookingProjection(database)
	serviceProjection := projection.NewMongoServiceProjection(database)
	paymentProjection := projection.NewMongoPaymentProjection(database)

	subscribeProjections(eventBus, userProjection, bookingProjection, serviceProjection, paymentProjection)

	// Initialize JWT manager
	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	jwtManager := jwt.NewJWTManager(jwtSecret, 24*time.Hour)

	// Initialize PayOS
	payosService, err := payos.NewService(&payos.Config{
		ClientID:    getEnv("PAYOS_CLIENT_ID", ""),
		APIKey:      getEnv("PAYOS_API_KEY", ""),
		ChecksumKey: getEnv("PAYOS_CHECKSUM_KEY", ""),
		PartnerCode: getEnv("PAYOS_PARTNER_CODE", ""),
		ReturnURL:   getEnv("PAYOS_RETURN_URL", ""),
		CancelURL:   getEnv("PAYOS_CANCEL_URL", ""),
	})
	if err != nil {
		log.Fatalf("Failed to initialize PayOS: %v", err)
	}

	// Initialize Cloudinary
	cloudinaryConfig, err := cloudinary.NewConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load Cloudinary config: %v", err)
	}
	cloudinaryService, err := cloudinary.NewService(cloudinaryConfig)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	// Initialize command handlers
	registerUserUoWHandler := command.NewRegisterUserWithUoWHandler(uowFactory, eventBus, userProjection)
	registerUserHandler := command.NewRegisterUserHandler(registerUserUoWHandler, userProjection, jwtManager)
	loginHandler := command.NewLoginHandler(userProjection, uowFactory, eventBus, jwtManager)
	updateProfileHandler := command.NewUpdateUserProfileWithUoWHandler(uowFactory, eventBus)
	changePasswordHandler := command.NewChangeUserPasswordWithUoWHandler(uowFactory, eventBus)
	deactivateUserHandler := command.NewDeactivateUserWithUoWHandler(uowFactory, eventBus)

	createBookingHandler := command.NewCreateBookingWithUoWHandler(uowFactory, eventBus)
	changeBookingStatusHandler := command.NewChangeBookingStatusWithUoWHandler(uowFactory, eventBus)
	rescheduleBookingHandler := command.NewRescheduleBookingWithUoWHandler(uowFactory, eventBus)
	cancelBookingHandler := command.NewCancelBookingWithUoWHandler(uowFactory, eventBus)
	completeBookingHandler := command.NewCompleteBookingWithUoWHandler(uowFactory, eventBus)

	createServiceHandler := command.NewCreateServiceWithUoWHandler(uowFactory, eventBus)
	updateServiceHandler := command.NewUpdateServiceWithUoWHandler(uowFactory, eventBus)
	updateServiceImageHandler := command.NewUpdateServiceImageWithUoWHandler(uowFactory, eventBus)
	deactivateServiceHandler := command.NewDeactivateServiceWithUoWHandler(uowFactory, eventBus)

	createPaymentHandler := command.NewCreatePaymentWithUoWHandler(uowFactory, eventBus, payosService)
	completePaymentHandler := command.NewCompletePaymentWithUoWHandler(uowFactory, eventBus)
	cancelPaymentHandler := command.NewCancelPaymentWithUoWHandler(uowFactory, eventBus, payosService)
	expirePaymentHandler := command.NewExpirePaymentWithUoWHandler(uowFactory, eventBus)

	// Initialize query handlers
	getUserHandler := query.NewGetUserHandler(userProjection)
	listUsersHandler := query.NewListUsersHandler(userProjection)

	getBookingHandler := query.NewGetBookingHandler(bookingProjection)
	listCustomerBookingsHandler := query.NewListCustomerBookingsHandler(bookingProjection)
	listProviderBookingsHandler := query.NewListProviderBookingsHandler(bookingProjection)
	listAllBookingsHandler := query.NewListAllBookingsHandler(bookingProjection)
	getBookingCalendarHandler := query.NewGetBookingCalendarHandler(bookingProjection)

	getServiceHandler := query.NewGetServiceHandler(serviceProjection)
	searchServicesHandler := query.NewSearchServicesHandler(serviceProjection)
	listProviderServicesHandler := query.NewListProviderServicesHandler(serviceProjection)

	getPaymentHandler := query.NewGetPaymentHandler(paymentProjection)
	listCustomerPaymentsHandler := query.NewListCustomerPaymentsHandler(paymentProjection)
	getProviderEarningsHandler := query.NewGetProviderEarningsHandler(paymentProjection)

	dashboardHandler := query.NewGetAdminDashboardHandler(userProjection, bookingProjection, serviceProjection, paymentProjection)

	// Initialize application services
	userService := services.NewUserService(
		registerUserHandler,
		loginHandler,
		updateProfileHandler,
		changePasswordHandler,
		deactivateUserHandler,
		getUserHandler,
		listUsersHandler,
	)
	bookingService := services.NewBookingService(
		createBookingHandler,
		changeBookingStatusHandler,
		rescheduleBookingHandler,
		cancelBookingHandler,
		completeBookingHandler,
		getBookingHandler,
		listCustomerBookingsHandler,
		listProviderBookingsHandler,
		listAllBookingsHandler,
	)
	calendarService := services.NewCalendarService(getBookingCalendarHandler)
	catalogService := services.NewCatalogService(
		createServiceHandler,
		updateServiceHandler,
		updateServiceImageHandler,
		deactivateServiceHandler,
		getServiceHandler,
		searchServicesHandler,
		listProviderServicesHandler,
	)
	paymentService := services.NewPaymentService(
		createPaymentHandler,
		completePaymentHandler,
		cancelPaymentHandler,
		expirePaymentHandler,
		getPaymentHandler,
		listCustomerPaymentsHandler,
		getProviderEarningsHandler,
	)
	adminService := services.NewAdminService(dashboardHandler)

	// Start event bus
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus:", err)
	}

	// Initialize HTTP controllers and router
	router := httpHandler.NewRouter(&httpHandler.RouterConfig{
		JWTManager: jwtManager,
		Auth:       httpHandler.NewAuthController(userService),
		Users:      httpHandler.NewUserController(userService),
		Bookings:   httpHandler.NewBookingController(bookingService),
		Calendar:   httpHandler.NewCalendarController(calendarService),
		Services:   httpHandler.NewServiceController(catalogService, cloudinaryService),
		Payments:   httpHandler.NewPaymentController(paymentService, payosService),
		Dashboard:  httpHandler.NewDashboardController(adminService),
	})

	port := getEnv("PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	eventBus.Stop()
	log.Println("Server stopped")
}

// subscribeProjections routes domain events into the Mongo read models
func subscribeProjections(
	eventBus *bus.AsyncEventBus,
	users *projection.MongoUserProjection,
	bookings *projection.MongoBookingProjection,
	catalog *projection.MongoServiceProjection,
	payments *projection.MongoPaymentProjection,
) {
	eventBus.Subscribe("UserRegistered", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return users.HandleUserRegistered(ctx, *e.(*event.UserRegistered))
		}))
	eventBus.Subscribe("UserProfileUpdated", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return users.HandleUserProfileUpdated(ctx, *e.(*event.UserProfileUpdated))
		}))
	eventBus.Subscribe("UserPasswordChanged", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return users.HandleUserPasswordChanged(ctx, *e.(*event.UserPasswordChanged))
		}))
	eventBus.Subscribe("UserLoggedIn", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return users.HandleUserLoggedIn(ctx, *e.(*event.UserLoggedIn))
		}))
	eventBus.Subscribe("UserDeactivated", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return users.HandleUserDeactivated(ctx, *e.(*event.UserDeactivated))
		}))

	eventBus.Subscribe("BookingCreated", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return bookings.HandleBookingCreated(ctx, *e.(*event.BookingCreated))
		}))
	eventBus.Subscribe("BookingStatusChanged", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return bookings.HandleBookingStatusChanged(ctx, *e.(*event.BookingStatusChanged))
		}))
	eventBus.Subscribe("BookingRescheduled", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return bookings.HandleBookingRescheduled(ctx, *e.(*event.BookingRescheduled))
		}))
	eventBus.Subscribe("BookingCompleted", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return bookings.HandleBookingCompleted(ctx, *e.(*event.BookingCompleted))
		}))
	eventBus.Subscribe("BookingCancelled", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return bookings.HandleBookingCancelled(ctx, *e.(*event.BookingCancelled))
		}))

	eventBus.Subscribe("ServiceCreated", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return catalog.HandleServiceCreated(ctx, *e.(*event.ServiceCreated))
		}))
	eventBus.Subscribe("ServiceUpdated", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return catalog.HandleServiceUpdated(ctx, *e.(*event.ServiceUpdated))
		}))
	eventBus.Subscribe("ServiceImageUpdated", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return catalog.HandleServiceImageUpdated(ctx, *e.(*event.ServiceImageUpdated))
		}))
	eventBus.Subscribe("ServiceDeactivated", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return catalog.HandleServiceDeactivated(ctx, *e.(*event.ServiceDeactivated))
		}))

	eventBus.Subscribe("PaymentCreated", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return payments.HandlePaymentCreated(ctx, *e.(*event.PaymentCreated))
		}))
	eventBus.Subscribe("PaymentCompleted", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return payments.HandlePaymentCompleted(ctx, *e.(*event.PaymentCompleted))
		}))
	eventBus.Subscribe("PaymentCancelled", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return payments.HandlePaymentCancelled(ctx, *e.(*event.PaymentCancelled))
		}))
	eventBus.Subscribe("PaymentExpired", bus.EventHandlerFunc(
		func(ctx context.Context, e event.DomainEvent) error {
			return payments.HandlePaymentExpired(ctx, *e.(*event.PaymentExpired))
		}))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
