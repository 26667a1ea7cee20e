package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/create_booking"
	createReviewHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/create_review"
	getAvailabilityHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_client_bookings"
	getCourtReviewsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_court_reviews"
	getCourtsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_courts"
	getNotificationsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_notifications"
	getStatsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_stats"
	markAllNotificationsReadHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/mark_all_notifications_read"
	markNotificationReadHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/mark_notification_read"
	updateBookingStatusHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/catalog"
	"github.com/m04kA/SMC-CourtService/internal/config"
	bookingRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/booking"
	notificationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/notification"
	reviewRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/review"
	"github.com/m04kA/SMC-CourtService/internal/seed"
	bookingsService "github.com/m04kA/SMC-CourtService/internal/service/bookings"
	notificationsService "github.com/m04kA/SMC-CourtService/internal/service/notifications"
	reviewsService "github.com/m04kA/SMC-CourtService/internal/service/reviews"
	statsService "github.com/m04kA/SMC-CourtService/internal/service/stats"
	createBookingUC "github.com/m04kA/SMC-CourtService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/SMC-CourtService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-CourtService/pkg/logger"
	"github.com/m04kA/SMC-CourtService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CourtService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог кортов комплекса (неизменяемый справочник)
	courtCatalog := catalog.Default()
	log.Info("Court catalog initialized: %d courts", len(courtCatalog.ListCourts()))

	// Инициализируем in-memory репозитории
	bookingRepository := bookingRepo.NewRepository()
	reviewRepository := reviewRepo.NewRepository()
	notificationRepository := notificationRepo.NewRepository()

	// Демонстрационные данные (если включены)
	if cfg.Demo.Seed {
		if err := seed.Apply(context.Background(), bookingRepository, reviewRepository, notificationRepository, log); err != nil {
			log.Fatal("Failed to seed demo data: %v", err)
		}
	}

	// Инициализируем сервисы
	notificationSvc := notificationsService.NewService(notificationRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, notificationSvc, log)
	reviewSvc := reviewsService.NewService(reviewRepository, courtCatalog, notificationSvc, log)
	statsSvc := statsService.NewService(bookingRepository, reviewRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		courtCatalog,
		notificationSvc,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		courtCatalog,
		log,
	)

	// Инициализируем handlers
	getCourts := getCourtsHandler.NewHandler(courtCatalog, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getCourtReviews := getCourtReviewsHandler.NewHandler(reviewSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	createReview := createReviewHandler.NewHandler(reviewSvc, log)
	getNotifications := getNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)
	markAllNotificationsRead := markAllNotificationsReadHandler.NewHandler(notificationSvc, log)
	getStats := getStatsHandler.NewHandler(statsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Корты ---
	api.HandleFunc("/courts", getCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}/reviews", getCourtReviews.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// --- История клиента ---
	api.HandleFunc("/clients/{email}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// --- Отзывы ---
	api.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)

	// --- Уведомления ---
	api.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)
	api.HandleFunc("/notifications/read-all", markAllNotificationsRead.Handle).Methods(http.MethodPost)
	api.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.Handle).Methods(http.MethodPatch)

	// --- Статистика ---
	api.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
