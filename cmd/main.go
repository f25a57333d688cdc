package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/salonbook/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/salonbook/booking-service/internal/api/handlers/create_booking"
	deductTransferFeesHandler "github.com/salonbook/booking-service/internal/api/handlers/deduct_transfer_fees"
	getAvailableSlotsHandler "github.com/salonbook/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/salonbook/booking-service/internal/api/handlers/get_booking"
	getProviderBookingsHandler "github.com/salonbook/booking-service/internal/api/handlers/get_provider_bookings"
	getUserBookingsHandler "github.com/salonbook/booking-service/internal/api/handlers/get_user_bookings"
	onboardProviderHandler "github.com/salonbook/booking-service/internal/api/handlers/onboard_provider"
	updateAvailabilityHandler "github.com/salonbook/booking-service/internal/api/handlers/update_availability"
	updateBookingStatusHandler "github.com/salonbook/booking-service/internal/api/handlers/update_booking_status"
	"github.com/salonbook/booking-service/internal/api/middleware"
	"github.com/salonbook/booking-service/internal/config"
	availabilityRepo "github.com/salonbook/booking-service/internal/infra/storage/availability"
	bookingRepo "github.com/salonbook/booking-service/internal/infra/storage/booking"
	providerRepo "github.com/salonbook/booking-service/internal/infra/storage/provider"
	"github.com/salonbook/booking-service/internal/integrations/paymentledger"
	availabilityService "github.com/salonbook/booking-service/internal/service/availability"
	bookingsService "github.com/salonbook/booking-service/internal/service/bookings"
	cancelBookingUC "github.com/salonbook/booking-service/internal/usecase/cancel_booking"
	createBookingUC "github.com/salonbook/booking-service/internal/usecase/create_booking"
	deductTransferFeesUC "github.com/salonbook/booking-service/internal/usecase/deduct_transfer_fees"
	getAvailableSlotsUC "github.com/salonbook/booking-service/internal/usecase/get_available_slots"
	onboardProviderUC "github.com/salonbook/booking-service/internal/usecase/onboard_provider"
	"github.com/salonbook/booking-service/pkg/dbmetrics"
	"github.com/salonbook/booking-service/pkg/logger"
	"github.com/salonbook/booking-service/pkg/metrics"
	"github.com/salonbook/booking-service/pkg/simpletxmanager"
	"github.com/salonbook/booking-service/pkg/txmanager"
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

	log.Info("Starting SalonBook-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент платёжного леджера
	ledgerClient := paymentledger.NewClient(
		cfg.Ledger.APIKey,
		time.Duration(cfg.Ledger.Timeout)*time.Second,
		int64(cfg.Ledger.PayoutAnchorDay),
		log,
	)
	log.Info("Payment ledger client initialized (timeout=%ds, payout_anchor_day=%d)",
		cfg.Ledger.Timeout, cfg.Ledger.PayoutAnchorDay)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		providerRepository     *providerRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		providerRepository = providerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		providerRepository = providerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		providerRepository,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		providerRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		availabilityRepository,
		bookingRepository,
		providerRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		providerRepository,
		txMgr,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		ledgerClient,
		log,
	)
	onboardProviderUseCase := onboardProviderUC.NewUseCase(
		providerRepository,
		ledgerClient,
		log,
	)
	deductTransferFeesUseCase := deductTransferFeesUC.NewUseCase(
		providerRepository,
		ledgerClient,
		cfg.Ledger.BatchWorkers,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getProviderBookings := getProviderBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	onboardProvider := onboardProviderHandler.NewHandler(onboardProviderUseCase, log)
	deductTransferFees := deductTransferFeesHandler.NewHandler(deductTransferFeesUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Внутренний батч списания комиссий за перевод: роут не публикуется
	// через API gateway, дергается планировщиком раз в месяц
	r.HandleFunc("/internal/ledger/deduct-transfer-fees",
		deductTransferFees.Handle).Methods(http.MethodPost)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение доступных слотов для бронирования
	api.HandleFunc("/providers/{providerId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования (подтверждение / завершение)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление поставщиком ---
	// Список бронирований поставщика
	protected.HandleFunc("/providers/{providerId}/bookings", getProviderBookings.Handle).Methods(http.MethodGet)

	// Объявление/отзыв слота доступности
	protected.HandleFunc("/providers/{providerId}/availability", updateAvailability.Handle).Methods(http.MethodPost)

	// Подключение к платёжному леджеру
	protected.HandleFunc("/providers/{providerId}/ledger-account", onboardProvider.Handle).Methods(http.MethodPost)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
