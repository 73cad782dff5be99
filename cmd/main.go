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

	acquireHoldHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/acquire_hold"
	cancelBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/create_booking"
	findNextSlotHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/find_next_slot"
	getAvailabilityHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_user_bookings"
	refreshHoldHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/refresh_hold"
	releaseHoldHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/release_hold"
	validateDraftHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/validate_draft"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/config"
	"github.com/m04kA/SMC-RoomBookingService/internal/holdstore"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	facilityRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/facility"
	bookingsService "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	conflictsService "github.com/m04kA/SMC-RoomBookingService/internal/service/conflicts"
	acquireHoldUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/acquire_hold"
	createBookingUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	findNextSlotUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/find_next_slot"
	getAvailableSlotsUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_available_slots"
	releaseHoldUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/release_hold"
	validateDraftUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/validate_draft"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-RoomBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-RoomBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Собираем окно работы помещений
	window, err := cfg.OperatingWindow()
	if err != nil {
		log.Fatal("Invalid schedule configuration: %v", err)
	}
	log.Info("Operating window: %s-%s, slot=%dmin",
		window.Open, window.Close, window.SlotMinutes)

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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		facilityRepository *facilityRepo.Repository
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
		facilityRepository = facilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		facilityRepository = facilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Таблица hold'ов живёт в памяти процесса и теряется при рестарте:
	// hold — совещательная блокировка, единственный источник правды — БД
	holds := holdstore.New()
	if cfg.Metrics.Enabled {
		metrics.RegisterActiveHoldsGauge(cfg.Metrics.ServiceName, holds.Len)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	conflictSvc := conflictsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	holdTTL := time.Duration(cfg.Holds.TTLSeconds) * time.Second
	refreshGrace := time.Duration(cfg.Holds.RefreshGraceSeconds) * time.Second

	acquireHoldUseCase := acquireHoldUC.NewUseCase(holds, conflictSvc, holdTTL, refreshGrace, log)
	releaseHoldUseCase := releaseHoldUC.NewUseCase(holds, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		facilityRepository,
		window,
		log,
	)
	findNextSlotUseCase := findNextSlotUC.NewUseCase(
		bookingRepository,
		facilityRepository,
		window,
		cfg.Schedule.NextSlotSearchDays,
		log,
	)
	validateDraftUseCase := validateDraftUC.NewUseCase(facilityRepository, window, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		facilityRepository,
		txMgr,
		holds,
		window,
		log,
	)

	// Инициализируем handlers
	acquireHold := acquireHoldHandler.NewHandler(acquireHoldUseCase, log)
	if cfg.Metrics.Enabled {
		acquireHold = acquireHold.WithMetrics(metricsCollector)
	}
	refreshHold := refreshHoldHandler.NewHandler(acquireHoldUseCase, log)
	releaseHold := releaseHoldHandler.NewHandler(releaseHoldUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailableSlotsUseCase, log)
	findNextSlot := findNextSlotHandler.NewHandler(findNextSlotUseCase, log)
	validateDraft := validateDraftHandler.NewHandler(validateDraftUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)

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

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка доступности помещения на день
	api.HandleFunc("/facilities/{facilityId}/availability",
		getAvailability.Handle).Methods(http.MethodGet)

	// Ближайший свободный слот
	api.HandleFunc("/facilities/{facilityId}/next-available",
		findNextSlot.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Hold'ы ---
	// Захват (или перенос) hold'а на слот
	protected.HandleFunc("/holds", acquireHold.Handle).Methods(http.MethodPost)

	// Продление hold'а на тот же слот
	protected.HandleFunc("/holds/{holdId}/refresh", refreshHold.Handle).Methods(http.MethodPost)

	// Досрочное освобождение hold'а
	protected.HandleFunc("/holds/{holdId}", releaseHold.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	// Предварительная проверка черновика
	protected.HandleFunc("/bookings/validate", validateDraft.Handle).Methods(http.MethodPost)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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
