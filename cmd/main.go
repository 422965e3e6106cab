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

	cancelReservationHandler "github.com/dmtrv/RB-ReservationService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/dmtrv/RB-ReservationService/internal/api/handlers/check_availability"
	completeReservationHandler "github.com/dmtrv/RB-ReservationService/internal/api/handlers/complete_reservation"
	createBlockHandler "github.com/dmtrv/RB-ReservationService/internal/api/handlers/create_availability_block"
	createReservationHandler "github.com/dmtrv/RB-ReservationService/internal/api/handlers/create_reservation"
	createRestaurantHandler "github.com/dmtrv/RB-ReservationService/internal/api/handlers/create_restaurant"
	createTableHandler "github.com/dmtrv/RB-ReservationService/internal/api/handlers/create_table"
	deleteBlockHandler "github.com/dmtrv/RB-ReservationService/internal/api/handlers/delete_availability_block"
	getAvailableTablesHandler "github.com/dmtrv/RB-ReservationService/internal/api/handlers/get_available_tables"
	getCustomerReservationsHandler "github.com/dmtrv/RB-ReservationService/internal/api/handlers/get_customer_reservations"
	getReservationHandler "github.com/dmtrv/RB-ReservationService/internal/api/handlers/get_reservation"
	getRestaurantReservationsHandler "github.com/dmtrv/RB-ReservationService/internal/api/handlers/get_restaurant_reservations"
	getRestaurantScheduleHandler "github.com/dmtrv/RB-ReservationService/internal/api/handlers/get_restaurant_schedule"
	markNoShowHandler "github.com/dmtrv/RB-ReservationService/internal/api/handlers/mark_no_show"
	registerCustomerHandler "github.com/dmtrv/RB-ReservationService/internal/api/handlers/register_customer"
	setOperatingHoursHandler "github.com/dmtrv/RB-ReservationService/internal/api/handlers/set_operating_hours"
	updateBlockHandler "github.com/dmtrv/RB-ReservationService/internal/api/handlers/update_availability_block"
	"github.com/dmtrv/RB-ReservationService/internal/api/middleware"
	"github.com/dmtrv/RB-ReservationService/internal/config"
	blockRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/availabilityblock"
	customerRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/customer"
	hoursRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/operatinghours"
	reservationRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/reservation"
	restaurantRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/restaurant"
	tableRepo "github.com/dmtrv/RB-ReservationService/internal/infra/storage/table"
	assignmentService "github.com/dmtrv/RB-ReservationService/internal/service/assignment"
	directoryService "github.com/dmtrv/RB-ReservationService/internal/service/directory"
	reservationsService "github.com/dmtrv/RB-ReservationService/internal/service/reservations"
	scheduleService "github.com/dmtrv/RB-ReservationService/internal/service/schedule"
	checkAvailabilityUC "github.com/dmtrv/RB-ReservationService/internal/usecase/check_availability"
	createReservationUC "github.com/dmtrv/RB-ReservationService/internal/usecase/create_reservation"
	"github.com/dmtrv/RB-ReservationService/pkg/dbmetrics"
	"github.com/dmtrv/RB-ReservationService/pkg/logger"
	"github.com/dmtrv/RB-ReservationService/pkg/metrics"
	"github.com/dmtrv/RB-ReservationService/pkg/simpletxmanager"
	"github.com/dmtrv/RB-ReservationService/pkg/txmanager"
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

	log.Info("Starting RB-ReservationService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		customerRepository    *customerRepo.Repository
		restaurantRepository  *restaurantRepo.Repository
		tableRepository       *tableRepo.Repository
		hoursRepository       *hoursRepo.Repository
		blockRepository       *blockRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		restaurantRepository = restaurantRepo.NewRepository(wrappedDB)
		tableRepository = tableRepo.NewRepository(wrappedDB)
		hoursRepository = hoursRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		restaurantRepository = restaurantRepo.NewRepository(db)
		tableRepository = tableRepo.NewRepository(db)
		hoursRepository = hoursRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	assignmentSvc := assignmentService.NewService(
		tableRepository,
		reservationRepository,
		restaurantRepository,
		cfg.Booking.ReservationDurationMinutes,
		log,
	)
	directorySvc := directoryService.NewService(
		restaurantRepository,
		tableRepository,
		customerRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		hoursRepository,
		blockRepository,
		restaurantRepository,
		tableRepository,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		customerRepository,
		restaurantRepository,
		tableRepository,
		hoursRepository,
		txMgr,
		cfg.Booking.ReservationDurationMinutes,
		cfg.Booking.MinLeadTimeMinutes,
		log,
	)

	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		reservationRepository,
		hoursRepository,
		blockRepository,
		cfg.Booking.ReservationDurationMinutes,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	completeReservation := completeReservationHandler.NewHandler(reservationSvc, log)
	markNoShow := markNoShowHandler.NewHandler(reservationSvc, log)
	getCustomerReservations := getCustomerReservationsHandler.NewHandler(reservationSvc, log)
	getRestaurantReservations := getRestaurantReservationsHandler.NewHandler(reservationSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getAvailableTables := getAvailableTablesHandler.NewHandler(assignmentSvc, log)
	getRestaurantSchedule := getRestaurantScheduleHandler.NewHandler(scheduleSvc, log)
	createRestaurant := createRestaurantHandler.NewHandler(directorySvc, log)
	createTable := createTableHandler.NewHandler(directorySvc, log)
	registerCustomer := registerCustomerHandler.NewHandler(directorySvc, log)
	setOperatingHours := setOperatingHoursHandler.NewHandler(scheduleSvc, log)
	createBlock := createBlockHandler.NewHandler(scheduleSvc, log)
	updateBlock := updateBlockHandler.NewHandler(scheduleSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Каждому запросу присваивается ID для корреляции логов
	r.Use(middleware.RequestID)

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

	// Проверка доступности столика на временное окно
	api.HandleFunc("/restaurants/{restaurantId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Подбор доступных столиков под компанию
	api.HandleFunc("/restaurants/{restaurantId}/available-tables",
		getAvailableTables.Handle).Methods(http.MethodGet)

	// Недельное расписание работы ресторана
	api.HandleFunc("/restaurants/{restaurantId}/schedule",
		getRestaurantSchedule.Handle).Methods(http.MethodGet)

	// Регистрация гостя
	api.HandleFunc("/customers", registerCustomer.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание брони столика
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение брони по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// История броней текущего гостя
	protected.HandleFunc("/reservations", getCustomerReservations.Handle).Methods(http.MethodGet)

	// Отмена брони
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Ресторанные переходы статусов: завершение и неявка
	protected.HandleFunc("/reservations/{reservationId}/complete", completeReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId}/no-show", markNoShow.Handle).Methods(http.MethodPatch)

	// Брони ресторана с фильтрацией (столик, период, статус)
	protected.HandleFunc("/restaurants/{restaurantId}/reservations",
		getRestaurantReservations.Handle).Methods(http.MethodGet)

	// Справочник: регистрация ресторанов и столиков
	protected.HandleFunc("/restaurants", createRestaurant.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/restaurants/{restaurantId}/tables", createTable.Handle).Methods(http.MethodPost)

	// Управление расписанием ресторана
	protected.HandleFunc("/restaurants/{restaurantId}/hours", setOperatingHours.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/restaurants/{restaurantId}/blocks", createBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/blocks/{blockId}", updateBlock.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/blocks/{blockId}", deleteBlock.Handle).Methods(http.MethodDelete)

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
