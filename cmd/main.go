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

	bookSlotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/book_slot"
	detectSlotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/detect_slots"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_available_slots"
	getSlotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_slot"
	getUserProfileHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_user_profile"
	listSlotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_slots"
	loginUserHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/login_user"
	parkVehicleHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/park_vehicle"
	parkingStatusHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/parking_status"
	recognizePlateHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/recognize_plate"
	registerUserHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/register_user"
	releaseSlotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/release_slot"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	userRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/user"
	visionServiceClient "github.com/m04kA/SMC-ParkingService/internal/integrations/visionservice"
	feesService "github.com/m04kA/SMC-ParkingService/internal/service/fees"
	slotsService "github.com/m04kA/SMC-ParkingService/internal/service/slots"
	usersService "github.com/m04kA/SMC-ParkingService/internal/service/users"
	bookSlotUC "github.com/m04kA/SMC-ParkingService/internal/usecase/book_slot"
	parkVehicleUC "github.com/m04kA/SMC-ParkingService/internal/usecase/park_vehicle"
	releaseSlotUC "github.com/m04kA/SMC-ParkingService/internal/usecase/release_slot"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
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

	log.Info("Starting SMC-ParkingService...")
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

	// Инициализируем клиент сервиса распознавания
	visionClient := visionServiceClient.NewClient(
		cfg.VisionService.URL,
		time.Duration(cfg.VisionService.Timeout)*time.Second,
		log,
	)
	log.Info("Vision service client initialized (url=%s, timeout=%ds)",
		cfg.VisionService.URL, cfg.VisionService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository *slotRepo.Repository
		userRepository *userRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Заполняем пул слотов. Операция идемпотентна: слоты создаются
	// только если пул еще пуст, конкурентные старты разводит
	// serializable транзакция
	var seeded int
	err = txMgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		n, err := slotRepository.Seed(ctx, cfg.Parking.SlotCount)
		if err != nil {
			return err
		}
		seeded = n
		return nil
	})
	if err != nil {
		log.Fatal("Failed to seed parking slots: %v", err)
	}
	if seeded > 0 {
		log.Info("Seeded %d parking slots", seeded)
	} else {
		log.Info("Parking slot pool already initialized")
	}

	// Инициализируем сервисы
	feeCalculator := feesService.NewCalculator(cfg.Parking.HourlyRate)
	slotSvc := slotsService.NewService(slotRepository, log)
	userSvc := usersService.NewService(userRepository, slotRepository, log)

	// Инициализируем use cases
	bookSlotUseCase := bookSlotUC.NewUseCase(slotRepository, userRepository, log)
	parkVehicleUseCase := parkVehicleUC.NewUseCase(slotRepository, log)
	releaseSlotUseCase := releaseSlotUC.NewUseCase(slotRepository, userRepository, feeCalculator, log)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(userSvc, log)
	loginUser := loginUserHandler.NewHandler(userSvc, log)
	getUserProfile := getUserProfileHandler.NewHandler(userSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(slotSvc, log)
	getSlot := getSlotHandler.NewHandler(slotSvc, log)
	listSlots := listSlotsHandler.NewHandler(slotSvc, log)
	parkingStatus := parkingStatusHandler.NewHandler(slotSvc, log)
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	parkVehicle := parkVehicleHandler.NewHandler(parkVehicleUseCase, log)
	releaseSlot := releaseSlotHandler.NewHandler(releaseSlotUseCase, log)
	detectSlots := detectSlotsHandler.NewHandler(visionClient, log)
	recognizePlate := recognizePlateHandler.NewHandler(visionClient, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Пользователи ---
	api.HandleFunc("/users/register", registerUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/users/login", loginUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/users/{vehiclePlate}", getUserProfile.Handle).Methods(http.MethodGet)

	// --- Слоты ---
	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId}", getSlot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId}/book", bookSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/slots/{slotId}/park", parkVehicle.Handle).Methods(http.MethodPost)
	api.HandleFunc("/slots/{slotId}/release", releaseSlot.Handle).Methods(http.MethodPost)

	// --- Сводка занятости ---
	api.HandleFunc("/parking/status", parkingStatus.Handle).Methods(http.MethodGet)

	// --- Распознавание ---
	api.HandleFunc("/vision/detect-slots", detectSlots.Handle).Methods(http.MethodPost)
	api.HandleFunc("/vision/recognize-plate", recognizePlate.Handle).Methods(http.MethodPost)

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
