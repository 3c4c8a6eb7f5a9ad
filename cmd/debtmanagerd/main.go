package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Sidiqjon/debt-manager/internal/application/usecase"
	"github.com/Sidiqjon/debt-manager/internal/domain/port"
	"github.com/Sidiqjon/debt-manager/internal/infrastructure/config"
	"github.com/Sidiqjon/debt-manager/internal/infrastructure/kafka"
	"github.com/Sidiqjon/debt-manager/internal/infrastructure/scheduler"
	"github.com/Sidiqjon/debt-manager/internal/infrastructure/sms"
	grpcPresentation "github.com/Sidiqjon/debt-manager/internal/presentation/grpc"
	"github.com/Sidiqjon/debt-manager/internal/presentation/rest"
	"github.com/Sidiqjon/debt-manager/pkg/auth"
	pkgkafka "github.com/Sidiqjon/debt-manager/pkg/kafka"
	"github.com/Sidiqjon/debt-manager/pkg/observability"
	pgdb "github.com/Sidiqjon/debt-manager/pkg/postgres"

	pgRepo "github.com/Sidiqjon/debt-manager/internal/infrastructure/postgres"
)

const eventsTopic = "debtmanager.events"

func main() {
	cfg := config.Load()
	cfg.Validate()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	logger.Info("starting debt-manager",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	// --- Database -----------------------------------------------------------
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbCfg := pgdb.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}
	pool, err := pgdb.NewPool(ctx, dbCfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	if err := pgdb.RunMigrations(dbCfg.DSN(), cfg.MigrationsDir); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// --- Infrastructure adapters -------------------------------------------
	debtRepo := pgRepo.NewDebtRepo(pool)
	paymentRepo := pgRepo.NewPaymentRepo(pool)
	debtorRepo := pgRepo.NewDebtorRepo(pool)
	sellerRepo := pgRepo.NewSellerRepo(pool)
	adminRepo := pgRepo.NewAdminRepo(pool)
	messageRepo := pgRepo.NewMessageRepo(pool)
	templateRepo := pgRepo.NewTemplateRepo(pool)
	uow := pgRepo.NewUnitOfWork(pool)

	producer := pkgkafka.NewProducer(pkgkafka.Config{Brokers: cfg.Kafka.Brokers})
	defer producer.Close()
	publisher := kafka.NewEventPublisher(producer, eventsTopic, logger)

	jwtService, err := auth.NewJWTService(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: cfg.JWT.Expiration,
	})
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	var gateway port.SMSGateway = sms.NewStubGateway(logger)
	if cfg.SMS.Email != "" && cfg.SMS.Password != "" {
		gateway = sms.NewEskizGateway(sms.Config{
			BaseURL:  cfg.SMS.BaseURL,
			Email:    cfg.SMS.Email,
			Password: cfg.SMS.Password,
			From:     cfg.SMS.From,
		}, logger)
	} else {
		logger.Warn("SMS credentials not configured, using stub gateway")
	}

	// --- Use cases ----------------------------------------------------------
	useCases := grpcPresentation.HandlerUseCases{
		RegisterSeller: usecase.NewRegisterSellerUseCase(sellerRepo),
		LoginSeller:    usecase.NewLoginSellerUseCase(sellerRepo, jwtService),
		LoginAdmin:     usecase.NewLoginAdminUseCase(adminRepo, jwtService),

		CreateDebtor: usecase.NewCreateDebtorUseCase(debtorRepo),
		UpdateDebtor: usecase.NewUpdateDebtorUseCase(debtorRepo),
		GetDebtor:    usecase.NewGetDebtorUseCase(debtorRepo),
		ListDebtors:  usecase.NewListDebtorsUseCase(debtorRepo),
		DeleteDebtor: usecase.NewDeleteDebtorUseCase(debtorRepo),

		CreateDebt:  usecase.NewCreateDebtUseCase(debtRepo, debtorRepo, publisher),
		UpdateDebt:  usecase.NewUpdateDebtUseCase(debtRepo, publisher),
		GetDebt:     usecase.NewGetDebtUseCase(debtRepo),
		ListDebts:   usecase.NewListDebtsUseCase(debtRepo),
		DeleteDebt:  usecase.NewDeleteDebtUseCase(debtRepo),
		GetSchedule: usecase.NewGetScheduleUseCase(debtRepo),

		CreatePayment:     usecase.NewCreatePaymentUseCase(uow, publisher, gateway, logger),
		DeletePayment:     usecase.NewDeletePaymentUseCase(uow, publisher, logger),
		GetPayment:        usecase.NewGetPaymentUseCase(paymentRepo),
		ListPayments:      usecase.NewListPaymentsUseCase(paymentRepo),
		GetPaymentHistory: usecase.NewGetPaymentHistoryUseCase(paymentRepo),

		SendMessage: usecase.NewSendMessageUseCase(
			messageRepo, templateRepo, debtorRepo, sellerRepo,
			gateway, cfg.SMS.MessageCost, logger,
		),
		ListMessages:   usecase.NewListMessagesUseCase(messageRepo),
		SaveTemplate:   usecase.NewSaveTemplateUseCase(templateRepo),
		ListTemplates:  usecase.NewListTemplatesUseCase(templateRepo),
		DeleteTemplate: usecase.NewDeleteTemplateUseCase(templateRepo),

		CreateAdmin:  usecase.NewCreateAdminUseCase(adminRepo),
		ListSellers:  usecase.NewListSellersUseCase(sellerRepo),
		GetSeller:    usecase.NewGetSellerUseCase(sellerRepo, debtRepo),
		UpdateSeller: usecase.NewUpdateSellerUseCase(sellerRepo),
		DeleteSeller: usecase.NewDeleteSellerUseCase(sellerRepo),
	}

	// --- Reminder job -------------------------------------------------------
	reminders := scheduler.NewReminderJob(
		debtRepo, debtorRepo, messageRepo, gateway, publisher, metrics, logger,
	)
	if err := reminders.Start(cfg.ReminderHour); err != nil {
		logger.Error("failed to start reminder job", "error", err)
		os.Exit(1)
	}
	defer reminders.Stop()

	// --- gRPC server --------------------------------------------------------
	handler := grpcPresentation.NewHandler(useCases, metrics)
	grpcServer := grpcPresentation.NewServer(handler, logger, jwtService, metrics, cfg.TLS)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP server: health probes and metrics -----------------------------
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(pool, logger)
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", observability.MetricsHandler())

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: mux,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("debt-manager stopped")
}
