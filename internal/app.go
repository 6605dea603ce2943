package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"listing-service/internal/adapters/csvexport"
	"listing-service/internal/adapters/feedfile"
	logger_adapter "listing-service/internal/adapters/logger"
	"listing-service/internal/adapters/metrics"
	postgres_adapter "listing-service/internal/adapters/postgres"
	rabbitmq_adapter "listing-service/internal/adapters/rabbitmq"
	"listing-service/internal/adapters/rest"
	"listing-service/internal/configs"
	"listing-service/internal/constants"
	"listing-service/internal/contextkeys"
	"listing-service/internal/contracts"
	"listing-service/internal/core/normalizer"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"
	fluentlogger "listing-service/pkg/fluent_logger"
	"listing-service/pkg/postgres"
	"listing-service/pkg/rabbitmq/rabbitmq_common"
	"listing-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

const shutdownTimeout = 15 * time.Second

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
	baseLogger   port.LoggerPort

	connManager     *rabbitmq_common.ConnectionManager
	reportsProducer *rabbitmq_producer.Publisher

	ingestUseCase *usecase.IngestListingsUseCase
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	baseLogger, fluentClient, err := newBaseLogger(appConfig)
	if err != nil {
		return nil, err
	}
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})

	a := &App{
		config:       appConfig,
		fluentClient: fluentClient,
		logger:       appLogger,
		baseLogger:   baseLogger,
	}

	// --- 2. НИЗКОУРОВНЕВЫЕ ЗАВИСИМОСТИ ---
	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{
		DatabaseURL:     appConfig.Database.URL,
		MaxConns:        int32(appConfig.Database.MaxConns),
		MinConns:        int32(appConfig.Database.MinConns),
		MaxConnLifetime: appConfig.Database.MaxConnLifetime,
		ConnectTimeout:  appConfig.Database.ConnectTimeout,
	})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		a.close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	a.dbPool = dbPool
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	storageAdapter, err := postgres_adapter.NewListingStorageAdapter(dbPool)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create listing storage adapter: %w", err)
	}
	queryAdapter, err := postgres_adapter.NewListingQueryAdapter(dbPool)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to create listing query adapter: %w", err)
	}
	appLogger.Info("Postgres adapters initialized.", nil)

	var reporter port.IngestReporterPort
	if appConfig.Ingest.ReportsEnabled {
		reporterAdapter, err := a.initReporting()
		if err != nil {
			appLogger.Error("Failed to initialize ingest reporting", err, nil)
			a.close()
			return nil, err
		}
		reporter = reporterAdapter
	} else {
		appLogger.Info("Ingest reports are disabled, summaries are only logged.", nil)
	}

	recordValidator, err := contracts.NewFeedRecordValidator()
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to load feed record contract: %w", err)
	}

	appMetrics := metrics.NewMetrics(appConfig.AppName)

	// --- 3. USE CASES ---
	recordNormalizer := normalizer.NewNormalizer(normalizer.TextLimits{
		Code:   appConfig.TextLimits.Code,
		Short:  appConfig.TextLimits.Short,
		Medium: appConfig.TextLimits.Medium,
	})
	a.ingestUseCase = usecase.NewIngestListingsUseCase(recordNormalizer, storageAdapter, recordValidator, reporter, appMetrics)
	findListingsUseCase := usecase.NewFindListingsUseCase(queryAdapter)
	getListingUseCase := usecase.NewGetListingUseCase(queryAdapter)
	exportListingsUseCase := usecase.NewExportListingsUseCase(queryAdapter, csvexport.NewListingCSVEncoder())
	appLogger.Info("All use cases initialized.", nil)

	// --- 4. ВХОДЯЩИЕ АДАПТЕРЫ ---
	router := rest.NewRouter(
		rest.RouterConfig{
			RequestTimeout: appConfig.Rest.RequestTimeout,
			AllowedOrigins: appConfig.Rest.AllowedOrigins,
		},
		rest.NewListingHandler(findListingsUseCase, getListingUseCase, exportListingsUseCase, appConfig.Rest.MaxPageSize),
		rest.NewIngestHandler(a.ingestUseCase),
		rest.NewHealthHandler(dbPool),
		appMetrics,
		baseLogger,
	)
	a.apiServer = rest.NewServer(appConfig.Rest.PORT, router, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return a, nil
}

// newBaseLogger собирает stdout-логгер и, если включен, логгер Fluent Bit
func newBaseLogger(cfg *configs.AppConfig) (port.LoggerPort, *fluent.Fluent, error) {
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(cfg.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if cfg.FluentBit.Enabled {
		var err error
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      cfg.FluentBit.Host,
			Port:      cfg.FluentBit.Port,
			TagPrefix: cfg.AppName,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(cfg.FluentBit.Level))
		if err != nil {
			_ = fluentClient.Close()
			return nil, nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		if fluentClient != nil {
			_ = fluentClient.Close()
		}
		return nil, nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": cfg.AppName})
	baseLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": cfg.FluentBit.Enabled,
	})
	return baseLogger, fluentClient, nil
}

// initReporting подключается к RabbitMQ и создает публикатор отчетов о загрузке
func (a *App) initReporting() (*rabbitmq_adapter.IngestReporterAdapter, error) {
	connManagerBridge := rabbitmq_adapter.NewPkgLoggerBridge(
		a.baseLogger.WithFields(port.Fields{"component": "rabbitmq_conn_manager"}))
	connManager, err := rabbitmq_common.GetManager(a.config.RabbitMQ.URL, connManagerBridge)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection manager: %w", err)
	}
	a.connManager = connManager

	producer, err := rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
		Config:                   rabbitmq_common.Config{URL: a.config.RabbitMQ.URL},
		ExchangeName:             constants.ListingExchange,
		ExchangeType:             constants.ListingExchangeType,
		DurableExchange:          true,
		DeclareExchangeIfMissing: true,
		Logger: rabbitmq_adapter.NewPkgLoggerBridge(
			a.baseLogger.WithFields(port.Fields{"component": "rabbitmq_producer"})),
	}, connManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create ingest report producer: %w", err)
	}
	a.reportsProducer = producer
	a.logger.Info("RabbitMQ ingest report producer initialized.", port.Fields{
		"exchange": constants.ListingExchange, "routing_key": constants.RoutingKeyIngestReports,
	})

	return rabbitmq_adapter.NewIngestReporterAdapter(producer, constants.RoutingKeyIngestReports)
}

// Run запускает HTTP-сервер и ждет сигнала завершения.
func (a *App) Run() error {
	defer a.close()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	var runErr error
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case runErr = <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", runErr, nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.apiServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}

	return runErr
}

// RunIngest загружает фид из файла. Ошибкой завершается только невозможность
// прочитать файл; сбои отдельных записей попадают в итоговую статистику.
func (a *App) RunIngest(path string) error {
	defer a.close()

	if path == "" {
		path = a.config.Ingest.FeedFilePath
	}
	source, err := feedfile.NewFileSource(path)
	if err != nil {
		return fmt.Errorf("feed file path is not set (FEED_FILE_PATH or first argument): %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = contextkeys.ContextWithLogger(ctx, a.baseLogger)
	ctx = contextkeys.ContextWithLoggerFields(ctx, port.Fields{"feed_file": path})

	ingestLogger := a.logger.WithFields(port.Fields{"feed_file": path})
	records, err := source.Records(ctx)
	if err != nil {
		ingestLogger.Error("Failed to read feed file", err, nil)
		return err
	}
	ingestLogger.Info("Feed file loaded", port.Fields{"records": len(records)})

	summary, err := a.ingestUseCase.Execute(ctx, records)
	if err != nil {
		ingestLogger.Warn("Ingestion stopped before the end of the feed", port.Fields{"error": err.Error()})
	}
	if summary != nil {
		ingestLogger.Info("Ingest summary", port.Fields{
			"run_id":      summary.RunID,
			"processed":   summary.Processed,
			"created":     summary.Created,
			"updated":     summary.Updated,
			"failed":      summary.Failed,
			"failed_keys": summary.FailedKeys,
		})
	}
	return nil
}

// close освобождает ресурсы в обратном порядке. Fluent закрывается последним.
func (a *App) close() {
	if a.reportsProducer != nil {
		if err := a.reportsProducer.Close(); err != nil {
			a.logger.Error("Error closing ingest report producer", err, nil)
		}
	}
	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("PostgreSQL pool closed.", nil)
	}

	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent может быть уже недоступен
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}

func parseLogLevel(levelStr string) slog.Level {
	level, ok := logger_adapter.ParseLevel(levelStr)
	if !ok {
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
	}
	return level
}
