package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/Gunvolt24/cleanpos/config"
	cachemem "github.com/Gunvolt24/cleanpos/internal/cache/memory"
	"github.com/Gunvolt24/cleanpos/internal/domain"
	"github.com/Gunvolt24/cleanpos/internal/kafka"
	"github.com/Gunvolt24/cleanpos/internal/ports"
	"github.com/Gunvolt24/cleanpos/internal/repo/postgres"
	rest "github.com/Gunvolt24/cleanpos/internal/transport/http"
	"github.com/Gunvolt24/cleanpos/internal/usecase"
	"github.com/Gunvolt24/cleanpos/internal/weather"
	"github.com/Gunvolt24/cleanpos/migrations"
	"github.com/Gunvolt24/cleanpos/pkg/httpx"
	"github.com/Gunvolt24/cleanpos/pkg/logger"
	"github.com/Gunvolt24/cleanpos/pkg/metrics"
	"github.com/Gunvolt24/cleanpos/pkg/telemetry"
	"github.com/Gunvolt24/cleanpos/pkg/validate"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // HTTP-сервер
	KafkaConsumer   ports.MessageConsumer // консьюмер заказов; nil, если приём из Kafka выключен
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// newWeatherProvider — без ключа API погода отвечает ErrUnauthorized, сервис при этом стартует.
func newWeatherProvider(ctx context.Context, cfg config.Weather, log ports.Logger) ports.WeatherProvider {
	if cfg.APIKey == "" {
		log.Warnf(ctx, "weather api key is not set, /weather is disabled")
		return weather.Unconfigured{}
	}
	client, err := weather.New(cfg.APIKey, cfg.Timeout, weather.WithBaseURL(cfg.BaseURL))
	if err != nil {
		log.Warnf(ctx, "weather client: %v", err)
		return weather.Unconfigured{}
	}
	return client
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd, logger.WithLevel(cfg.Logger.Level))
	if err != nil {
		return nil, func() {}, err
	}

	metrics.MustRegister()

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	if cfg.Postgres.AutoMigrate {
		db := stdlib.OpenDBFromPool(pool)
		applied, mErr := migrations.Up(ctx, db)
		_ = db.Close()
		if mErr != nil {
			pool.Close()
			_ = cleanupLogger()
			return nil, func() {}, mErr
		}
		logg.Infof(ctx, "migrations applied: %d", len(applied))
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, telemetry.Config{
			ServiceName: cfg.Tracing.ServiceName,
			Environment: cfg.Tracing.Environment,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Хранилище.
	orderRepo := postgres.NewOrderRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	loyaltyRepo := postgres.NewLoyaltyRepository(pool)

	// Справочные кэши: филиалы без TTL (до инвалидации), погода — по TTL.
	branchCache := cachemem.NewFlightCache[domain.Branch]("branches", 0)
	weatherCache := cachemem.NewFlightCache[domain.Weather]("weather", cfg.Cache.WeatherTTL)

	// Сервисы.
	resolver := usecase.NewBranchResolver(branchRepo, branchCache, logg, cfg.Cache.FetchTimeout)
	orderService := usecase.NewOrderService(orderRepo, resolver, logg, validate.NewOrderValidator())
	deliveryService := usecase.NewDeliveryService(orderRepo, resolver, logg)
	loyaltyService := usecase.NewLoyaltyService(loyaltyRepo, logg, cfg.Loyalty.DefaultLimit, cfg.Loyalty.MaxLimit)
	weatherService := usecase.NewWeatherService(
		newWeatherProvider(ctx, cfg.Weather, logg), weatherCache, logg, cfg.Cache.FetchTimeout)

	// Прогрев справочника филиалов; неудача не мешает старту.
	if err := resolver.WarmUp(ctx, cfg.Cache.BranchWarmUpN); err != nil {
		logg.Warnf(ctx, "branch warm-up failed: %v", err)
	}

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	httpHandler := rest.NewHandler(rest.Services{
		Orders:   orderService,
		Branches: resolver,
		Delivery: deliveryService,
		Loyalty:  loyaltyService,
		Weather:  weatherService,
	}, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName, httpx.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	if cfg.Kafka.Enabled {
		kafkaCfg := kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}
		app.KafkaConsumer = kafka.NewConsumer(&kafkaCfg, orderService, logg)
	} else {
		logg.Infof(ctx, "kafka ingestion disabled")
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if app.KafkaConsumer != nil {
			if err := app.KafkaConsumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}

		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Errorf(ctx, "background error: %v", err)
			runErr = err
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
