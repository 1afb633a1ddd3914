package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	logger_adapter "darna-client-service/internal/adapters/logger"
	"darna-client-service/internal/adapters/marketapi"
	"darna-client-service/internal/adapters/payment"
	"darna-client-service/internal/adapters/rest"
	"darna-client-service/internal/adapters/session"
	"darna-client-service/internal/configs"
	"darna-client-service/internal/core/port"
	"darna-client-service/internal/core/usecase"

	"github.com/fluent/fluent-logger-golang/fluent"
)

type App struct {
	config    *configs.AppConfig
	apiServer *rest.Server

	logger       port.LoggerPort
	fluentClient *fluent.Fluent // для корректного закрытия
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluent.New(fluent.Config{
			FluentHost: appConfig.FluentBit.Host,
			FluentPort: appConfig.FluentBit.Port,
			TagPrefix:  appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 2. СОСТОЯНИЕ СЕССИИ И КЛИЕНТ МАРКЕТПЛЕЙСА ---
	sessionStore := session.NewStore()

	marketClient := marketapi.NewClient(marketapi.Config{
		BaseURL: appConfig.MarketAPI.BaseURL,
		Timeout: appConfig.MarketAPI.Timeout,
	}, sessionStore)
	appLogger.Info("Market API client initialized", port.Fields{
		"base_url":   appConfig.MarketAPI.BaseURL,
		"timeout_ms": appConfig.MarketAPI.Timeout.Milliseconds(),
	})

	paymentPresenter := payment.NewHeadlessPresenter()

	// --- 3. ИНИЦИАЛИЗАЦИЯ USE CASES (ядра бизнес-логики) ---
	loadAdsFeedUseCase := usecase.NewLoadAdsFeedUseCase(marketClient)
	loadAdByIDUseCase := usecase.NewLoadAdByIDUseCase(marketClient)
	loadSellerProfileUseCase := usecase.NewLoadSellerProfileUseCase(marketClient)
	startPurchaseUseCase := usecase.NewStartPurchaseUseCase(marketClient, paymentPresenter)
	loginUseCase := usecase.NewLoginUserUseCase(marketClient, sessionStore)
	logoutUseCase := usecase.NewLogoutUserUseCase(sessionStore)

	appLogger.Info("All use cases initialized", nil)

	apiHandlers := rest.NewMarketHandlers(
		loadAdsFeedUseCase,
		loadAdByIDUseCase,
		loadSellerProfileUseCase,
		startPurchaseUseCase,
		loginUseCase,
		logoutUseCase,
	)
	apiServer := rest.NewServer(appConfig.Rest.PORT, appConfig.Rest.CORSOrigins, apiHandlers, baseLogger)

	return &App{
		config:       appConfig,
		apiServer:    apiServer,
		logger:       appLogger,
		fluentClient: fluentClient,
	}, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Пишем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("HTTP server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
