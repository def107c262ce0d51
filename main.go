package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"finconsult/config"
	httpLayer "finconsult/http"
	"finconsult/repository"
	"finconsult/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
	} else {
		cache = repository.NewMemoryCache()
	}

	financeService := service.NewFinanceService(logger)
	businessService := service.NewBusinessService(logger)
	advisor := service.NewAdvisorService(cfg.OpenAIKey, cache, logger)
	store := repository.NewFileReportStore(cfg.ReportsDir)

	if len(os.Args) > 1 && os.Args[1] == "demo" {
		runDemo(financeService, businessService, store, logger)
		return
	}

	financeHandler := httpLayer.NewFinanceHandler(financeService, advisor)
	businessHandler := httpLayer.NewBusinessHandler(businessService, advisor)
	chartHandler := httpLayer.NewChartHandler(store, logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	r := mux.NewRouter()
	r.HandleFunc("/finance/loan", financeHandler.CalculateLoan).Methods(http.MethodPost)
	r.HandleFunc("/finance/compound", financeHandler.CalculateCompoundInterest).Methods(http.MethodPost)
	r.HandleFunc("/finance/savings-goal", financeHandler.CalculateSavingsGoal).Methods(http.MethodPost)
	r.HandleFunc("/business/roi", businessHandler.CalculateROI).Methods(http.MethodPost)
	r.HandleFunc("/business/break-even", businessHandler.CalculateBreakEven).Methods(http.MethodPost)
	r.HandleFunc("/business/profit-margin", businessHandler.CalculateProfitMargin).Methods(http.MethodPost)
	r.HandleFunc("/business/payback", businessHandler.CalculatePayback).Methods(http.MethodPost)
	r.HandleFunc("/business/ratios", businessHandler.CalculateRatios).Methods(http.MethodPost)
	r.HandleFunc("/charts/{kind}", chartHandler.BuildChart).Methods(http.MethodPost)

	handler := httpLayer.RequestLogMiddleware(logger,
		httpLayer.RateLimitMiddleware(rateLimiter, r))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("API listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Errorf("Error starting server: %v", err)
		return
	case <-quit:
		logger.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server exited")
}
