package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"nexuspos/internal/cart"
	"nexuspos/internal/catalog"
	"nexuspos/internal/checkout"
	"nexuspos/internal/config"
	"nexuspos/internal/db"
	"nexuspos/internal/httpserver"
	"nexuspos/internal/promotion"
	"nexuspos/internal/receipt"
	"nexuspos/internal/report"
	expenserepo "nexuspos/internal/repository/expense"
	productrepo "nexuspos/internal/repository/product"
	promorepo "nexuspos/internal/repository/promotion"
	salerepo "nexuspos/internal/repository/sale"
	settingsrepo "nexuspos/internal/repository/settings"
)

func main() {
	cfg := config.FromEnv()
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("app", "api").Logger()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect to db")
	}
	defer pool.Close()

	productRepo := productrepo.NewPostgres(pool, logger)
	promoRepo := promorepo.NewPostgres(pool, logger)
	saleRepo := salerepo.NewPostgres(pool, logger)
	settingsRepo := settingsrepo.NewPostgres(pool, logger)
	expRepo := expenserepo.NewPostgres(pool, logger)

	carts := cart.NewStore()

	srv, err := httpserver.New(cfg.HTTPAddr, logger, pool, httpserver.Deps{
		Catalog:    catalog.New(productRepo),
		Carts:      carts,
		Checkout:   checkout.New(carts, productRepo, saleRepo, logger),
		Promotions: promotion.New(promoRepo),
		Sales:      saleRepo,
		Settings:   settingsRepo,
		Expenses:   expRepo,
		Reports:    report.New(saleRepo, expRepo),
		Receipts:   receipt.NewRenderer(cfg.ReceiptSigningKey),
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatal().Err(err).Msg("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		logger.Info().Msg("server stopped")
	}
}
