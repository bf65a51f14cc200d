package main

import (
	"context"
	"os"

	"github.com/jhoicas/cafe-orders/internal/application/auth"
	"github.com/jhoicas/cafe-orders/internal/application/ordering"
	infrapdf "github.com/jhoicas/cafe-orders/internal/infrastructure/pdf"
	"github.com/jhoicas/cafe-orders/internal/infrastructure/postgres"
	"github.com/jhoicas/cafe-orders/internal/interfaces/console"
	"github.com/jhoicas/cafe-orders/pkg/config"
	"github.com/jhoicas/cafe-orders/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo)
	submitUC := ordering.NewSubmitOrderUseCase(txRunner)
	mutator := ordering.NewOrderMutator(txRunner, orderRepo, menuRepo)
	tracker := ordering.NewItemStatusTracker(orderRepo)
	history := ordering.NewOrderHistory(orderRepo)
	receiptUC := ordering.NewReceiptUseCase(orderRepo, menuRepo,
		infrapdf.NewMarotoReceiptGenerator(cfg.App.Name))

	ui := console.New(os.Stdin, os.Stdout, log,
		authUC, menuRepo, submitUC, mutator, tracker, history, receiptUC)

	if err := ui.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("consola")
	}
	log.Info().Msg("aplicación terminada")
}
