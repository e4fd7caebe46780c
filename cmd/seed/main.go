package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	mongo "fleetbook/internal/clients/mongo" // mongo client singleton
	"fleetbook/internal/config"
	"fleetbook/internal/logger"
	"fleetbook/internal/seed"
	"fleetbook/internal/services/cars"
	"fleetbook/internal/services/users"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-playground/validator/v10"
	_ "go.uber.org/automaxprocs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Bootstrap logger for early errors
	bootstrapLog := log.New(os.Stderr, "bootstrap: ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		bootstrapLog.Printf("config load failed: %v", err)
		os.Exit(1)
	}

	extraCars := flag.Int("extra-cars", cfg.SeedExtraCars, "how many generated cars to insert after the demo chain")
	usersDemo := flag.Bool("users-demo", cfg.SeedUsersDemo, "run the users uniqueness demo")
	flag.Parse()

	logg := logger.Init(cfg)
	gofakeit.Seed(time.Now().UnixNano())

	_, db, err := mongo.Init(ctx, cfg, logg)
	if err != nil {
		logg.Error("mongo init", "err", err)
		os.Exit(1)
	}
	logg.Info("starting seed run", "db", db.Name())

	v := validator.New()

	carsRepo, err := mongo.NewCarsRepo(ctx, db)
	if err != nil {
		logg.Error("cars repo init", "err", err)
		shutdownAndExit(ctx, logg, 1)
	}
	usersRepo, err := mongo.NewUsersRepo(ctx, db)
	if err != nil {
		logg.Error("users repo init", "err", err)
		shutdownAndExit(ctx, logg, 1)
	}

	runner := seed.NewRunner(
		cars.NewService(carsRepo, v, logg),
		users.NewService(usersRepo, v, logg),
		logg,
	)

	runErr := runner.Run(ctx, seed.Options{
		ExtraCars: *extraCars,
		UsersDemo: *usersDemo,
	})
	if runErr != nil {
		logg.Error("seed run failed", "err", runErr)
		shutdownAndExit(ctx, logg, 1)
	}

	if err := mongo.Shutdown(ctx); err != nil {
		logg.Error("mongo shutdown", "err", err)
		os.Exit(1)
	}
	logg.Info("shutdown complete")
}

// shutdownAndExit closes the mongo connection before exiting non-zero.
func shutdownAndExit(ctx context.Context, logg *slog.Logger, code int) {
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := mongo.Shutdown(shutdownCtx); err != nil {
		logg.Error("mongo shutdown", "err", err)
	}
	os.Exit(code)
}
