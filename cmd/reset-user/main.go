// Package main wipes one user's ledgers: income, expenditure, disposable
// budgets and disposable spending.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/sft-api/backend/config"
	"github.com/sft-api/backend/internal/application/usecase/user"
	"github.com/sft-api/backend/internal/infra/db"
	"github.com/sft-api/backend/internal/infra/dependency"
	"github.com/sft-api/backend/internal/integration/persistence"
)

func main() {
	userFlag := flag.String("user", "", "id of the user whose data is wiped")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		slog.Error("A valid -user id is required", "value", *userFlag, "error", err)
		os.Exit(2)
	}

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(persistence.Models()...); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	injector := dependency.NewInjector(cfg, database.DB(), nil)
	out, err := injector.ResetData.Execute(ctx, user.ResetDataInput{UserID: userID})
	if err != nil {
		slog.Error("Reset failed", "user_id", userID, "error", err)
		os.Exit(1)
	}

	slog.Info("Reset complete",
		"user_id", userID,
		"income", out.Income,
		"expenditure", out.Expenditure,
		"disposable_budgets", out.Budgets,
		"disposable_spending", out.Spending,
	)
}
