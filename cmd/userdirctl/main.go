package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"userdir/config"
	"userdir/internal/infra/auth"
	logs "userdir/internal/infra/log"
	"userdir/internal/infra/persistence/postgres"
	"userdir/internal/infra/validate"
	"userdir/internal/usecase"
	"userdir/internal/usecase/impl"

	"go.uber.org/fx"
)

// Supported subcommands:
// - create: Register a new account
// - get:    Fetch one account by ID
// - list:   List all accounts
// - delete: Delete an account by ID
// - attach: Attach an article to an account
// - login:  Authenticate by email or username

const startTimeout = 30 * time.Second

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var directory usecase.DirectoryUsecase
	var logger *slog.Logger

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewUserRepository,
			auth.NewBcryptHasher,
			validate.New,
			impl.NewDirectoryService,
		),
		fx.Populate(&directory, &logger),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), startTimeout)
		defer stopCancel()

		if err := app.Stop(stopCtx); err != nil {
			logger.Error("Shutdown failed", slog.Any("error", err))
		}
	}()

	if err := runCommand(context.Background(), directory, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: userdirctl <create|get|list|delete|attach|login> [flags]")
	fmt.Fprintln(os.Stderr, "Run 'userdirctl <subcommand> -h' for subcommand flags.")
}
