package main

import (
	"context"
	"net/http"
	"os"

	"resale_ledger/internal/app"
	"resale_ledger/internal/commands"
	"resale_ledger/internal/console"
	"resale_ledger/internal/db"
	"resale_ledger/internal/ledger"
	"resale_ledger/internal/web"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()
	log.Debug().Msg("Starting application")

	ctx := context.Background()
	sheetsClient, scriptClient := app.InitializeClients(ctx)
	analyst := app.InitializeAnalyst(ctx)
	defer analyst.Close()

	dbPath := app.GetEnvWithDefault("DATABASE_PATH", "ledger.db")
	database, err := db.Open(dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", dbPath).Msg("Failed to open database")
	}
	defer database.Close()
	if err := db.EnsureSchema(database); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database schema")
	}

	ledgerService := ledger.NewService(sheetsClient, scriptClient)

	handler := &commands.Handler{
		DB:               database,
		Ledger:           ledgerService,
		Verifier:         sheetsClient,
		Analyst:          analyst,
		DashboardBaseURL: app.GetEnvWithDefault("DASHBOARD_BASE_URL", "http://localhost:10000"),
	}

	port := app.GetEnvWithDefault("PORT", "10000")
	server := web.NewServer(database, ledgerService)
	go func() {
		log.Info().Str("port", port).Msg("Dashboard listening")
		if err := http.ListenAndServe(":"+port, server.Handler()); err != nil {
			log.Fatal().Err(err).Msg("Dashboard server failed")
		}
	}()

	userID := app.GetEnvWithDefault("CONSOLE_USER_ID", "console")
	c := console.New(os.Stdin, os.Stdout)
	if err := console.Run(ctx, c, handler, userID); err != nil {
		log.Fatal().Err(err).Msg("Command loop failed")
	}
	log.Info().Msg("Goodbye")
}
