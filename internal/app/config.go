package app

import (
	"context"
	"os"
	"strings"
	"time"

	"resale_ledger/internal/ai"
	"resale_ledger/internal/script"
	"resale_ledger/internal/sheets"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	// Configure logging
	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch levelStr {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "":
		// Default based on environment
		if os.Getenv("ENV") == "production" {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// GetRequiredEnv fetches a required environment variable or exits if not set.
func GetRequiredEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatal().Msgf("%s environment variable is required", key)
	}
	return value
}

// GetEnvWithDefault fetches an environment variable with a default fallback.
func GetEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// InitializeClients creates and returns the Google Sheets client and the
// row-insert script client.
func InitializeClients(ctx context.Context) (*sheets.Client, *script.Client) {
	log.Debug().Msg("Initializing clients")
	scriptURL := GetRequiredEnv("GOOGLE_SCRIPT_URL")
	credsFile := GetEnvWithDefault("SERVICE_ACCOUNT_FILE", "service_account.json")

	sheetsClient, err := sheets.NewClient(ctx, credsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sheets client")
	}
	scriptClient := script.NewClient(scriptURL)

	log.Debug().Msg("Clients initialized successfully")
	return sheetsClient, scriptClient
}

// InitializeAnalyst creates and returns the Gemini analysis client.
func InitializeAnalyst(ctx context.Context) *ai.Analyst {
	apiKey := GetRequiredEnv("GEMINI_API_KEY")
	model := GetEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")

	log.Debug().Str("model", model).Msg("Initializing analyst")

	analyst, err := ai.NewAnalyst(ctx, apiKey, model)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create analyst client")
	}
	return analyst
}
