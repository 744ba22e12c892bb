package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"shopping-optimizer/internal/app"
	"shopping-optimizer/internal/config"
	"shopping-optimizer/internal/database"
	"shopping-optimizer/internal/metrics"
	"shopping-optimizer/internal/shopping"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	tables, err := config.LoadTables(cfg.TablesDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration tables")
	}

	generator, err := shopping.NewGenerator(tables, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize generator")
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	application := app.NewApp(
		generator,
		shopping.NewRepository(db.SQL),
		metrics.NewStore(db.SQL),
		logger,
	)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
		recipesPath := generateCmd.String("recipes", "", "Path to the recipes JSON file")
		userID := generateCmd.String("user", "", "User the list is generated for")
		week := generateCmd.String("week", "", "Week start date (YYYY-MM-DD)")
		outPath := generateCmd.String("out", "", "Optional file to write the list to")
		save := generateCmd.Bool("save", false, "Persist the generated list")
		generateCmd.Parse(os.Args[2:])

		if *recipesPath == "" || *userID == "" {
			generateCmd.Usage()
			os.Exit(1)
		}

		list, _, err := application.GenerateList(ctx, app.GenerateOptions{
			UserID:      *userID,
			WeekStart:   parseWeek(logger, *week),
			RecipesPath: *recipesPath,
			OutPath:     *outPath,
			Save:        *save,
		})
		if err != nil {
			logger.Fatal().Err(err).Msg("generation failed")
		}
		printList(logger, list)

	case "show":
		showCmd := flag.NewFlagSet("show", flag.ExitOnError)
		userID := showCmd.String("user", "", "User the list belongs to")
		week := showCmd.String("week", "", "Week start date (YYYY-MM-DD)")
		showCmd.Parse(os.Args[2:])

		if *userID == "" {
			showCmd.Usage()
			os.Exit(1)
		}

		list, err := application.ShowList(ctx, *userID, parseWeek(logger, *week))
		if err != nil {
			logger.Fatal().Err(err).Msg("show failed")
		}
		printList(logger, list)

	case "metrics-cleanup":
		cleanupCmd := flag.NewFlagSet("metrics-cleanup", flag.ExitOnError)
		days := cleanupCmd.Int("days", 30, "Keep records for the last N days")
		cleanupCmd.Parse(os.Args[2:])

		affected, err := metrics.NewStore(db.SQL).Cleanup(ctx, *days)
		if err != nil {
			logger.Fatal().Err(err).Msg("cleanup failed")
		}
		fmt.Printf("Removed %d old metric records.\n", affected)

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

// parseWeek parses a YYYY-MM-DD week start, defaulting to today (UTC).
func parseWeek(logger zerolog.Logger, s string) time.Time {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		logger.Fatal().Err(err).Str("week", s).Msg("invalid week start date")
	}
	return d
}

func printList(logger zerolog.Logger, list *shopping.List) {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to render shopping list")
	}
	fmt.Println(string(data))
}

func printUsage() {
	fmt.Println("Usage: shopping-optimizer <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  generate           Generate a shopping list from a recipes JSON file")
	fmt.Println("  show               Print a previously saved shopping list")
	fmt.Println("  metrics-cleanup    Remove old generation metric records")
}
