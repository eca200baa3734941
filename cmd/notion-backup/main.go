package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"notion-backup/internal/config"
	"notion-backup/internal/convert"
	"notion-backup/internal/gateway"
	"notion-backup/internal/logger"
	"notion-backup/internal/usecase"
)

func main() {
	// Define command-line flags
	configFile := flag.String("config", "", "Path to a YAML config file (optional)")
	envFile := flag.String("env", ".env", "Dotenv file with NOTION_BACKUP_* variables (ignored when absent)")
	sourceRoot := flag.String("source", "", "Directory holding the unpacked Notion export (overrides config)")
	outputDir := flag.String("output", "", "Output directory or gs://bucket/prefix (overrides config)")
	jsonReport := flag.Bool("json", false, "Print the run report as JSON instead of the stats line")
	flag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *sourceRoot != "" {
		cfg.SourceRoot = *sourceRoot
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}

	log := logger.New(logger.ParseLevel(cfg.LogLevel))
	ctx := logger.WithContext(context.Background(), log)

	// --- Dependency Injection ---

	// 1. Create the gateways
	repo := gateway.NewCSVTableRepository(gateway.SourceLayout{
		BackendDir: cfg.BackendDir,
		Files:      cfg.TableFiles(),
	})

	var writer usecase.BackupWriter = gateway.NewFileBackupWriter(cfg.OutputDir)
	if gateway.IsGCSURI(cfg.OutputDir) {
		gcsWriter, err := gateway.NewGCSBackupWriter(cfg.OutputDir)
		if err != nil {
			log.Fatal().Err(err).Str("output", cfg.OutputDir).Msg("Invalid output destination")
		}
		writer = gcsWriter
	}

	// 2. Create the usecase and inject the gateways
	conversion := usecase.NewConversionUseCase(repo, writer, convert.Options{
		Currency:        cfg.Currency,
		ImportTagPrefix: cfg.ImportTagPrefix,
		WalletBrands:    cfg.WalletBrands,
	})

	// --- Execute the Usecase ---
	report, err := conversion.Convert(ctx, cfg.SourceRoot)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.SourceRoot).Msg("Conversion failed")
	}

	// --- Present the Output ---
	if *jsonReport {
		output, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to generate JSON report")
		}
		fmt.Println(string(output))
		return
	}

	fmt.Printf("Backup written to %s\n", report.OutputPath)
	fmt.Println(report.StatsLine())
}
