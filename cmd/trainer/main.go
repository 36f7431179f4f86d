package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/Saravanan-32/customer-service-chatbot/corpus"
	"github.com/Saravanan-32/customer-service-chatbot/infrastructure/storage"
	"github.com/Saravanan-32/customer-service-chatbot/services"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/shirou/gopsutil/process"
)

// Exit codes to provide meaningful status to the operating system or a calling script.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		color.Red.Printf("Training failed: %v\n", err)
	}
	os.Exit(code)
}

// run wires the trainer and keeps every deferred close ahead of os.Exit.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	hp := config.Hyperparameters()
	if err := hp.Validate(); err != nil {
		return exitConfig, err
	}

	// 2. Corpus
	intents, err := corpus.NewLoader(log).Load(config.IntentsFilepath)
	if err != nil {
		return exitRuntime, err
	}

	// 3. Stores: the artifact file always, the Badger registry when configured
	stores := []storage.IArtifactStore{storage.NewArtifactFile(config.ModelFilepath, log)}
	if config.BadgerFilepath != "" {
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return exitRuntime, fmt.Errorf("database opening failed: %w", err)
		}
		defer func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}()
		stores = append(stores, storage.NewModelRepository(db, log))
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Training
	report, err := services.NewTrainingService(log, hp, nil, stores...).Train(ctx, intents)
	if err != nil {
		return exitRuntime, err
	}

	logSummary(log, report)
	for name, saveErr := range report.SaveErrors {
		color.Yellow.Printf("Model could not be saved to %s: %v\n", name, saveErr)
	}
	for _, name := range report.Saved {
		color.Green.Printf("Training complete. Model saved to %s\n", name)
	}
	return exitOK, nil
}

func logSummary(log *slog.Logger, report services.TrainingReport) {
	attrs := []any{
		"model", report.Artifact.ID,
		"epochs", report.Result.Epochs,
		"batches", report.Result.Batches,
		"loss", fmt.Sprintf("%.4f", report.Result.Loss),
		"patterns", report.Patterns,
		"words", len(report.Artifact.Words),
		"tags", len(report.Artifact.Tags),
		"duration", report.Duration,
	}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mem, err := p.MemoryInfo(); err == nil {
			attrs = append(attrs, "rss_mb", mem.RSS/1024/1024)
		}
	}
	log.Info("Training summary", attrs...)
}
