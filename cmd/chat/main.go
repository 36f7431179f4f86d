package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/Saravanan-32/customer-service-chatbot/corpus"
	"github.com/Saravanan-32/customer-service-chatbot/domain"
	"github.com/Saravanan-32/customer-service-chatbot/inference"
	"github.com/Saravanan-32/customer-service-chatbot/infrastructure/storage"
	"github.com/Saravanan-32/customer-service-chatbot/services"
	"github.com/chzyer/readline"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chat terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	artifact, err := loadArtifact(config, log)
	if err != nil {
		return exitRuntime, err
	}
	log.Info("Model loaded", "model", artifact.ID, "created_at", artifact.CreatedAt, "tags", len(artifact.Tags))
	classifier, err := inference.New(artifact)
	if err != nil {
		return exitRuntime, err
	}
	intents, err := corpus.NewLoader(log).Load(config.IntentsFilepath)
	if err != nil {
		return exitRuntime, err
	}
	chat := services.NewChatService(log, classifier, intents, config.ConfidenceThreshold,
		rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	rl, err := readline.New("You: ")
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = rl.Close() }()

	color.Cyan.Println("Let's chat! (type 'quit' to exit)")
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return exitOK, nil
		}
		if err != nil {
			return exitRuntime, err
		}
		sentence := strings.TrimSpace(line)
		if sentence == "quit" {
			return exitOK, nil
		}
		if sentence == "" {
			continue
		}
		answer, _ := chat.Reply(sentence)
		fmt.Printf("%s: %s\n", color.Green.Render(config.BotName), answer)
	}
}

// loadArtifact reads the latest model of the Badger registry when one is configured, the artifact file otherwise.
func loadArtifact(config Config, log *slog.Logger) (domain.Artifact, error) {
	if config.BadgerFilepath == "" {
		return storage.NewArtifactFile(config.ModelFilepath, log).Load()
	}
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return domain.Artifact{}, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() { _ = db.Close() }()
	return storage.NewModelRepository(db, log).Latest()
}
