package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Saravanan-32/customer-service-chatbot/infrastructure/storage"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
}

func main() {
	limit := flag.Int("limit", 20, "Number of models to list, newest first")
	deleteID := flag.String("delete", "", "ID of a model to remove before listing")
	flag.Parse()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal("Config error: ", err)
	}

	// Deleting needs a writable database and the lock
	opts := badger.DefaultOptions(cfg.BadgerFilepath).WithLogger(nil)
	if *deleteID == "" {
		opts = opts.WithReadOnly(true).WithBypassLockGuard(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := storage.NewModelRepository(db, slog.Default())
	if *deleteID != "" {
		id, err := uuid.Parse(*deleteID)
		if err != nil {
			log.Fatal("Invalid model ID: ", err)
		}
		if err := repository.Delete(id); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Model %s deleted\n", id)
	}

	models, err := repository.List(*limit)
	if err != nil {
		log.Fatal(err)
	}
	if len(models) == 0 {
		fmt.Println("No model registered")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Created", "Input", "Hidden", "Output", "Tags", "Checksum"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, m := range models {
		table.Append([]string{
			m.ID.String(),
			m.CreatedAt.Format("2006-01-02 15:04:05"),
			strconv.Itoa(m.InputSize),
			strconv.Itoa(m.HiddenSize),
			strconv.Itoa(m.OutputSize),
			strings.Join(m.Tags, ","),
			m.Checksum,
		})
	}
	table.Render()
}
