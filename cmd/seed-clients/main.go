package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/japb1998/atelier/internal/config"
	"github.com/japb1998/atelier/internal/database"
	"github.com/japb1998/atelier/internal/dto"
	"github.com/japb1998/atelier/internal/mapper"
	"github.com/japb1998/atelier/internal/model"
)

var logHandler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
	Level: slog.LevelDebug,
}).WithAttrs([]slog.Attr{slog.String("app", "seed-clients")})
var logger = slog.New(logHandler)

// seedClient is one entry of the import file.
type seedClient struct {
	Name       string `json:"nom" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"telephone"`
	Address    string `json:"adresse"`
	Address2   string `json:"adresse2"`
	PostalCode string `json:"cp"`
	City       string `json:"ville"`
	Country    string `json:"pays"`
}

type clientStore interface {
	GetClients(ctx context.Context) ([]model.ClientItem, error)
	CreateClient(ctx context.Context, client model.ClientItem) (model.ClientItem, error)
}

func main() {
	var f string
	flag.StringVar(&f, "file", "", "[required] json file with the clients to import")
	flag.Parse()

	if f == "" {
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %s", err)
	}

	d, err := os.Open(f)
	if err != nil {
		log.Fatalf("failed to open file error='%s'", err.Error())
	}
	defer d.Close()

	var clients []seedClient
	if err := json.NewDecoder(d).Decode(&clients); err != nil {
		log.Fatalf("failed unmarshall error='%s'", err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	created, skipped, err := seed(ctx, database.NewClientRepoFromConfig(cfg), clients)
	if err != nil {
		log.Fatalf("import stopped after %d clients: %s", created, err)
	}
	logger.Info("import done", slog.Int("created", created), slog.Int("skipped", skipped))
}

// seed adds every valid client whose email is not already known. Invalid
// entries are logged and skipped.
func seed(ctx context.Context, store clientStore, clients []seedClient) (created, skipped int, err error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	existing, err := store.GetClients(ctx)
	if err != nil {
		return 0, 0, err
	}
	emails := make(map[string]bool, len(existing))
	for _, c := range existing {
		if c.Email != "" {
			emails[strings.ToLower(c.Email)] = true
		}
	}

	for i, c := range clients {
		if err := ctx.Err(); err != nil {
			return created, skipped, fmt.Errorf("cancelled: %w", err)
		}

		if err := validate.Struct(c); err != nil {
			for _, ve := range err.(validator.ValidationErrors) {
				logger.Warn("invalid client", slog.Int("index", i), slog.String("field", ve.Namespace()), slog.String("tag", ve.Tag()), slog.Any("value", ve.Value()))
			}
			skipped++
			continue
		}

		item := mapper.CreateClientToItem(dto.CreateClient(c))
		if item.Email != "" && emails[item.Email] {
			logger.Debug("client already exists", slog.String("email", item.Email))
			skipped++
			continue
		}

		saved, err := store.CreateClient(ctx, item)
		if err != nil {
			return created, skipped, fmt.Errorf("failed to create client error='%w'", err)
		}
		if saved.Email != "" {
			emails[saved.Email] = true
		}
		created++
		logger.Info("created client", slog.Int("id", saved.Id), slog.String("nom", saved.Name))
	}

	return created, skipped, nil
}
