package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	BackendFile   = "file"
	BackendDynamo = "dynamo"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	Port            string `validate:"required,numeric"`
	Stage           string
	StoreBackend    string `validate:"oneof=file dynamo"`
	DataFile        string `validate:"required_if=StoreBackend file"`
	ClientTable     string `validate:"required_if=StoreBackend dynamo"`
	DocumentKey     string `validate:"required"`
	StableIds       bool
	MailgunSecretId string
	MailgunDomain   string
	MailgunApiKey   string
	MailFrom        string `validate:"required,email"`
	OtelEndpoint    string
}

// Load reads the configuration from the environment. With STAGE=local the
// .env file is loaded first when it exists.
func Load() (Config, error) {
	if os.Getenv("STAGE") == "local" {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("error loading env vars: %w", err)
		}
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	c := Config{
		Port:            get("PORT", "3000"),
		Stage:           getenv("STAGE"),
		StoreBackend:    get("STORE_BACKEND", BackendFile),
		DataFile:        get("DATA_FILE", "data/clients.json"),
		ClientTable:     getenv("CLIENT_TABLE"),
		DocumentKey:     get("DOCUMENT_KEY", "atelier"),
		MailgunSecretId: getenv("MAIL_GUN_SECRET_ID"),
		MailgunDomain:   getenv("MAILGUN_DOMAIN"),
		MailgunApiKey:   getenv("MAILGUN_API_KEY"),
		MailFrom:        get("MAIL_FROM", "no-reply@atelier-reparation.fr"),
		OtelEndpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if v := getenv("STABLE_IDS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid STABLE_IDS %q: %w", v, err)
		}
		c.StableIds = b
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	return validate.Struct(c)
}

func (c Config) IsLocal() bool {
	return c.Stage == "local"
}

// MailConfigured reports whether invoice emails can be sent.
func (c Config) MailConfigured() bool {
	return c.MailgunSecretId != "" || (c.MailgunDomain != "" && c.MailgunApiKey != "")
}
