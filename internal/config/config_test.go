package config

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	c, err := FromEnv(envOf(nil))
	if err != nil {
		t.Fatal(err)
	}

	if c.Port != "3000" || c.StoreBackend != BackendFile || c.DataFile != "data/clients.json" || c.DocumentKey != "atelier" {
		t.Fatalf("unexpected defaults %+v", c)
	}
	if c.StableIds || c.MailConfigured() || c.IsLocal() {
		t.Fatalf("unexpected flags %+v", c)
	}
}

func TestOverrides(t *testing.T) {
	c, err := FromEnv(envOf(map[string]string{
		"PORT":            "8080",
		"STAGE":           "local",
		"STORE_BACKEND":   "dynamo",
		"CLIENT_TABLE":    "atelier-clients",
		"STABLE_IDS":      "true",
		"MAILGUN_DOMAIN":  "mg.atelier.fr",
		"MAILGUN_API_KEY": "key",
	}))
	if err != nil {
		t.Fatal(err)
	}

	if c.Port != "8080" || !c.IsLocal() || !c.StableIds || !c.MailConfigured() || c.ClientTable != "atelier-clients" {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestValidation(t *testing.T) {
	cases := []map[string]string{
		{"PORT": "http"},
		{"STORE_BACKEND": "postgres"},
		{"STORE_BACKEND": "dynamo"},
		{"MAIL_FROM": "not-an-email"},
	}

	for _, env := range cases {
		_, err := FromEnv(envOf(env))
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			t.Errorf("%v: expected validation error, got %v", env, err)
		}
	}

	if _, err := FromEnv(envOf(map[string]string{"STABLE_IDS": "maybe"})); err == nil {
		t.Error("expected error for invalid STABLE_IDS")
	}
}
