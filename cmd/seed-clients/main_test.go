package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/japb1998/atelier/internal/database"
	"github.com/japb1998/atelier/internal/model"
)

func TestSeed(t *testing.T) {
	store := database.NewClientRepo(database.NewFileDocument(filepath.Join(t.TempDir(), "clients.json")))
	ctx := context.Background()

	if _, err := store.CreateClient(ctx, *model.NewClientItem(0, "Alice", "alice@mail.fr", "", "", "", "", "", "")); err != nil {
		t.Fatal(err)
	}

	created, skipped, err := seed(ctx, store, []seedClient{
		{Name: "Alice bis", Email: "ALICE@mail.fr"},
		{Name: "Bob", Email: "bob@mail.fr", Phone: "06 00 00 00 01"},
		{Name: "", Email: "nobody@mail.fr"},
		{Name: "Chloé", Email: "not-an-email"},
		{Name: "Bob again", Email: "bob@mail.fr"},
		{Name: "Denise"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if created != 2 || skipped != 4 {
		t.Fatalf("expected 2 created and 4 skipped, got %d and %d", created, skipped)
	}

	clients, err := store.GetClients(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(clients) != 3 || clients[1].Phone != "0600000001" || clients[2].Id != 3 {
		t.Fatalf("unexpected clients %+v", clients)
	}
}

func TestSeedCancelled(t *testing.T) {
	store := database.NewClientRepo(database.NewFileDocument(filepath.Join(t.TempDir(), "clients.json")))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := seed(ctx, store, []seedClient{{Name: "Alice"}}); err == nil {
		t.Fatal("expected cancellation error")
	}
}
