package database

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/japb1998/atelier/internal/model"
)

var (
	fileHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("repository", "file")})
	fileLogger  = slog.New(fileHandler)
)

// FileDocument keeps the client list as an indented JSON array in a single
// file. When a stable id counter is set the array is wrapped in an object
// carrying it.
type FileDocument struct {
	path string
}

func NewFileDocument(path string) *FileDocument {
	return &FileDocument{path: path}
}

func (f *FileDocument) Path() string {
	return f.path
}

func (f *FileDocument) Load(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{Clients: make([]model.ClientItem, 0)}
	b, err := os.ReadFile(f.path)

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fileLogger.Debug("no client file yet", slog.String("path", f.path))
			return snap, nil
		}
		return Snapshot{}, fmt.Errorf("%w: reading %s: %w", ErrPersistence, f.path, err)
	}

	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return snap, nil
	}

	if b[0] == '{' {
		err = json.Unmarshal(b, &snap)
	} else {
		err = json.Unmarshal(b, &snap.Clients)
	}

	if err != nil {
		fileLogger.Error("corrupt client file", slog.String("path", f.path), slog.String("error", err.Error()))
		return Snapshot{}, fmt.Errorf("%w: decoding %s: %w", ErrPersistence, f.path, err)
	}

	if snap.Clients == nil {
		snap.Clients = make([]model.ClientItem, 0)
	}
	return snap, nil
}

// Save overwrites the file with the full list.
func (f *FileDocument) Save(ctx context.Context, snap Snapshot) error {
	if snap.Clients == nil {
		snap.Clients = make([]model.ClientItem, 0)
	}

	var (
		b   []byte
		err error
	)
	if snap.NextClientId > 0 {
		b, err = json.MarshalIndent(snap, "", "  ")
	} else {
		b, err = json.MarshalIndent(snap.Clients, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("%w: encoding clients: %w", ErrPersistence, err)
	}

	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: creating %s: %w", ErrPersistence, dir, err)
		}
	}

	if err := os.WriteFile(f.path, b, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrPersistence, f.path, err)
	}

	return nil
}
