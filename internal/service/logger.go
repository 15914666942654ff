package service

import (
	"os"

	"log/slog"
)

// Client Logger
var (
	clientHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "Client Service")})
	clientLogger  = slog.New(clientHandler)
)

// Mail Logger
var (
	mailHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "Mail Service")})
	mailLogger  = slog.New(mailHandler)
)
