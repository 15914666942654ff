package controller

import (
	"log/slog"
	"os"
)

// handlers
var (
	clientHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "clientController")})
	mailHandler   = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("name", "mailController")})
)

// loggers
var (
	clientLogger = slog.New(clientHandler)
	mailLogger   = slog.New(mailHandler)
)
