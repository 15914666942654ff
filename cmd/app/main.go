package main

import (
	"log"

	"github.com/japb1998/atelier/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %s", err)
	}
	initApp(cfg)
}
