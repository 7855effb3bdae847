package main

import (
	"log"

	"github.com/clubmate/backend/internal/app"
)

func main() {
	application, err := app.NewApp()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}
