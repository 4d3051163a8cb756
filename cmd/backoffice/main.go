package main

import (
	"log"

	"github.com/MrSnakeDoc/backoffice/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ backoffice failed to start: %v", err)
	}
}
