package main

import (
	"log"

	"retrofit-tracker/internal/config"
	"retrofit-tracker/internal/database"
	"retrofit-tracker/internal/server"
)

func main() {
	cfg := config.Load()

	database.Init(cfg.DBDSN)

	r := server.NewRouter(cfg)

	log.Printf("starting server on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
