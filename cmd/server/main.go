package main

import (
	"log"

	"buildpro-backend/internal/config"
	"buildpro-backend/internal/database"
	"buildpro-backend/internal/server"

	"github.com/subosito/gotenv"
)

func main() {
	_ = gotenv.Load()

	cfg := config.Load()
	database.Init(cfg)

	app := server.New(cfg)

	log.Println("Material service listening on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
