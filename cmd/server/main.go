package main

import (
	"log"

	"controle-financeiro-go/internal/config"
	"controle-financeiro-go/internal/gateway"
	httpserver "controle-financeiro-go/internal/http"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")

	cfg := config.Load()
	gw := gateway.New(cfg)

	r := httpserver.NewServer(cfg, gw)
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
