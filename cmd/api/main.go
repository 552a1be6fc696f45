package main

import (
	"log"
	"net/http"

	"sara/internal/api"
	"sara/internal/config"
	"sara/internal/corpus"
	"sara/internal/providers"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	corp := corpus.Load(cfg.DataDir)

	pm, err := providers.NewManager(cfg)
	if err != nil {
		log.Fatal(err)
	}

	h := api.NewServer(cfg, corp, pm.First())
	log.Printf("sara api listening on %s researchers=%d llm_providers=%q", cfg.APIAddr, len(corp), cfg.LLMProviders)
	if err := http.ListenAndServe(cfg.APIAddr, h.Routes()); err != nil {
		log.Fatal(err)
	}
}
