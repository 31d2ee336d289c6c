package config

import (
	"log"

	env "github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	DBDSN   string `env:"DB_DSN" envDefault:"internboat.db"` // sqlite file in project root
	Store   string `env:"STORE" envDefault:"sqlite"`         // sqlite | memory
	LogFile string `env:"LOG_FILE" envDefault:""`
}

func Load() Config {
	// .env is optional; real env vars win over it.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("[config] parse: %v", err)
	}
	if cfg.Store != StoreSQLite && cfg.Store != StoreMemory {
		log.Printf("[config] unknown STORE=%q, falling back to sqlite", cfg.Store)
		cfg.Store = StoreSQLite
	}

	log.Printf("[config] PORT=%s STORE=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.Store, cfg.DBDSN, cfg.LogFile)
	return cfg
}
