package main

import (
	"log"
	"net/http"

	"playroom/internal/config"
	"playroom/internal/db"
	"playroom/internal/server"

	"gorm.io/gorm"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	var conn *gorm.DB
	if cfg.DatabaseURL != "" {
		opened, err := db.Open(cfg.DatabaseURL, db.PoolConfig{
			MaxOpenConns: cfg.DBMaxOpenConns,
			MaxIdleConns: cfg.DBMaxIdleConns,
		})
		if err != nil {
			log.Printf("database connection failed, journal disabled: %v", err)
		} else if err := db.Migrate(opened); err != nil {
			log.Printf("database migration failed, journal disabled: %v", err)
		} else {
			conn = opened
		}
	}

	srv := server.New(conn, cfg)
	addr := cfg.Addr()
	log.Printf("playroom server listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
