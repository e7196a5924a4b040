package main

import (
	"github.com/joho/godotenv"
	"github.com/pedalmarket/backend/internal/config"
	"github.com/pedalmarket/backend/internal/db"
	"github.com/pedalmarket/backend/internal/model"
	"github.com/pedalmarket/backend/internal/server"
	"github.com/rs/zerolog/log"
)

// Set via -ldflags at build time.
var (
	gitSHA    = "dev"
	buildTime = "unknown"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	srv := server.New(nil, cfg, gitSHA, buildTime)
	addr := ":" + cfg.Port

	errCh := make(chan error, 1)

	go func() {
		log.Info().Str("addr", addr).Msg("starting server")
		errCh <- srv.Start(addr)
	}()

	// The server accepts traffic before the database is up; repositories
	// report ErrDBNotReady until SetDB runs.
	go func() {
		conn, err := db.Connect(cfg)
		if err != nil {
			log.Error().Err(err).Msg("db connect failed")
			return
		}
		if err := conn.AutoMigrate(&model.User{}, &model.Bike{}, &model.Message{}); err != nil {
			log.Error().Err(err).Msg("auto migrate failed")
		}
		srv.SetDB(conn)
		log.Info().Msg("database ready")
	}()

	if err := <-errCh; err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
