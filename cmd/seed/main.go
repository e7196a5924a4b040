package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pedalmarket/backend/internal/config"
	"github.com/pedalmarket/backend/internal/db"
	"github.com/pedalmarket/backend/internal/model"
	"github.com/pedalmarket/backend/internal/repository"
	"github.com/pedalmarket/backend/internal/service"
	"github.com/rs/zerolog/log"
)

type seedBike struct {
	Type        string
	Brand       string
	Size        string
	Description string
	Price       float64
	Place       string
}

var seedBikes = []seedBike{
	{"mountain", "Trek", "M", "Hardtail, well maintained", 520, "Trento"},
	{"road", "Bianchi", "L", "Full carbon frame, 2019", 890, "Verona"},
	{"electric", "Cube", "S", "New battery fitted last spring", 1450, "Bolzano"},
	{"road", "Giant", "M", "Commuter setup with rack", 300, "Padova"},
	{"mountain", "Giant", "L", "Front suspension needs service", 300, "Padova"},
}

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	conn, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := conn.AutoMigrate(&model.User{}, &model.Bike{}, &model.Message{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	var count int64
	if err := conn.Model(&model.Bike{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 && os.Getenv("FORCE_SEED") != "true" {
		log.Info().Msg("bikes already exist; skipping seed (set FORCE_SEED=true to override)")
		return nil
	}

	userRepo := repository.NewUserRepository(conn)
	bikeRepo := repository.NewBikeRepository(conn)
	userSvc := service.NewUserService(userRepo, bikeRepo)

	seller, err := userSvc.Register(ctx, "seller@example.com", "changeme123", "Demo Seller")
	if err != nil {
		return fmt.Errorf("seed seller: %w", err)
	}
	if _, err := userSvc.Register(ctx, "buyer@example.com", "changeme123", "Demo Buyer"); err != nil {
		return fmt.Errorf("seed buyer: %w", err)
	}

	for _, sb := range seedBikes {
		bike, err := model.NewBike(sb.Type, sb.Brand, sb.Size, sb.Description, sb.Price, sb.Place, seller.ID)
		if err != nil {
			return fmt.Errorf("seed bike %s: %w", sb.Brand, err)
		}
		if err := bikeRepo.Create(ctx, bike); err != nil {
			return fmt.Errorf("insert bike %s: %w", sb.Brand, err)
		}
	}

	log.Info().Int("bikes", len(seedBikes)).Msg("seed complete")
	return nil
}
