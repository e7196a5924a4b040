package service

import (
	"context"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pedalmarket/backend/internal/model"
	"github.com/pedalmarket/backend/internal/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Bike{}, &model.Message{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, repo repository.UserRepository, email, name string) *model.User {
	t.Helper()
	user := &model.User{Email: email, Password: "x", Name: name}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func seedBike(t *testing.T, repo repository.BikeRepository, brand, size string, price float64, ownerID uint64) *model.Bike {
	t.Helper()
	bike, err := model.NewBike("road", brand, size, "", price, "Padova", ownerID)
	if err != nil {
		t.Fatalf("build bike: %v", err)
	}
	if err := repo.Create(context.Background(), bike); err != nil {
		t.Fatalf("seed bike %s: %v", brand, err)
	}
	return bike
}
