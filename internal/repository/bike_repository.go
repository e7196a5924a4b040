package repository

import (
	"context"

	"github.com/pedalmarket/backend/internal/model"
	"gorm.io/gorm"
)

type BikeRepository interface {
	Create(ctx context.Context, bike *model.Bike) error
	FindByID(ctx context.Context, id uint64) (*model.Bike, error)
	ListAll(ctx context.Context) ([]model.Bike, error)
	ListByOwner(ctx context.Context, userID uint64) ([]model.Bike, error)
	Save(ctx context.Context, bike *model.Bike) error
	Delete(ctx context.Context, id uint64) error
	SetDB(db *gorm.DB)
}

type bikeRepository struct {
	db *gorm.DB
}

func NewBikeRepository(db *gorm.DB) BikeRepository {
	return &bikeRepository{db: db}
}

func (r *bikeRepository) SetDB(db *gorm.DB) {
	r.db = db
}

func (r *bikeRepository) Create(ctx context.Context, bike *model.Bike) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(bike).Error
}

func (r *bikeRepository) FindByID(ctx context.Context, id uint64) (*model.Bike, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var bike model.Bike
	if err := r.db.WithContext(ctx).First(&bike, id).Error; err != nil {
		return nil, err
	}
	return &bike, nil
}

func (r *bikeRepository) ListAll(ctx context.Context) ([]model.Bike, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var bikes []model.Bike
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&bikes).Error; err != nil {
		return nil, err
	}
	return bikes, nil
}

func (r *bikeRepository) ListByOwner(ctx context.Context, userID uint64) ([]model.Bike, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var bikes []model.Bike
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&bikes).Error; err != nil {
		return nil, err
	}
	return bikes, nil
}

func (r *bikeRepository) Save(ctx context.Context, bike *model.Bike) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Save(bike).Error
}

func (r *bikeRepository) Delete(ctx context.Context, id uint64) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Delete(&model.Bike{}, id).Error
}
