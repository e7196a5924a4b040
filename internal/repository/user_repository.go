package repository

import (
	"context"
	"errors"

	"github.com/pedalmarket/backend/internal/model"
	"gorm.io/gorm"
)

var ErrDBNotReady = errors.New("database not initialized")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ListAll(ctx context.Context) ([]model.User, error)
	AppendWishlist(ctx context.Context, user *model.User, bike *model.Bike) error
	RemoveWishlist(ctx context.Context, user *model.User, bike *model.Bike) error
	Delete(ctx context.Context, id uint64) error
	SetDB(db *gorm.DB)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) SetDB(db *gorm.DB) {
	r.db = db
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Wishlist").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("Wishlist").
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListAll(ctx context.Context) ([]model.User, error) {
	if r.db == nil {
		return nil, ErrDBNotReady
	}
	var users []model.User
	if err := r.db.WithContext(ctx).Preload("Wishlist").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) AppendWishlist(ctx context.Context, user *model.User, bike *model.Bike) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Model(user).Association("Wishlist").Append(bike)
}

func (r *userRepository) RemoveWishlist(ctx context.Context, user *model.User, bike *model.Bike) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	return r.db.WithContext(ctx).Model(user).Association("Wishlist").Delete(bike)
}

func (r *userRepository) Delete(ctx context.Context, id uint64) error {
	if r.db == nil {
		return ErrDBNotReady
	}
	user := model.User{ID: id}
	if err := r.db.WithContext(ctx).Model(&user).Association("Wishlist").Clear(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&user).Error
}
