package service

import (
	"context"
	"errors"

	"github.com/pedalmarket/backend/internal/model"
	"github.com/pedalmarket/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	Register(ctx context.Context, email, password, name string) (*model.User, error)
	Get(ctx context.Context, id uint64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	AddToWishlist(ctx context.Context, userID, bikeID uint64) error
	RemoveFromWishlist(ctx context.Context, userID, bikeID uint64) error
	Remove(ctx context.Context, id uint64) error
}

type userService struct {
	userRepo repository.UserRepository
	bikeRepo repository.BikeRepository
}

func NewUserService(userRepo repository.UserRepository, bikeRepo repository.BikeRepository) UserService {
	return &userService{userRepo: userRepo, bikeRepo: bikeRepo}
}

// Register stores a new user with the password bcrypt-hashed. The plaintext
// never reaches the repository.
func (s *userService) Register(ctx context.Context, email, password, name string) (*model.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{Email: email, Password: string(hash), Name: name}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, id uint64) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	fillImagePaths(user.Wishlist)
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	fillImagePaths(user.Wishlist)
	return user, nil
}

// AddToWishlist is idempotent: a bike already on the list is left alone and
// nothing is written.
func (s *userService) AddToWishlist(ctx context.Context, userID, bikeID uint64) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	for _, b := range user.Wishlist {
		if b.ID == bikeID {
			return nil
		}
	}
	bike, err := s.bikeRepo.FindByID(ctx, bikeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.userRepo.AppendWishlist(ctx, user, bike)
}

// RemoveFromWishlist treats a bike missing from the list as a no-op, while an
// unknown user is an error. The asymmetry is intentional.
func (s *userService) RemoveFromWishlist(ctx context.Context, userID, bikeID uint64) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	for i := range user.Wishlist {
		if user.Wishlist[i].ID == bikeID {
			return s.userRepo.RemoveWishlist(ctx, user, &user.Wishlist[i])
		}
	}
	return nil
}

func (s *userService) Remove(ctx context.Context, id uint64) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.userRepo.Delete(ctx, id)
}
