package service

import (
	"context"
	"errors"

	"github.com/pedalmarket/backend/internal/auth"
	"github.com/pedalmarket/backend/internal/model"
	"github.com/pedalmarket/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   auth.TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens auth.TokenService) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens}
}

// Login verifies the password against the stored bcrypt hash and issues a
// signed token. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.tokens.NewToken(*user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
