package service

import (
	"context"
	"errors"
	"time"

	"prism-spend-be/internal/config"
	"prism-spend-be/internal/dto"
	"prism-spend-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        *config.Config
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, cfg *config.Config) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		cfg:        cfg,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"exp":     time.Now().Add(time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour).Unix(),
	}
	if user.CompanyId != nil {
		claims["company_id"] = user.CompanyId.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token:     signed,
		UserId:    user.Id,
		CompanyId: user.CompanyId,
		Role:      string(user.Role),
		FullName:  user.FullName,
	}, nil
}
