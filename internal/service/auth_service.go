package service

import (
	"context"
	"time"

	"notekeep-be/internal/dto"
	"notekeep-be/internal/entity"
	"notekeep-be/internal/pkg/apperror"
	"notekeep-be/internal/repository/specification"
	"notekeep-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	jwtSecret  string
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, jwtSecret string) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		jwtSecret:  jwtSecret,
	}
}

func (c *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflict("Username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return nil, err
	}

	return c.issueToken(&user)
}

func (c *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewUnauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.NewUnauthorized("Invalid credentials")
	}

	return c.issueToken(user)
}

func (c *authService) issueToken(user *entity.User) (*dto.AuthResponse, error) {
	claims := jwt.MapClaims{
		"user_id":  user.Id,
		"username": user.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(c.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		UserId:   user.Id,
		Username: user.Username,
		Token:    signedToken,
	}, nil
}
