package account

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"bookclub-backend/pkg/jwt"
)

// Service is the identity-provider surface: local auth plus the narrow
// get-account / set-claim operations the callable procedures consume.
type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*Account, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	SetAdminClaim(ctx context.Context, id string) error
}

type service struct {
	repo Repository
	jwt  *jwt.Manager
}

func NewService(repo Repository, jwtManager *jwt.Manager) Service {
	return &service{repo: repo, jwt: jwtManager}
}

func (s *service) Register(ctx context.Context, req *RegisterRequest) (*Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Create(ctx, req.Email, string(hash))
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	acct, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(acct.ID, acct.Email, acct.Admin)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &AuthResponse{
		Token:  token,
		UserID: acct.ID,
		Email:  acct.Email,
		Admin:  acct.Admin,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Account, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) SetAdminClaim(ctx context.Context, id string) error {
	return s.repo.SetAdminClaim(ctx, id)
}
