package service

import (
	"context"
	"errors"
	"time"

	"github.com/firepost/backend/internal/apperr"
	"github.com/firepost/backend/internal/auth"
	"github.com/firepost/backend/internal/model"
	"github.com/firepost/backend/internal/repository"
	"github.com/firepost/backend/internal/store"
)

// loginFailedMessage is deliberately identical for an unknown email and a
// wrong password, so responses leak nothing about which half was wrong.
const loginFailedMessage = "Invalid email or password"

type UserService struct {
	repo   *repository.UserRepository
	tokens *auth.TokenService
}

func NewUserService(repo *repository.UserRepository, tokens *auth.TokenService) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Signup creates an account and returns it with a fresh bearer token.
// Fails with Conflict when the email is taken. The existence check and
// write are not atomic; concurrent signups for the same email race with
// last-write-wins.
func (s *UserService) Signup(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	existing, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("Email already in use")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		// the schema caps length in characters; multibyte input can
		// still blow bcrypt's byte limit
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, apperr.Validation("Password cannot exceed 72 bytes")
		}
		return nil, err
	}

	createdAt := time.Now().UnixMilli()
	if err := s.repo.Create(ctx, email, hash, createdAt); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{
		ID:        email,
		Email:     email,
		Token:     token,
		CreatedAt: createdAt,
	}, nil
}

// Login verifies the credentials and returns the account with a fresh
// token. Fails with Unauthorized on unknown email or wrong password.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Unauthorized(loginFailedMessage)
	}

	if !auth.CheckPassword(password, user.Password) {
		return nil, apperr.Unauthorized(loginFailedMessage)
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{
		ID:        user.Email,
		Email:     user.Email,
		Token:     token,
		CreatedAt: user.CreatedAt,
	}, nil
}

// GetByEmail returns nil (not an error) when no account exists.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.Get(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// VerifyToken reports the email bound to a valid token, or ok=false.
func (s *UserService) VerifyToken(token string) (string, bool) {
	return s.tokens.Verify(token)
}
