package repository

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/firepost/backend/internal/model"
	"github.com/firepost/backend/internal/store"
)

const usersPrefix = "users"

// userRecord is the stored shape of a user. The password field holds the
// bcrypt hash.
type userRecord struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	CreatedAt int64  `json:"createdAt"`
}

type UserRepository struct {
	store store.Store
}

func NewUserRepository(st store.Store) *UserRepository {
	return &UserRepository{store: st}
}

// SanitizeEmail derives the storage key for an email. Path segments
// forbid literal dots, so they are replaced with underscores.
func SanitizeEmail(email string) string {
	return strings.ReplaceAll(email, ".", "_")
}

// Get looks a user up by email. The Email field is reconstructed from the
// argument rather than trusted from storage. Returns store.ErrNotFound
// when no account exists.
func (r *UserRepository) Get(ctx context.Context, email string) (*model.User, error) {
	raw, err := r.store.Get(ctx, usersPrefix+"/"+SanitizeEmail(email))
	if err != nil {
		return nil, err
	}
	var rec userRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &model.User{
		Email:     email,
		Password:  rec.Password,
		CreatedAt: rec.CreatedAt,
	}, nil
}

// Create persists a new account keyed by the sanitized email.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string, createdAt int64) error {
	rec := userRecord{Email: email, Password: passwordHash, CreatedAt: createdAt}
	return r.store.Set(ctx, usersPrefix+"/"+SanitizeEmail(email), rec)
}
