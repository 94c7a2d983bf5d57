package service

import (
	"context"
	"errors"
	"time"

	"github.com/firepost/backend/internal/apperr"
	"github.com/firepost/backend/internal/model"
	"github.com/firepost/backend/internal/repository"
	"github.com/firepost/backend/internal/store"
)

type PostService struct {
	repo *repository.PostRepository
}

func NewPostService(repo *repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// ListAll returns every post; an absent collection is an empty slice, not
// an error. Order follows the store's key order.
func (s *PostService) ListAll(ctx context.Context) ([]model.Post, error) {
	return s.repo.List(ctx)
}

// GetByID returns nil (not an error) when no post exists under id.
func (s *PostService) GetByID(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return post, nil
}

// Create validates the input and persists a new post under a
// store-generated key. The emptiness check re-guards what the HTTP schema
// already enforced.
func (s *PostService) Create(ctx context.Context, input model.PostInput) (*model.Post, error) {
	if input.Title == "" || input.Content == "" {
		return nil, apperr.Validation("Title and content are required")
	}
	return s.repo.Create(ctx, input.Title, input.Content, time.Now().UnixMilli())
}

// Update replaces title and content and refreshes updatedAt. Only those
// three fields are written; createdAt is left untouched. The full merged
// post is returned.
func (s *PostService) Update(ctx context.Context, id string, input model.PostInput) (*model.Post, error) {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperr.NotFound("Post")
	}

	if input.Title == "" || input.Content == "" {
		return nil, apperr.Validation("Title and content are required")
	}

	updatedAt := time.Now().UnixMilli()
	if err := s.repo.Update(ctx, id, input.Title, input.Content, updatedAt); err != nil {
		// the post can vanish between the existence check and the write
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotFound("Post")
		}
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content
	post.UpdatedAt = updatedAt
	return post, nil
}

// Delete removes the post, failing with NotFound when it does not exist.
func (s *PostService) Delete(ctx context.Context, id string) error {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return apperr.NotFound("Post")
	}
	return s.repo.Delete(ctx, id)
}
