// Package repository maps domain entities to and from the path-addressed
// store. Stored documents never contain the entity key; it lives in the
// path and is reattached on read.
package repository

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/firepost/backend/internal/model"
	"github.com/firepost/backend/internal/store"
)

const postsPrefix = "posts"

// postRecord is the stored shape of a post (no ID field).
type postRecord struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
}

type PostRepository struct {
	store store.Store
}

func NewPostRepository(st store.Store) *PostRepository {
	return &PostRepository{store: st}
}

// List returns every stored post, sorted by key for a stable order. An
// absent collection yields an empty slice.
func (r *PostRepository) List(ctx context.Context) ([]model.Post, error) {
	entries, err := r.store.List(ctx, postsPrefix)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	posts := make([]model.Post, 0, len(entries))
	for _, key := range keys {
		var rec postRecord
		if err := json.Unmarshal(entries[key], &rec); err != nil {
			return nil, err
		}
		posts = append(posts, toPost(key, rec))
	}
	return posts, nil
}

// Get returns the post stored under id, or store.ErrNotFound.
func (r *PostRepository) Get(ctx context.Context, id string) (*model.Post, error) {
	raw, err := r.store.Get(ctx, postsPrefix+"/"+id)
	if err != nil {
		return nil, err
	}
	var rec postRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	post := toPost(id, rec)
	return &post, nil
}

// Create persists a new post under a store-generated key.
func (r *PostRepository) Create(ctx context.Context, title, content string, createdAt int64) (*model.Post, error) {
	key := r.store.GenerateKey()
	rec := postRecord{Title: title, Content: content, CreatedAt: createdAt}
	if err := r.store.Set(ctx, postsPrefix+"/"+key, rec); err != nil {
		return nil, err
	}
	post := toPost(key, rec)
	return &post, nil
}

// Update merges only title, content and updatedAt into the stored post.
func (r *PostRepository) Update(ctx context.Context, id, title, content string, updatedAt int64) error {
	return r.store.Update(ctx, postsPrefix+"/"+id, map[string]any{
		"title":     title,
		"content":   content,
		"updatedAt": updatedAt,
	})
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	return r.store.Remove(ctx, postsPrefix+"/"+id)
}

func toPost(id string, rec postRecord) model.Post {
	return model.Post{
		ID:        id,
		Title:     rec.Title,
		Content:   rec.Content,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
