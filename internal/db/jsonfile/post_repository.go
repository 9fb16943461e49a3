// Package jsonfile implements the post repository as a single JSON
// document on disk, read and rewritten wholesale.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"inkwell/internal/core/posts"
	"inkwell/internal/db/seed"
)

var _ posts.Repository = (*PostRepository)(nil)

// PostRepository stores the full post collection as a JSON array at a
// fixed path. Every Load re-reads and re-parses the file; nothing is
// cached between calls, so external edits to the file are picked up.
type PostRepository struct {
	path string
	now  func() time.Time
}

// NewPostRepository creates a file-backed post repository at path.
func NewPostRepository(path string) *PostRepository {
	return &PostRepository{
		path: path,
		now:  time.Now,
	}
}

// Load returns the stored collection. On first use, when the file does
// not exist yet, the seed dataset is written and returned.
func (r *PostRepository) Load(ctx context.Context) ([]posts.Post, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		seeded := seed.Posts(r.now())
		if err := r.Save(ctx, seeded); err != nil {
			return nil, fmt.Errorf("failed to seed post store: %w", err)
		}
		return seeded, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read post store: %w", err)
	}

	collection := make([]posts.Post, 0)
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("failed to parse post store: %w", err)
	}

	return collection, nil
}

// Save fully overwrites the stored document, creating the parent
// directory if absent.
func (r *PostRepository) Save(ctx context.Context, collection []posts.Post) error {
	if collection == nil {
		collection = []posts.Post{}
	}

	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode post store: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create post store directory: %w", err)
		}
	}

	if err := os.WriteFile(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write post store: %w", err)
	}

	return nil
}
