// Package memory implements the post repository as a process-lifetime
// in-memory slice. State is lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"inkwell/internal/core/posts"
	"inkwell/internal/db/seed"
)

var _ posts.Repository = (*PostRepository)(nil)

// PostRepository holds the collection in memory, seeded at construction.
// Load and Save copy the slice so callers never share the backing array;
// the store-level read-modify-write race is unaffected by this.
type PostRepository struct {
	mu         sync.RWMutex
	collection []posts.Post
}

// NewPostRepository creates an in-memory repository seeded with the
// starter dataset.
func NewPostRepository() *PostRepository {
	return &PostRepository{
		collection: seed.Posts(time.Now()),
	}
}

func (r *PostRepository) Load(ctx context.Context) ([]posts.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]posts.Post, len(r.collection))
	copy(out, r.collection)
	return out, nil
}

func (r *PostRepository) Save(ctx context.Context, collection []posts.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.collection = make([]posts.Post, len(collection))
	copy(r.collection, collection)
	return nil
}
