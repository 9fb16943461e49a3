package posts

import "context"

// Service defines the business logic interface for the post store.
// It is the single authority for reading and mutating the post collection.
type Service interface {
	// List returns every post ordered by createdAt descending.
	// There is no pagination at this layer; callers slice the result.
	List(ctx context.Context) ([]Post, error)

	// GetBySlug returns the post with an exact slug match, or
	// ErrPostNotFound when no post matches.
	GetBySlug(ctx context.Context, slug string) (*Post, error)

	// ListTags returns the union of all tags across all posts in
	// first-seen order.
	ListTags(ctx context.Context) ([]string, error)

	// Create assigns id, slug, and createdAt, prepends the post to the
	// collection, persists, and signals invalidation.
	Create(ctx context.Context, req CreatePostRequest) (*Post, error)

	// Update merges the provided fields over an existing post.
	// Returns ErrPostNotFound without side effects when id is unknown.
	Update(ctx context.Context, id string, req UpdatePostRequest) (*Post, error)

	// Delete removes a post by id and returns the removed record.
	// Returns ErrPostNotFound when id is unknown.
	Delete(ctx context.Context, id string) (*Post, error)
}

// Repository is the persistence backend. The collection is read and
// replaced wholesale; there are no partial writes or transactions.
type Repository interface {
	// Load returns the current collection, materializing the seed
	// dataset on first use if no prior state exists.
	Load(ctx context.Context) ([]Post, error)

	// Save fully overwrites the stored collection.
	Save(ctx context.Context, collection []Post) error
}

// Invalidator is notified after every mutation with the page routes whose
// cached renderings must be recomputed. The serving layer decides what
// that means.
type Invalidator interface {
	Invalidate(paths ...string)
}

// NoopInvalidator discards invalidation signals. Useful in tests and
// minimal wirings.
type NoopInvalidator struct{}

func (NoopInvalidator) Invalidate(paths ...string) {}

// WriteLock is the injectable locking strategy around the store's
// read-modify-write cycle. The default deployment uses NoopWriteLock,
// which preserves the documented lost-update race between concurrent
// writers; wire a *sync.Mutex to serialize writes instead.
type WriteLock interface {
	Lock()
	Unlock()
}

// NoopWriteLock leaves concurrent read-modify-write cycles unserialized.
type NoopWriteLock struct{}

func (NoopWriteLock) Lock()   {}
func (NoopWriteLock) Unlock() {}
