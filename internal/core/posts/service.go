package posts

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// createdAtLayout is the display date format stamped on new posts.
const createdAtLayout = "January 2, 2006"

type postService struct {
	repo        Repository
	invalidator Invalidator
	writeLock   WriteLock
	now         func() time.Time
	newID       func() string
}

// NewPostService creates a new post store service.
// invalidator and writeLock can be nil; they default to the no-op
// implementations (no cache signaling, unserialized writes).
func NewPostService(repo Repository, invalidator Invalidator, writeLock WriteLock) Service {
	if invalidator == nil {
		invalidator = NoopInvalidator{}
	}
	if writeLock == nil {
		writeLock = NoopWriteLock{}
	}
	return &postService{
		repo:        repo,
		invalidator: invalidator,
		writeLock:   writeLock,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// List returns all posts ordered by createdAt descending. Ties and
// unparseable dates keep their original relative order.
func (s *postService) List(ctx context.Context) ([]Post, error) {
	collection, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	out := make([]Post, len(collection))
	for i, p := range collection {
		out[i] = clone(p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return parseCreatedAt(out[i].CreatedAt).After(parseCreatedAt(out[j].CreatedAt))
	})

	return out, nil
}

func (s *postService) GetBySlug(ctx context.Context, slug string) (*Post, error) {
	collection, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	for _, p := range collection {
		if p.Slug == slug {
			found := clone(p)
			return &found, nil
		}
	}

	return nil, ErrPostNotFound
}

// ListTags returns the union of all tags in first-seen order. No
// normalization: duplicates only collapse on exact string equality.
func (s *postService) ListTags(ctx context.Context) ([]string, error) {
	collection, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, p := range collection {
		for _, tag := range p.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}

	return tags, nil
}

// Create assigns a fresh id, derives the slug from the title, stamps
// createdAt, and prepends the post so the default ordering shows it first
// without a re-sort.
//
// The read-modify-write cycle here (and in Update/Delete) is not atomic
// across concurrent requests unless a real WriteLock is wired; the later
// writer wins.
func (s *postService) Create(ctx context.Context, req CreatePostRequest) (*Post, error) {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	collection, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	post := Post{
		ID:         s.newID(),
		Slug:       Slugify(req.Title),
		Title:      req.Title,
		Author:     req.Author,
		CreatedAt:  s.now().Format(createdAtLayout),
		Tags:       append([]string(nil), req.Tags...),
		CoverImage: req.CoverImage,
		Content:    req.Content,
	}

	collection = append([]Post{post}, collection...)
	if err := s.repo.Save(ctx, collection); err != nil {
		return nil, fmt.Errorf("failed to save posts: %w", err)
	}

	s.invalidator.Invalidate("/", "/admin")

	created := clone(post)
	return &created, nil
}

// Update merges the provided fields over the existing record. The slug is
// recomputed only when Title is part of the update; id and createdAt are
// never overwritten.
func (s *postService) Update(ctx context.Context, id string, req UpdatePostRequest) (*Post, error) {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	collection, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	idx := indexByID(collection, id)
	if idx < 0 {
		return nil, ErrPostNotFound
	}

	original := collection[idx]
	updated := clone(original)

	if req.Title != nil {
		updated.Title = *req.Title
		updated.Slug = Slugify(*req.Title)
	}
	if req.Author != nil {
		updated.Author = *req.Author
	}
	if req.Tags != nil {
		updated.Tags = append([]string(nil), req.Tags...)
	}
	if req.CoverImage != nil {
		updated.CoverImage = *req.CoverImage
	}
	if req.Content != nil {
		updated.Content = *req.Content
	}

	collection[idx] = updated
	if err := s.repo.Save(ctx, collection); err != nil {
		return nil, fmt.Errorf("failed to save posts: %w", err)
	}

	paths := []string{"/", "/admin", "/admin/posts", "/posts/" + original.Slug}
	if original.Slug != updated.Slug {
		paths = append(paths, "/posts/"+updated.Slug)
	}
	s.invalidator.Invalidate(paths...)

	result := clone(updated)
	return &result, nil
}

// Delete removes the post by id and returns the removed record.
func (s *postService) Delete(ctx context.Context, id string) (*Post, error) {
	s.writeLock.Lock()
	defer s.writeLock.Unlock()

	collection, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}

	idx := indexByID(collection, id)
	if idx < 0 {
		return nil, ErrPostNotFound
	}

	deleted := clone(collection[idx])
	collection = append(collection[:idx], collection[idx+1:]...)
	if err := s.repo.Save(ctx, collection); err != nil {
		return nil, fmt.Errorf("failed to save posts: %w", err)
	}

	s.invalidator.Invalidate("/", "/posts/"+deleted.Slug, "/admin")

	return &deleted, nil
}

func indexByID(collection []Post, id string) int {
	for i, p := range collection {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// parseCreatedAt parses the display date; unparseable values sort last.
func parseCreatedAt(value string) time.Time {
	t, err := time.Parse(createdAtLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
