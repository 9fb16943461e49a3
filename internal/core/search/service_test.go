package search

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/core/posts"
)

type stubRepo struct {
	collection []posts.Post
}

func (r *stubRepo) Load(ctx context.Context) ([]posts.Post, error) {
	out := make([]posts.Post, len(r.collection))
	copy(out, r.collection)
	return out, nil
}

func (r *stubRepo) Save(ctx context.Context, collection []posts.Post) error {
	r.collection = collection
	return nil
}

// stubChecker judges relevance by substring match against the title,
// and records how many checks ran.
type stubChecker struct {
	mu    sync.Mutex
	calls int
	judge func(req RelevanceRequest) (*RelevanceResult, error)
}

func (c *stubChecker) CheckRelevance(ctx context.Context, req RelevanceRequest) (*RelevanceResult, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.judge(req)
}

func testPosts() []posts.Post {
	return []posts.Post{
		{ID: "1", Slug: "go-tips", Title: "Go Tips", CreatedAt: "March 3, 2025", Tags: []string{"Tech"}},
		{ID: "2", Slug: "alps", Title: "The Alps", CreatedAt: "March 2, 2025", Tags: []string{"Travel"}},
		{ID: "3", Slug: "go-profiling", Title: "Go Profiling", CreatedAt: "March 1, 2025", Tags: []string{"Tech"}},
	}
}

func newServices(checker RelevanceChecker) Service {
	postService := posts.NewPostService(&stubRepo{collection: testPosts()}, nil, nil)
	return NewSearchService(postService, checker)
}

func TestSearch_FiltersRelevantPreservingOrder(t *testing.T) {
	checker := &stubChecker{judge: func(req RelevanceRequest) (*RelevanceResult, error) {
		return &RelevanceResult{
			IsRelevant: strings.Contains(req.PostTitle, "Go"),
			Reason:     "title match",
		}, nil
	}}

	results, err := newServices(checker).Search(context.Background(), "golang")
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "go-tips", results[0].Slug)
	assert.Equal(t, "go-profiling", results[1].Slug)
	assert.Equal(t, 3, checker.calls, "expected one relevance check per post")
}

func TestSearch_AllIrrelevantIsEmptyNotError(t *testing.T) {
	checker := &stubChecker{judge: func(req RelevanceRequest) (*RelevanceResult, error) {
		return &RelevanceResult{IsRelevant: false}, nil
	}}

	results, err := newServices(checker).Search(context.Background(), "quantum basket weaving")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results)
}

func TestSearch_SingleFailureIsAggregateError(t *testing.T) {
	delegateErr := errors.New("model overloaded")
	checker := &stubChecker{judge: func(req RelevanceRequest) (*RelevanceResult, error) {
		if req.PostTitle == "The Alps" {
			return nil, delegateErr
		}
		return &RelevanceResult{IsRelevant: true}, nil
	}}

	results, err := newServices(checker).Search(context.Background(), "anything")
	require.Error(t, err)
	assert.ErrorIs(t, err, delegateErr)
	assert.Contains(t, err.Error(), "search failed")
	assert.Nil(t, results)
}

func TestSearch_PassesTermTitleAndTags(t *testing.T) {
	var mu sync.Mutex
	seen := make([]RelevanceRequest, 0)
	checker := &stubChecker{judge: func(req RelevanceRequest) (*RelevanceResult, error) {
		mu.Lock()
		seen = append(seen, req)
		mu.Unlock()
		return &RelevanceResult{IsRelevant: false}, nil
	}}

	_, err := newServices(checker).Search(context.Background(), "hiking")
	require.NoError(t, err)

	require.Len(t, seen, 3)
	for _, req := range seen {
		assert.Equal(t, "hiking", req.SearchTerm)
		assert.NotEmpty(t, req.PostTitle)
		assert.NotEmpty(t, req.PostTags)
	}
}
