package search

import (
	"context"

	"inkwell/internal/core/posts"
)

// Service performs relevance-based search over the post collection.
type Service interface {
	// Search returns the posts the delegate judges relevant to term,
	// preserving store order. An all-irrelevant result is an empty
	// slice with a nil error; any single delegate failure surfaces as
	// one aggregate error.
	Search(ctx context.Context, term string) ([]posts.Post, error)
}

// RelevanceChecker is the relevance-judgment surface of the AI delegate.
type RelevanceChecker interface {
	CheckRelevance(ctx context.Context, req RelevanceRequest) (*RelevanceResult, error)
}
