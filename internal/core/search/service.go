package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"inkwell/internal/core/posts"
)

type searchService struct {
	posts   posts.Service
	checker RelevanceChecker
}

// NewSearchService creates a relevance-search service over the post store.
func NewSearchService(postService posts.Service, checker RelevanceChecker) Service {
	return &searchService{
		posts:   postService,
		checker: checker,
	}
}

// Search fans out one relevance check per post concurrently and joins all
// results before filtering. A failure in any single check cancels the
// rest and surfaces as one aggregate error, so callers can leave their
// previously displayed results unchanged.
func (s *searchService) Search(ctx context.Context, term string) ([]posts.Post, error) {
	all, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts for search: %w", err)
	}

	relevant := make([]bool, len(all))

	g, gctx := errgroup.WithContext(ctx)
	for i, post := range all {
		g.Go(func() error {
			result, err := s.checker.CheckRelevance(gctx, RelevanceRequest{
				SearchTerm: term,
				PostTitle:  post.Title,
				PostTags:   post.Tags,
			})
			if err != nil {
				return fmt.Errorf("relevance check for %q: %w", post.Slug, err)
			}
			relevant[i] = result.IsRelevant
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	matched := make([]posts.Post, 0)
	for i, post := range all {
		if relevant[i] {
			matched = append(matched, post)
		}
	}

	return matched, nil
}
