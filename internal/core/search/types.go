package search

// RelevanceRequest asks the delegate whether one post is relevant to a
// search term. The term does not need to match exactly; the delegate
// judges meaning and intent against the title and tags.
type RelevanceRequest struct {
	SearchTerm string   `json:"searchTerm"`
	PostTitle  string   `json:"postTitle"`
	PostTags   []string `json:"postTags"`
}

// RelevanceResult is the delegate's judgment for a single post.
type RelevanceResult struct {
	IsRelevant bool   `json:"isRelevant"`
	Reason     string `json:"reason,omitempty"`
}
