// Package assist defines the boundary to the generative-AI delegate used
// for admin form pre-fill: post content generation and cover image
// generation. Each capability is a single request/response round trip
// with a fixed JSON shape; the core performs no batching, retry, or
// caching, and callers handle failure.
package assist

// GenerateContentRequest asks the delegate for markdown post content.
type GenerateContentRequest struct {
	Title string `json:"title"`
}

// GenerateContentResult carries the generated markdown.
type GenerateContentResult struct {
	Content string `json:"content"`
}

// GenerateCoverImageRequest asks the delegate for a cover image.
// AspectRatio is an optional hint such as "1:1" or "9:16".
type GenerateCoverImageRequest struct {
	Title       string `json:"title"`
	AspectRatio string `json:"aspectRatio,omitempty"`
}

// GenerateCoverImageResult carries the image URL, which may be a data URI.
type GenerateCoverImageResult struct {
	ImageURL string `json:"imageUrl"`
}
