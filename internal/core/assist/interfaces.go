package assist

import "context"

// Generator is the content-generation surface of the AI delegate.
type Generator interface {
	// GeneratePostContent returns generated markdown for the given
	// title. Fails when the provider returns no usable text.
	GeneratePostContent(ctx context.Context, req GenerateContentRequest) (*GenerateContentResult, error)

	// GenerateCoverImage returns a cover image URL (typically a data
	// URI) for the given title. Fails when the provider returns no
	// image.
	GenerateCoverImage(ctx context.Context, req GenerateCoverImageRequest) (*GenerateCoverImageResult, error)
}
