// Package gemini implements the AI delegate boundaries (assist.Generator,
// search.RelevanceChecker) against the Google Gemini API.
package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"inkwell/internal/core/assist"
	"inkwell/internal/core/search"
)

const (
	textModel  = "gemini-2.5-flash"
	imageModel = "gemini-2.0-flash-preview-image-generation"
)

// Client is a thin wrapper over the genai SDK. Every capability is a
// single request/response round trip; there is no retry, batching, or
// caching here.
type Client struct {
	client *genai.Client
}

// NewClient creates a Gemini delegate client. The API key is required.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{client: client}, nil
}

// Ensure implementation
var (
	_ assist.Generator        = (*Client)(nil)
	_ search.RelevanceChecker = (*Client)(nil)
)

// GeneratePostContent generates markdown body content for a post title.
func (c *Client) GeneratePostContent(ctx context.Context, req assist.GenerateContentRequest) (*assist.GenerateContentResult, error) {
	prompt := fmt.Sprintf(contentPrompt, req.Title)

	result, err := c.client.Models.GenerateContent(ctx, textModel, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("content generation failed: %w", err)
	}

	text := firstText(result)
	if text == "" {
		return nil, fmt.Errorf("content generation returned no usable text")
	}

	return &assist.GenerateContentResult{Content: text}, nil
}

// GenerateCoverImage generates a cover image and returns it as a data URI.
func (c *Client) GenerateCoverImage(ctx context.Context, req assist.GenerateCoverImageRequest) (*assist.GenerateCoverImageResult, error) {
	prompt := fmt.Sprintf(coverImagePrompt, req.Title)
	if req.AspectRatio != "" {
		prompt += fmt.Sprintf(" Aspect ratio: %s.", req.AspectRatio)
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}

	result, err := c.client.Models.GenerateContent(ctx, imageModel, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	blob := firstInlineData(result)
	if blob == nil || len(blob.Data) == 0 {
		return nil, fmt.Errorf("image generation failed to produce an image")
	}

	mimeType := blob.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}
	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(blob.Data))

	return &assist.GenerateCoverImageResult{ImageURL: dataURI}, nil
}

// CheckRelevance asks the model whether a post matches a search term.
func (c *Client) CheckRelevance(ctx context.Context, req search.RelevanceRequest) (*search.RelevanceResult, error) {
	prompt := fmt.Sprintf(relevancePrompt, req.SearchTerm, req.PostTitle, strings.Join(req.PostTags, ", "))

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	result, err := c.client.Models.GenerateContent(ctx, textModel, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("relevance check failed: %w", err)
	}

	text := firstText(result)
	if text == "" {
		return nil, fmt.Errorf("relevance check returned no usable output")
	}

	var judged search.RelevanceResult
	if err := json.Unmarshal([]byte(cleanJSON(text)), &judged); err != nil {
		return nil, fmt.Errorf("failed to parse relevance response: %w", err)
	}

	return &judged, nil
}

func firstText(result *genai.GenerateContentResponse) string {
	if result == nil {
		return ""
	}
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}

func firstInlineData(result *genai.GenerateContentResponse) *genai.Blob {
	if result == nil {
		return nil
	}
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil {
				return part.InlineData
			}
		}
	}
	return nil
}

// cleanJSON strips a markdown code fence the model sometimes wraps JSON in.
func cleanJSON(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
