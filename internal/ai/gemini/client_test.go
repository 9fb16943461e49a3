package gemini

import (
	"testing"

	"google.golang.org/genai"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare json", `{"isRelevant":true}`, `{"isRelevant":true}`},
		{"json fence", "```json\n{\"isRelevant\":true}\n```", `{"isRelevant":true}`},
		{"plain fence", "```\n{\"isRelevant\":false}\n```", `{"isRelevant":false}`},
		{"surrounding whitespace", "  {\"isRelevant\":true}\n", `{"isRelevant":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSON(tt.input); got != tt.want {
				t.Errorf("cleanJSON(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFirstText(t *testing.T) {
	if got := firstText(nil); got != "" {
		t.Errorf("firstText(nil) = %q, want empty", got)
	}

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: nil},
			{Content: &genai.Content{Parts: []*genai.Part{
				{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{1}}},
				{Text: "hello"},
			}}},
		},
	}
	if got := firstText(resp); got != "hello" {
		t.Errorf("firstText = %q, want %q", got, "hello")
	}
}

func TestFirstInlineData(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{
				{Text: "caption"},
				{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte{1, 2, 3}}},
			}}},
		},
	}

	blob := firstInlineData(resp)
	if blob == nil {
		t.Fatal("firstInlineData returned nil")
	}
	if blob.MIMEType != "image/png" || len(blob.Data) != 3 {
		t.Errorf("firstInlineData returned %+v", blob)
	}

	if firstInlineData(&genai.GenerateContentResponse{}) != nil {
		t.Error("firstInlineData on empty response should be nil")
	}
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(t.Context(), ""); err == nil {
		t.Error("NewClient with empty key should fail")
	}
}
