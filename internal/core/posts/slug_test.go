package posts

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "punctuation stripped",
			title: "Hello, World! 2024",
			want:  "hello-world-2024",
		},
		{
			name:  "lowercased",
			title: "Getting Started with Next.js 14",
			want:  "getting-started-with-nextjs-14",
		},
		{
			name:  "whitespace runs collapse",
			title: "A   Guide \t to  Mindful Design",
			want:  "a-guide-to-mindful-design",
		},
		{
			name:  "surrounding whitespace trimmed",
			title: "  Exploring the Alps  ",
			want:  "exploring-the-alps",
		},
		{
			name:  "existing hyphens kept and runs collapsed",
			title: "pre-rendered -- pages",
			want:  "pre-rendered-pages",
		},
		{
			name:  "unicode stripped",
			title: "Café Culture — 2025",
			want:  "caf-culture-2025",
		},
		{
			name:  "empty title",
			title: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.title)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}

			// Same title must always yield the same slug
			if again := Slugify(tt.title); again != got {
				t.Errorf("Slugify(%q) is not deterministic: %q then %q", tt.title, got, again)
			}
		})
	}
}
