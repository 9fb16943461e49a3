package posts

// Post is a single blog post as stored and served.
// CreatedAt is a display-formatted date string ("January 2, 2006"); it is
// assigned at creation and never rewritten by updates.
type Post struct {
	ID         string   `json:"id"`
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	CreatedAt  string   `json:"createdAt"`
	Tags       []string `json:"tags"`
	CoverImage string   `json:"coverImage"`
	Content    string   `json:"content"`
}

// CreatePostRequest carries the caller-supplied fields for a new post.
// ID, slug, and createdAt are assigned by the store.
type CreatePostRequest struct {
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Tags       []string `json:"tags"`
	CoverImage string   `json:"coverImage"`
	Content    string   `json:"content"`
}

// UpdatePostRequest is a partial update. Nil fields are left untouched.
// The slug is recomputed only when Title is present; id and createdAt can
// never be overwritten.
type UpdatePostRequest struct {
	Title      *string  `json:"title,omitempty"`
	Author     *string  `json:"author,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	CoverImage *string  `json:"coverImage,omitempty"`
	Content    *string  `json:"content,omitempty"`
}

// clone returns a copy of p so callers never hold a reference into the
// store's backing collection.
func clone(p Post) Post {
	out := p
	if p.Tags != nil {
		out.Tags = append([]string(nil), p.Tags...)
	}
	return out
}
