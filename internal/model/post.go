package model

// Post is a stored article. Timestamps are milliseconds since epoch;
// UpdatedAt is absent until the first update.
type Post struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
}

// PostInput is the client-supplied part of a post.
type PostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
