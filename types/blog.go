package types

import "time"

// BlogPostRequest backs both the create and edit forms.
type BlogPostRequest struct {
	Title   string `form:"title" json:"title" binding:"required"`
	Content string `form:"content" json:"content" binding:"required"`
}

// BlogPostView is a post prepared for rendering. CreatedAt is always set:
// legacy rows with a NULL date get a display-only default, nothing is
// written back.
type BlogPostView struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}
