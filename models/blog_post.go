package models

import (
	"time"
)

type BlogPost struct {
	ID      int64  `gorm:"column:id;primary_key" json:"id"`
	Title   string `gorm:"column:title;type:varchar(150);not null" json:"title"`
	Content string `gorm:"column:content;type:text;not null" json:"content"`
	// AuthorID references users.id.
	AuthorID int64 `gorm:"column:author_id;not null;index:idx_author_id" json:"author_id"`
	// CreatedAt is nullable: rows imported from the old site have no date.
	CreatedAt *time.Time `gorm:"column:created_at" json:"created_at"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}
