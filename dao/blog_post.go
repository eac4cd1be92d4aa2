package dao

import (
	"context"

	"Atrium/models"

	"gorm.io/gorm"
)

type BlogPostDAO struct {
	Repo[models.BlogPost]
}

func NewBlogPostDAO(db *gorm.DB) *BlogPostDAO {
	return &BlogPostDAO{Repo: NewRepo[models.BlogPost](db)}
}

// UpdateById applies the given columns to one post.
func (d *BlogPostDAO) UpdateById(ctx context.Context, postID int64, data map[string]any) error {
	return d.Db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("id = ?", postID).
		Updates(data).Error
}

// DeleteById removes the post inside a transaction.
func (d *BlogPostDAO) DeleteById(ctx context.Context, postID int64) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Where("id = ?", postID).Delete(&models.BlogPost{}).Error
	})
}
