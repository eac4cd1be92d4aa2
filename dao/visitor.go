package dao

import (
	"context"

	"Atrium/models"

	"gorm.io/gorm"
)

type VisitorDAO struct {
	Repo[models.Visitor]
}

func NewVisitorDAO(db *gorm.DB) *VisitorDAO {
	return &VisitorDAO{Repo: NewRepo[models.Visitor](db)}
}

func (d *VisitorDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Visitor{}).Count(&count).Error
	return count, err
}
