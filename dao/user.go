package dao

import (
	"context"

	"Atrium/models"

	"gorm.io/gorm"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return d.Repo.FindByWhere(ctx, "email = ?", email)
}

func (d *UserDAO) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := d.Repo.IsExist(ctx, "email = ?", email)
	return exist
}
