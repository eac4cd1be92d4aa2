package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo is the shared base embedded by every DAO.
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

// FindById returns gorm.ErrRecordNotFound when the row does not exist.
func (r Repo[T]) FindById(ctx context.Context, id int64) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindByWhere(ctx context.Context, query string, args ...any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(query, args...).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindAll(ctx context.Context) ([]*T, error) {
	var items []*T
	err := r.Db.WithContext(ctx).Find(&items).Error
	return items, err
}

func (r Repo[T]) IsExist(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(query, args...).Count(&count).Error
	return count > 0, err
}

// Transaction runs fn atomically; any error rolls the whole thing back.
func (r Repo[T]) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.Db.WithContext(ctx).Transaction(fn)
}
