package dao

import (
	"context"

	"Atrium/models"

	"gorm.io/gorm"
)

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

// FindByUserID returns the user's notes, newest first.
func (d *NoteDAO) FindByUserID(ctx context.Context, userID int64) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

// DeleteById removes the note inside a transaction.
func (d *NoteDAO) DeleteById(ctx context.Context, noteID int64) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Where("id = ?", noteID).Delete(&models.Note{}).Error
	})
}
