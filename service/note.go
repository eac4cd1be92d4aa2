package service

import (
	"context"
	"errors"
	"unicode/utf8"

	"Atrium/dao"
	"Atrium/models"
	"Atrium/pkg/log"
	"Atrium/pkg/snowflake"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxNoteLength = 10000

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	AddNote(ctx context.Context, userID int64, text string) error
	DeleteNote(ctx context.Context, actorID, noteID int64) error
	ListForUser(ctx context.Context, userID int64) ([]*models.Note, error)
}

type NoteService struct {
	NoteDAO *dao.NoteDAO
}

// AddNote validates the text and persists one note owned by userID.
// Length bounds count characters, not bytes.
func (s *NoteService) AddNote(ctx context.Context, userID int64, text string) error {
	length := utf8.RuneCountInString(text)
	if length < 1 {
		return ErrNoteTooShort
	}
	if length > maxNoteLength {
		return ErrNoteTooLong
	}

	note := &models.Note{
		ID:     snowflake.GenID(),
		UserID: userID,
		Data:   text,
	}
	if err := s.NoteDAO.Create(ctx, note); err != nil {
		log.L.Error("create note failed", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

// DeleteNote looks the note up first; a missing id is ErrNotFound, an
// unrelated owner is ErrNotOwner, and only then does the row go away.
func (s *NoteService) DeleteNote(ctx context.Context, actorID, noteID int64) error {
	note, err := s.NoteDAO.FindById(ctx, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if note.UserID != actorID {
		log.L.Warn("unauthorized note delete attempt",
			zap.Int64("note_id", noteID), zap.Int64("actor_id", actorID))
		return ErrNotOwner
	}

	if err := s.NoteDAO.DeleteById(ctx, noteID); err != nil {
		log.L.Error("delete note failed", zap.Int64("note_id", noteID), zap.Error(err))
		return err
	}
	log.L.Info("note deleted", zap.Int64("note_id", noteID), zap.Int64("user_id", actorID))
	return nil
}

func (s *NoteService) ListForUser(ctx context.Context, userID int64) ([]*models.Note, error) {
	return s.NoteDAO.FindByUserID(ctx, userID)
}
