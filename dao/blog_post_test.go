package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogPostDAO_UpdateById(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewBlogPostDAO(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `blog_posts`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := d.UpdateById(context.Background(), 7, map[string]any{
		"title":   "updated",
		"content": "body",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlogPostDAO_DeleteById(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewBlogPostDAO(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `blog_posts`").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, d.DeleteById(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
