package dao

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitorDAO_Count(t *testing.T) {
	db, mock := newMockDB(t)
	d := NewVisitorDAO(db)

	mock.ExpectQuery("SELECT count(.+) FROM `visitors`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(17))

	count, err := d.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(17), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
