package service

import (
	"context"
	"errors"
	"testing"

	"Atrium/dao"
	"Atrium/types"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

type fakeNotifier struct {
	err   error
	calls int
}

func (f *fakeNotifier) Notify(_ context.Context, _, _ string) error {
	f.calls++
	return f.err
}

func contactReq() *types.ContactRequest {
	return &types.ContactRequest{
		Name:    "Jo",
		Email:   "jo@example.com",
		Message: "hi there",
	}
}

func TestContactSubmit(t *testing.T) {
	db, mock := newMockDB(t)
	notifier := &fakeNotifier{}
	svc := &ContactService{ContactDAO: dao.NewContactMessageDAO(db), Notifier: notifier}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `contact_messages`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	emailed := svc.Submit(context.Background(), contactReq())
	assert.True(t, emailed)
	assert.Equal(t, 1, notifier.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactSubmit_NotificationFails(t *testing.T) {
	db, mock := newMockDB(t)
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	svc := &ContactService{ContactDAO: dao.NewContactMessageDAO(db), Notifier: notifier}

	// the message is still persisted
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `contact_messages`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	emailed := svc.Submit(context.Background(), contactReq())
	assert.False(t, emailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactSubmit_PersistenceFailureStillNotifies(t *testing.T) {
	db, mock := newMockDB(t)
	notifier := &fakeNotifier{}
	svc := &ContactService{ContactDAO: dao.NewContactMessageDAO(db), Notifier: notifier}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `contact_messages`").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	emailed := svc.Submit(context.Background(), contactReq())
	assert.True(t, emailed)
	assert.Equal(t, 1, notifier.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
