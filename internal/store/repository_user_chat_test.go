package store

import (
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/models"
)

func TestUpsertUserChat(t *testing.T) {
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	db, mock := newTestDB(t)
	repo := NewUserChatRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(`INSERT INTO user_chats .* ON CONFLICT \(user_id, chat_id\) DO UPDATE`).
		WithArgs("u1", "c1", []byte("hi"), date).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertUserChat(testContext(), models.UserChat{UserID: "u1", ChatID: "c1", LastMessage: "hi", Date: date})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertUserChat_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserChatRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(`INSERT INTO user_chats`).WillReturnError(errors.New("boom"))

	err := repo.UpsertUserChat(testContext(), models.UserChat{UserID: "u1", ChatID: "c1"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestListUserChats(t *testing.T) {
	newer := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	db, mock := newTestDB(t)
	repo := NewUserChatRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(`SELECT user_id, chat_id, last_message, date FROM user_chats WHERE user_id = \$1 ORDER BY date DESC`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "chat_id", "last_message", "date"}).
			AddRow("u1", "c2", []byte("latest"), newer).
			AddRow("u1", "c1", []byte("old"), older))

	chats, err := repo.ListUserChats(testContext(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []models.UserChat{
		{UserID: "u1", ChatID: "c2", LastMessage: "latest", Date: newer},
		{UserID: "u1", ChatID: "c1", LastMessage: "old", Date: older},
	}, chats)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListUserChats_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserChatRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(`SELECT .* FROM user_chats`).WillReturnError(errors.New("boom"))

	_, err := repo.ListUserChats(testContext(), "u1")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
