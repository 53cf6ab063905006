package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/migrations"
	"github.com/MKhiriev/go-chat-cipher/models"
)

const (
	selectVersionSQL  = `SELECT version FROM chats WHERE chat_id = \$1`
	selectMessagesSQL = `SELECT id, text, sender_id, date, img FROM messages WHERE chat_id = \$1 ORDER BY position ASC`
	countMessagesSQL  = `SELECT COUNT\(\*\) FROM messages WHERE chat_id = \$1`
	insertChatSQL     = `INSERT INTO chats`
	bumpVersionSQL    = `UPDATE chats SET version = version \+ 1 WHERE chat_id = \$1`
	deleteMessagesSQL = `DELETE FROM messages WHERE chat_id = \$1`
	insertMessagesSQL = `INSERT INTO messages`
)

var messageRowColumns = []string{"id", "text", "sender_id", "date", "img"}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return newDB(db, migrations.DialectPostgres, NewPostgresErrorClassifier(), logger.Nop())
}

func newTestChatRepo(t *testing.T) (ChatRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewChatRepository(newDBFromSQL(db), logger.Nop()), mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func TestFetchMessages(t *testing.T) {
	date := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	img := "/images/a.png"

	t.Run("success keeps order, binary text and image", func(t *testing.T) {
		repo, mock := newTestChatRepo(t)

		mock.ExpectQuery(selectVersionSQL).
			WithArgs("c1").
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(4)))
		mock.ExpectQuery(selectMessagesSQL).
			WithArgs("c1").
			WillReturnRows(sqlmock.NewRows(messageRowColumns).
				AddRow("m1", []byte("Hi"), "u1", date, nil).
				AddRow("m2", []byte("\x00µ"), "u2", date, img))

		chat, err := repo.FetchMessages(testContext(), "c1")
		require.NoError(t, err)

		assert.Equal(t, "c1", chat.ChatID)
		assert.Equal(t, int64(4), chat.Version)
		require.Len(t, chat.Messages, 2)
		assert.Equal(t, models.Message{ID: "m1", Text: "Hi", SenderID: "u1", Date: date}, chat.Messages[0])
		assert.Equal(t, "\x00µ", chat.Messages[1].Text)
		require.NotNil(t, chat.Messages[1].Img)
		assert.Equal(t, img, *chat.Messages[1].Img)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent chat", func(t *testing.T) {
		repo, mock := newTestChatRepo(t)

		mock.ExpectQuery(selectVersionSQL).
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows([]string{"version"}))

		_, err := repo.FetchMessages(testContext(), "nope")
		assert.ErrorIs(t, err, ErrChatNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database down", func(t *testing.T) {
		repo, mock := newTestChatRepo(t)

		mock.ExpectQuery(selectVersionSQL).
			WithArgs("c1").
			WillReturnError(errors.New("connection refused"))

		_, err := repo.FetchMessages(testContext(), "c1")
		assert.ErrorIs(t, err, ErrStoreUnavailable)
		assert.NotErrorIs(t, err, ErrChatNotFound)
	})

	t.Run("messages query fails", func(t *testing.T) {
		repo, mock := newTestChatRepo(t)

		mock.ExpectQuery(selectVersionSQL).
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(1)))
		mock.ExpectQuery(selectMessagesSQL).
			WillReturnError(errors.New("timeout"))

		_, err := repo.FetchMessages(testContext(), "c1")
		assert.ErrorIs(t, err, ErrStoreUnavailable)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestReplaceMessages(t *testing.T) {
	date := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	msgs := []models.Message{
		{ID: "m1", Text: "µâ", SenderID: "u1", Date: date},
		{ID: "m2", Text: "\x00", SenderID: "u2", Date: date},
	}

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestChatRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(bumpVersionSQL).
			WithArgs("c1", int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(deleteMessagesSQL).
			WithArgs("c1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(insertMessagesSQL).
			WithArgs(
				"c1", int64(0), "m1", []byte("µâ"), "u1", date, nil,
				"c1", int64(1), "m2", []byte("\x00"), "u2", date, nil,
			).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		version, err := repo.ReplaceMessages(testContext(), "c1", 2, msgs)
		require.NoError(t, err)
		assert.Equal(t, int64(3), version)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("version moved", func(t *testing.T) {
		repo, mock := newTestChatRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(bumpVersionSQL).
			WithArgs("c1", int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(selectVersionSQL).
			WithArgs("c1").
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(3)))
		mock.ExpectRollback()

		_, err := repo.ReplaceMessages(testContext(), "c1", 2, msgs)
		assert.ErrorIs(t, err, ErrVersionConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent chat with nothing to store is a no-op", func(t *testing.T) {
		repo, mock := newTestChatRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(bumpVersionSQL).
			WithArgs("c1", int64(0)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(selectVersionSQL).
			WithArgs("c1").
			WillReturnRows(sqlmock.NewRows([]string{"version"}))
		mock.ExpectRollback()

		version, err := repo.ReplaceMessages(testContext(), "c1", 0, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), version)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first write creates the chat", func(t *testing.T) {
		repo, mock := newTestChatRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(insertChatSQL).
			WithArgs("c1", 0).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(bumpVersionSQL).
			WithArgs("c1", int64(0)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(deleteMessagesSQL).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(insertMessagesSQL).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		version, err := repo.ReplaceMessages(testContext(), "c1", 0, msgs)
		require.NoError(t, err)
		assert.Equal(t, int64(1), version)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert fails rolls back", func(t *testing.T) {
		repo, mock := newTestChatRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(bumpVersionSQL).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(deleteMessagesSQL).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(insertMessagesSQL).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		_, err := repo.ReplaceMessages(testContext(), "c1", 2, msgs)
		assert.ErrorIs(t, err, ErrStoreUnavailable)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin fails", func(t *testing.T) {
		repo, mock := newTestChatRepo(t)

		mock.ExpectBegin().WillReturnError(errors.New("connection reset"))

		_, err := repo.ReplaceMessages(testContext(), "c1", 2, msgs)
		assert.ErrorIs(t, err, ErrStoreUnavailable)
		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})
}

func TestAppendMessage(t *testing.T) {
	date := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	img := "/images/x.png"
	msg := models.Message{ID: "m5", Text: "hello", SenderID: "u1", Date: date, Img: &img}

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestChatRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(insertChatSQL).
			WithArgs("c1", 0).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(bumpVersionSQL).
			WithArgs("c1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(selectVersionSQL).
			WithArgs("c1").
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(5)))
		mock.ExpectQuery(countMessagesSQL).
			WithArgs("c1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))
		mock.ExpectExec(insertMessagesSQL).
			WithArgs("c1", int64(4), "m5", []byte("hello"), "u1", date, img).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		version, err := repo.AppendMessage(testContext(), "c1", msg)
		require.NoError(t, err)
		assert.Equal(t, int64(5), version)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit fails", func(t *testing.T) {
		repo, mock := newTestChatRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(insertChatSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(bumpVersionSQL).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(selectVersionSQL).
			WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(int64(1)))
		mock.ExpectQuery(countMessagesSQL).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))
		mock.ExpectExec(insertMessagesSQL).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit().WillReturnError(errors.New("conn lost"))

		_, err := repo.AppendMessage(testContext(), "c1", msg)
		assert.ErrorIs(t, err, ErrStoreUnavailable)
		assert.ErrorIs(t, err, ErrCommitingTransaction)
	})
}

func TestEnsureChat(t *testing.T) {
	repo, mock := newTestChatRepo(t)

	mock.ExpectExec(insertChatSQL+` .* ON CONFLICT \(chat_id\) DO NOTHING`).
		WithArgs("c1", 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.EnsureChat(testContext(), "c1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
