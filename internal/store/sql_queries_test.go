// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/migrations"
	"github.com/MKhiriev/go-chat-cipher/models"
)

func TestBuildQueries_PlaceholderFormat(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		want    string
	}{
		{name: "postgres uses dollar", dialect: migrations.DialectPostgres, want: "SELECT version FROM chats WHERE chat_id = $1"},
		{name: "sqlite uses question", dialect: migrations.DialectSQLite, want: "SELECT version FROM chats WHERE chat_id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newDB(nil, tt.dialect, nil, logger.Nop())

			query, args, err := db.buildSelectChatVersionQuery("c1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"c1"}, args)
		})
	}
}

func TestBuildBumpVersionQuery(t *testing.T) {
	db := newDB(nil, migrations.DialectPostgres, nil, logger.Nop())

	query, args, err := db.buildBumpVersionQuery("c1", nil)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE chats SET version = version + 1 WHERE chat_id = $1", query)
	assert.Equal(t, []any{"c1"}, args)

	expected := int64(7)
	query, args, err = db.buildBumpVersionQuery("c1", &expected)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE chats SET version = version + 1 WHERE chat_id = $1 AND version = $2", query)
	assert.Equal(t, []any{"c1", int64(7)}, args)
}

func TestBuildInsertMessagesQuery(t *testing.T) {
	db := newDB(nil, migrations.DialectSQLite, nil, logger.Nop())
	date := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := db.buildInsertMessagesQuery("c1", 3, []models.Message{
		{ID: "a", Text: "x", SenderID: "u", Date: date},
		{ID: "b", Text: "y", SenderID: "u", Date: date},
	})
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO messages")
	require.Len(t, args, 14)
	assert.Equal(t, int64(3), args[1])
	assert.Equal(t, []byte("x"), args[3])
	assert.Equal(t, int64(4), args[8])

	_, _, err = db.buildInsertMessagesQuery("c1", 0, nil)
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestDialectFromDSN(t *testing.T) {
	assert.Equal(t, migrations.DialectPostgres, dialectFromDSN("postgres://u:p@localhost/db"))
	assert.Equal(t, migrations.DialectPostgres, dialectFromDSN("postgresql://localhost/db"))
	assert.Equal(t, migrations.DialectSQLite, dialectFromDSN("chat.db"))
	assert.Equal(t, migrations.DialectSQLite, dialectFromDSN(":memory:"))
	assert.Empty(t, dialectFromDSN(""))
}
