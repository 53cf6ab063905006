package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-chat-cipher/models"
)

const (
	chatsTable     = "chats"
	messagesTable  = "messages"
	userChatsTable = "user_chats"
)

var messageColumns = []string{"id", "text", "sender_id", "date", "img"}

func (db *DB) buildSelectChatVersionQuery(chatID string) (string, []any, error) {
	return db.builder.
		Select("version").
		From(chatsTable).
		Where(sq.Eq{"chat_id": chatID}).
		ToSql()
}

func (db *DB) buildSelectMessagesQuery(chatID string) (string, []any, error) {
	return db.builder.
		Select(messageColumns...).
		From(messagesTable).
		Where(sq.Eq{"chat_id": chatID}).
		OrderBy("position ASC").
		ToSql()
}

func (db *DB) buildCountMessagesQuery(chatID string) (string, []any, error) {
	return db.builder.
		Select("COUNT(*)").
		From(messagesTable).
		Where(sq.Eq{"chat_id": chatID}).
		ToSql()
}

func (db *DB) buildInsertChatQuery(chatID string) (string, []any, error) {
	return db.builder.
		Insert(chatsTable).
		Columns("chat_id", "version").
		Values(chatID, 0).
		Suffix("ON CONFLICT (chat_id) DO NOTHING").
		ToSql()
}

// buildBumpVersionQuery increments the version of a chat. When expected is
// non-nil the update only matches if the stored version equals it.
func (db *DB) buildBumpVersionQuery(chatID string, expected *int64) (string, []any, error) {
	where := sq.Eq{"chat_id": chatID}
	if expected != nil {
		where["version"] = *expected
	}

	return db.builder.
		Update(chatsTable).
		Set("version", sq.Expr("version + 1")).
		Where(where).
		ToSql()
}

func (db *DB) buildDeleteMessagesQuery(chatID string) (string, []any, error) {
	return db.builder.
		Delete(messagesTable).
		Where(sq.Eq{"chat_id": chatID}).
		ToSql()
}

// buildInsertMessagesQuery inserts msgs at positions firstPosition,
// firstPosition+1 and so on.
func (db *DB) buildInsertMessagesQuery(chatID string, firstPosition int64, msgs []models.Message) (string, []any, error) {
	if len(msgs) == 0 {
		return "", nil, fmt.Errorf("%w: no messages to insert", ErrBuildingSQLQuery)
	}

	insert := db.builder.
		Insert(messagesTable).
		Columns("chat_id", "position", "id", "text", "sender_id", "date", "img")

	for i, msg := range msgs {
		insert = insert.Values(
			chatID,
			firstPosition+int64(i),
			msg.ID,
			[]byte(msg.Text),
			msg.SenderID,
			msg.Date.UTC(),
			msg.Img,
		)
	}

	return insert.ToSql()
}

func (db *DB) buildUpsertUserChatQuery(userChat models.UserChat) (string, []any, error) {
	return db.builder.
		Insert(userChatsTable).
		Columns("user_id", "chat_id", "last_message", "date").
		Values(userChat.UserID, userChat.ChatID, []byte(userChat.LastMessage), userChat.Date.UTC()).
		Suffix("ON CONFLICT (user_id, chat_id) DO UPDATE SET last_message = excluded.last_message, date = excluded.date").
		ToSql()
}

func (db *DB) buildSelectUserChatsQuery(userID string) (string, []any, error) {
	return db.builder.
		Select("user_id", "chat_id", "last_message", "date").
		From(userChatsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date DESC").
		ToSql()
}
