package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/models"
)

type userChatRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserChatRepository constructs a [UserChatRepository] backed by db.
func NewUserChatRepository(db *DB, logger *logger.Logger) UserChatRepository {
	return &userChatRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertUserChat records the latest message of a chat for one user.
func (u *userChatRepository) UpsertUserChat(ctx context.Context, userChat models.UserChat) error {
	log := logger.FromContext(ctx)

	query, args, err := u.buildUpsertUserChatQuery(userChat)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = u.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "userChatRepository.UpsertUserChat").
			Str("user_id", userChat.UserID).
			Str("chat_id", userChat.ChatID).
			Msg("failed to upsert user chat")
		return u.unavailable(ErrExecutingQuery, err)
	}

	return nil
}

// ListUserChats returns the chats of userID, most recent first.
func (u *userChatRepository) ListUserChats(ctx context.Context, userID string) ([]models.UserChat, error) {
	log := logger.FromContext(ctx)

	query, args, err := u.buildSelectUserChatsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := u.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "userChatRepository.ListUserChats").
			Str("user_id", userID).
			Msg("failed to execute query for getting user chats")
		return nil, u.unavailable(ErrExecutingQuery, err)
	}
	defer rows.Close()

	chats := make([]models.UserChat, 0, 16)
	for rows.Next() {
		var (
			chat models.UserChat
			last []byte
			date time.Time
		)

		if scanErr := rows.Scan(&chat.UserID, &chat.ChatID, &last, &date); scanErr != nil {
			log.Err(scanErr).
				Str("func", "userChatRepository.ListUserChats").
				Str("user_id", userID).
				Msg("failed to scan user chat row")
			return nil, u.unavailable(ErrScanningRow, scanErr)
		}

		chat.LastMessage = string(last)
		chat.Date = date.UTC()
		chats = append(chats, chat)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, u.unavailable(ErrScanningRows, rowsErr)
	}

	return chats, nil
}
