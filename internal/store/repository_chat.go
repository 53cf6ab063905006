package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/models"
)

// chatRepository is the SQL implementation of [ChatRepository]. A
// conversation is one row in "chats" holding the version and one row per
// message in "messages" ordered by position.
type chatRepository struct {
	*DB
	logger *logger.Logger
}

// NewChatRepository constructs a [ChatRepository] backed by db.
func NewChatRepository(db *DB, logger *logger.Logger) ChatRepository {
	return &chatRepository{
		DB:     db,
		logger: logger,
	}
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// FetchMessages returns the whole conversation in position order.
func (c *chatRepository) FetchMessages(ctx context.Context, chatID string) (models.Chat, error) {
	log := logger.FromContext(ctx)

	version, err := c.selectVersion(ctx, c.DB.DB, chatID)
	if err != nil {
		if !errors.Is(err, ErrChatNotFound) {
			log.Err(err).
				Str("func", "chatRepository.FetchMessages").
				Str("chat_id", chatID).
				Msg("failed to read chat version")
		}
		return models.Chat{}, err
	}

	query, args, err := c.buildSelectMessagesQuery(chatID)
	if err != nil {
		return models.Chat{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "chatRepository.FetchMessages").
			Str("chat_id", chatID).
			Msg("failed to execute query for getting chat messages")
		return models.Chat{}, c.unavailable(ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0, 50)
	for rows.Next() {
		var (
			msg  models.Message
			text []byte
			img  sql.NullString
			date time.Time
		)

		if scanErr := rows.Scan(&msg.ID, &text, &msg.SenderID, &date, &img); scanErr != nil {
			log.Err(scanErr).
				Str("func", "chatRepository.FetchMessages").
				Str("chat_id", chatID).
				Msg("failed to scan message row")
			return models.Chat{}, c.unavailable(ErrScanningRow, scanErr)
		}

		msg.Text = string(text)
		msg.Date = date.UTC()
		if img.Valid {
			msg.Img = &img.String
		}
		messages = append(messages, msg)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "chatRepository.FetchMessages").
			Str("chat_id", chatID).
			Msg("error occurred during rows iteration")
		return models.Chat{}, c.unavailable(ErrScanningRows, rowsErr)
	}

	return models.Chat{ChatID: chatID, Version: version, Messages: messages}, nil
}

// ReplaceMessages swaps the entire message sequence in one transaction,
// guarded by the version the caller read.
func (c *chatRepository) ReplaceMessages(ctx context.Context, chatID string, expectedVersion int64, msgs []models.Message) (int64, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "chatRepository.ReplaceMessages").
		Str("chat_id", chatID).
		Int64("expected_version", expectedVersion).
		Logger()

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return 0, c.unavailable(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if expectedVersion == 0 && len(msgs) > 0 {
		if err = c.ensureChat(ctx, tx, chatID); err != nil {
			log.Err(err).Msg("failed to create chat")
			return 0, err
		}
	}

	updated, err := c.bumpVersion(ctx, tx, chatID, &expectedVersion)
	if err != nil {
		log.Err(err).Msg("failed to bump chat version")
		return 0, err
	}

	if !updated {
		current, selectErr := c.selectVersion(ctx, tx, chatID)
		switch {
		case errors.Is(selectErr, ErrChatNotFound) && expectedVersion == 0 && len(msgs) == 0:
			// nothing stored and nothing to store
			return 0, nil
		case selectErr != nil && !errors.Is(selectErr, ErrChatNotFound):
			return 0, selectErr
		}

		log.Warn().Int64("current_version", current).Msg("chat was modified concurrently")
		return 0, ErrVersionConflict
	}

	query, args, err := c.buildDeleteMessagesQuery(chatID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Msg("failed to delete old messages")
		return 0, c.unavailable(ErrExecutingQuery, err)
	}

	if len(msgs) > 0 {
		query, args, err = c.buildInsertMessagesQuery(chatID, 0, msgs)
		if err != nil {
			return 0, err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Int("messages", len(msgs)).Msg("failed to insert messages")
			return 0, c.unavailable(ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return 0, c.unavailable(ErrCommitingTransaction, err)
	}

	return expectedVersion + 1, nil
}

// EnsureChat creates the conversation row if it is missing.
func (c *chatRepository) EnsureChat(ctx context.Context, chatID string) error {
	if err := c.ensureChat(ctx, c.DB.DB, chatID); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "chatRepository.EnsureChat").
			Str("chat_id", chatID).
			Msg("failed to create chat")
		return err
	}

	return nil
}

// AppendMessage bumps the version first so that concurrent appends to the
// same chat are serialized on the chat row.
func (c *chatRepository) AppendMessage(ctx context.Context, chatID string, msg models.Message) (int64, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "chatRepository.AppendMessage").
		Str("chat_id", chatID).
		Str("message_id", msg.ID).
		Logger()

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return 0, c.unavailable(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = c.ensureChat(ctx, tx, chatID); err != nil {
		log.Err(err).Msg("failed to create chat")
		return 0, err
	}

	if _, err = c.bumpVersion(ctx, tx, chatID, nil); err != nil {
		log.Err(err).Msg("failed to bump chat version")
		return 0, err
	}

	version, err := c.selectVersion(ctx, tx, chatID)
	if err != nil {
		log.Err(err).Msg("failed to read chat version")
		return 0, err
	}

	query, args, err := c.buildCountMessagesQuery(chatID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	var position int64
	if err = tx.QueryRowContext(ctx, query, args...).Scan(&position); err != nil {
		log.Err(err).Msg("failed to count messages")
		return 0, c.unavailable(ErrScanningRow, err)
	}

	query, args, err = c.buildInsertMessagesQuery(chatID, position, []models.Message{msg})
	if err != nil {
		return 0, err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Msg("failed to insert message")
		return 0, c.unavailable(ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return 0, c.unavailable(ErrCommitingTransaction, err)
	}

	return version, nil
}

func (c *chatRepository) ensureChat(ctx context.Context, q queryer, chatID string) error {
	query, args, err := c.buildInsertChatQuery(chatID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return c.unavailable(ErrExecutingQuery, err)
	}

	return nil
}

// bumpVersion reports whether a chat row was updated.
func (c *chatRepository) bumpVersion(ctx context.Context, q queryer, chatID string, expected *int64) (bool, error) {
	query, args, err := c.buildBumpVersionQuery(chatID, expected)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return false, c.unavailable(ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, c.unavailable(ErrExecutingQuery, err)
	}

	return affected > 0, nil
}

func (c *chatRepository) selectVersion(ctx context.Context, q queryer, chatID string) (int64, error) {
	query, args, err := c.buildSelectChatVersionQuery(chatID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var version int64
	err = q.QueryRowContext(ctx, query, args...).Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, ErrChatNotFound
	case err != nil:
		return 0, c.unavailable(ErrScanningRow, err)
	}

	return version, nil
}
