package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-chat-cipher/internal/cipher"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/internal/store"
	"github.com/MKhiriev/go-chat-cipher/models"
)

// conflictBackoff is the pause between rounds lost to a concurrent write.
const conflictBackoff = 20 * time.Millisecond

// mutator is the concrete implementation of [Mutator]. One round fetches
// the conversation, transforms every text in memory and replaces the
// sequence guarded by the version it read. Rounds that lose to a
// concurrent write are repeated up to retries times.
type mutator struct {
	chats   store.ChatRepository
	keys    cipher.KeyProvider
	retries uint64
	backoff time.Duration

	metrics *Metrics
	logger  *logger.Logger
}

// NewMutator constructs a [Mutator]. retries is the number of extra rounds
// attempted after a version conflict; negative values are treated as 0.
func NewMutator(chats store.ChatRepository, keys cipher.KeyProvider, retries int, metrics *Metrics, logger *logger.Logger) Mutator {
	if retries < 0 {
		retries = 0
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	return &mutator{
		chats:   chats,
		keys:    keys,
		retries: uint64(retries),
		backoff: conflictBackoff,
		metrics: metrics,
		logger:  logger,
	}
}

// BulkTransform implements [Mutator].
//
// Returns the result of the successful round or:
//   - ErrInvalidDataProvided for an unknown direction or empty chat id.
//   - cipher.ErrInvalidKey or cipher.ErrDataLoss before anything is written.
//   - store.ErrVersionConflict when every round lost to a concurrent write.
//   - store.ErrStoreUnavailable when the store fails; these are not retried.
func (m *mutator) BulkTransform(ctx context.Context, chatID string, direction models.Direction) (models.TransformResult, error) {
	log := m.logger.With().
		Str("func", "mutator.BulkTransform").
		Str("chat_id", chatID).
		Str("direction", string(direction)).
		Logger()

	if chatID == "" {
		return models.TransformResult{}, fmt.Errorf("%w: empty chat id", ErrInvalidDataProvided)
	}
	if err := direction.Validate(); err != nil {
		return models.TransformResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	transformer, err := m.keys.TransformerFor(chatID)
	if err != nil {
		log.Err(err).Msg("no cipher key for chat")
		m.metrics.transforms.WithLabelValues(string(direction), outcomeError).Inc()
		return models.TransformResult{}, err
	}

	var (
		result   models.TransformResult
		attempts int
	)
	backoff := retry.WithMaxRetries(m.retries, retry.NewConstant(m.backoff))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++

		res, roundErr := m.transformOnce(ctx, chatID, direction, transformer)
		if errors.Is(roundErr, store.ErrVersionConflict) {
			m.metrics.versionConflicts.Inc()
			log.Warn().Int("attempt", attempts).Msg("chat changed during transform, retrying")
			return retry.RetryableError(roundErr)
		}
		if roundErr != nil {
			return roundErr
		}

		result = res
		return nil
	})
	if err != nil {
		outcome := outcomeError
		if errors.Is(err, store.ErrVersionConflict) {
			outcome = outcomeConflict
		}
		m.metrics.transforms.WithLabelValues(string(direction), outcome).Inc()
		log.Err(err).Int("attempts", attempts).Msg("bulk transform failed")
		return models.TransformResult{}, err
	}

	result.Attempts = attempts
	m.metrics.transforms.WithLabelValues(string(direction), outcomeOK).Inc()
	m.metrics.transformedMessages.Add(float64(result.Count))
	log.Info().
		Int("count", result.Count).
		Int64("version", result.Version).
		Int("attempts", attempts).
		Msg("bulk transform completed")

	return result, nil
}

func (m *mutator) transformOnce(ctx context.Context, chatID string, direction models.Direction, transformer cipher.Transformer) (models.TransformResult, error) {
	chat, err := m.chats.FetchMessages(ctx, chatID)
	switch {
	case errors.Is(err, store.ErrChatNotFound):
		chat = models.Chat{ChatID: chatID}
	case err != nil:
		return models.TransformResult{}, err
	}

	transformed := make([]models.Message, len(chat.Messages))
	for i, msg := range chat.Messages {
		text, err := transformer.Transform(direction, msg.Text)
		if err != nil {
			return models.TransformResult{}, fmt.Errorf("message %s: %w", msg.ID, err)
		}
		transformed[i] = msg.WithText(text)
	}

	version, err := m.chats.ReplaceMessages(ctx, chatID, chat.Version, transformed)
	if err != nil {
		return models.TransformResult{}, err
	}

	return models.TransformResult{
		ChatID:         chatID,
		Direction:      direction,
		Count:          len(transformed),
		Version:        version,
		KeyFingerprint: transformer.Fingerprint(),
	}, nil
}
