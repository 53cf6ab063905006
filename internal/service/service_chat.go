package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-chat-cipher/internal/adapter"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/internal/store"
	"github.com/MKhiriev/go-chat-cipher/internal/utils"
	"github.com/MKhiriev/go-chat-cipher/internal/validators"
	"github.com/MKhiriev/go-chat-cipher/models"
)

// chatService is the concrete implementation of [ChatService].
type chatService struct {
	chats     store.ChatRepository
	userChats store.UserChatRepository
	images    store.ImageStorage

	mutator  Mutator
	ai       adapter.AIAdapter
	notifier Notifier

	validator validators.Validator

	// newID and now are replaced in tests.
	newID func() string
	now   func() time.Time

	metrics *Metrics
	logger  *logger.Logger
}

// NewChatService wires a [ChatService]. ai may be nil, in which case every
// "@gemini" question is answered with ErrAIUnavailable.
func NewChatService(
	chats store.ChatRepository,
	userChats store.UserChatRepository,
	images store.ImageStorage,
	mutator Mutator,
	ai adapter.AIAdapter,
	notifier Notifier,
	metrics *Metrics,
	logger *logger.Logger,
) ChatService {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	return &chatService{
		chats:     chats,
		userChats: userChats,
		images:    images,
		mutator:   mutator,
		ai:        ai,
		notifier:  notifier,
		validator: validators.NewMessageValidator(),
		newID:     utils.NewUUIDGenerator().Generate,
		now:       time.Now,
		metrics:   metrics,
		logger:    logger,
	}
}

// SendMessage implements [ChatService].
//
// A text equal to "@encrypt" or "@decrypt" runs a bulk transform and is not
// stored; an attached image is ignored in that case. Any other input is
// appended as a new message. A text starting with "@gemini" is additionally
// forwarded to the AI responder; failures of the responder are reported in
// SendResult.AIError while the user message stays stored.
//
// Returns:
//   - ErrInvalidDataProvided when the request fails validation.
//   - errors of [Mutator.BulkTransform] for commands.
//   - store.ErrStoreUnavailable when the message or image cannot be written.
func (s *chatService) SendMessage(ctx context.Context, req models.SendRequest) (models.SendResult, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "chatService.SendMessage").
		Str("chat_id", req.ChatID).
		Str("sender_id", req.SenderID).
		Logger()

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Msg("invalid message")
		return models.SendResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if direction, ok := models.ParseCommand(req.Text); ok {
		transform, err := s.mutator.BulkTransform(ctx, req.ChatID, direction)
		if err != nil {
			return models.SendResult{Command: direction}, err
		}

		s.publish(req.ChatID, models.ChatEventTransformed, transform.Version)
		return models.SendResult{Command: direction, Transform: &transform}, nil
	}

	var img *string
	if req.Image != nil {
		url, err := s.images.Save(ctx, req.Image.FileName, req.Image.Data)
		if err != nil {
			log.Err(err).Msg("failed to save image")
			return models.SendResult{}, err
		}
		img = &url
	}

	msg, err := s.appendMessage(ctx, req.ChatID, req.SenderID, req.Text, img, req.SenderID, req.RecipientID)
	if err != nil {
		log.Err(err).Msg("failed to append message")
		return models.SendResult{}, err
	}
	result := models.SendResult{Message: &msg}

	question, ok := models.ParseAIQuestion(req.Text)
	if !ok {
		return result, nil
	}

	reply, err := s.answer(ctx, req, question)
	if err != nil {
		log.Warn().Err(err).Msg("AI responder did not answer")
		result.AIError = err.Error()
		return result, nil
	}
	result.AIReply = &reply

	return result, nil
}

// answer asks the AI responder and appends its reply to the conversation.
func (s *chatService) answer(ctx context.Context, req models.SendRequest, question string) (models.Message, error) {
	if question == "" {
		s.metrics.aiRequests.WithLabelValues(outcomeError).Inc()
		return models.Message{}, ErrEmptyAIQuestion
	}
	if s.ai == nil {
		s.metrics.aiRequests.WithLabelValues(outcomeError).Inc()
		return models.Message{}, ErrAIUnavailable
	}

	text, err := s.ai.Complete(ctx, question)
	if err != nil {
		s.metrics.aiRequests.WithLabelValues(outcomeError).Inc()
		return models.Message{}, fmt.Errorf("%w: %w", ErrAIUnavailable, err)
	}
	s.metrics.aiRequests.WithLabelValues(outcomeOK).Inc()

	return s.appendMessage(ctx, req.ChatID, models.AISenderID, text, nil, req.SenderID, req.RecipientID)
}

// appendMessage stores a new message and refreshes the chat index of
// participants.
func (s *chatService) appendMessage(ctx context.Context, chatID, senderID, text string, img *string, participants ...string) (models.Message, error) {
	msg := models.Message{
		ID:       s.newID(),
		Text:     text,
		SenderID: senderID,
		Date:     s.now().UTC(),
		Img:      img,
	}

	version, err := s.chats.AppendMessage(ctx, chatID, msg)
	if err != nil {
		return models.Message{}, err
	}
	s.metrics.messagesSent.Inc()

	s.touchUserChats(ctx, chatID, msg, participants...)
	s.publish(chatID, models.ChatEventAppended, version)

	return msg, nil
}

// touchUserChats records msg as the latest activity of every participant.
// Index failures are logged only: the message itself is already stored.
func (s *chatService) touchUserChats(ctx context.Context, chatID string, msg models.Message, participants ...string) {
	seen := make(map[string]struct{}, len(participants))
	for _, userID := range participants {
		if userID == "" {
			continue
		}
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}

		err := s.userChats.UpsertUserChat(ctx, models.UserChat{
			UserID:      userID,
			ChatID:      chatID,
			LastMessage: msg.Text,
			Date:        msg.Date,
		})
		if err != nil {
			logger.FromContext(ctx).Warn().Err(err).
				Str("func", "chatService.touchUserChats").
				Str("user_id", userID).
				Str("chat_id", chatID).
				Msg("failed to update user chat index")
		}
	}
}

func (s *chatService) publish(chatID string, kind models.ChatEventKind, version int64) {
	if s.notifier == nil {
		return
	}
	s.notifier.Publish(models.ChatEvent{ChatID: chatID, Kind: kind, Version: version})
}

// ListMessages implements [ChatService]. A conversation that was never
// written is returned empty with version 0.
func (s *chatService) ListMessages(ctx context.Context, chatID string) (models.MessagesResponse, error) {
	if chatID == "" {
		return models.MessagesResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyChatID)
	}

	chat, err := s.chats.FetchMessages(ctx, chatID)
	switch {
	case errors.Is(err, store.ErrChatNotFound):
		chat = models.Chat{ChatID: chatID}
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "chatService.ListMessages").Str("chat_id", chatID).Msg("failed to fetch messages")
		return models.MessagesResponse{}, err
	}

	messages := chat.Messages
	if messages == nil {
		messages = []models.Message{}
	}

	return models.MessagesResponse{ChatID: chatID, Version: chat.Version, Messages: messages}, nil
}

// ListUserChats implements [ChatService].
func (s *chatService) ListUserChats(ctx context.Context, userID string) ([]models.UserChat, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptySenderID)
	}

	userChats, err := s.userChats.ListUserChats(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "chatService.ListUserChats").Str("user_id", userID).Msg("failed to list user chats")
		return nil, err
	}
	if userChats == nil {
		userChats = []models.UserChat{}
	}

	return userChats, nil
}

func (s *chatService) OpenImage(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.images.Open(ctx, name)
}
