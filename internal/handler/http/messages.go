package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/internal/utils"
	"github.com/MKhiriev/go-chat-cipher/models"
)

const (
	// maxUploadSize bounds a multipart message including its image.
	maxUploadSize = 10 << 20
	// maxJSONBodySize bounds JSON request bodies.
	maxJSONBodySize = 1 << 20
)

// sendMessage accepts a chat input as JSON {"text", "recipient_id"} or as
// multipart form data with fields "text", "recipient_id" and file "img".
//
// Ordinary messages are answered with 201 Created, bulk transform commands
// with 200 OK. Both carry a [models.SendResult].
func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, "Handler.sendMessage", ErrNoUserInContext)
		return
	}

	req, cleanup, err := decodeSendRequest(w, r)
	if err != nil {
		writeServiceError(w, r, "Handler.sendMessage", err)
		return
	}
	defer cleanup()

	req.ChatID = chi.URLParam(r, "chatID")
	req.SenderID = userID

	result, err := h.services.ChatService.SendMessage(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, "Handler.sendMessage", err)
		return
	}

	status := http.StatusCreated
	if result.Transform != nil {
		status = http.StatusOK
	}
	if _, err = utils.WriteJSON(w, result, status); err != nil {
		log.Err(err).Str("func", "Handler.sendMessage").Msg("failed to write response")
	}
}

func decodeSendRequest(w http.ResponseWriter, r *http.Request) (models.SendRequest, func(), error) {
	noop := func() {}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var req models.SendRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodySize)).Decode(&req); err != nil {
			return models.SendRequest{}, noop, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		return req, noop, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return models.SendRequest{}, noop, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	cleanup := func() { _ = r.MultipartForm.RemoveAll() }

	req := models.SendRequest{
		Text:        r.FormValue("text"),
		RecipientID: r.FormValue("recipient_id"),
	}

	file, header, err := r.FormFile("img")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		cleanup()
		return models.SendRequest{}, noop, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	default:
		req.Image = &models.ImageUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        file,
		}
		cleanup = func() {
			file.Close()
			_ = r.MultipartForm.RemoveAll()
		}
	}

	return req, cleanup, nil
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.ChatService.ListMessages(r.Context(), chi.URLParam(r, "chatID"))
	if err != nil {
		writeServiceError(w, r, "Handler.listMessages", err)
		return
	}

	if _, err = utils.WriteJSON(w, messages, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.listMessages").Msg("failed to write response")
	}
}

// transform runs an explicit bulk transform: {"direction": "encrypt"}.
func (h *Handler) transform(w http.ResponseWriter, r *http.Request) {
	var req models.TransformRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodySize)).Decode(&req); err != nil {
		writeServiceError(w, r, "Handler.transform", fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return
	}

	chatID := chi.URLParam(r, "chatID")
	result, err := h.services.Mutator.BulkTransform(r.Context(), chatID, req.Direction)
	if err != nil {
		writeServiceError(w, r, "Handler.transform", err)
		return
	}

	h.services.Notifier.Publish(models.ChatEvent{
		ChatID:  chatID,
		Kind:    models.ChatEventTransformed,
		Version: result.Version,
	})

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.transform").Msg("failed to write response")
	}
}

func (h *Handler) listUserChats(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeServiceError(w, r, "Handler.listUserChats", ErrNoUserInContext)
		return
	}

	chats, err := h.services.ChatService.ListUserChats(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "Handler.listUserChats", err)
		return
	}

	if _, err = utils.WriteJSON(w, chats, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.listUserChats").Msg("failed to write response")
	}
}
