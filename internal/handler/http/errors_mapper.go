package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-chat-cipher/internal/cipher"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/internal/service"
	"github.com/MKhiriev/go-chat-cipher/internal/store"
	"github.com/MKhiriev/go-chat-cipher/internal/utils"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is ordered: store errors carry both ErrStoreUnavailable and
// an operation sentinel, and the first match wins.
var errorStatuses = []errorStatus{
	{ErrInvalidBody, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{store.ErrInvalidImageName, http.StatusBadRequest},

	{ErrNoUserInContext, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{store.ErrChatNotFound, http.StatusNotFound},
	{store.ErrImageNotFound, http.StatusNotFound},

	{store.ErrVersionConflict, http.StatusConflict},

	{cipher.ErrInvalidKey, http.StatusUnprocessableEntity},
	{cipher.ErrDataLoss, http.StatusUnprocessableEntity},

	{service.ErrAIUnavailable, http.StatusBadGateway},

	{store.ErrStoreUnavailable, http.StatusServiceUnavailable},
}

// statusFromError returns the HTTP status of err and the sentinel it matched.
func statusFromError(err error) (int, error) {
	for _, es := range errorStatuses {
		if errors.Is(err, es.target) {
			return es.status, es.target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeServiceError logs err and answers with its mapped status. Client
// errors carry the full message; server errors only the matched sentinel.
func writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, target := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
		if target != nil {
			message = target.Error()
		}
	}

	utils.WriteError(w, message, status)
}
