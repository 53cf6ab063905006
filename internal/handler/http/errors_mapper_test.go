package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-chat-cipher/internal/cipher"
	"github.com/MKhiriev/go-chat-cipher/internal/service"
	"github.com/MKhiriev/go-chat-cipher/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid data", fmt.Errorf("%w: empty chat id", service.ErrInvalidDataProvided), http.StatusBadRequest},
		{"invalid body", ErrInvalidBody, http.StatusBadRequest},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{"invalid key", cipher.ErrInvalidKey, http.StatusUnprocessableEntity},
		{"data loss", fmt.Errorf("message 1: %w", cipher.ErrDataLoss), http.StatusUnprocessableEntity},
		{"version conflict", store.ErrVersionConflict, http.StatusConflict},
		{"image not found", store.ErrImageNotFound, http.StatusNotFound},
		{"ai unavailable", fmt.Errorf("%w: timeout", service.ErrAIUnavailable), http.StatusBadGateway},
		{
			"store unavailable with operation",
			fmt.Errorf("%w: %w: %w", store.ErrStoreUnavailable, store.ErrExecutingQuery, errors.New("conn reset")),
			http.StatusServiceUnavailable,
		},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := statusFromError(tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteServiceError_HidesServerErrorDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))

	err := fmt.Errorf("%w: %w", store.ErrStoreUnavailable, errors.New("password=hunter2"))
	writeServiceError(rr, req, "test", err)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"error":"`+store.ErrStoreUnavailable.Error()+`"}`, rr.Body.String())
}

func TestWriteServiceError_ShowsClientErrorDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil))

	err := fmt.Errorf("message 7: %w", cipher.ErrDataLoss)
	writeServiceError(rr, req, "test", err)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Contains(t, rr.Body.String(), "message 7")
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}
