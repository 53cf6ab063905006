package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-chat-cipher/internal/config"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/internal/utils"
	"github.com/MKhiriev/go-chat-cipher/models"
)

type httpChatServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPChatServerAdapter constructs an HTTP/REST implementation of
// [ChatServerAdapter] using the client adapter settings and the bearer
// token of the client app settings.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPChatServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ChatServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpChatServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	h.SetToken(appCfg.Token)

	return h, nil
}

func (h *httpChatServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpChatServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Send implements [ChatServerAdapter]. Plain inputs are POSTed as JSON to
// /api/chats/{chatID}/messages; inputs with an image use multipart form
// data with the "text", "recipient_id" and "img" fields.
func (h *httpChatServerAdapter) Send(ctx context.Context, req models.SendRequest) (models.SendResult, error) {
	var result models.SendResult

	r := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		SetResult(&result)

	if req.Image != nil {
		r.SetMultipartFormData(map[string]string{
			"text":         req.Text,
			"recipient_id": req.RecipientID,
		}).SetMultipartField("img", req.Image.FileName, req.Image.ContentType, req.Image.Data)
	} else {
		r.SetHeader("Content-Type", "application/json").SetBody(req)
	}

	resp, err := r.Post(chatPath(req.ChatID, "messages"))
	if err != nil {
		return models.SendResult{}, fmt.Errorf("send request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("func", "httpChatServerAdapter.Send").Msg("server rejected message")
		return models.SendResult{}, err
	}

	return result, nil
}

// List implements [ChatServerAdapter] via GET /api/chats/{chatID}/messages.
func (h *httpChatServerAdapter) List(ctx context.Context, chatID string) (models.MessagesResponse, error) {
	var result models.MessagesResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		SetResult(&result).
		Get(chatPath(chatID, "messages"))
	if err != nil {
		return models.MessagesResponse{}, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MessagesResponse{}, err
	}

	return result, nil
}

// Transform implements [ChatServerAdapter] via
// POST /api/chats/{chatID}/transform.
func (h *httpChatServerAdapter) Transform(ctx context.Context, chatID string, direction models.Direction) (models.TransformResult, error) {
	var result models.TransformResult

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token()).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TransformRequest{Direction: direction}).
		SetResult(&result).
		Post(chatPath(chatID, "transform"))
	if err != nil {
		return models.TransformResult{}, fmt.Errorf("transform request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TransformResult{}, err
	}

	return result, nil
}

// Version implements [ChatServerAdapter] via GET /api/version.
func (h *httpChatServerAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppBuildInfo{}, err
	}

	return info, nil
}

func chatPath(chatID, action string) string {
	return "/api/chats/" + url.PathEscape(chatID) + "/" + action
}
