package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-chat-cipher/internal/config"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/internal/utils"
)

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// httpAIAdapter calls the generateContent method of a generative-language
// REST API.
type httpAIAdapter struct {
	client *utils.HTTPClient
	apiKey string
	model  string

	logger *logger.Logger
}

// NewHTTPAIAdapter builds an [AIAdapter] from the adapter settings. With an
// empty API key every call fails with [ErrAIDisabled].
func NewHTTPAIAdapter(cfg config.Adapter, logger *logger.Logger) (AIAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.AIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid AI base url: %w", err)
	}

	return &httpAIAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey: cfg.AIAPIKey,
		model:  cfg.AIModel,
		logger: logger,
	}, nil
}

// Complete implements [AIAdapter]. It POSTs prompt to
// /v1beta/models/{model}:generateContent and joins the text parts of the
// first candidate.
func (a *httpAIAdapter) Complete(ctx context.Context, prompt string) (string, error) {
	if a.apiKey == "" {
		return "", ErrAIDisabled
	}

	var result generateContentResponse
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", a.apiKey).
		SetBody(generateContentRequest{
			Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		}).
		SetResult(&result).
		Post("/v1beta/models/" + url.PathEscape(a.model) + ":generateContent")
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "httpAIAdapter.Complete").Msg("AI request failed")
		return "", fmt.Errorf("generate content request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "httpAIAdapter.Complete").
			Int("status", resp.StatusCode()).
			Msg("AI endpoint returned an error")
		return "", err
	}

	if len(result.Candidates) == 0 {
		return "", ErrEmptyAIResponse
	}

	var answer strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		answer.WriteString(p.Text)
	}
	if answer.Len() == 0 {
		return "", ErrEmptyAIResponse
	}

	return answer.String(), nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
