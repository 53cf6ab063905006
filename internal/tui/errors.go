// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-chat-cipher/internal/adapter"
)

var (
	// ErrNoPeer is returned by [New] when no conversation partner is configured.
	ErrNoPeer = errors.New("peer user id is not set")

	errNothingToCopy = errors.New("nothing to copy")
	errImageUsage    = errors.New("usage: /img <path> [caption]")
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Token rejected by the server, issue a new one"
	case errors.Is(err, adapter.ErrConflict):
		return "Conversation changed concurrently, try again"
	case errors.Is(err, adapter.ErrUnprocessable):
		return "Cannot transform with the conversation key: " + err.Error()
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return "Server storage is unavailable"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unreachable"
	}

	return err.Error()
}
