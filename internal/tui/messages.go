package tui

import (
	"github.com/MKhiriev/go-chat-cipher/models"
)

type messagesLoadedMsg struct {
	resp models.MessagesResponse
	err  error
}

type sentMsg struct {
	result models.SendResult
	err    error
}

type versionLoadedMsg struct {
	info models.AppBuildInfo
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
