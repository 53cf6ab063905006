// Package tui implements the terminal chat client on top of bubbletea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-chat-cipher/internal/adapter"
	"github.com/MKhiriev/go-chat-cipher/internal/config"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/internal/utils"
	"github.com/MKhiriev/go-chat-cipher/models"
)

// TUI owns the bubbletea program of one conversation.
type TUI struct {
	program *tea.Program
	chatID  string
	userID  string
}

// New prepares the chat screen for the conversation between the token
// owner and appCfg.PeerID.
func New(ctx context.Context, chatServer adapter.ChatServerAdapter, appCfg config.ClientApp, info models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	peerID := strings.TrimSpace(appCfg.PeerID)
	if peerID == "" {
		return nil, ErrNoPeer
	}

	userID, err := utils.SubjectFromToken(chatServer.Token())
	if err != nil {
		return nil, fmt.Errorf("read user id from token: %w", err)
	}

	model := newChatModel(ctx, chatServer, userID, peerID, info, logger)

	return &TUI{
		program: tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)),
		chatID:  model.chatID,
		userID:  userID,
	}, nil
}

// ChatID is the identifier of the displayed conversation.
func (t *TUI) ChatID() string {
	return t.chatID
}

// UserID is the identifier of the token owner.
func (t *TUI) UserID() string {
	return t.userID
}

// ShowMessages hands a fetched conversation to the running program.
// Safe for concurrent use.
func (t *TUI) ShowMessages(resp models.MessagesResponse) {
	t.program.Send(messagesLoadedMsg{resp: resp})
}

// ShowError reports a background fetch failure.
func (t *TUI) ShowError(err error) {
	t.program.Send(messagesLoadedMsg{err: err})
}

// Run blocks until the user quits or the context passed to [New] is done.
func (t *TUI) Run() error {
	_, err := t.program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
