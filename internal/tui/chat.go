package tui

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-chat-cipher/internal/adapter"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/models"
)

const (
	imagePrefix     = "/img "
	statusLifetime  = 3 * time.Second
	headerHeight    = 4
	footerHeight    = 8
	minViewportRows = 3
)

type chatModel struct {
	ctx     context.Context
	adapter adapter.ChatServerAdapter
	logger  *logger.Logger

	copyText func(string) error
	readFile func(string) ([]byte, error)

	userID string
	peerID string
	chatID string

	clientInfo models.AppBuildInfo
	serverInfo *models.AppBuildInfo

	viewport viewport.Model
	input    textinput.Model

	messages []models.Message
	version  int64
	pending  int

	showInfo bool
	overlay  *errorOverlayModel
	status   string
	loadErr  string
}

func newChatModel(ctx context.Context, chatServer adapter.ChatServerAdapter, userID, peerID string, info models.AppBuildInfo, logger *logger.Logger) chatModel {
	input := textinput.New()
	input.Placeholder = "message, @encrypt, @decrypt, @gemini <question> or /img <path>"
	input.Prompt = "> "
	input.Focus()

	m := chatModel{
		ctx:        ctx,
		adapter:    chatServer,
		logger:     logger,
		copyText:   clipboard.WriteAll,
		readFile:   os.ReadFile,
		userID:     userID,
		peerID:     peerID,
		chatID:     models.ChatIDFor(userID, peerID),
		clientInfo: info,
		viewport:   viewport.New(80, 20),
		input:      input,
	}
	m.refreshViewport()

	return m
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoad())
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case messagesLoadedMsg:
		if msg.err != nil {
			m.loadErr = humanizeError(msg.err)
			return m, nil
		}
		m.loadErr = ""
		// a poll and an explicit refresh may arrive out of order
		if msg.resp.Version < m.version {
			return m, nil
		}
		m.messages = msg.resp.Messages
		m.version = msg.resp.Version
		m.refreshViewport()
		return m, nil
	case sentMsg:
		return m.handleSent(msg)
	case versionLoadedMsg:
		if msg.err != nil {
			m.loadErr = humanizeError(msg.err)
			return m, nil
		}
		info := msg.info
		m.serverInfo = &info
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: msg.err.Error()}
			return m, nil
		}
		m.status = "Copied to clipboard"
		return m, clearStatusAfter(statusLifetime)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(msg, keys.send) || key.Matches(msg, keys.back) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.showInfo {
		if key.Matches(msg, keys.back) || key.Matches(msg, keys.info) {
			m.showInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.info):
		m.showInfo = true
		if m.serverInfo == nil {
			return m, m.cmdLoadVersion()
		}
		return m, nil
	case key.Matches(msg, keys.send):
		return m.submit()
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopyLast()
	case key.Matches(msg, keys.refresh):
		return m, m.cmdLoad()
	case key.Matches(msg, keys.scroll):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the typed text as is. The input is cleared whatever the
// outcome of the send.
func (m chatModel) submit() (tea.Model, tea.Cmd) {
	text := m.input.Value()
	m.input.Reset()

	if strings.TrimSpace(text) == "" {
		return m, nil
	}

	req := models.SendRequest{
		ChatID:      m.chatID,
		SenderID:    m.userID,
		RecipientID: m.peerID,
		Text:        text,
	}

	if strings.HasPrefix(text, imagePrefix) {
		image, caption, err := m.loadImage(strings.TrimPrefix(text, imagePrefix))
		if err != nil {
			m.overlay = &errorOverlayModel{message: err.Error()}
			return m, nil
		}
		req.Text = caption
		req.Image = image
	}

	m.pending++
	return m, m.cmdSend(req)
}

func (m chatModel) handleSent(msg sentMsg) (tea.Model, tea.Cmd) {
	if m.pending > 0 {
		m.pending--
	}

	if msg.err != nil {
		m.logger.Error().Err(msg.err).Str("func", "chatModel.handleSent").Str("chat_id", m.chatID).Msg("sending failed")
		m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
		return m, nil
	}

	res := msg.result
	switch {
	case res.Transform != nil:
		m.status = fmt.Sprintf("%s: %d messages rewritten, version %d, key %s",
			res.Transform.Direction, res.Transform.Count, res.Transform.Version, res.Transform.KeyFingerprint)
	case res.Command != "":
		m.status = string(res.Command) + " done"
	case res.AIError != "":
		m.status = "gemini: " + res.AIError
	default:
		m.status = ""
	}

	cmds := []tea.Cmd{m.cmdLoad()}
	if m.status != "" {
		cmds = append(cmds, clearStatusAfter(statusLifetime))
	}
	return m, tea.Batch(cmds...)
}

func (m chatModel) loadImage(args string) (*models.ImageUpload, string, error) {
	path, caption, _ := strings.Cut(strings.TrimSpace(args), " ")
	if path == "" {
		return nil, "", errImageUsage
	}

	data, err := m.readFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &models.ImageUpload{
		FileName:    filepath.Base(path),
		ContentType: contentType,
		Data:        bytes.NewReader(data),
	}, strings.TrimSpace(caption), nil
}

func (m chatModel) cmdLoad() tea.Cmd {
	ctx, chatServer, chatID := m.ctx, m.adapter, m.chatID
	return func() tea.Msg {
		resp, err := chatServer.List(ctx, chatID)
		return messagesLoadedMsg{resp: resp, err: err}
	}
}

func (m chatModel) cmdSend(req models.SendRequest) tea.Cmd {
	ctx, chatServer := m.ctx, m.adapter
	return func() tea.Msg {
		result, err := chatServer.Send(ctx, req)
		return sentMsg{result: result, err: err}
	}
}

func (m chatModel) cmdLoadVersion() tea.Cmd {
	ctx, chatServer := m.ctx, m.adapter
	return func() tea.Msg {
		info, err := chatServer.Version(ctx)
		return versionLoadedMsg{info: info, err: err}
	}
}

func (m chatModel) cmdCopyLast() tea.Cmd {
	if len(m.messages) == 0 {
		return func() tea.Msg { return copiedMsg{err: errNothingToCopy} }
	}

	text, copyText := m.messages[len(m.messages)-1].Text, m.copyText
	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *chatModel) resize(width, height int) {
	m.viewport.Width = max(width-4, 20)
	m.viewport.Height = max(height-headerHeight-footerHeight, minViewportRows)
	m.input.Width = max(width-8, 10)
	m.refreshViewport()
}

func (m *chatModel) refreshViewport() {
	m.viewport.SetContent(renderMessages(m.messages, m.userID))
	m.viewport.GotoBottom()
}

func (m chatModel) View() string {
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.clientInfo, m.serverInfo))
	}
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")

	switch {
	case m.loadErr != "":
		b.WriteString(errorStyle.Render(m.loadErr))
	case m.pending > 0:
		b.WriteString(statusStyle.Render("sending..."))
	case m.status != "":
		b.WriteString(statusStyle.Render(fitText(m.status, m.viewport.Width)))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())

	title := titleStyle.Render(fmt.Sprintf("CHAT WITH %s", strings.ToUpper(m.peerID)))
	hotKeys := helpStyle.Render("enter: send  ctrl+y: copy last  ctrl+r: refresh  f1: build info  pgup/pgdown: scroll")

	return appStyle.Render(renderPage(title, b.String(), hotKeys))
}
