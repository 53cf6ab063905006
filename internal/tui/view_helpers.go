package tui

import (
	"strings"
	"unicode"

	"github.com/MKhiriev/go-chat-cipher/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(hotKeys)
		b.WriteString("\n")
	}
	b.WriteString("  ctrl+c: quit")

	return b.String()
}

// renderMessages formats the conversation one message per line.
func renderMessages(messages []models.Message, userID string) string {
	if len(messages) == 0 {
		return helpStyle.Render("no messages yet")
	}

	var b strings.Builder
	for i, msg := range messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render(msg.Date.Local().Format("15:04")))
		b.WriteString(" ")
		b.WriteString(senderLabel(msg.SenderID, userID))
		b.WriteString(": ")
		b.WriteString(displayText(msg.Text))
		if msg.Img != nil && *msg.Img != "" {
			b.WriteString("\n      ")
			b.WriteString(helpStyle.Render("image: " + *msg.Img))
		}
	}

	return b.String()
}

func senderLabel(senderID, userID string) string {
	switch senderID {
	case userID:
		return ownSenderStyle.Render("you")
	case models.AISenderID:
		return aiSenderStyle.Render(senderID)
	default:
		return peerSenderStyle.Render(senderID)
	}
}

// displayText replaces runes a terminal cannot print. Encrypted text is
// full of them.
func displayText(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || unicode.IsPrint(r) {
			return r
		}
		return '·'
	}, s)
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
