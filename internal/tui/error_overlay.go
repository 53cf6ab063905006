package tui

// errorOverlayModel shows a failed send until dismissed.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\nenter / esc: close"
	return overlayBoxStyle.Render(content)
}
