package components

import "github.com/charmbracelet/lipgloss"

const alertDismissHint = "press any key to close"

// Alert renders a modal message box.
type Alert struct {
	message string
}

// NewAlert creates an alert for message.
func NewAlert(message string) Alert {
	return Alert{message: message}
}

// View renders the alert box with the dismiss hint underneath the message.
func (a Alert) View(box, hint lipgloss.Style) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		a.message,
		"",
		hint.Render(alertDismissHint),
	)
	return box.Render(body)
}
