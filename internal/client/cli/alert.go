package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/models"
)

var alertStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("230")).
	Background(lipgloss.Color("124")).
	Padding(0, 1)

// terminalAlerter rings the terminal bell and prints a banner.
type terminalAlerter struct {
	mu  sync.Mutex
	out io.Writer
}

func newTerminalAlerter(out io.Writer) *terminalAlerter {
	return &terminalAlerter{out: out}
}

func (t *terminalAlerter) Alert(_ context.Context, role models.Role, n models.Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprint(t.out, "\a")
	fmt.Fprintln(t.out, renderAlert(role, n))
}

func renderAlert(role models.Role, n models.Notification) string {
	text := fmt.Sprintf("New notification for %s: #%s", role, n.ID)
	if n.Title != "" {
		text += " " + n.Title
	}
	if n.Message != "" {
		text += " - " + n.Message
	}
	return alertStyle.Render(text)
}
