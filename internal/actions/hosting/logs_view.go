package hosting

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/funcbase/cli/internal/domain"
	"github.com/funcbase/cli/internal/format"
	"github.com/funcbase/cli/internal/ui/style"
)

var (
	viewerTitleStyle  = lipgloss.NewStyle().Bold(true)
	viewerStatusStyle = lipgloss.NewStyle().Faint(true)
	viewerHelpStyle   = lipgloss.NewStyle().Faint(true)
)

func (m invocationsModel) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder

	title := viewerTitleStyle.Render("invocations")
	state := ""
	if m.paused {
		state = "  [paused]"
	}
	stats := viewerStatusStyle.Render(fmt.Sprintf(
		"%d rows  2xx:%d 4xx:%d 5xx:%d  session %s%s",
		len(m.invs), m.byStatus[2], m.byStatus[4], m.byStatus[5],
		m.sessionDuration().Round(time.Second),
		state,
	))
	b.WriteString(title + "  " + stats + "\n\n")

	b.WriteString(m.viewport.View() + "\n")
	b.WriteString(viewerHelpStyle.Render("q quit  p pause  j/k scroll  g/G top/bottom"))

	return b.String()
}

func (m invocationsModel) renderRows() string {
	if len(m.invs) == 0 {
		return style.Muted("no invocations recorded yet")
	}

	var b strings.Builder
	for _, inv := range m.invs {
		b.WriteString(renderInvocation(inv))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderInvocation(inv domain.Invocation) string {
	return fmt.Sprintf("%s  %s %-6s /%s %s %s",
		style.Muted(format.Timestamp(inv.CreatedAt)),
		statusStyled(style.NewStyler(), inv.Status),
		inv.Method,
		inv.Route,
		style.Header(inv.Function),
		style.Muted(format.Millis(inv.DurationMs)),
	)
}

func (m invocationsModel) sessionDuration() time.Duration {
	return time.Since(m.sessionStart)
}

// statusStyled colors an HTTP status by its class.
func statusStyled(s domain.Styler, status int) string {
	text := fmt.Sprintf("%d", status)
	switch {
	case status >= 500:
		return s.Error(text)
	case status >= 400:
		return s.Warning(text)
	default:
		return s.Success(text)
	}
}
