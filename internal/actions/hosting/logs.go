package hosting

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/funcbase/cli/internal/domain"
	"github.com/funcbase/cli/internal/format"
)

// LogsAction prints recorded function invocations, newest first, or
// opens the live interactive viewer.
type LogsAction struct {
	app *domain.Application

	Limit       int
	Interactive bool

	// isTerminal is injectable for tests.
	isTerminal func(fd int) bool
}

// NewLogs creates the logs action.
func NewLogs(app *domain.Application) *LogsAction {
	return &LogsAction{app: app, isTerminal: term.IsTerminal}
}

func (a *LogsAction) BindFlags(fs *flag.FlagSet) {
	fs.IntVarP(&a.Limit, "limit", "l", 20, "number of invocations to show")
	fs.BoolVarP(&a.Interactive, "interactive", "i", false, "live invocation viewer")
}

func (a *LogsAction) Run(context.Context) error {
	if a.Interactive {
		return a.runInteractive()
	}

	invs, err := a.app.Store.List(a.Limit)
	if err != nil {
		return err
	}
	if len(invs) == 0 {
		_, _ = a.app.Output.Println(a.app.Styler.Muted("no invocations recorded"))
		return nil
	}

	for _, inv := range invs {
		_, _ = a.app.Output.Printf("%s  %s %s %s %s %s\n",
			a.app.Styler.Muted(format.Relative(inv.CreatedAt)),
			statusStyled(a.app.Styler, inv.Status),
			inv.Method,
			a.app.Styler.Info("/"+inv.Route),
			a.app.Styler.Header(inv.Function),
			a.app.Styler.Muted(format.Millis(inv.DurationMs)),
		)
	}
	return nil
}

func (a *LogsAction) runInteractive() error {
	if !a.isTerminal(int(os.Stdin.Fd())) || !a.isTerminal(int(os.Stdout.Fd())) {
		return errors.New("interactive logs requires an interactive terminal")
	}

	m := newInvocationsModel(a.app.Store)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
