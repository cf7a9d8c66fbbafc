// Package settings holds the actions that edit the project's local
// settings file and the protected values indexed from it.
package settings

import (
	"context"
	"fmt"
	"sort"

	flag "github.com/spf13/pflag"

	"github.com/funcbase/cli/internal/domain"
)

// protectedPlaceholder is shown instead of a secret's value.
const protectedPlaceholder = "(protected)"

// ListAction prints every setting. Plain values show as-is; protected
// values show a placeholder, never the keyring content.
type ListAction struct {
	app  *domain.Application
	deps Deps
}

// NewList creates the list action with production dependencies.
func NewList(app *domain.Application) *ListAction {
	return &ListAction{app: app, deps: DefaultDeps()}
}

func (a *ListAction) BindFlags(*flag.FlagSet) {}

func (a *ListAction) Run(context.Context) error {
	wd, err := a.deps.Getwd()
	if err != nil {
		return err
	}
	s, err := a.deps.LoadSettings(wd)
	if err != nil {
		return err
	}

	if len(s.Values) == 0 && len(s.SecretKeys) == 0 {
		_, _ = a.app.Output.Println(a.app.Styler.Muted("no settings"))
		return nil
	}

	names := make([]string, 0, len(s.Values))
	for name := range s.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		_, _ = a.app.Output.Printf("%s = %s\n", a.app.Styler.Info(fmt.Sprintf("%-24s", name)), s.Values[name])
	}
	for _, name := range s.SecretKeys {
		_, _ = a.app.Output.Printf("%s = %s\n", a.app.Styler.Info(fmt.Sprintf("%-24s", name)), a.app.Styler.Muted(protectedPlaceholder))
	}
	return nil
}
