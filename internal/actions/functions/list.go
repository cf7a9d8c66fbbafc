// Package functions holds the actions that manage the project's function
// directories: listing what the script root contains and scaffolding new
// functions.
package functions

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/funcbase/cli/internal/config"
	"github.com/funcbase/cli/internal/domain"
	"github.com/funcbase/cli/internal/host"
)

// ListAction prints every function discovered under the script root with
// its trigger and the route the host would serve it on.
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

	fns, err := a.deps.LoadFunctions(wd)
	if err != nil {
		return err
	}
	if len(fns) == 0 {
		_, _ = a.app.Output.Println(a.app.Styler.Muted("no functions found; see 'fb function new'"))
		return nil
	}

	settings, err := a.deps.LoadSettings(wd)
	if err != nil {
		return err
	}
	prefix := settings.Host.RoutePrefix
	if prefix == "" {
		prefix, _ = config.Get("route_prefix")
	}

	for _, fn := range fns {
		route := "-"
		if fn.IsHTTP() {
			route = "/" + host.ComposeRoute(prefix, fn)
		}
		_, _ = a.app.Output.Printf("%s  %s %s\n",
			a.app.Styler.Header(fmt.Sprintf("%-20s", fn.Name)),
			a.app.Styler.Muted(fmt.Sprintf("%-8s", fn.Trigger)),
			a.app.Styler.Info(route),
		)
	}
	return nil
}
