package functions

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"

	flag "github.com/spf13/pflag"

	"github.com/funcbase/cli/internal/domain"
	"github.com/funcbase/cli/internal/host"
	"github.com/funcbase/cli/internal/usage"
)

// functionNamePattern constrains scaffolded names: the name becomes a
// directory and the default route segment.
var functionNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

const scaffoldConfig = `trigger: http
script: run.sh
`

const scaffoldScript = `#!/bin/sh
# Request body arrives on stdin; stdout becomes the response body.
echo "hello from %s"
`

// NewAction scaffolds a function directory with a config file and a
// starter script.
type NewAction struct {
	app  *domain.Application
	deps Deps

	Name  string
	Route string
}

// NewNew creates the scaffolding action with production dependencies.
func NewNew(app *domain.Application) *NewAction {
	return &NewAction{app: app, deps: DefaultDeps()}
}

func (a *NewAction) BindFlags(fs *flag.FlagSet) {
	fs.StringVarP(&a.Route, "route", "r", "", "route override (defaults to the function name)")
}

// BindPositional takes the function name. A missing or invalid name is a
// malformed command, not a help condition.
func (a *NewAction) BindPositional(args []string) error {
	if len(args) == 0 {
		return usage.MalformedCommand("function new requires a name")
	}
	if len(args) > 1 {
		return usage.MalformedCommand(fmt.Sprintf("unexpected argument '%s'", args[1]))
	}
	if !functionNamePattern.MatchString(args[0]) {
		return usage.MalformedCommand(fmt.Sprintf("invalid function name '%s'", args[0]))
	}
	a.Name = args[0]
	return nil
}

func (a *NewAction) Run(context.Context) error {
	wd, err := a.deps.Getwd()
	if err != nil {
		return err
	}

	dir := filepath.Join(wd, a.Name)
	if _, err := a.deps.Stat(dir); err == nil {
		return fmt.Errorf("function %q already exists", a.Name)
	}

	if err := a.deps.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create function dir: %w", err)
	}

	cfg := scaffoldConfig
	if a.Route != "" {
		cfg += fmt.Sprintf("route: %s\n", a.Route)
	}
	if err := a.deps.WriteFile(filepath.Join(dir, host.ConfigFileName), []byte(cfg), 0644); err != nil {
		return fmt.Errorf("write %s: %w", host.ConfigFileName, err)
	}

	script := fmt.Sprintf(scaffoldScript, a.Name)
	if err := a.deps.WriteFile(filepath.Join(dir, "run.sh"), []byte(script), 0755); err != nil {
		return fmt.Errorf("write run.sh: %w", err)
	}

	_, _ = a.app.Output.Println(a.app.Styler.Success(fmt.Sprintf("created function %s", a.Name)))
	return nil
}
