package settings

import (
	"context"
	"fmt"
	"regexp"

	flag "github.com/spf13/pflag"

	"github.com/funcbase/cli/internal/domain"
	"github.com/funcbase/cli/internal/usage"
)

// settingNamePattern matches environment-variable style names; settings
// end up as process environment variables for function scripts.
var settingNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// AddAction writes a plain setting to the settings file.
type AddAction struct {
	app  *domain.Application
	deps Deps

	Name  string
	Value string
}

// NewAdd creates the add action with production dependencies.
func NewAdd(app *domain.Application) *AddAction {
	return &AddAction{app: app, deps: DefaultDeps()}
}

func (a *AddAction) BindFlags(*flag.FlagSet) {}

func (a *AddAction) BindPositional(args []string) error {
	if len(args) < 2 {
		return usage.MalformedCommand("settings add requires a name and a value")
	}
	if len(args) > 2 {
		return usage.MalformedCommand(fmt.Sprintf("unexpected argument '%s'", args[2]))
	}
	if !settingNamePattern.MatchString(args[0]) {
		return usage.MalformedCommand(fmt.Sprintf("invalid setting name '%s'", args[0]))
	}
	a.Name, a.Value = args[0], args[1]
	return nil
}

func (a *AddAction) Run(context.Context) error {
	wd, err := a.deps.Getwd()
	if err != nil {
		return err
	}
	s, err := a.deps.LoadSettings(wd)
	if err != nil {
		return err
	}

	s.Values[a.Name] = a.Value
	if err := s.Save(); err != nil {
		return err
	}

	_, _ = a.app.Output.Println(a.app.Styler.Success(fmt.Sprintf("set %s", a.Name)))
	return nil
}
