package settings

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/funcbase/cli/internal/domain"
	"github.com/funcbase/cli/internal/secrets"
	"github.com/funcbase/cli/internal/usage"
)

// KeysSetAction stores a protected value in the OS keyring and indexes
// its name in the settings file. The value itself never touches disk.
type KeysSetAction struct {
	app  *domain.Application
	deps Deps

	Name  string
	Value string
}

// NewKeysSet creates the action with production dependencies.
func NewKeysSet(app *domain.Application) *KeysSetAction {
	return &KeysSetAction{app: app, deps: DefaultDeps()}
}

func (a *KeysSetAction) BindFlags(*flag.FlagSet) {}

func (a *KeysSetAction) BindPositional(args []string) error {
	if len(args) < 2 {
		return usage.MalformedCommand("settings keys set requires a name and a value")
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

func (a *KeysSetAction) Run(context.Context) error {
	wd, err := a.deps.Getwd()
	if err != nil {
		return err
	}
	s, err := a.deps.LoadSettings(wd)
	if err != nil {
		return err
	}

	if err := a.deps.SetSecret(a.Name, a.Value); err != nil {
		return err
	}

	// A plain value with the same name would shadow the keyring entry.
	delete(s.Values, a.Name)
	s.AddSecretKey(a.Name)
	if err := s.Save(); err != nil {
		return err
	}

	_, _ = a.app.Output.Println(a.app.Styler.Success(fmt.Sprintf("stored %s in the keyring", a.Name)))
	return nil
}

// KeysDeleteAction removes a protected value from the keyring and its
// name from the index.
type KeysDeleteAction struct {
	app  *domain.Application
	deps Deps

	Name string
}

// NewKeysDelete creates the action with production dependencies.
func NewKeysDelete(app *domain.Application) *KeysDeleteAction {
	return &KeysDeleteAction{app: app, deps: DefaultDeps()}
}

func (a *KeysDeleteAction) BindFlags(*flag.FlagSet) {}

func (a *KeysDeleteAction) BindPositional(args []string) error {
	if len(args) == 0 {
		return usage.MalformedCommand("settings keys delete requires a name")
	}
	if len(args) > 1 {
		return usage.MalformedCommand(fmt.Sprintf("unexpected argument '%s'", args[1]))
	}
	a.Name = args[0]
	return nil
}

func (a *KeysDeleteAction) Run(context.Context) error {
	wd, err := a.deps.Getwd()
	if err != nil {
		return err
	}
	s, err := a.deps.LoadSettings(wd)
	if err != nil {
		return err
	}

	if err := a.deps.DeleteSecret(a.Name); err != nil && !errors.Is(err, secrets.ErrSecretNotFound) {
		return err
	}
	s.RemoveSecretKey(a.Name)
	if err := s.Save(); err != nil {
		return err
	}

	_, _ = a.app.Output.Println(a.app.Styler.Success(fmt.Sprintf("removed %s from the keyring", a.Name)))
	return nil
}

// KeysListAction prints the names of the protected values. Values stay
// in the keyring.
type KeysListAction struct {
	app  *domain.Application
	deps Deps
}

// NewKeysList creates the action with production dependencies.
func NewKeysList(app *domain.Application) *KeysListAction {
	return &KeysListAction{app: app, deps: DefaultDeps()}
}

func (a *KeysListAction) BindFlags(*flag.FlagSet) {}

func (a *KeysListAction) Run(context.Context) error {
	wd, err := a.deps.Getwd()
	if err != nil {
		return err
	}
	s, err := a.deps.LoadSettings(wd)
	if err != nil {
		return err
	}

	if len(s.SecretKeys) == 0 {
		_, _ = a.app.Output.Println(a.app.Styler.Muted("no protected settings"))
		return nil
	}
	for _, name := range s.SecretKeys {
		_, _ = a.app.Output.Println(a.app.Styler.Info(name))
	}
	return nil
}
