package settings

import (
	"context"
	"errors"
	"fmt"
	"slices"

	flag "github.com/spf13/pflag"

	"github.com/funcbase/cli/internal/domain"
	"github.com/funcbase/cli/internal/secrets"
	"github.com/funcbase/cli/internal/usage"
)

// DeleteAction removes a setting. If the name is a protected value, the
// keyring entry goes with it.
type DeleteAction struct {
	app  *domain.Application
	deps Deps

	Name string
}

// NewDelete creates the delete action with production dependencies.
func NewDelete(app *domain.Application) *DeleteAction {
	return &DeleteAction{app: app, deps: DefaultDeps()}
}

func (a *DeleteAction) BindFlags(*flag.FlagSet) {}

func (a *DeleteAction) BindPositional(args []string) error {
	if len(args) == 0 {
		return usage.MalformedCommand("settings delete requires a name")
	}
	if len(args) > 1 {
		return usage.MalformedCommand(fmt.Sprintf("unexpected argument '%s'", args[1]))
	}
	a.Name = args[0]
	return nil
}

func (a *DeleteAction) Run(context.Context) error {
	wd, err := a.deps.Getwd()
	if err != nil {
		return err
	}
	s, err := a.deps.LoadSettings(wd)
	if err != nil {
		return err
	}

	_, plain := s.Values[a.Name]
	protected := slices.Contains(s.SecretKeys, a.Name)
	if !plain && !protected {
		return fmt.Errorf("no setting named %q", a.Name)
	}

	delete(s.Values, a.Name)
	if protected {
		if err := a.deps.DeleteSecret(a.Name); err != nil && !errors.Is(err, secrets.ErrSecretNotFound) {
			return err
		}
		s.RemoveSecretKey(a.Name)
	}
	if err := s.Save(); err != nil {
		return err
	}

	_, _ = a.app.Output.Println(a.app.Styler.Success(fmt.Sprintf("deleted %s", a.Name)))
	return nil
}
