package dispatchers

import (
	"context"
	"errors"
	"strings"

	"github.com/funcbase/cli/internal/binding"
	"github.com/funcbase/cli/internal/domain"
	"github.com/funcbase/cli/internal/usage"
)

// helpAliases are the lone tokens that resolve to the unscoped help
// action. The version aliases land here too; the help banner carries the
// version, so there is no separate version action to instantiate.
var helpAliases = map[string]bool{
	"help":      true,
	"h":         true,
	"?":         true,
	"--help":    true,
	"-h":        true,
	"version":   true,
	"v":         true,
	"--version": true,
}

// Resolution is a ready-to-run outcome of dispatch: either a bound action
// or a help display.
type Resolution struct {
	Execute  func(ctx context.Context) error
	ExitCode int
}

// Dispatch tokenizes the argument vector into context, subContext, action
// name and remaining tokens, resolves the registry, instantiates and
// binds the action. Every resolution failure short of a malformed command
// falls back to a scoped help display rather than failing silently.
//
// The ordering is a fixed three-level namespace: a token that could be
// either a context or an action name is always treated as context, and a
// subContext is only attempted after a context matched.
func Dispatch(reg *Registry, app *domain.Application, tokens []string) (Resolution, error) {
	if len(tokens) == 0 {
		// No command: show help, exit non-zero (like git).
		res := helpResolution(reg, app, HelpScope{})
		res.ExitCode = domain.ExitGeneralError
		return res, nil
	}
	if len(tokens) == 1 && helpAliases[strings.ToLower(tokens[0])] {
		return helpResolution(reg, app, HelpScope{}), nil
	}

	isHelp := false
	if strings.EqualFold(tokens[0], "help") {
		isHelp = true
		tokens = tokens[1:]
	}

	ctx := ContextNone
	sub := SubContextNone
	if len(tokens) > 0 {
		if c, ok := ParseContext(tokens[0]); ok {
			ctx = c
			tokens = tokens[1:]
		}
	}
	if ctx != ContextNone && len(tokens) > 0 {
		if s, ok := ParseSubContext(tokens[0]); ok {
			sub = s
			tokens = tokens[1:]
		}
	}

	var name string
	if len(tokens) > 0 {
		name = tokens[0]
		tokens = tokens[1:]
	}

	if name == "" || isHelp {
		return helpResolution(reg, app, HelpScope{Context: ctx, SubContext: sub, Hints: tokens}), nil
	}

	desc, ok := reg.Lookup(ctx, sub, name)
	if !ok {
		scope := HelpScope{Context: ctx, SubContext: sub}
		scope.Errors = []string{usage.UnknownCommand(fullCommand(ctx, sub, name)).Error()}
		res := helpResolution(reg, app, scope)
		res.ExitCode = domain.ExitGeneralError
		return res, nil
	}

	act := desc.New()
	if da, ok := act.(DescriptorAware); ok {
		da.SetDescriptor(desc)
	}

	_, result := binding.Bind(act, desc.Name, tokens)
	if result.HasErrors() {
		// A malformed-but-recognized command is a hard stop, not a
		// help fallback.
		for _, err := range result.Errors {
			var ue *usage.Error
			if errors.As(err, &ue) && ue.Kind == usage.ErrMalformedCommand {
				return Resolution{}, ue
			}
		}
		scope := HelpScope{Context: ctx, SubContext: sub, Action: &desc, Errors: result.ErrorMessages()}
		res := helpResolution(reg, app, scope)
		res.ExitCode = domain.ExitGeneralError
		return res, nil
	}

	return Resolution{Execute: act.Run}, nil
}

func fullCommand(ctx Context, sub SubContext, name string) string {
	parts := make([]string, 0, 3)
	if s := ctx.String(); s != "" {
		parts = append(parts, s)
	}
	if s := sub.String(); s != "" {
		parts = append(parts, s)
	}
	parts = append(parts, name)
	return strings.Join(parts, " ")
}

func helpResolution(reg *Registry, app *domain.Application, scope HelpScope) Resolution {
	return Resolution{Execute: HelpAction(reg, app, scope)}
}
