// Package binding is the option binder: it maps raw command-line tokens
// onto an action's typed flag fields through pflag, tracks which flags
// the user supplied versus which stayed at their defaults, and renders a
// bound flag set back into command-line form for the relaunch protocol.
package binding

import (
	"context"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// requiredAnnotation marks flags that must be set on the command line.
const requiredAnnotation = "funcbase_flag_required"

// Action is a dispatchable unit of command behavior. BindFlags declares
// the action's typed flags against the given set; Run is the entry point,
// invoked exactly once by the executor.
type Action interface {
	BindFlags(fs *flag.FlagSet)
	Run(ctx context.Context) error
}

// PositionalBinder is implemented by actions that accept positional
// arguments after their flags. Leftover tokens on actions that do not
// implement it are a binding error.
type PositionalBinder interface {
	BindPositional(args []string) error
}

// Result is the outcome of binding a token list to an action.
// Matched holds flags the command line set; Unmatched lists flags left at
// their defaults. The unmatched set is exactly what the relaunch protocol
// must re-serialize so the child's effective configuration is identical.
type Result struct {
	Matched   map[string]string
	Unmatched []string
	Errors    []error
}

// HasErrors reports whether any required flag failed to parse or an
// unknown token was supplied.
func (r Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// ErrorMessages returns the binding errors as display strings.
func (r Result) ErrorMessages() []string {
	msgs := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		msgs[i] = err.Error()
	}
	return msgs
}

// MarkRequired flags the named options as required. Binding reports an
// error for each one the command line leaves unset.
func MarkRequired(fs *flag.FlagSet, names ...string) {
	for _, name := range names {
		// SetAnnotation only fails for unknown flags, which is a
		// programming error surfaced by the binder tests.
		_ = fs.SetAnnotation(name, requiredAnnotation, []string{"true"})
	}
}

// Bind declares the action's flags, parses tokens against them, applies
// positional arguments, and returns the populated flag set together with
// the parse result. The flag set is returned even on error so callers can
// render usage for it.
func Bind(a Action, name string, tokens []string) (*flag.FlagSet, Result) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	a.BindFlags(fs)

	res := Result{Matched: make(map[string]string)}

	if err := fs.Parse(tokens); err != nil {
		res.Errors = append(res.Errors, err)
		return fs, res
	}

	fs.VisitAll(func(f *flag.Flag) {
		if f.Changed {
			res.Matched[f.Name] = f.Value.String()
			return
		}
		res.Unmatched = append(res.Unmatched, f.Name)
		if _, required := f.Annotations[requiredAnnotation]; required {
			res.Errors = append(res.Errors, fmt.Errorf("required flag --%s not set", f.Name))
		}
	})

	rest := fs.Args()
	if pb, ok := a.(PositionalBinder); ok {
		if err := pb.BindPositional(rest); err != nil {
			res.Errors = append(res.Errors, err)
		}
	} else if len(rest) > 0 {
		res.Errors = append(res.Errors, fmt.Errorf("unrecognized arguments: %s", strings.Join(rest, " ")))
	}

	return fs, res
}

// RenderArgs reconstructs a command line from the current values of every
// flag in the set, defaults included. Re-binding the rendered arguments
// to a fresh instance of the same action reproduces the source values:
//
//   - booleans render as --name=true|false (a space-separated boolean
//     would not re-parse as the flag's value)
//   - slice values render as one comma-joined token
//   - everything else renders as --name value
//
// Rendering is driven purely by the flag set, so flags added to an action
// automatically participate in relaunch.
func RenderArgs(fs *flag.FlagSet) []string {
	var args []string
	fs.VisitAll(func(f *flag.Flag) {
		if f.Value.Type() == "bool" {
			args = append(args, fmt.Sprintf("--%s=%s", f.Name, f.Value.String()))
			return
		}
		if sv, ok := f.Value.(flag.SliceValue); ok {
			args = append(args, "--"+f.Name, strings.Join(sv.GetSlice(), ","))
			return
		}
		args = append(args, "--"+f.Name, f.Value.String())
	})
	return args
}
