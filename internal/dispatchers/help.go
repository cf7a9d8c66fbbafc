package dispatchers

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/funcbase/cli/internal/app"
	"github.com/funcbase/cli/internal/domain"
)

// HelpScope narrows a help display to whatever part of the namespace the
// dispatcher managed to resolve.
type HelpScope struct {
	Context    Context
	SubContext SubContext
	Action     *ActionDescriptor
	Hints      []string
	Errors     []string
}

func (s HelpScope) scoped() bool {
	return s.Context != ContextNone || s.SubContext != SubContextNone || s.Action != nil
}

// HelpAction generates help output for the given scope.
func HelpAction(reg *Registry, a *domain.Application, scope HelpScope) func(context.Context) error {
	return func(context.Context) error {
		var out bytes.Buffer

		for _, msg := range scope.Errors {
			out.WriteString(a.Styler.Error(msg))
			out.WriteString("\n")
		}
		if len(scope.Errors) > 0 {
			out.WriteString("\n")
		}

		if scope.Action != nil {
			writeActionHelp(&out, a, *scope.Action)
		} else if scope.scoped() {
			writeScopedHelp(&out, reg, a, scope)
		} else {
			writeRootHelp(&out, reg, a)
		}

		_, err := a.Output.Write(out.Bytes())
		return err
	}
}

func writeRootHelp(out *bytes.Buffer, reg *Registry, a *domain.Application) {
	fmt.Fprintf(out, "fb %s - local functions host\n\n", app.Version)
	out.WriteString(a.Styler.Header("USAGE") + "\n")
	out.WriteString("   " + a.Styler.Info("fb") + " " + a.Styler.Muted("[<context>] [<subcontext>] <action> [--flag value ...]") + "\n\n")

	// Group actions by context, contextless actions first.
	byContext := make(map[Context][]ActionDescriptor)
	for _, d := range reg.All() {
		byContext[d.Context] = append(byContext[d.Context], d)
	}

	for _, ctx := range []Context{ContextNone, ContextHost, ContextFunction, ContextSettings} {
		descs := byContext[ctx]
		if len(descs) == 0 {
			continue
		}
		title := ctx.String()
		if title == "" {
			title = "general"
		}
		out.WriteString(a.Styler.Header(title) + "\n")
		for _, d := range descs {
			fmt.Fprintf(out, "   %s  %s\n", a.Styler.Info(fmt.Sprintf("%-22s", d.Path())), d.Help)
		}
		out.WriteString("\n")
	}

	out.WriteString("See 'fb help <command>' for detailed help on a specific command.\n")
}

func writeScopedHelp(out *bytes.Buffer, reg *Registry, a *domain.Application, scope HelpScope) {
	var descs []ActionDescriptor
	for _, d := range reg.All() {
		if d.Context != scope.Context {
			continue
		}
		if scope.SubContext != SubContextNone && d.SubContext != scope.SubContext {
			continue
		}
		descs = append(descs, d)
	}

	if len(descs) == 0 {
		out.WriteString("No commands registered for this context.\n")
		return
	}

	out.WriteString(a.Styler.Header("COMMANDS") + "\n")
	for _, d := range descs {
		fmt.Fprintf(out, "   %s  %s\n", a.Styler.Info(fmt.Sprintf("%-22s", d.Path())), d.Help)
	}
	out.WriteString("\nSee 'fb help <command>' for detailed help on a specific command.\n")
}

func writeActionHelp(out *bytes.Buffer, a *domain.Application, desc ActionDescriptor) {
	fmt.Fprintf(out, "%s - %s\n\n", desc.Path(), desc.Help)
	out.WriteString(a.Styler.Header("USAGE") + "\n")
	out.WriteString("   " + a.Styler.Info("fb "+desc.Path()) + " " + a.Styler.Muted("[flags]") + "\n")

	// Instantiate a throwaway copy to list its declared flags.
	fs := flag.NewFlagSet(desc.Name, flag.ContinueOnError)
	desc.New().BindFlags(fs)
	if usages := strings.TrimRight(fs.FlagUsages(), "\n"); usages != "" {
		out.WriteString("\n" + a.Styler.Header("FLAGS") + "\n")
		out.WriteString(usages + "\n")
	}
}
