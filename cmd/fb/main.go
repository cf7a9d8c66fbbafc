package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/funcbase/cli/internal/app"
	"github.com/funcbase/cli/internal/cli"
	"github.com/funcbase/cli/internal/dispatchers"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	args, noColor := stripNoColor(args)

	opts := app.DefaultOptions()
	opts.StyleEnabled = term.IsTerminal(int(os.Stdout.Fd())) && !noColor

	a, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fb: %v\n", err)
		return 1
	}
	defer func() { _ = app.Close(a) }()

	reg, err := cli.BuildRegistry(a)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fb: %v\n", err)
		return 1
	}

	res, err := dispatchers.Dispatch(reg, a, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		if ue, ok := err.(interface{ GetExitCode() int }); ok {
			return ue.GetExitCode()
		}
		return 1
	}

	return dispatchers.Execute(context.Background(), res, os.Stderr)
}

// stripNoColor removes the global --no-color flag before dispatch; it is
// not an action flag.
func stripNoColor(args []string) ([]string, bool) {
	out := args[:0:0]
	found := false
	for _, a := range args {
		if a == "--no-color" {
			found = true
			continue
		}
		out = append(out, a)
	}
	return out, found
}
