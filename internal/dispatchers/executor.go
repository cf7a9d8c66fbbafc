package dispatchers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/funcbase/cli/internal/domain"
	"github.com/funcbase/cli/internal/usage"
)

// Execute runs the resolved action exactly once and returns the process
// exit code. Unhandled failures are reported without crashing: a short
// message by default, the full stack only when the debug env flag is set.
func Execute(ctx context.Context, res Resolution, errOut io.Writer) int {
	err := runProtected(ctx, res)
	if err != nil {
		var ue *usage.Error
		if errors.As(err, &ue) {
			fmt.Fprintln(errOut, ue.Error())
			return ue.GetExitCode()
		}
		fmt.Fprintf(errOut, "fb: %v\n", err)
		return domain.ExitGeneralError
	}
	return res.ExitCode
}

func runProtected(ctx context.Context, res Resolution) (err error) {
	defer func() {
		if r := recover(); r == nil {
			return
		} else if os.Getenv(domain.DebugEnvVar) != "" {
			err = fmt.Errorf("%v\n%s", r, debug.Stack())
		} else {
			err = fmt.Errorf("%v", r)
		}
	}()
	return res.Execute(ctx)
}
