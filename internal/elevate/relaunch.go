// Package elevate implements the privileged relaunch protocol: when an
// action's setup cannot complete at the current privilege level, the same
// executable is re-invoked elevated with a command line reconstructed
// from the live action's flag values, and the parent blocks until the
// child exits. One full process round-trip, not an IPC channel:
// elevation requests are rare, synchronous, and user-interactive.
package elevate

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/google/uuid"

	"github.com/funcbase/cli/internal/domain"
)

// Request describes a re-invocation of the current executable.
type Request struct {
	// Executable is the binary to re-invoke (normally os.Executable()).
	Executable string

	// Args is the full reconstructed command: context, subContext, action
	// name, then every rendered flag.
	Args []string

	// WorkDir is carried over from the calling process.
	WorkDir string

	// Elevate requests elevated execution via the system's credential
	// prompt.
	Elevate bool
}

// Result carries the child's captured combined output and exit code.
type Result struct {
	Output   string
	ExitCode int
}

// Success reports whether the child signalled the defined success code.
func (r Result) Success() bool {
	return r.ExitCode == domain.ExitSuccess
}

// Run spawns the child through a command shell that appends its combined
// output to a uniquely-named temporary file, blocks until it exits, and
// reads the capture back. The terminal is inherited so the credential
// prompt is interactive. The capture file is created fresh per attempt
// and not cleaned up here.
//
// A non-zero child exit is reported through Result.ExitCode, not as an
// error; err is reserved for failures to spawn or wait at all.
func Run(req Request) (Result, error) {
	capture := capturePath()

	quoted := make([]string, 0, len(req.Args)+1)
	quoted = append(quoted, shellescape.Quote(req.Executable))
	for _, a := range req.Args {
		quoted = append(quoted, shellescape.Quote(a))
	}
	shellLine := fmt.Sprintf("%s >> %s 2>&1", strings.Join(quoted, " "), shellescape.Quote(capture))

	var cmd *exec.Cmd
	if req.Elevate {
		cmd = exec.Command("sudo", "--", "/bin/sh", "-c", shellLine)
	} else {
		cmd = exec.Command("/bin/sh", "-c", shellLine)
	}
	cmd.Dir = req.WorkDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	runErr := cmd.Run()

	res := Result{}
	if out, err := os.ReadFile(capture); err == nil {
		res.Output = string(out)
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("relaunch: %w", runErr)
	}
	return res, nil
}

func capturePath() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("fb-relaunch-%s.log", uuid.NewString()))
}

// Elevated reports whether the current process already runs with root
// privileges.
func Elevated() bool {
	return os.Geteuid() == 0
}
