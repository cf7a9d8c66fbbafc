package hosting

import (
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/funcbase/cli/internal/domain"
	"github.com/funcbase/cli/internal/elevate"
	"github.com/funcbase/cli/internal/host"
	"github.com/funcbase/cli/internal/secrets"
)

// Deps are the side-effecting collaborators of the hosting actions,
// injectable so tests can script every privileged or blocking step.
type Deps struct {
	Executable    func() (string, error)
	Getwd         func() (string, error)
	Elevated      func() bool
	Relaunch      func(elevate.Request) (elevate.Result, error)
	CheckSetup    func(req elevate.StartupRequirements) bool
	InstallSetup  func(req elevate.StartupRequirements, executable string) error
	LoadSettings  func(root string) (*secrets.LocalSettings, error)
	WatchSettings func(path string, logger domain.Logger, exit func(int)) (io.Closer, error)
	LoadFunctions func(root string) ([]host.Function, error)
	NewHost       func(cfg host.Config, fns []host.Function, logger domain.Logger, store domain.InvocationStore, out domain.OutputWriter) hostRunner
	Probe         host.ProbeFunc
	Sleep         func(time.Duration)
	Notify        func() (<-chan os.Signal, func())
	Exit          func(code int)
}

// hostRunner is the slice of *host.Host the start action drives.
type hostRunner interface {
	Serve() error
	Close() error
	SetTraceLevel(l host.TraceLevel)
	Functions() []host.Function
}

// DefaultDeps wires the production collaborators.
func DefaultDeps() Deps {
	return Deps{
		Executable:    os.Executable,
		Getwd:         os.Getwd,
		Elevated:      elevate.Elevated,
		Relaunch:      elevate.Run,
		CheckSetup:    elevate.StartupRequirements.Check,
		InstallSetup:  elevate.StartupRequirements.Install,
		LoadSettings:  secrets.Load,
		WatchSettings: secrets.WatchSettings,
		LoadFunctions: host.LoadFunctions,
		NewHost: func(cfg host.Config, fns []host.Function, logger domain.Logger, store domain.InvocationStore, out domain.OutputWriter) hostRunner {
			return host.New(cfg, fns, logger, store, out)
		},
		Probe: host.DefaultProbe,
		Sleep: time.Sleep,
		Notify: func() (<-chan os.Signal, func()) {
			ch := make(chan os.Signal, 1)
			signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
			return ch, func() { signal.Stop(ch) }
		},
		Exit: os.Exit,
	}
}
