// Package hosting holds the actions that run and observe the local
// functions host: starting it (with privileged setup and the elevated
// relaunch when needed) and browsing recorded invocations.
package hosting

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/funcbase/cli/internal/binding"
	"github.com/funcbase/cli/internal/config"
	"github.com/funcbase/cli/internal/dispatchers"
	"github.com/funcbase/cli/internal/domain"
	"github.com/funcbase/cli/internal/elevate"
	"github.com/funcbase/cli/internal/host"
	"github.com/funcbase/cli/internal/paths"
	"github.com/funcbase/cli/internal/secrets"
)

// StartAction boots the functions host: resolves settings, verifies the
// privileged preconditions (relaunching elevated when they fail), serves
// the discovered functions, and blocks until a signal or a settings
// change ends the session.
type StartAction struct {
	app  *domain.Application
	deps Deps
	desc dispatchers.ActionDescriptor

	Port          int
	NodeDebugPort int
	DebugLevel    host.TraceLevel
	CORS          []string
	Timeout       int
	UseHTTPS      bool
	SetupOnly     bool

	fs *flag.FlagSet
}

// NewStart creates the start action with production dependencies.
func NewStart(app *domain.Application) *StartAction {
	return &StartAction{app: app, deps: DefaultDeps(), DebugLevel: host.TraceInfo}
}

// SetDescriptor records the registration metadata; the relaunch protocol
// rebuilds the command path from it.
func (a *StartAction) SetDescriptor(d dispatchers.ActionDescriptor) {
	a.desc = d
}

// BindFlags declares the start flags. The flag set is retained so the
// relaunch protocol can render the live values back into command form.
func (a *StartAction) BindFlags(fs *flag.FlagSet) {
	fs.IntVarP(&a.Port, "port", "p", 7071, "port the host listens on")
	fs.IntVarP(&a.NodeDebugPort, "nodeDebugPort", "n", 5858, "debug port exposed to function processes")
	fs.VarP(&a.DebugLevel, "debugLevel", "d", "host console trace level (off|verbose|info|warning|error)")
	fs.StringSliceVar(&a.CORS, "cors", nil, "allowed CORS origins (default from config)")
	fs.IntVarP(&a.Timeout, "timeout", "t", 20, "seconds to wait for the host to become ready")
	fs.BoolVar(&a.UseHTTPS, "useHttps", false, "serve over HTTPS with the local certificate")
	fs.BoolVar(&a.SetupOnly, "setupOnly", false, "perform privileged setup and exit")
	_ = fs.MarkHidden("setupOnly")
	a.fs = fs
}

func (a *StartAction) Run(ctx context.Context) error {
	wd, err := a.deps.Getwd()
	if err != nil {
		return err
	}

	settings, err := a.deps.LoadSettings(wd)
	if err != nil {
		return err
	}

	req := elevate.StartupRequirements{
		Port:      a.Port,
		UseHTTPS:  a.UseHTTPS,
		CertFile:  paths.CertFile(),
		KeyFile:   paths.KeyFile(),
		TrustFile: paths.TrustAnchorFile(),
	}

	if a.SetupOnly {
		return a.installSetup(req)
	}

	if !a.deps.CheckSetup(req) {
		if a.deps.Elevated() {
			if err := a.installSetup(req); err != nil {
				return err
			}
		} else if err := a.relaunchElevated(); err != nil {
			return err
		}
	}

	resolved, err := settings.Resolved()
	if err != nil {
		return err
	}
	if err := secrets.ExportEnv(resolved); err != nil {
		return err
	}
	// Function processes read this to open their debug listener.
	if err := secrets.ExportEnv(map[string]string{"FB_NODE_DEBUG_PORT": strconv.Itoa(a.NodeDebugPort)}); err != nil {
		return err
	}

	functions, err := a.deps.LoadFunctions(wd)
	if err != nil {
		return err
	}

	cfg := host.Config{
		Addr:        fmt.Sprintf("localhost:%d", a.Port),
		RoutePrefix: a.routePrefix(settings),
		CORSOrigins: a.corsOrigins(),
		UseHTTPS:    a.UseHTTPS,
		CertFile:    paths.CertFile(),
		KeyFile:     paths.KeyFile(),
	}

	h := a.deps.NewHost(cfg, functions, a.app.Logger, a.app.Store, a.app.Output)
	h.SetTraceLevel(a.DebugLevel)

	serveErr := make(chan error, 1)
	go func() { serveErr <- h.Serve() }()

	warnf := func(format string, args ...any) {
		_, _ = a.app.Output.Println(a.app.Styler.Warning(fmt.Sprintf(format, args...)))
	}
	if err := host.AwaitReady(cfg.Addr, a.Timeout, a.deps.Probe, a.deps.Sleep, warnf); err != nil {
		_ = h.Close()
		if errors.Is(err, host.ErrStartupTimeout) {
			return fmt.Errorf("%w after %d seconds", err, a.Timeout)
		}
		return err
	}

	a.postStartFixups(h, cfg)

	watch, err := a.deps.WatchSettings(settings.Path(), a.app.Logger, a.deps.Exit)
	if err != nil {
		a.app.Logger.Warn("settings watch unavailable: %v", err)
	} else {
		defer func() { _ = watch.Close() }()
	}

	sigs, stop := a.deps.Notify()
	defer stop()

	select {
	case <-sigs:
		_, _ = a.app.Output.Println("shutting down")
		return h.Close()
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		_ = h.Close()
		return ctx.Err()
	}
}

// installSetup performs the privileged install steps. Runs either in the
// elevated child (--setupOnly) or directly when the process already has
// root.
func (a *StartAction) installSetup(req elevate.StartupRequirements) error {
	exe, err := a.deps.Executable()
	if err != nil {
		return err
	}
	return a.deps.InstallSetup(req, exe)
}

// relaunchElevated re-invokes this command elevated with --setupOnly set,
// blocks for the child, and surfaces its captured output verbatim when
// setup fails.
func (a *StartAction) relaunchElevated() error {
	exe, err := a.deps.Executable()
	if err != nil {
		return err
	}
	wd, err := a.deps.Getwd()
	if err != nil {
		return err
	}

	_, _ = a.app.Output.Println(a.app.Styler.Info("privileged setup required; relaunching elevated"))

	// Flip the handshake flag on the live action so the rendered command
	// carries it. Every registered flag renders, so the child sees the
	// identical configuration plus --setupOnly=true.
	a.SetupOnly = true
	args := append(strings.Fields(a.desc.Path()), binding.RenderArgs(a.fs)...)
	a.SetupOnly = false

	res, err := a.deps.Relaunch(elevate.Request{
		Executable: exe,
		Args:       args,
		WorkDir:    wd,
		Elevate:    true,
	})
	if err != nil {
		return err
	}
	if !res.Success() {
		if out := strings.TrimSpace(res.Output); out != "" {
			_, _ = a.app.Output.Println(out)
		}
		return fmt.Errorf("privileged setup failed (exit %d)", res.ExitCode)
	}
	return nil
}

// postStartFixups runs the best-effort adjustments after the host is
// live: host console tracing off so its output stops interleaving with
// the tool's, then the route listing. A panic here must never take down
// a host that already started.
func (a *StartAction) postStartFixups(h hostRunner, cfg host.Config) {
	defer func() {
		if r := recover(); r != nil {
			a.app.Logger.Error("post-start fixups: %v", r)
		}
	}()

	h.SetTraceLevel(host.TraceOff)

	scheme := "http"
	if cfg.UseHTTPS {
		scheme = "https"
	}

	_, _ = a.app.Output.Println(a.app.Styler.Success(fmt.Sprintf("host started on %s://%s", scheme, cfg.Addr)))
	for _, fn := range h.Functions() {
		if !fn.IsHTTP() {
			continue
		}
		route := host.ComposeRoute(cfg.RoutePrefix, fn)
		_, _ = a.app.Output.Printf("   %s: %s://%s/%s\n", a.app.Styler.Header(fn.Name), scheme, cfg.Addr, route)
	}
}

// routePrefix prefers the project settings over the tool config default.
func (a *StartAction) routePrefix(settings *secrets.LocalSettings) string {
	if settings.Host.RoutePrefix != "" {
		return settings.Host.RoutePrefix
	}
	prefix, _ := config.Get("route_prefix")
	return prefix
}

// corsOrigins uses the flag when supplied, otherwise the configured
// default origins.
func (a *StartAction) corsOrigins() []string {
	if a.fs != nil && a.fs.Changed("cors") {
		return a.CORS
	}
	defaults, _ := config.Get("cors_origins")
	return strings.Split(defaults, ",")
}
