package app

import (
	"github.com/funcbase/cli/internal/config"
	"github.com/funcbase/cli/internal/domain"
	"github.com/funcbase/cli/internal/log"
	"github.com/funcbase/cli/internal/paths"
	"github.com/funcbase/cli/internal/store"
	"github.com/funcbase/cli/internal/ui"
	"github.com/funcbase/cli/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	LogEnabled bool
	LogLevel   log.Level

	StyleEnabled bool
	StyleConfig  map[string]string

	// StorePath overrides the invocation database location. Empty means
	// the default under the app data dir.
	StorePath string
}

// DefaultOptions returns the default application options, honoring the
// config file.
func DefaultOptions() Options {
	logEnabled, _ := config.Get("enable_log")
	logLevel, _ := config.Get("log_level")
	styleConfig, _ := config.GetAll()

	return Options{
		LogEnabled:   logEnabled == "true",
		LogLevel:     log.ParseLevel(logLevel),
		StyleEnabled: true,
		StyleConfig:  styleConfig,
	}
}

// New creates an Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger
	if opts.LogEnabled {
		l, err := log.New(paths.LogFilePath(), opts.LogLevel)
		if err != nil {
			// Logging is best-effort; fall back to NopLogger.
			logger = log.NopLogger{}
		} else {
			log.Init(l)
			logger = l
		}
	} else {
		logger = log.NopLogger{}
	}

	storePath := opts.StorePath
	if storePath == "" {
		storePath = paths.DBPath()
	}
	invStore, err := store.New(storePath)
	if err != nil {
		return nil, err
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	return &domain.Application{
		Logger: logger,
		Output: ui.NewWriter(),
		Styler: style.NewStyler(),
		Store:  invStore,
	}, nil
}

// NewForTesting creates an Application suitable for tests: no log file,
// no styling, caller-provided store.
func NewForTesting(invStore domain.InvocationStore) *domain.Application {
	return &domain.Application{
		Logger: log.NopLogger{},
		Output: ui.NewWriter(),
		Styler: style.NopStyler{},
		Store:  invStore,
	}
}

// Close cleans up application resources.
func Close(a *domain.Application) error {
	if a.Logger != nil {
		_ = a.Logger.Close()
	}
	if a.Store != nil {
		_ = a.Store.Close()
	}
	return nil
}
