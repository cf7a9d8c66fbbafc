package hosting

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/funcbase/cli/internal/domain"
	"github.com/funcbase/cli/internal/log"
	"github.com/funcbase/cli/internal/ui"
	"github.com/funcbase/cli/internal/ui/style"
)

type fixedStore struct {
	invs []domain.Invocation
}

func (f *fixedStore) Insert(inv domain.Invocation) error { f.invs = append(f.invs, inv); return nil }
func (f *fixedStore) Close() error                       { return nil }

func (f *fixedStore) List(limit int) ([]domain.Invocation, error) {
	if limit > len(f.invs) {
		limit = len(f.invs)
	}
	return f.invs[:limit], nil
}

func TestLogsListsInvocations(t *testing.T) {
	var out bytes.Buffer
	store := &fixedStore{invs: []domain.Invocation{
		{Function: "Echo", Route: "api/Echo", Method: "POST", Status: 200, DurationMs: 12, CreatedAt: time.Now()},
		{Function: "Boom", Route: "api/Boom", Method: "GET", Status: 500, DurationMs: 3, CreatedAt: time.Now()},
	}}
	app := &domain.Application{
		Logger: log.NopLogger{},
		Output: ui.NewWriterTo(&out),
		Styler: style.NopStyler{},
		Store:  store,
	}

	a := NewLogs(app)
	a.Limit = 10
	require.NoError(t, a.Run(context.Background()))

	require.Contains(t, out.String(), "Echo")
	require.Contains(t, out.String(), "/api/Boom")
	require.Contains(t, out.String(), "500")
	require.Contains(t, out.String(), "12ms")
}

func TestLogsEmptyStore(t *testing.T) {
	var out bytes.Buffer
	app := &domain.Application{
		Logger: log.NopLogger{},
		Output: ui.NewWriterTo(&out),
		Styler: style.NopStyler{},
		Store:  &fixedStore{},
	}

	a := NewLogs(app)
	require.NoError(t, a.Run(context.Background()))
	require.Contains(t, out.String(), "no invocations recorded")
}

func TestLogsInteractiveRequiresTerminal(t *testing.T) {
	app := &domain.Application{
		Logger: log.NopLogger{},
		Output: ui.NewWriterTo(&bytes.Buffer{}),
		Styler: style.NopStyler{},
		Store:  &fixedStore{},
	}

	a := NewLogs(app)
	a.Interactive = true
	a.isTerminal = func(int) bool { return false }

	require.Error(t, a.Run(context.Background()))
}
