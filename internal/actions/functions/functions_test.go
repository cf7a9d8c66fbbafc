package functions

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/funcbase/cli/internal/domain"
	"github.com/funcbase/cli/internal/host"
	"github.com/funcbase/cli/internal/log"
	"github.com/funcbase/cli/internal/ui"
	"github.com/funcbase/cli/internal/ui/style"
	"github.com/funcbase/cli/internal/usage"
)

func testApp(out *bytes.Buffer) *domain.Application {
	return &domain.Application{
		Logger: log.NopLogger{},
		Output: ui.NewWriterTo(out),
		Styler: style.NopStyler{},
	}
}

func depsInDir(root string) Deps {
	d := DefaultDeps()
	d.Getwd = func() (string, error) { return root, nil }
	return d
}

func TestNewScaffoldsFunction(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer

	a := NewNew(testApp(&out))
	a.deps = depsInDir(root)
	require.NoError(t, a.BindPositional([]string{"Echo"}))
	require.NoError(t, a.Run(context.Background()))

	fns, err := host.LoadFunctions(root)
	require.NoError(t, err)
	require.Len(t, fns, 1)
	require.Equal(t, "Echo", fns[0].Name)
	require.True(t, fns[0].IsHTTP())

	info, err := os.Stat(filepath.Join(root, "Echo", "run.sh"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0755), info.Mode().Perm())
	require.Contains(t, out.String(), "created function Echo")
}

func TestNewWithRouteOverride(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer

	a := NewNew(testApp(&out))
	a.deps = depsInDir(root)
	a.Route = "widgets/{id}"
	require.NoError(t, a.BindPositional([]string{"Widgets"}))
	require.NoError(t, a.Run(context.Background()))

	fns, err := host.LoadFunctions(root)
	require.NoError(t, err)
	require.Equal(t, "widgets/{id}", fns[0].Route)
}

func TestNewRejectsExisting(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer

	a := NewNew(testApp(&out))
	a.deps = depsInDir(root)
	require.NoError(t, a.BindPositional([]string{"Dup"}))
	require.NoError(t, a.Run(context.Background()))

	b := NewNew(testApp(&out))
	b.deps = depsInDir(root)
	require.NoError(t, b.BindPositional([]string{"Dup"}))
	require.Error(t, b.Run(context.Background()))
}

func TestNewPositionalValidation(t *testing.T) {
	a := NewNew(testApp(&bytes.Buffer{}))

	for _, args := range [][]string{
		nil,
		{"ok", "extra"},
		{"1badname"},
		{"has space"},
		{"-leading"},
	} {
		err := a.BindPositional(args)
		require.Error(t, err, "%v", args)

		ue, ok := err.(*usage.Error)
		require.True(t, ok)
		require.Equal(t, usage.ErrMalformedCommand, ue.Kind)
	}

	require.NoError(t, a.BindPositional([]string{"Good_name-2"}))
}

func TestListShowsTriggerAndRoute(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer

	n := NewNew(testApp(&out))
	n.deps = depsInDir(root)
	require.NoError(t, n.BindPositional([]string{"Echo"}))
	require.NoError(t, n.Run(context.Background()))

	out.Reset()
	a := NewList(testApp(&out))
	a.deps = depsInDir(root)
	require.NoError(t, a.Run(context.Background()))

	require.Contains(t, out.String(), "Echo")
	require.Contains(t, out.String(), "http")
	require.Contains(t, out.String(), "/api/Echo")
}

func TestListEmpty(t *testing.T) {
	var out bytes.Buffer
	a := NewList(testApp(&out))
	a.deps = depsInDir(t.TempDir())
	require.NoError(t, a.Run(context.Background()))
	require.Contains(t, out.String(), "no functions found")
}
