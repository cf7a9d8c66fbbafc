package settings

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/funcbase/cli/internal/domain"
	"github.com/funcbase/cli/internal/log"
	"github.com/funcbase/cli/internal/secrets"
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

type env struct {
	root string
	out  bytes.Buffer
	app  *domain.Application
}

func newEnv(t *testing.T) *env {
	t.Helper()
	keyring.MockInit()
	e := &env{root: t.TempDir()}
	e.app = testApp(&e.out)
	return e
}

func (e *env) deps() Deps {
	d := DefaultDeps()
	d.Getwd = func() (string, error) { return e.root, nil }
	return d
}

func (e *env) load(t *testing.T) *secrets.LocalSettings {
	t.Helper()
	s, err := secrets.Load(e.root)
	require.NoError(t, err)
	return s
}

func TestAddAndList(t *testing.T) {
	e := newEnv(t)

	add := NewAdd(e.app)
	add.deps = e.deps()
	require.NoError(t, add.BindPositional([]string{"GREETING", "hello"}))
	require.NoError(t, add.Run(context.Background()))

	require.Equal(t, "hello", e.load(t).Values["GREETING"])

	e.out.Reset()
	list := NewList(e.app)
	list.deps = e.deps()
	require.NoError(t, list.Run(context.Background()))
	require.Contains(t, e.out.String(), "GREETING")
	require.Contains(t, e.out.String(), "hello")
}

func TestAddValidation(t *testing.T) {
	e := newEnv(t)
	add := NewAdd(e.app)

	for _, args := range [][]string{nil, {"ONLY_NAME"}, {"A", "b", "c"}, {"bad-name", "v"}} {
		err := add.BindPositional(args)
		require.Error(t, err, "%v", args)
		ue, ok := err.(*usage.Error)
		require.True(t, ok)
		require.Equal(t, usage.ErrMalformedCommand, ue.Kind)
	}
}

func TestDeletePlainSetting(t *testing.T) {
	e := newEnv(t)

	add := NewAdd(e.app)
	add.deps = e.deps()
	require.NoError(t, add.BindPositional([]string{"X", "1"}))
	require.NoError(t, add.Run(context.Background()))

	del := NewDelete(e.app)
	del.deps = e.deps()
	require.NoError(t, del.BindPositional([]string{"X"}))
	require.NoError(t, del.Run(context.Background()))

	require.NotContains(t, e.load(t).Values, "X")
}

func TestDeleteUnknownSetting(t *testing.T) {
	e := newEnv(t)
	del := NewDelete(e.app)
	del.deps = e.deps()
	require.NoError(t, del.BindPositional([]string{"GHOST"}))
	require.Error(t, del.Run(context.Background()))
}

func TestKeysSetMasksAndIndexes(t *testing.T) {
	e := newEnv(t)

	set := NewKeysSet(e.app)
	set.deps = e.deps()
	require.NoError(t, set.BindPositional([]string{"API_KEY", "s3cret"}))
	require.NoError(t, set.Run(context.Background()))

	// The settings file indexes the name but never the value.
	s := e.load(t)
	require.Equal(t, []string{"API_KEY"}, s.SecretKeys)
	require.NotContains(t, s.Values, "API_KEY")

	e.out.Reset()
	list := NewList(e.app)
	list.deps = e.deps()
	require.NoError(t, list.Run(context.Background()))
	require.Contains(t, e.out.String(), "API_KEY")
	require.Contains(t, e.out.String(), "(protected)")
	require.NotContains(t, e.out.String(), "s3cret")
}

func TestKeysSetReplacesPlainValue(t *testing.T) {
	e := newEnv(t)

	add := NewAdd(e.app)
	add.deps = e.deps()
	require.NoError(t, add.BindPositional([]string{"TOKEN", "plain"}))
	require.NoError(t, add.Run(context.Background()))

	set := NewKeysSet(e.app)
	set.deps = e.deps()
	require.NoError(t, set.BindPositional([]string{"TOKEN", "hidden"}))
	require.NoError(t, set.Run(context.Background()))

	s := e.load(t)
	require.NotContains(t, s.Values, "TOKEN")
	require.Equal(t, []string{"TOKEN"}, s.SecretKeys)
}

func TestKeysDeleteRemovesIndexEntry(t *testing.T) {
	e := newEnv(t)

	set := NewKeysSet(e.app)
	set.deps = e.deps()
	require.NoError(t, set.BindPositional([]string{"API_KEY", "v"}))
	require.NoError(t, set.Run(context.Background()))

	del := NewKeysDelete(e.app)
	del.deps = e.deps()
	require.NoError(t, del.BindPositional([]string{"API_KEY"}))
	require.NoError(t, del.Run(context.Background()))

	require.Empty(t, e.load(t).SecretKeys)
}

func TestKeysList(t *testing.T) {
	e := newEnv(t)

	list := NewKeysList(e.app)
	list.deps = e.deps()
	require.NoError(t, list.Run(context.Background()))
	require.Contains(t, e.out.String(), "no protected settings")

	set := NewKeysSet(e.app)
	set.deps = e.deps()
	require.NoError(t, set.BindPositional([]string{"A_KEY", "v"}))
	require.NoError(t, set.Run(context.Background()))

	e.out.Reset()
	require.NoError(t, list.Run(context.Background()))
	require.Contains(t, e.out.String(), "A_KEY")
}
