package dispatchers

import (
	"context"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/funcbase/cli/internal/binding"
)

type noopAction struct{}

func (noopAction) BindFlags(*flag.FlagSet)   {}
func (noopAction) Run(context.Context) error { return nil }

func noopFactory() binding.Action { return noopAction{} }

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(ActionDescriptor{
		Context: ContextHost, Name: "start", New: noopFactory,
	}))

	d, ok := reg.Lookup(ContextHost, SubContextNone, "start")
	require.True(t, ok)
	require.Equal(t, "host start", d.Path())

	// Name matching is case-insensitive.
	_, ok = reg.Lookup(ContextHost, SubContextNone, "START")
	require.True(t, ok)

	_, ok = reg.Lookup(ContextFunction, SubContextNone, "start")
	require.False(t, ok)
}

func TestRegistryDuplicateFailsFast(t *testing.T) {
	reg := NewRegistry()
	d := ActionDescriptor{Context: ContextSettings, SubContext: SubContextKeys, Name: "set", New: noopFactory}

	require.NoError(t, reg.Register(d))
	err := reg.Register(d)
	require.Error(t, err)
	require.Contains(t, err.Error(), "settings keys set")
}

func TestRegistrySameNameDifferentNamespace(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(ActionDescriptor{Context: ContextNone, Name: "start", New: noopFactory}))
	require.NoError(t, reg.Register(ActionDescriptor{Context: ContextHost, Name: "start", New: noopFactory}))

	require.Len(t, reg.All(), 2)
}

func TestRegistryRejectsEmptyNameAndNilFactory(t *testing.T) {
	reg := NewRegistry()
	require.Error(t, reg.Register(ActionDescriptor{Name: "", New: noopFactory}))
	require.Error(t, reg.Register(ActionDescriptor{Name: "x"}))
}
