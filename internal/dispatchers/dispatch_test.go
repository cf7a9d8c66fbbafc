package dispatchers

import (
	"bytes"
	"context"
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/funcbase/cli/internal/binding"
	"github.com/funcbase/cli/internal/domain"
	"github.com/funcbase/cli/internal/log"
	"github.com/funcbase/cli/internal/ui"
	"github.com/funcbase/cli/internal/ui/style"
	"github.com/funcbase/cli/internal/usage"
)

type recordingAction struct {
	Port int
	ran  *bool
}

func (a *recordingAction) BindFlags(fs *flag.FlagSet) {
	fs.IntVarP(&a.Port, "port", "p", 7071, "")
}

func (a *recordingAction) Run(context.Context) error {
	*a.ran = true
	return nil
}

type malformedAction struct{}

func (malformedAction) BindFlags(*flag.FlagSet)   {}
func (malformedAction) Run(context.Context) error { return nil }
func (malformedAction) BindPositional([]string) error {
	return usage.MalformedCommand("bad shape")
}

func testApp(out *bytes.Buffer) *domain.Application {
	return &domain.Application{
		Logger: log.NopLogger{},
		Output: ui.NewWriterTo(out),
		Styler: style.NopStyler{},
	}
}

func testRegistry(t *testing.T, ran *bool) *Registry {
	t.Helper()
	reg := NewRegistry()
	descs := []ActionDescriptor{
		{Context: ContextNone, Name: "start", New: func() binding.Action { return &recordingAction{ran: ran} }},
		{Context: ContextHost, Name: "start", New: func() binding.Action { return &recordingAction{ran: ran} }},
		{Context: ContextHost, Name: "host", New: func() binding.Action { return &recordingAction{ran: ran} }},
		{Context: ContextSettings, SubContext: SubContextKeys, Name: "list", New: func() binding.Action { return &recordingAction{ran: ran} }},
		{Context: ContextSettings, Name: "add", New: func() binding.Action { return malformedAction{} }},
	}
	for _, d := range descs {
		require.NoError(t, reg.Register(d))
	}
	return reg
}

func TestDispatchResolvesContextlessAction(t *testing.T) {
	var out bytes.Buffer
	ran := false

	res, err := Dispatch(testRegistry(t, &ran), testApp(&out), []string{"start", "--port", "8080"})
	require.NoError(t, err)
	require.NoError(t, res.Execute(context.Background()))
	require.True(t, ran)
	require.Zero(t, res.ExitCode)
}

func TestDispatchResolvesNamespacedAction(t *testing.T) {
	var out bytes.Buffer
	ran := false

	res, err := Dispatch(testRegistry(t, &ran), testApp(&out), []string{"host", "start"})
	require.NoError(t, err)
	require.NoError(t, res.Execute(context.Background()))
	require.True(t, ran)
}

// A token that names both a context and an action always binds as the
// context.
func TestDispatchContextWinsOverActionName(t *testing.T) {
	var out bytes.Buffer
	ran := false

	res, err := Dispatch(testRegistry(t, &ran), testApp(&out), []string{"host"})
	require.NoError(t, err)
	require.NoError(t, res.Execute(context.Background()))

	// Resolved as the host context with no action: help, not the "host"
	// action under the host context.
	require.False(t, ran)
}

func TestDispatchSubContextOnlyAfterContext(t *testing.T) {
	var out bytes.Buffer
	ran := false

	res, err := Dispatch(testRegistry(t, &ran), testApp(&out), []string{"settings", "keys", "list"})
	require.NoError(t, err)
	require.NoError(t, res.Execute(context.Background()))
	require.True(t, ran)

	// "keys" without a leading context is not a subContext.
	ran = false
	res, err = Dispatch(testRegistry(t, &ran), testApp(&out), []string{"keys", "list"})
	require.NoError(t, err)
	require.NoError(t, res.Execute(context.Background()))
	require.False(t, ran)
	require.Equal(t, domain.ExitGeneralError, res.ExitCode)
}

func TestDispatchCaseInsensitive(t *testing.T) {
	var out bytes.Buffer
	ran := false

	res, err := Dispatch(testRegistry(t, &ran), testApp(&out), []string{"SETTINGS", "Keys", "LIST"})
	require.NoError(t, err)
	require.NoError(t, res.Execute(context.Background()))
	require.True(t, ran)
}

func TestDispatchEmptyVectorShowsHelpNonZero(t *testing.T) {
	var out bytes.Buffer
	ran := false

	res, err := Dispatch(testRegistry(t, &ran), testApp(&out), nil)
	require.NoError(t, err)
	require.Equal(t, domain.ExitGeneralError, res.ExitCode)
	require.NoError(t, res.Execute(context.Background()))
	require.Contains(t, out.String(), "USAGE")
}

func TestDispatchHelpAliases(t *testing.T) {
	for _, alias := range []string{"help", "h", "?", "--help", "-h", "version", "v", "--version"} {
		var out bytes.Buffer
		ran := false

		res, err := Dispatch(testRegistry(t, &ran), testApp(&out), []string{alias})
		require.NoError(t, err, alias)
		require.Zero(t, res.ExitCode, alias)
		require.NoError(t, res.Execute(context.Background()))
		require.Contains(t, out.String(), "fb ", alias)
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	ran := false

	res, err := Dispatch(testRegistry(t, &ran), testApp(&out), []string{"host", "bogus"})
	require.NoError(t, err)
	require.Equal(t, domain.ExitGeneralError, res.ExitCode)
	require.NoError(t, res.Execute(context.Background()))
	require.Contains(t, out.String(), "'host bogus' is not a fb command")
}

func TestDispatchBindingErrorFallsBackToHelp(t *testing.T) {
	var out bytes.Buffer
	ran := false

	res, err := Dispatch(testRegistry(t, &ran), testApp(&out), []string{"start", "--nope"})
	require.NoError(t, err)
	require.Equal(t, domain.ExitGeneralError, res.ExitCode)
	require.NoError(t, res.Execute(context.Background()))
	require.False(t, ran)
	require.Contains(t, out.String(), "nope")
}

func TestDispatchMalformedCommandIsHardError(t *testing.T) {
	var out bytes.Buffer
	ran := false

	_, err := Dispatch(testRegistry(t, &ran), testApp(&out), []string{"settings", "add"})
	require.Error(t, err)

	var ue *usage.Error
	require.True(t, errors.As(err, &ue))
	require.Equal(t, usage.ErrMalformedCommand, ue.Kind)
	require.Empty(t, out.String())
}

func TestDispatchHelpPrefixScopes(t *testing.T) {
	var out bytes.Buffer
	ran := false

	res, err := Dispatch(testRegistry(t, &ran), testApp(&out), []string{"help", "host", "start"})
	require.NoError(t, err)
	require.NoError(t, res.Execute(context.Background()))
	require.False(t, ran)
	require.Contains(t, out.String(), "host start")
}
