package binding

import (
	"context"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

type fakeAction struct {
	Port    int
	Verbose bool
	Origins []string
	Name    string

	required []string
	ran      bool
}

func (a *fakeAction) BindFlags(fs *flag.FlagSet) {
	fs.IntVarP(&a.Port, "port", "p", 7071, "")
	fs.BoolVar(&a.Verbose, "verbose", false, "")
	fs.StringSliceVar(&a.Origins, "origins", nil, "")
	fs.StringVar(&a.Name, "name", "", "")
	if len(a.required) > 0 {
		MarkRequired(fs, a.required...)
	}
}

func (a *fakeAction) Run(context.Context) error {
	a.ran = true
	return nil
}

func TestBindMatchedAndUnmatched(t *testing.T) {
	a := &fakeAction{}
	_, res := Bind(a, "start", []string{"--port", "8080", "--verbose"})

	require.False(t, res.HasErrors())
	require.Equal(t, 8080, a.Port)
	require.True(t, a.Verbose)

	require.Equal(t, "8080", res.Matched["port"])
	require.Equal(t, "true", res.Matched["verbose"])
	require.NotContains(t, res.Matched, "name")
	require.Contains(t, res.Unmatched, "name")
	require.Contains(t, res.Unmatched, "origins")
}

func TestBindShorthand(t *testing.T) {
	a := &fakeAction{}
	_, res := Bind(a, "start", []string{"-p", "9000"})

	require.False(t, res.HasErrors())
	require.Equal(t, 9000, a.Port)
	require.Equal(t, "9000", res.Matched["port"])
}

func TestBindUnknownFlag(t *testing.T) {
	a := &fakeAction{}
	_, res := Bind(a, "start", []string{"--nope"})

	require.True(t, res.HasErrors())
}

func TestBindRequiredFlagMissing(t *testing.T) {
	a := &fakeAction{required: []string{"name"}}
	_, res := Bind(a, "start", nil)

	require.True(t, res.HasErrors())
	require.Contains(t, res.ErrorMessages()[0], "--name")
}

func TestBindRequiredFlagPresent(t *testing.T) {
	a := &fakeAction{required: []string{"name"}}
	_, res := Bind(a, "start", []string{"--name", "x"})

	require.False(t, res.HasErrors())
}

func TestBindRejectsLeftoverPositionals(t *testing.T) {
	a := &fakeAction{}
	_, res := Bind(a, "start", []string{"extra"})

	require.True(t, res.HasErrors())
	require.Contains(t, res.ErrorMessages()[0], "extra")
}

type positionalAction struct {
	fakeAction
	args []string
}

func (a *positionalAction) BindPositional(args []string) error {
	a.args = args
	return nil
}

func TestBindPositionals(t *testing.T) {
	a := &positionalAction{}
	_, res := Bind(a, "add", []string{"KEY", "value", "--port", "1"})

	require.False(t, res.HasErrors())
	require.Equal(t, []string{"KEY", "value"}, a.args)
	require.Equal(t, 1, a.Port)
}

// Rendering a bound flag set and re-binding the result must reproduce
// the source values exactly, defaults included.
func TestRenderArgsRoundTrip(t *testing.T) {
	cases := [][]string{
		nil,
		{"--port", "8443", "--verbose"},
		{"--origins", "http://a:1,http://b:2", "--name", "zed"},
		{"-p", "80", "--verbose=false"},
	}

	for _, tokens := range cases {
		src := &fakeAction{}
		fs, res := Bind(src, "start", tokens)
		require.False(t, res.HasErrors())

		dst := &fakeAction{}
		_, res = Bind(dst, "start", RenderArgs(fs))
		require.False(t, res.HasErrors())

		require.Equal(t, src.Port, dst.Port)
		require.Equal(t, src.Verbose, dst.Verbose)
		require.ElementsMatch(t, src.Origins, dst.Origins)
		require.Equal(t, src.Name, dst.Name)
	}
}

func TestRenderArgsBooleanForm(t *testing.T) {
	a := &fakeAction{}
	fs, _ := Bind(a, "start", []string{"--verbose"})

	args := RenderArgs(fs)
	require.Contains(t, args, "--verbose=true")
	require.NotContains(t, args, "--verbose")
}
