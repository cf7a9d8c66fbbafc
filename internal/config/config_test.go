package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]string{
		"# comment",
		"",
		"route_prefix = v1",
		"log_level=debug",
		"  cors_origins = http://a , ",
	})
	require.NoError(t, err)
	require.Equal(t, "v1", cfg["route_prefix"])
	require.Equal(t, "debug", cfg["log_level"])
	require.Equal(t, "http://a ,", cfg["cors_origins"])
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, err := Parse([]string{"no equals sign"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "line 1")
}

func TestGetFallsBackToDefaults(t *testing.T) {
	v, ok := Get("route_prefix")
	require.True(t, ok)
	require.NotEmpty(t, v)

	_, ok = Get("no_such_key")
	require.False(t, ok)
}

func TestGetAllMergesDefaults(t *testing.T) {
	all, err := GetAll()
	require.NoError(t, err)
	for key := range Defaults {
		require.Contains(t, all, key)
	}
}
