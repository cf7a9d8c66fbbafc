// Package secrets manages the per-project local settings file and the
// protected values stored in the OS keyring. Resolved settings are what
// the host exports to the process environment before running functions.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/funcbase/cli/internal/paths"
)

// HostSettings is the host block of the settings file.
type HostSettings struct {
	// RoutePrefix is prepended to every function route. Empty means the
	// configured default.
	RoutePrefix string `yaml:"routePrefix,omitempty"`
}

// LocalSettings is the per-project settings file. Plain values live in
// the file; protected values live in the OS keyring, with only their
// names indexed here.
type LocalSettings struct {
	Values     map[string]string `yaml:"values"`
	SecretKeys []string          `yaml:"secretKeys,omitempty"`
	Host       HostSettings      `yaml:"host,omitempty"`

	path string
}

// SettingsPath returns the settings file path for a script root.
func SettingsPath(root string) string {
	return filepath.Join(root, paths.SettingsFileName)
}

// Load reads the settings file under the given script root. A missing
// file loads as empty settings.
func Load(root string) (*LocalSettings, error) {
	s := &LocalSettings{
		Values: make(map[string]string),
		path:   SettingsPath(root),
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", paths.SettingsFileName, err)
	}
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	return s, nil
}

// Path returns the file this settings object loads from and saves to.
func (s *LocalSettings) Path() string {
	return s.path
}

// Save writes the settings back to disk.
func (s *LocalSettings) Save() error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// AddSecretKey records a protected value name in the index.
func (s *LocalSettings) AddSecretKey(name string) {
	if !slices.Contains(s.SecretKeys, name) {
		s.SecretKeys = append(s.SecretKeys, name)
		sort.Strings(s.SecretKeys)
	}
}

// RemoveSecretKey drops a protected value name from the index.
func (s *LocalSettings) RemoveSecretKey(name string) {
	s.SecretKeys = slices.DeleteFunc(s.SecretKeys, func(k string) bool {
		return k == name
	})
}

// Resolved merges plain values with keyring lookups for every indexed
// secret key. A secret missing from the keyring is an error: the settings
// file promises a value the environment cannot provide.
func (s *LocalSettings) Resolved() (map[string]string, error) {
	out := make(map[string]string, len(s.Values)+len(s.SecretKeys))
	for k, v := range s.Values {
		out[k] = v
	}
	for _, name := range s.SecretKeys {
		value, err := GetSecret(name)
		if err != nil {
			return nil, fmt.Errorf("resolve secret %q: %w", name, err)
		}
		out[name] = value
	}
	return out, nil
}

// ExportEnv applies the resolved values as process-scoped environment
// variables. Exec'd function scripts inherit them; this is the one
// boundary where settings genuinely have to cross into the environment.
func ExportEnv(values map[string]string) error {
	for k, v := range values {
		if err := os.Setenv(k, v); err != nil {
			return fmt.Errorf("export %s: %w", k, err)
		}
	}
	return nil
}
