package host

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName marks a directory as a function.
const ConfigFileName = "function.yaml"

// Function is one discovered function: a directory under the script root
// holding a function.yaml and the script it points at.
type Function struct {
	Name    string   `yaml:"-"`
	Trigger string   `yaml:"trigger"`
	Route   string   `yaml:"route,omitempty"`
	Methods []string `yaml:"methods,omitempty"`
	Script  string   `yaml:"script,omitempty"`
	Dir     string   `yaml:"-"`
}

// IsHTTP reports whether the function has an HTTP-style trigger.
func (f Function) IsHTTP() bool {
	return strings.EqualFold(f.Trigger, "http")
}

// ScriptPath returns the absolute path of the function's script.
func (f Function) ScriptPath() string {
	return filepath.Join(f.Dir, f.Script)
}

// LoadFunctions scans the script root for function directories. A
// directory without a function.yaml is not a function and is skipped.
func LoadFunctions(root string) ([]Function, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read script root: %w", err)
	}

	var functions []Function
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read %s/%s: %w", entry.Name(), ConfigFileName, err)
		}

		fn := Function{
			Name:    entry.Name(),
			Trigger: "http",
			Script:  "run.sh",
			Dir:     dir,
		}
		if err := yaml.Unmarshal(data, &fn); err != nil {
			return nil, fmt.Errorf("parse %s/%s: %w", entry.Name(), ConfigFileName, err)
		}

		functions = append(functions, fn)
	}

	return functions, nil
}
