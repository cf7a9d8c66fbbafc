package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/funcbase/cli/internal/paths"
)

// ReadLines reads the raw config file lines. A missing file is not an
// error; it reads as empty.
func ReadLines() ([]string, error) {
	f, err := os.Open(paths.ConfigFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// Parse converts key=value lines into a map. Blank lines and lines
// starting with # are ignored.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		key, value, found := strings.Cut(trimmed, "=")
		if !found {
			return nil, fmt.Errorf("config line %d: expected key=value, got %q", i+1, line)
		}
		cfg[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return cfg, nil
}
