package config

// Default configuration values (in code, not persisted).
var Defaults = map[string]func() string{
	"enable_log":   func() string { return "true" },
	"log_level":    func() string { return "debug" },
	"route_prefix": func() string { return "api" },
	// Origins allowed when --cors is not supplied.
	"cors_origins": func() string {
		return "http://localhost:3000,http://localhost:5173,http://127.0.0.1:3000"
	},
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	lines, err := ReadLines()
	if err == nil {
		if cfg, perr := Parse(lines); perr == nil {
			if value, exists := cfg[key]; exists {
				return value, true
			}
		}
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}

	return "", false
}

// GetAll returns all config values (user overrides merged with defaults).
func GetAll() (map[string]string, error) {
	merged := make(map[string]string, len(Defaults))
	for key, fn := range Defaults {
		merged[key] = fn()
	}

	lines, err := ReadLines()
	if err != nil {
		return merged, err
	}

	cfg, err := Parse(lines)
	if err != nil {
		return merged, err
	}

	for key, value := range cfg {
		merged[key] = value
	}
	return merged, nil
}
