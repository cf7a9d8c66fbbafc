package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "funcbase"

// AppDataDir returns the application data directory for config, logs,
// certificates, and the invocation database.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Restrictive permissions: the dir may hold key material.
	_ = os.MkdirAll(path, 0700)

	return path
}

// ConfigFilePath returns the path to the tool's key=value config file.
func ConfigFilePath() string {
	return filepath.Join(AppDataDir(), "config")
}

// LogFilePath returns the path to the log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "funcbase.log")
}

// DBPath returns the path to the invocation database.
func DBPath() string {
	return filepath.Join(AppDataDir(), "invocations.db")
}

// CertDir returns the directory holding the local serving certificate.
func CertDir() string {
	path := filepath.Join(AppDataDir(), "certs")
	_ = os.MkdirAll(path, 0700)
	return path
}

// CertFile returns the path of the self-signed serving certificate.
func CertFile() string {
	return filepath.Join(CertDir(), "localhost.pem")
}

// KeyFile returns the path of the serving certificate's private key.
func KeyFile() string {
	return filepath.Join(CertDir(), "localhost-key.pem")
}

// TrustAnchorFile is where the serving certificate must be copied for the
// system to trust it. Writing here requires elevation.
func TrustAnchorFile() string {
	return filepath.Join("/usr/local/share/ca-certificates", "funcbase-localhost.crt")
}

// SettingsFileName is the per-project settings file, looked up relative
// to the script root.
const SettingsFileName = "local.settings.yaml"
