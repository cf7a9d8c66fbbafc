package domain

// AppName is used for paths, keyring service names, and env var prefixes.
const AppName = "funcbase"

// DebugEnvVar enables full diagnostic output (stack traces) when set to
// any non-empty value.
const DebugEnvVar = "FB_DEBUG"

// Process exit codes. The relaunch protocol uses the child's exit code as
// its success signal, so these are part of the tool's contract.
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
)
