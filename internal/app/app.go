package app

// Version is the tool version, overridable at build time with
// -ldflags "-X github.com/funcbase/cli/internal/app.Version=...".
var Version = "0.4.0"
