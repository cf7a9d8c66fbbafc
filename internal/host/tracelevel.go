package host

import (
	"fmt"
	"strings"
)

// TraceLevel controls the host's own console tracing. Off suppresses
// everything; the other levels are thresholds from most to least chatty.
type TraceLevel int

const (
	TraceOff TraceLevel = iota
	TraceVerbose
	TraceInfo
	TraceWarning
	TraceError
)

func (l TraceLevel) name() string {
	switch l {
	case TraceOff:
		return "off"
	case TraceVerbose:
		return "verbose"
	case TraceInfo:
		return "info"
	case TraceWarning:
		return "warning"
	case TraceError:
		return "error"
	default:
		return "unknown"
	}
}

// allows reports whether a message of the given severity should be
// emitted under this level.
func (l TraceLevel) allows(sev TraceLevel) bool {
	return l != TraceOff && sev >= l
}

// ParseTraceLevel converts a string to a TraceLevel, case-insensitive.
func ParseTraceLevel(s string) (TraceLevel, error) {
	switch strings.ToLower(s) {
	case "off":
		return TraceOff, nil
	case "verbose":
		return TraceVerbose, nil
	case "info":
		return TraceInfo, nil
	case "warning":
		return TraceWarning, nil
	case "error":
		return TraceError, nil
	default:
		return TraceInfo, fmt.Errorf("invalid trace level %q (off|verbose|info|warning|error)", s)
	}
}

// TraceLevel implements pflag.Value so it binds directly as a typed flag.

func (l *TraceLevel) String() string {
	return l.name()
}

func (l *TraceLevel) Set(s string) error {
	parsed, err := ParseTraceLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

func (l *TraceLevel) Type() string {
	return "traceLevel"
}
