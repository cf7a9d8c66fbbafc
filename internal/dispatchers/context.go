package dispatchers

import "strings"

// Context is the first-level namespace token grouping actions.
type Context int

const (
	ContextNone Context = iota
	ContextHost
	ContextFunction
	ContextSettings
)

func (c Context) String() string {
	switch c {
	case ContextHost:
		return "host"
	case ContextFunction:
		return "function"
	case ContextSettings:
		return "settings"
	default:
		return ""
	}
}

// ParseContext resolves a token to a Context, case-insensitive.
func ParseContext(tok string) (Context, bool) {
	switch strings.ToLower(tok) {
	case "host":
		return ContextHost, true
	case "function":
		return ContextFunction, true
	case "settings":
		return ContextSettings, true
	default:
		return ContextNone, false
	}
}

// SubContext is the second-level namespace token. It is only attempted
// when a Context matched first.
type SubContext int

const (
	SubContextNone SubContext = iota
	SubContextKeys
)

func (s SubContext) String() string {
	switch s {
	case SubContextKeys:
		return "keys"
	default:
		return ""
	}
}

// ParseSubContext resolves a token to a SubContext, case-insensitive.
func ParseSubContext(tok string) (SubContext, bool) {
	switch strings.ToLower(tok) {
	case "keys":
		return SubContextKeys, true
	default:
		return SubContextNone, false
	}
}
