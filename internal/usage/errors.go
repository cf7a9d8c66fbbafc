package usage

import "fmt"

// InvalidFlag is returned when a flag is not valid for the resolved action.
func InvalidFlag(flag string) *Error {
	return &Error{
		Kind:    ErrInvalidFlag,
		Message: fmt.Sprintf("fb: invalid flag '%s'", flag),
	}
}

// MissingArgument is returned when a required argument is not provided.
func MissingArgument(arg string) *Error {
	return &Error{
		Kind:    ErrMissingArgument,
		Message: fmt.Sprintf("fb: missing required argument '%s'", arg),
	}
}

// UnknownCommand is returned when no registered action matches.
func UnknownCommand(command string) *Error {
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: fmt.Sprintf("fb: '%s' is not a fb command. See 'fb help'.", command),
	}
}

// MalformedCommand is returned when a recognized command cannot be parsed
// at all. Unlike the other kinds it is not redirected to a help display.
func MalformedCommand(detail string) *Error {
	return &Error{
		Kind:    ErrMalformedCommand,
		Message: fmt.Sprintf("fb: %s", detail),
	}
}
