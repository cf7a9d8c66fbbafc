package host

import "strings"

// ComposeRoute builds a function's fully composed route: the host route
// prefix plus the function's route override, defaulting to the function
// name when no explicit route is configured, with exactly one separating
// slash. The result carries no leading slash ("api/Foo").
func ComposeRoute(prefix string, fn Function) string {
	route := fn.Route
	if route == "" {
		route = fn.Name
	}

	prefix = strings.Trim(prefix, "/")
	route = strings.TrimPrefix(route, "/")

	if prefix == "" {
		return route
	}
	return prefix + "/" + route
}
