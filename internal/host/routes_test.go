package host

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeRoute(t *testing.T) {
	cases := []struct {
		name   string
		prefix string
		fn     Function
		want   string
	}{
		{"default route is the function name", "api", Function{Name: "Foo"}, "api/Foo"},
		{"explicit route override", "api", Function{Name: "Foo", Route: "widgets/{id}"}, "api/widgets/{id}"},
		{"exactly one separating slash", "api/", Function{Name: "Foo", Route: "/Foo"}, "api/Foo"},
		{"prefix trimmed both sides", "/api/", Function{Name: "Foo"}, "api/Foo"},
		{"empty prefix drops the separator", "", Function{Name: "Foo"}, "Foo"},
		{"empty prefix after trim", "/", Function{Name: "Foo"}, "Foo"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ComposeRoute(tc.prefix, tc.fn))
		})
	}
}
