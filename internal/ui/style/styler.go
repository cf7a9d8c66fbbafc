package style

import "github.com/funcbase/cli/internal/domain"

// Styler implements domain.Styler using the package-level styles.
type Styler struct{}

// NewStyler creates a Styler.
func NewStyler() Styler {
	return Styler{}
}

func (Styler) Success(s string) string { return Success(s) }
func (Styler) Warning(s string) string { return Warning(s) }
func (Styler) Error(s string) string   { return Error(s) }
func (Styler) Info(s string) string    { return Info(s) }
func (Styler) Muted(s string) string   { return Muted(s) }
func (Styler) Header(s string) string  { return Header(s) }

// NopStyler returns strings unchanged. Used in tests.
type NopStyler struct{}

func (NopStyler) Success(s string) string { return s }
func (NopStyler) Warning(s string) string { return s }
func (NopStyler) Error(s string) string   { return s }
func (NopStyler) Info(s string) string    { return s }
func (NopStyler) Muted(s string) string   { return s }
func (NopStyler) Header(s string) string  { return s }

var _ domain.Styler = Styler{}
var _ domain.Styler = NopStyler{}
