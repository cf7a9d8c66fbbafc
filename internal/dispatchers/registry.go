package dispatchers

import (
	"fmt"
	"strings"

	"github.com/funcbase/cli/internal/binding"
)

// ActionFactory constructs a fresh, unbound action instance.
type ActionFactory func() binding.Action

// ActionDescriptor is one entry of the registration table: a dispatchable
// name under its (context, subContext) namespace, with help text and the
// factory producing the action. A single action type may carry multiple
// descriptors (aliases under different namespaces).
type ActionDescriptor struct {
	Context    Context
	SubContext SubContext
	Name       string
	Help       string
	New        ActionFactory
}

// Path returns the full command path, e.g. "settings keys set".
func (d ActionDescriptor) Path() string {
	parts := make([]string, 0, 3)
	if s := d.Context.String(); s != "" {
		parts = append(parts, s)
	}
	if s := d.SubContext.String(); s != "" {
		parts = append(parts, s)
	}
	parts = append(parts, d.Name)
	return strings.Join(parts, " ")
}

// DescriptorAware is implemented by actions that need their own
// registration metadata at run time (the relaunch protocol reconstructs
// the command path from it).
type DescriptorAware interface {
	SetDescriptor(d ActionDescriptor)
}

type registryKey struct {
	ctx  Context
	sub  SubContext
	name string
}

// Registry is the static catalog mapping (context, subContext, name)
// triples to action descriptors. Built once at process start.
type Registry struct {
	entries map[registryKey]ActionDescriptor
	ordered []ActionDescriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[registryKey]ActionDescriptor)}
}

// Register adds a descriptor. A duplicate (context, subContext, name)
// triple is a configuration error and fails fast.
func (r *Registry) Register(d ActionDescriptor) error {
	if d.Name == "" {
		return fmt.Errorf("dispatchers: descriptor with empty name")
	}
	if d.New == nil {
		return fmt.Errorf("dispatchers: descriptor %q has no factory", d.Path())
	}
	key := registryKey{d.Context, d.SubContext, strings.ToLower(d.Name)}
	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("dispatchers: duplicate registration for %q", d.Path())
	}
	r.entries[key] = d
	r.ordered = append(r.ordered, d)
	return nil
}

// Lookup resolves a triple to its descriptor. The name match is
// case-insensitive.
func (r *Registry) Lookup(ctx Context, sub SubContext, name string) (ActionDescriptor, bool) {
	d, ok := r.entries[registryKey{ctx, sub, strings.ToLower(name)}]
	return d, ok
}

// All returns the descriptors in registration order.
func (r *Registry) All() []ActionDescriptor {
	out := make([]ActionDescriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}
