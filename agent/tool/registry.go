package tool

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Executor runs a tool against its single positional argument and returns
// the vendor-shaped payload.
type Executor func(ctx context.Context, param string) (map[string]any, error)

// Descriptor describes one invocable tool. SideEffecting marks tools that
// change live network state; the reasoning loop refuses to dispatch those
// without a recorded operator approval.
type Descriptor struct {
	Name          string
	Description   string
	Params        map[string]string
	SideEffecting bool
	Run           Executor
}

// Registry is the controller-facing tool catalogue. It is built once at
// startup and read-only afterward, so concurrent sessions may share it.
type Registry struct {
	ordered []Descriptor
	byName  map[string]Descriptor
}

func NewRegistry(descs ...Descriptor) (*Registry, error) {
	r := &Registry{byName: make(map[string]Descriptor, len(descs))}
	for _, d := range descs {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return nil, fmt.Errorf("tool descriptor has empty name")
		}
		if d.Run == nil {
			return nil, fmt.Errorf("tool %s has no executor", name)
		}
		if _, exists := r.byName[name]; exists {
			return nil, fmt.Errorf("tool already registered: %s", name)
		}
		d.Name = name
		r.byName[name] = d
		r.ordered = append(r.ordered, d)
	}
	return r, nil
}

func (r *Registry) Lookup(name string) (Descriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CatalogPrompt renders the tool descriptions appended to the system prompt.
// This is the only capability-discovery mechanism the controller has.
func (r *Registry) CatalogPrompt() string {
	var b strings.Builder
	b.WriteString("Available Tools:\n")
	for _, d := range r.ordered {
		fmt.Fprintf(&b, "\n- %s: %s\n", d.Name, d.Description)
		if len(d.Params) > 0 {
			params := make([]string, 0, len(d.Params))
			for name := range d.Params {
				params = append(params, name)
			}
			sort.Strings(params)
			for _, name := range params {
				fmt.Fprintf(&b, "  Parameter %s: %s\n", name, d.Params[name])
			}
		}
		if d.SideEffecting {
			b.WriteString("  SERVICE-IMPACTING: requires explicit operator approval before execution.\n")
		}
	}
	return b.String()
}
