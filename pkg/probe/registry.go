package probe

import (
	"context"

	"github.com/pkg/errors"
)

var (
	ErrDuplicateProbe = errors.New("probe already registered")
	ErrInvalidProbe   = errors.New("invalid probe")
)

// Registry is an ordered set of uniquely named probes. Registration order
// is execution and display order.
type Registry struct {
	probes []Probe
	index  map[string]int
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// NewRegistryFrom registers probes in the given order.
func NewRegistryFrom(probes ...Probe) (*Registry, error) {
	r := NewRegistry()
	for _, p := range probes {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) Register(p Probe) error {
	if p == nil || p.Name() == "" {
		return errors.Wrap(ErrInvalidProbe, "probe must have a name")
	}

	name := p.Name()
	if _, ok := r.index[name]; ok {
		return errors.Wrapf(ErrDuplicateProbe, "%q", name)
	}

	r.index[name] = len(r.probes)
	r.probes = append(r.probes, p)
	return nil
}

func (r *Registry) RegisterFunc(name string, body func(ctx context.Context) Result) error {
	if body == nil {
		return errors.Wrapf(ErrInvalidProbe, "probe %q has no body", name)
	}
	return r.Register(Func(name, body))
}

// All returns the registered probes in registration order.
func (r *Registry) All() []Probe {
	return append([]Probe(nil), r.probes...)
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.probes))
	for _, p := range r.probes {
		names = append(names, p.Name())
	}
	return names
}

func (r *Registry) Lookup(name string) (Probe, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.probes[i], true
}

func (r *Registry) Len() int {
	return len(r.probes)
}
