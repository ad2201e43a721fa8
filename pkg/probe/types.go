package probe

import (
	"context"
	"fmt"
)

// Probe inspects one aspect of the host. Check must not fail for expected
// conditions like a missing file or tool; those are reported as a Result
// with OK set to false.
type Probe interface {
	Name() string
	Check(ctx context.Context) Result
}

type Result struct {
	OK      bool
	Details Details
}

// Details is one of Text, Flag, List or Map.
type Details interface {
	details()
}

type Text string

type Flag bool

type List []string

type Entry struct {
	Key   string
	Value Details
}

// Map is an ordered set of named sub-check values.
type Map []Entry

func (Text) details() {}
func (Flag) details() {}
func (List) details() {}
func (Map) details() {}

func Textf(format string, args ...interface{}) Text {
	return Text(fmt.Sprintf(format, args...))
}

// Get returns the value stored under key.
func (m Map) Get(key string) (Details, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

type funcProbe struct {
	name string
	body func(ctx context.Context) Result
}

func (f *funcProbe) Name() string {
	return f.name
}

func (f *funcProbe) Check(ctx context.Context) Result {
	return f.body(ctx)
}

// Func wraps a plain function as a Probe.
func Func(name string, body func(ctx context.Context) Result) Probe {
	return &funcProbe{name: name, body: body}
}
