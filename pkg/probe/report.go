package probe

import (
	"iter"
)

// Report holds the results of one run, keyed by probe name in
// registration order. It is only written by the Runner that created it.
type Report struct {
	names    []string
	results  map[string]Result
	expected int
}

func newReport(expected int) *Report {
	return &Report{
		names:    make([]string, 0, expected),
		results:  make(map[string]Result, expected),
		expected: expected,
	}
}

func (r *Report) set(name string, res Result) {
	if _, ok := r.results[name]; !ok {
		r.names = append(r.names, name)
	}
	r.results[name] = res
}

func (r *Report) Names() []string {
	return append([]string(nil), r.names...)
}

func (r *Report) Get(name string) (Result, bool) {
	res, ok := r.results[name]
	return res, ok
}

func (r *Report) Len() int {
	return len(r.names)
}

// Complete reports whether every registered probe produced a result.
func (r *Report) Complete() bool {
	return len(r.names) == r.expected
}

func (r *Report) Passed() int {
	passed := 0
	for _, res := range r.results {
		if res.OK {
			passed++
		}
	}
	return passed
}

// All iterates the results in registration order.
func (r *Report) All() iter.Seq2[string, Result] {
	return func(yield func(string, Result) bool) {
		for _, name := range r.names {
			if !yield(name, r.results[name]) {
				return
			}
		}
	}
}
