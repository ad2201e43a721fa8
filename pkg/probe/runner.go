package probe

import (
	"context"
	"iter"
	"time"

	log "github.com/sirupsen/logrus"
)

// Runner executes the probes of a registry once, in order.
type Runner struct {
	probes  []Probe
	report  *Report
	started bool
	err     error
}

func NewRunner(reg *Registry) *Runner {
	probes := reg.All()
	return &Runner{
		probes: probes,
		report: newReport(len(probes)),
	}
}

// Results runs the probes lazily, yielding every result as soon as it is
// available. The sequence can be consumed only once; later iterations
// yield nothing. Breaking out of the loop or cancelling ctx stops the run
// before the next probe starts.
func (r *Runner) Results(ctx context.Context) iter.Seq2[string, Result] {
	return func(yield func(string, Result) bool) {
		if r.started {
			return
		}
		r.started = true

		for _, p := range r.probes {
			if err := ctx.Err(); err != nil {
				r.err = err
				return
			}

			res := Run(ctx, p)

			// a probe interrupted by cancellation has no meaningful result
			if err := ctx.Err(); err != nil {
				r.err = err
				return
			}

			r.report.set(p.Name(), res)
			if !yield(p.Name(), res) {
				return
			}
		}
	}
}

// Report returns the results collected so far. Once Results has been
// fully consumed it holds one entry per probe.
func (r *Runner) Report() *Report {
	return r.report
}

// Err returns the context error that ended the run early, if any.
func (r *Runner) Err() error {
	return r.err
}

// RunAll runs every probe of reg and returns the complete report.
func RunAll(ctx context.Context, reg *Registry) (*Report, error) {
	runner := NewRunner(reg)
	for range runner.Results(ctx) {
	}
	return runner.Report(), runner.Err()
}

// Run executes a single probe. A probe that panics is reported as failed
// instead of aborting the run.
func Run(ctx context.Context, p Probe) (res Result) {
	logger := log.WithFields(log.Fields{"kind": "probe", "name": p.Name()})
	start := time.Now()

	defer func() {
		if v := recover(); v != nil {
			logger.WithField("panic", v).Error("probe raised")
			res = Result{OK: false, Details: Textf("probe raised: %v", v)}
		}
	}()

	res = p.Check(ctx)
	if res.Details == nil {
		res.Details = Text("")
	}

	logger.WithFields(log.Fields{"ok": res.OK, "took": time.Since(start)}).Debug("probe finished")
	return res
}
