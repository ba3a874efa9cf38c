package patch

import (
	"fmt"

	"bindsync/internal/diagnostic"
	"bindsync/internal/document"
	"bindsync/internal/schema"
)

// Counter keys reported by the passes.
const (
	CounterLinesRemoved     = "lines-removed"
	CounterCallsValidated   = "calls-validated"
	CounterFunctionsUnused  = "functions-unused"
	CounterStructsValidated = "structs-validated"
)

// Result is the outcome of one pass (or, aggregated, of the whole pipeline).
type Result struct {
	// Text is the materialized document after the pass's edits.
	Text string
	// Diagnostics collects schema mismatches found during the pass.
	Diagnostics diagnostic.Diagnostics
	// Counters holds per-kind validation counts.
	Counters map[string]int
	// UnusedFunctions lists native functions never observed as direct or
	// indirect calls, sorted. Call-site pass only.
	UnusedFunctions []string
}

func newResult() *Result {
	return &Result{Counters: map[string]int{}}
}

// Pass is one scan/mutate specialization over a document. Apply scans the
// document once, top to bottom, scheduling edits as it goes; the pipeline
// driver materializes afterwards.
type Pass interface {
	Name() string
	Apply(doc *document.Document, native *schema.Native) (*Result, error)
}

// Passes returns the pipeline in its required order.
func Passes() []Pass {
	return []Pass{
		&CleanupPass{},
		&CallSitePass{},
		&StructLiteralPass{},
	}
}

// Run applies the full pipeline to text. Each pass takes ownership of the
// previous pass's materialized output through a fresh document view.
// Diagnostics and counters aggregate across passes; a structural error
// (unbalanced literal) aborts the run.
func Run(text string, native *schema.Native) (*Result, error) {
	agg := newResult()

	for _, p := range Passes() {
		doc := document.New(text)

		res, err := p.Apply(doc, native)
		if err != nil {
			return nil, fmt.Errorf("%s pass: %w", p.Name(), err)
		}

		out, err := doc.Materialize()
		if err != nil {
			return nil, fmt.Errorf("%s pass: %w", p.Name(), err)
		}

		text = out

		agg.Diagnostics.Merge(res.Diagnostics)

		for k, v := range res.Counters {
			agg.Counters[k] += v
		}

		agg.UnusedFunctions = append(agg.UnusedFunctions, res.UnusedFunctions...)
	}

	agg.Text = text

	return agg, nil
}
