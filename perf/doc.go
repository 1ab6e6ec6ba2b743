// Package perf is the performance-benchmark harness over the transformation
// engine: it runs a scenario repeatedly, times each call, and summarizes the
// distribution (mean, standard deviation, min/max, 95th percentile) with
// gonum's statistics routines.
//
// The harness is transport-free — it times the pure engine calls, so report
// frontends can compare in-process, RPC, and compiled-to-web invocation
// costs against this baseline.
//
// ⚙️ Usage:
//
//	sum, err := perf.Measure(perf.Scenario{
//	    Name: "linecode/hdb3/64",
//	    Run: func() (core.SignalResult, error) {
//	        return linecode.Encode(bits, linecode.HDB3, linecode.DefaultOptions())
//	    },
//	}, 200)
//
// Suite returns the canonical scenario set covering every family.
package perf
