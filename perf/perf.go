// Package perf - scenario timing and distribution summaries.
package perf

import (
	"errors"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/signalscope/signalscope/core"
)

// ErrNoRuns indicates a run count below 1.
var ErrNoRuns = errors.New("perf: runs must be at least 1")

// Scenario is one named engine invocation to be timed.
type Scenario struct {
	// Name identifies the scenario in reports, conventionally
	// family/scheme/size.
	Name string

	// Run performs one engine call. It must be safe to invoke repeatedly
	// (the engines are pure, so any closure over fixed inputs qualifies).
	Run func() (core.SignalResult, error)
}

// Summary is the timing distribution of one measured scenario.
// All durations are milliseconds.
type Summary struct {
	Name string `json:"name"`
	Runs int    `json:"runs"`

	MeanMs   float64 `json:"mean_ms"`
	StdDevMs float64 `json:"stddev_ms"`
	MinMs    float64 `json:"min_ms"`
	MaxMs    float64 `json:"max_ms"`
	P95Ms    float64 `json:"p95_ms"`

	// Points is the transmitted point count per run (identical across runs,
	// the engines being deterministic).
	Points int `json:"points"`
}

// Measure runs the scenario `runs` times and summarizes the wall-clock
// distribution. The first engine error aborts the measurement.
//
// Errors: ErrNoRuns and whatever the scenario's Run returns.
func Measure(s Scenario, runs int) (Summary, error) {
	if runs < 1 {
		return Summary{}, ErrNoRuns
	}

	var (
		durations = make([]float64, 0, runs)
		points    int
	)
	for i := 0; i < runs; i++ {
		start := time.Now()
		res, err := s.Run()
		if err != nil {
			return Summary{}, err
		}
		durations = append(durations, float64(time.Since(start))/float64(time.Millisecond))
		points = len(res.Transmitted)
	}

	sort.Float64s(durations)

	sum := Summary{
		Name:   s.Name,
		Runs:   runs,
		MeanMs: stat.Mean(durations, nil),
		MinMs:  durations[0],
		MaxMs:  durations[len(durations)-1],
		P95Ms:  stat.Quantile(0.95, stat.Empirical, durations, nil),
		Points: points,
	}
	if runs > 1 {
		sum.StdDevMs = stat.StdDev(durations, nil)
	}

	return sum, nil
}

// MeasureAll measures every scenario in order, stopping at the first error.
func MeasureAll(scenarios []Scenario, runs int) ([]Summary, error) {
	summaries := make([]Summary, 0, len(scenarios))
	for _, s := range scenarios {
		sum, err := Measure(s, runs)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}

	return summaries, nil
}
