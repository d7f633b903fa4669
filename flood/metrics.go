package flood

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the Prometheus collectors updated by an Engine.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	SamplesDrawn   prometheus.Counter
	GridReads      prometheus.Counter
	CellsVisited   prometheus.Counter
	ClaimsRejected prometheus.Counter
	Runs           *prometheus.CounterVec
	RunDuration    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		SamplesDrawn: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bcsd_samples_drawn_total",
			Help: "Random coordinates drawn during sampling, duplicates included.",
		}),
		GridReads: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bcsd_grid_reads_total",
			Help: "Grid values read while flooding.",
		}),
		CellsVisited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bcsd_cells_visited_total",
			Help: "Coordinates appended to a bCSD.",
		}),
		ClaimsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bcsd_claims_rejected_total",
			Help: "On-neighbors skipped because they were already queued or visited.",
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bcsd_runs_total",
			Help: "Completed engine runs by outcome.",
		}, []string{"outcome"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bcsd_run_duration_seconds",
			Help:    "Wall time of engine runs.",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10},
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{
		m.SamplesDrawn, m.GridReads, m.CellsVisited, m.ClaimsRejected, m.Runs, m.RunDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) sampled(n int) {
	if m == nil {
		return
	}
	m.SamplesDrawn.Add(float64(n))
}

func (m *Metrics) read() {
	if m == nil {
		return
	}
	m.GridReads.Inc()
}

func (m *Metrics) visited() {
	if m == nil {
		return
	}
	m.CellsVisited.Inc()
}

func (m *Metrics) rejected() {
	if m == nil {
		return
	}
	m.ClaimsRejected.Inc()
}

func (m *Metrics) finished(err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Runs.WithLabelValues(outcome).Inc()
	m.RunDuration.Observe(elapsed.Seconds())
}
