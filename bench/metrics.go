package bench

import (
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Counters tracks the in-process metrics a CLI run cares about: how many
// nodes avl.Tree currently holds. The teacher's own core package wires
// zerolog.Logger and prometheus counters into its TreeContext the same
// way; Counters plays that role here.
type Counters struct {
	Nodes prometheus.Gauge
}

// NewCounters returns a fresh, unregistered set of counters. Register
// attaches them to a prometheus.Registerer for scraping.
func NewCounters() *Counters {
	return &Counters{
		Nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "avlcore",
			Subsystem: "bench",
			Name:      "nodes",
			Help:      "Number of nodes currently held by the benchmark tree.",
		}),
	}
}

// Register attaches every counter in c to reg.
func (c *Counters) Register(reg prometheus.Registerer) error {
	return reg.Register(c.Nodes)
}

// LogResults writes one zerolog line per Result, with counts formatted
// the way dustin/go-humanize renders them in cosmos-iavl-bench's own
// reports.
func LogResults(log zerolog.Logger, results []Result) {
	for _, r := range results {
		log.Info().
			Str("structure", r.Name).
			Str("inserted", humanize.Comma(int64(r.Inserted))).
			Str("found", humanize.Comma(int64(r.Found))).
			Str("deleted", humanize.Comma(int64(r.Deleted))).
			Msg("comparison run complete")
	}
}
