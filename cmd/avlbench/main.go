package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/twostay/avlcore/bench"
)

func main() {
	log := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

	var (
		n           int
		keyRange    int
		btreeDegree int
		seed        int64
		metricsAddr string
	)

	root := &cobra.Command{
		Use:   "avlbench",
		Short: "Drive avl.Tree and comparable ordered structures through the same workload.",
	}

	run := &cobra.Command{
		Use:   "run",
		Short: "Run avl.Tree alone through insert/search/delete and report node counts.",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop, err := maybeServeMetrics(metricsAddr, log)
			if err != nil {
				return err
			}
			defer stop()

			plan := bench.Plan{N: n, KeyRange: keyRange, BTreeDegree: btreeDegree, Seed: seed}
			result, counters := bench.RunAVL(plan)
			if metricsAddr != "" {
				if err := counters.Register(prometheus.DefaultRegisterer); err != nil {
					return fmt.Errorf("registering metrics: %w", err)
				}
			}
			bench.LogResults(log, []bench.Result{result})
			return nil
		},
	}
	run.Flags().IntVar(&n, "n", 100_000, "number of distinct keys to insert")
	run.Flags().IntVar(&keyRange, "key-range", 200_000, "keys are drawn from [0, key-range)")
	run.Flags().Int64Var(&seed, "seed", 1, "random seed for key generation")
	run.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address while the run executes")

	compare := &cobra.Command{
		Use:   "compare",
		Short: "Run avl.Tree, google/btree, GoLLRB, and gods/redblacktree through the same workload.",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := bench.Plan{N: n, KeyRange: keyRange, BTreeDegree: btreeDegree, Seed: seed}
			results, _ := bench.RunAll(plan)
			bench.LogResults(log, results)
			return nil
		},
	}
	compare.Flags().IntVar(&n, "n", 100_000, "number of distinct keys to insert")
	compare.Flags().IntVar(&keyRange, "key-range", 200_000, "keys are drawn from [0, key-range)")
	compare.Flags().IntVar(&btreeDegree, "btree-degree", 32, "degree passed to google/btree.New")
	compare.Flags().Int64Var(&seed, "seed", 1, "random seed for key generation")

	root.AddCommand(run, compare)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("avlbench failed")
		os.Exit(1)
	}
}

// maybeServeMetrics starts a background HTTP server exposing /metrics
// when addr is non-empty. The returned stop function is always safe to
// call, even when no server was started.
func maybeServeMetrics(addr string, log zerolog.Logger) (stop func(), err error) {
	if addr == "" {
		return func() {}, nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
	return func() { _ = srv.Close() }, nil
}
