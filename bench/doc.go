// Package bench runs tardiness algorithms over many instances and records
// one row per (instance, algorithm) run.
//
// A Plan (YAML) names the algorithms, the instance files (glob patterns,
// resolved against the plan's directory), optional generated instances and
// an optional answers file of known optima. The Runner dispatches runs
// concurrently, each on its own deep copy of the instance with its own
// solver and timeout. A failing run is recorded and reported, it never
// cancels its siblings.
//
// Output: CSV rows (WriteCSV), per-algorithm summaries (Summarize) and a
// Prometheus text file (Metrics.WriteFile). Every row carries the run id of
// the invocation that produced it.
package bench
