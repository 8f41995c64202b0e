// Package metrics provides application-level counters using stdlib expvar.
package metrics

import "expvar"

// Operation counters.
var (
	RequestsTotal   = expvar.NewInt("staffing_api_requests_total")
	RequestErrors   = expvar.NewInt("staffing_api_request_errors_total")
	CommitsTotal    = expvar.NewInt("staffing_commits_total")
	CommitSteps     = expvar.NewInt("staffing_commit_steps_total")
	CommitFailures  = expvar.NewInt("staffing_commit_failures_total")
	GraphQueriesRun = expvar.NewInt("staffing_graph_queries_total")
)

// Inc increments the given counter by 1.
func Inc(counter *expvar.Int) { counter.Add(1) }
