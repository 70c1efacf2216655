// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus collectors for voting activity.

Collectors are registered on the Registerer passed to New, so tests can use
a private registry:

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.Vote("left")

Exported series:

	head2head_sessions_created_total
	head2head_sessions_completed_total
	head2head_sessions_expired_total
	head2head_sessions_active
	head2head_votes_total{side}
	head2head_undos_total
	head2head_command_errors_total{command}
	head2head_result_submissions_total{status}
	head2head_http_request_duration_seconds{method,route,code}
*/
package metrics
