// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors recorded by handlers and middleware.
// Collectors are registered on the Registerer passed to New so tests can
// use a private registry.
type Metrics struct {
	sessionsCreated   prometheus.Counter
	sessionsCompleted prometheus.Counter
	sessionsExpired   prometheus.Counter
	activeSessions    prometheus.Gauge
	votes             *prometheus.CounterVec
	undos             prometheus.Counter
	commandErrors     *prometheus.CounterVec
	resultSubmissions *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
}

// New registers every collector with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		sessionsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "head2head_sessions_created_total",
			Help: "Voting sessions created.",
		}),
		sessionsCompleted: f.NewCounter(prometheus.CounterOpts{
			Name: "head2head_sessions_completed_total",
			Help: "Voting sessions that decided every matchup.",
		}),
		sessionsExpired: f.NewCounter(prometheus.CounterOpts{
			Name: "head2head_sessions_expired_total",
			Help: "Voting sessions dropped after sitting idle.",
		}),
		activeSessions: f.NewGauge(prometheus.GaugeOpts{
			Name: "head2head_sessions_active",
			Help: "Voting sessions currently held in memory.",
		}),
		votes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "head2head_votes_total",
			Help: "Votes cast, by side.",
		}, []string{"side"}),
		undos: f.NewCounter(prometheus.CounterOpts{
			Name: "head2head_undos_total",
			Help: "Votes reversed with undo.",
		}),
		commandErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "head2head_command_errors_total",
			Help: "Session commands rejected, by command.",
		}, []string{"command"}),
		resultSubmissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "head2head_result_submissions_total",
			Help: "Exported tallies handed in, by outcome.",
		}, []string{"status"}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "head2head_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
	}
}

func (m *Metrics) SessionCreated()   { m.sessionsCreated.Inc() }
func (m *Metrics) SessionCompleted() { m.sessionsCompleted.Inc() }
func (m *Metrics) Undo()             { m.undos.Inc() }

func (m *Metrics) SessionsExpired(n int) {
	m.sessionsExpired.Add(float64(n))
}

func (m *Metrics) SetActiveSessions(n int) {
	m.activeSessions.Set(float64(n))
}

func (m *Metrics) Vote(side string) {
	m.votes.WithLabelValues(side).Inc()
}

func (m *Metrics) CommandError(command string) {
	m.commandErrors.WithLabelValues(command).Inc()
}

func (m *Metrics) ResultSubmission(ok bool) {
	status := "accepted"
	if !ok {
		status = "rejected"
	}
	m.resultSubmissions.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, code int, d time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(code)).Observe(d.Seconds())
}
