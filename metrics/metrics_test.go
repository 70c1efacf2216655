// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SessionCreated()
	m.SessionCreated()
	m.SessionCompleted()
	m.Vote("left")
	m.Vote("left")
	m.Vote("right")
	m.Undo()
	m.CommandError("vote")
	m.ResultSubmission(true)
	m.ResultSubmission(false)
	m.SetActiveSessions(3)
	m.SessionsExpired(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.sessionsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionsCompleted))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.votes.WithLabelValues("left")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.votes.WithLabelValues("right")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.undos))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.commandErrors.WithLabelValues("vote")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resultSubmissions.WithLabelValues("accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resultSubmissions.WithLabelValues("rejected")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.activeSessions))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.sessionsExpired))
}

func TestMetrics_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest("POST", "/sessions/{id}/vote", 200, 15*time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "head2head_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
