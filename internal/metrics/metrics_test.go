package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/wandertools/wandertools/internal/feedback"
)

func TestSubmissionsObserver(t *testing.T) {
	before := testutil.ToFloat64(FeedbackSubmissions.WithLabelValues("WanderGoal", "sent"))
	Submissions{}.ObserveSubmission("WanderGoal", feedback.Sent, 120*time.Millisecond)
	Submissions{}.ObserveSubmission("WanderGoal", feedback.Error, time.Second)

	require.Equal(t, before+1, testutil.ToFloat64(FeedbackSubmissions.WithLabelValues("WanderGoal", "sent")))
	require.GreaterOrEqual(t, testutil.ToFloat64(FeedbackSubmissions.WithLabelValues("WanderGoal", "error")), 1.0)
}

func TestObserveNetworkRequestLabels(t *testing.T) {
	before := testutil.ToFloat64(NetworkRequestTotal.WithLabelValues("unknown", "unknown", "unknown", "error"))
	ObserveNetworkRequest("", "", "", time.Now(), errors.New("boom"))
	require.Equal(t, before+1, testutil.ToFloat64(NetworkRequestTotal.WithLabelValues("unknown", "unknown", "unknown", "error")))
}

func TestMustRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() { MustRegister(reg) })
	require.Panics(t, func() { MustRegister(reg) })
}
