package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestGameCounters(t *testing.T) {
	r := NewRecorder()
	r.GameStarted()
	r.GameStarted()
	r.GameOver(120, 3, 1500)

	if got := testutil.ToFloat64(r.gamesStarted); got != 2 {
		t.Errorf("games started = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.gamesOver); got != 1 {
		t.Errorf("games over = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(r.finalScore); got != 1 {
		t.Errorf("final score series = %d, want 1", got)
	}
}

func TestSessionGauge(t *testing.T) {
	r := NewRecorder()
	r.SessionStarted()
	r.SessionStarted()
	r.SessionEnded()

	if got := testutil.ToFloat64(r.sessionsActive); got != 1 {
		t.Errorf("active sessions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.sessionsTotal); got != 2 {
		t.Errorf("total sessions = %v, want 2", got)
	}
}

func TestConnectionRejected(t *testing.T) {
	r := NewRecorder()
	r.ConnectionRejected("rate_limit")
	r.ConnectionRejected("rate_limit")
	r.ConnectionRejected("capacity")

	if got := testutil.ToFloat64(r.connectionRejected.WithLabelValues("rate_limit")); got != 2 {
		t.Errorf("rate_limit rejections = %v, want 2", got)
	}
	if got := testutil.CollectAndCount(r.connectionRejected); got != 2 {
		t.Errorf("reason series = %d, want 2", got)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	r := NewRecorder()
	r.GameStarted()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "orbrunner_games_started_total 1") {
		t.Errorf("metrics output missing games counter:\n%s", body)
	}
}

func TestRecordersAreIndependent(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	a.GameStarted()
	if got := testutil.ToFloat64(b.gamesStarted); got != 0 {
		t.Errorf("second recorder saw %v games", got)
	}
}
