package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/state"
	"github.com/goliatone/go-signupform/pkg/testsupport"
)

func TestObserver_CountsSubmissions(t *testing.T) {
	m := New()
	c := state.New(state.WithObserver(m.Observer()))
	ctx := context.Background()

	if _, err := c.Submit(ctx, testsupport.ValidValues()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := c.Submit(ctx, model.Values{}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	c.Reset()

	if got := testutil.ToFloat64(m.submissions.WithLabelValues(OutcomeAccepted)); got != 1 {
		t.Fatalf("accepted = %v", got)
	}
	if got := testutil.ToFloat64(m.submissions.WithLabelValues(OutcomeRejected)); got != 1 {
		t.Fatalf("rejected = %v", got)
	}
	for _, rule := range []string{"email", "password", "names", "role", "terms", "acquisition"} {
		if got := testutil.ToFloat64(m.ruleFailures.WithLabelValues(rule)); got != 1 {
			t.Fatalf("rule %s failures = %v", rule, got)
		}
	}
	if got := testutil.ToFloat64(m.ruleFailures.WithLabelValues("confirm-password")); got != 0 {
		t.Fatalf("confirm-password failures = %v", got)
	}
	if got := testutil.ToFloat64(m.inFlight); got != 0 {
		t.Fatalf("in flight = %v", got)
	}
	if got := testutil.ToFloat64(m.resets); got != 1 {
		t.Fatalf("resets = %v", got)
	}
}

func TestObserveResult_UnknownMessage(t *testing.T) {
	m := New()
	m.ObserveResult(model.Result{Errors: []string{"something else"}})

	if got := testutil.ToFloat64(m.ruleFailures.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("unknown failures = %v", got)
	}
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.SetSessions(3)
	m.ObserveResult(model.Result{})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)

	for _, want := range []string{
		`signupform_submissions_total{outcome="accepted"} 1`,
		"signupform_sessions 3",
	} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %q in metrics output:\n%s", want, body)
		}
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveResult(model.Result{})
	m.SetSessions(1)
	m.Observer()(state.Transition{From: state.StateIdle, To: state.StatePending})
}
