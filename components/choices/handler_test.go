package choices

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-signupform/pkg/model"
)

type handlerResponse struct {
	Data []model.Option `json:"data"`
}

func serve(t *testing.T, h http.Handler, method, target string) (*http.Response, handlerResponse) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := rec.Result()
	var payload handlerResponse
	if res.StatusCode == http.StatusOK && method == http.MethodGet {
		if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return res, payload
}

func TestHandler_DefaultLists(t *testing.T) {
	h := Handler()

	res, payload := serve(t, h, http.MethodGet, "/api/options/role")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}
	if diff := cmp.Diff(model.RoleOptions, payload.Data); diff != "" {
		t.Fatalf("role options mismatch (-want +got):\n%s", diff)
	}

	_, payload = serve(t, h, http.MethodGet, "/api/options/acquisition/")
	if diff := cmp.Diff(model.AcquisitionOptions, payload.Data); diff != "" {
		t.Fatalf("acquisition options mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_SearchPrefersPrefixMatches(t *testing.T) {
	h := Handler(WithLists(map[string][]model.Option{
		"fruit": {
			{Value: "pineapple", Label: "Pineapple"},
			{Value: "apple", Label: "Apple"},
			{Value: "pear", Label: "Pear"},
		},
	}))

	_, payload := serve(t, h, http.MethodGet, "/api/options/fruit?q=APP")
	want := []model.Option{
		{Value: "apple", Label: "Apple"},
		{Value: "pineapple", Label: "Pineapple"},
	}
	if diff := cmp.Diff(want, payload.Data); diff != "" {
		t.Fatalf("search mismatch (-want +got):\n%s", diff)
	}

	_, payload = serve(t, h, http.MethodGet, "/api/options/fruit?q=kiwi")
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}

func TestHandler_UnknownListAndMethods(t *testing.T) {
	h := Handler()

	if res, _ := serve(t, h, http.MethodGet, "/api/options/colour"); res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
	res, _ := serve(t, h, http.MethodPost, "/api/options/role")
	if res.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", res.StatusCode)
	}
	if allow := res.Header.Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("unexpected Allow header %q", allow)
	}
	res, _ = serve(t, h, http.MethodHead, "/api/options/role")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for HEAD, got %d", res.StatusCode)
	}
}

func TestHandler_Guard(t *testing.T) {
	h := Handler(WithGuard(func(*http.Request) error {
		return StatusError{Code: http.StatusUnauthorized, Err: errors.New("login required")}
	}))
	if res, _ := serve(t, h, http.MethodGet, "/api/options/role"); res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}

	h = Handler(WithGuard(func(*http.Request) error { return errors.New("nope") }))
	if res, _ := serve(t, h, http.MethodGet, "/api/options/role"); res.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", res.StatusCode)
	}
}

func TestListsFromForm(t *testing.T) {
	form, err := model.SignupForm()
	if err != nil {
		t.Fatalf("signup form: %v", err)
	}
	if diff := cmp.Diff(DefaultLists(), ListsFromForm(form)); diff != "" {
		t.Fatalf("lists mismatch (-want +got):\n%s", diff)
	}
}

type failingWriter struct {
	header http.Header
	status int
}

func (w *failingWriter) Header() http.Header {
	if w.header == nil {
		w.header = http.Header{}
	}
	return w.header
}

func (w *failingWriter) WriteHeader(status int) { w.status = status }

func (w *failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestHandler_LogsWriteFailures(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	h := Handler(WithLogger(zap.New(core)))

	w := &failingWriter{}
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/options/role", nil))

	if w.status != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.status)
	}
	entries := logs.FilterMessage("write option list").All()
	if len(entries) != 1 {
		t.Fatalf("expected one logged write failure, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["list"] != "role" || fields["error"] != "connection reset" {
		t.Fatalf("unexpected log fields: %v", fields)
	}
}
