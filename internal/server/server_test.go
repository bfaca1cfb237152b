package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signupform/internal/metrics"
	"github.com/goliatone/go-signupform/pkg/model"
	"github.com/goliatone/go-signupform/pkg/orchestrator"
	"github.com/goliatone/go-signupform/pkg/renderers/jsonview"
	"github.com/goliatone/go-signupform/pkg/signup"
	"github.com/goliatone/go-signupform/pkg/testsupport"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var csrfPattern = regexp.MustCompile(`name="_csrf" value="([^"]+)"`)

type client struct {
	t       *testing.T
	handler http.Handler
	cookies []*http.Cookie
	csrf    string
}

func newTestServer(t *testing.T, options ...Option) (*Server, *client) {
	t.Helper()
	form, err := model.SignupForm()
	if err != nil {
		t.Fatalf("signup form: %v", err)
	}
	s, err := New(form, options...)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return s, &client{t: t, handler: s.Handler()}
}

func (c *client) do(req *http.Request) *httptest.ResponseRecorder {
	c.t.Helper()
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	if set := rec.Result().Cookies(); len(set) > 0 {
		c.cookies = set
	}
	if match := csrfPattern.FindStringSubmatch(rec.Body.String()); match != nil {
		c.csrf = match[1]
	}
	return rec
}

func (c *client) get(target, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	return c.do(req)
}

func (c *client) post(target string, form url.Values) *httptest.ResponseRecorder {
	if form.Get("_csrf") == "" && c.csrf != "" {
		form.Set("_csrf", c.csrf)
	}
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/html")
	return c.do(req)
}

func TestServer_SubmitFlow(t *testing.T) {
	_, c := newTestServer(t)

	rec := c.get(FormPath, "text/html")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s: status %d", FormPath, rec.Code)
	}
	if c.csrf == "" || len(c.cookies) == 0 {
		t.Fatalf("expected session cookie and csrf token")
	}

	bad := signup.Encode(testsupport.ValidValues())
	bad.Set(model.FieldEmail, "nope")
	bad.Del(model.FieldTerms)
	rec = c.post(FormPath, bad)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid submit: status %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`value="nope"`,
		"<li>" + signup.MessageInvalidEmail + "</li>",
		"<li>" + signup.MessageTermsRequired + "</li>",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in body:\n%s", want, body)
		}
	}

	rec = c.post(FormPath, signup.Encode(testsupport.ValidValues()))
	if rec.Code != http.StatusOK {
		t.Fatalf("valid submit: status %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `<ul class="error">`) {
		t.Fatalf("successful submission should not render errors")
	}
}

func TestServer_ResetClearsEnteredValues(t *testing.T) {
	_, c := newTestServer(t)
	c.get(FormPath, "")

	c.post(FormPath, url.Values{model.FieldEmail: {"kept@example"}})
	rec := c.post(ResetPath, url.Values{})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != FormPath {
		t.Fatalf("reset: status %d location %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = c.get(FormPath, "text/html")
	if strings.Contains(rec.Body.String(), "kept@example") || strings.Contains(rec.Body.String(), `class="error"`) {
		t.Fatalf("expected an empty form after reset:\n%s", rec.Body.String())
	}
}

func TestServer_RejectsMissingCSRF(t *testing.T) {
	_, c := newTestServer(t)
	c.get(FormPath, "")

	form := signup.Encode(testsupport.ValidValues())
	form.Set("_csrf", "forged")
	if rec := c.post(FormPath, form); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	fresh := &client{t: t, handler: c.handler}
	if rec := fresh.post(FormPath, signup.Encode(testsupport.ValidValues())); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without session, got %d", rec.Code)
	}
}

func TestServer_JSONNegotiation(t *testing.T) {
	_, c := newTestServer(t)
	c.get(FormPath, "text/html")

	form := url.Values{"_csrf": {c.csrf}}
	req := httptest.NewRequest(http.MethodPost, FormPath, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	rec := c.do(req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var doc jsonview.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{
		signup.MessageInvalidEmail,
		signup.MessageShortPassword,
		signup.MessageMissingName,
		signup.MessageMissingRole,
		signup.MessageTermsRequired,
		signup.MessageNoAcquisition,
	}
	if diff := cmp.Diff(want, doc.Result.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if doc.Result.Entered == nil {
		t.Fatalf("expected entered values on failure")
	}
}

func TestServer_AcceptQualityValues(t *testing.T) {
	_, c := newTestServer(t)

	cases := []struct {
		accept string
		want   string
	}{
		{"text/html, application/json;q=0.1", "text/html"},
		{"application/json;q=0, text/html", "text/html"},
		{"application/json;q=0, */*", "text/html"},
		{"text/*", "text/html"},
		{"text/html;q=0.2, application/json", "application/json"},
	}
	for _, tc := range cases {
		rec := c.get(FormPath, tc.accept)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET with Accept %q: status %d", tc.accept, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, tc.want) {
			t.Errorf("Accept %q served %q, want %s", tc.accept, ct, tc.want)
		}
	}
}

func TestServer_SessionsAreIsolated(t *testing.T) {
	_, first := newTestServer(t)
	first.get(FormPath, "")
	second := &client{t: t, handler: first.handler}
	second.get(FormPath, "")

	first.post(FormPath, url.Values{model.FieldEmail: {"first@example"}})

	rec := second.get(FormPath, "text/html")
	if strings.Contains(rec.Body.String(), "first@example") {
		t.Fatalf("second visitor sees first visitor's values")
	}
}

func TestServer_SessionEviction(t *testing.T) {
	_, first := newTestServer(t, WithSessionLimit(1))
	first.get(FormPath, "")
	first.post(FormPath, url.Values{model.FieldEmail: {"first@example.com"}})
	oldCookie := first.cookies[0].Value

	second := &client{t: t, handler: first.handler}
	second.get(FormPath, "")
	second.post(FormPath, url.Values{model.FieldEmail: {"second@example.com"}})

	first.get(FormPath, "")
	if first.cookies[0].Value == oldCookie {
		t.Fatalf("expected a new session after eviction")
	}
}

func TestServer_AnonymousVisitsKeepActiveSessions(t *testing.T) {
	_, active := newTestServer(t, WithSessionLimit(1))
	active.get(FormPath, "")
	active.post(FormPath, url.Values{model.FieldEmail: {"kept@example.com"}})
	cookie := active.cookies[0].Value

	for i := 0; i < 5; i++ {
		anonymous := &client{t: t, handler: active.handler}
		anonymous.get(FormPath, "text/html")
	}

	rec := active.get(FormPath, "text/html")
	if active.cookies[0].Value != cookie {
		t.Fatalf("active session was evicted by anonymous visits")
	}
	if !strings.Contains(rec.Body.String(), `value="kept@example.com"`) {
		t.Fatalf("expected entered values to survive:\n%s", rec.Body.String())
	}
}

func TestServer_PendingSessionsAreBounded(t *testing.T) {
	_, first := newTestServer(t, WithSessionLimit(1))
	first.get(FormPath, "")
	staleToken := first.csrf

	second := &client{t: t, handler: first.handler}
	second.get(FormPath, "")

	rec := first.post(FormPath, url.Values{"_csrf": {staleToken}})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a dropped pending session, got %d", rec.Code)
	}
}

func TestServer_AuxiliaryRoutes(t *testing.T) {
	m := metrics.New()
	_, c := newTestServer(t, WithMetrics(m))
	c.get(FormPath, "")
	c.post(FormPath, signup.Encode(testsupport.ValidValues()))

	rec := c.get(HealthPath, "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("healthz: %d %s", rec.Code, rec.Body.String())
	}

	rec = c.get(OpenAPIPath, "")
	var doc map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("openapi decode: %v", err)
	}
	if paths, _ := doc["paths"].(map[string]any); paths[FormPath] == nil {
		t.Fatalf("openapi document lacks %s", FormPath)
	}

	rec = c.get(MetricsPath, "")
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `signupform_submissions_total{outcome="accepted"} 1`) {
		t.Fatalf("metrics missing accepted submission:\n%s", body)
	}

	rec = c.get("/api/options/role?q=found", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"value":"founder"`) {
		t.Fatalf("options: %d %s", rec.Code, rec.Body.String())
	}
}

func TestServer_ThemeSelection(t *testing.T) {
	acme := &theme.Manifest{
		Name:   "acme",
		Tokens: map[string]string{"brand": "#0af"},
		Variants: map[string]theme.Variant{
			"dark": {Tokens: map[string]string{"brand": "#000"}},
		},
	}
	_, c := newTestServer(t, WithViewOptions(orchestrator.WithThemeManifests("acme", "", acme)))

	rec := c.get(FormPath, "text/html")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, `data-theme="acme"`) || !strings.Contains(body, "--brand: #0af;") {
		t.Fatalf("default theme not applied:\n%s", body)
	}

	rec = c.get(FormPath+"?variant=dark", "text/html")
	if body := rec.Body.String(); !strings.Contains(body, `data-theme-variant="dark"`) || !strings.Contains(body, "--brand: #000;") {
		t.Fatalf("variant not applied:\n%s", body)
	}

	rec = c.get(FormPath+"?theme=missing", "text/html")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown theme, got %d", rec.Code)
	}
}
