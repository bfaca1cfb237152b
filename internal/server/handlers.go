package server

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goliatone/go-signupform/pkg/orchestrator"
	"github.com/goliatone/go-signupform/pkg/render"
	"github.com/goliatone/go-signupform/pkg/signup"
)

func (s *Server) showForm(c *gin.Context) {
	s.respond(c, http.StatusOK, s.session(c))
}

// submitForm validates the posted body. Rejected submissions answer 422
// with the form re-populated from the entered values.
func (s *Server) submitForm(c *gin.Context) {
	sess := s.session(c)
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "malformed form body")
		return
	}
	if !s.validCSRF(c, sess) {
		c.String(http.StatusForbidden, "invalid or missing form token")
		return
	}
	s.activate(sess)

	result, err := sess.container.Submit(c.Request.Context(), signup.Decode(c.Request.PostForm))
	if err != nil {
		s.logger.Error("signup submission failed", zap.String("session", sess.id), zap.Error(err))
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	status := http.StatusOK
	if !result.OK() {
		status = http.StatusUnprocessableEntity
	}
	s.respond(c, status, sess)
}

func (s *Server) resetForm(c *gin.Context) {
	sess := s.session(c)
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "malformed form body")
		return
	}
	if !s.validCSRF(c, sess) {
		c.String(http.StatusForbidden, "invalid or missing form token")
		return
	}
	s.activate(sess)
	sess.container.Reset()
	c.Redirect(http.StatusSeeOther, FormPath)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": s.sessions.len(),
	})
}

func (s *Server) openAPI(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", s.openapiJSON)
}

func (s *Server) respond(c *gin.Context, status int, sess *session) {
	out, err := s.views.Render(c.Request.Context(), orchestrator.Request{
		Accept:   c.GetHeader("Accept"),
		Snapshot: sess.container.Snapshot(),
		RenderOptions: render.RenderOptions{
			Action:      FormPath,
			ResetAction: ResetPath,
			Hidden:      render.MergeHiddenFields(nil, render.CSRFToken(s.csrfField, sess.csrf)),
			Fragment:    c.Query("fragment") != "",
		},
		ThemeName:    c.Query("theme"),
		ThemeVariant: c.Query("variant"),
	})
	switch {
	case errors.Is(err, orchestrator.ErrThemeSelection):
		c.String(http.StatusBadRequest, "unknown theme")
		return
	case err != nil:
		s.logger.Error("render signup form", zap.String("session", sess.id), zap.Error(err))
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	c.Data(status, out.ContentType, out.Body)
}

// session returns the visitor's form instance, starting a pending one when
// the cookie is missing or its session was evicted.
func (s *Server) session(c *gin.Context) *session {
	if id, err := c.Cookie(s.cookieName); err == nil {
		if sess, ok := s.sessions.get(id); ok {
			return sess
		}
	}

	sess := s.sessions.create()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, sess.id, 0, "/", "", s.secure, true)
	return sess
}

// activate promotes a session that passed the form token check.
func (s *Server) activate(sess *session) {
	s.sessions.promote(sess)
	s.metrics.SetSessions(s.sessions.len())
}

func (s *Server) validCSRF(c *gin.Context, sess *session) bool {
	token := c.Request.PostForm.Get(s.csrfField)
	if token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(sess.csrf)) == 1
}
