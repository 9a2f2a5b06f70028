package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"finai/internal/models"
	"finai/internal/service"
	"finai/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuth struct {
	user  *models.User
	err   error
	calls int
}

func (s *stubAuth) Authenticate(_ context.Context, token string) (*models.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if token != "good" {
		return nil, fmt.Errorf("bad token: %w", service.ErrUnauthorized)
	}
	return s.user, nil
}

func TestAuthMiddleware(t *testing.T) {
	user := &models.User{ID: "u-1", Email: "u@example.com"}

	tests := []struct {
		name       string
		auth       *stubAuth
		header     string
		query      string
		wantStatus int
		wantCalls  int
	}{
		{"no token", &stubAuth{user: user}, "", "", http.StatusUnauthorized, 0},
		{"bearer header", &stubAuth{user: user}, "Bearer good", "", http.StatusOK, 1},
		{"lower-case scheme", &stubAuth{user: user}, "bearer good", "", http.StatusOK, 1},
		{"query token", &stubAuth{user: user}, "", "good", http.StatusOK, 1},
		{"invalid token", &stubAuth{user: user}, "Bearer bad", "", http.StatusUnauthorized, 1},
		{"store failure", &stubAuth{err: errors.New("db down")}, "Bearer good", "", http.StatusInternalServerError, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/me", AuthMiddleware(tt.auth), func(c *gin.Context) {
				v, _ := c.Get("currentUser")
				util.Success(c, util.Response{"id": v.(*models.User).ID})
			})

			target := "/me"
			if tt.query != "" {
				target += "?token=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.auth.calls != tt.wantCalls {
				t.Errorf("Authenticate calls = %d, want %d", tt.auth.calls, tt.wantCalls)
			}
		})
	}
}

type memAudit struct {
	mu   sync.Mutex
	logs []models.AuditLog
}

func (m *memAudit) Create(_ context.Context, l *models.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, *l)
	return nil
}

func TestAuditMiddleware(t *testing.T) {
	audit := &memAudit{}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if c.GetHeader("X-User") != "" {
			c.Set("currentUser", &models.User{ID: c.GetHeader("X-User")})
		}
	})
	r.Use(AuditMiddleware(audit, "audit-key"))
	r.POST("/api/transactions", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	send := func(user, body string) {
		req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
		if user != "" {
			req.Header.Set("X-User", user)
		}
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	send("", `{"amount":1}`)
	if len(audit.logs) != 0 {
		t.Fatalf("anonymous request audited: %+v", audit.logs)
	}

	send("u-1", `{"amount":12}`)
	send("u-1", `{"new_password":"hunter22"}`)
	if len(audit.logs) != 2 {
		t.Fatalf("audit rows = %d, want 2", len(audit.logs))
	}

	first := audit.logs[0]
	if first.UserID != "u-1" || first.Method != http.MethodPost || first.Status != http.StatusCreated {
		t.Errorf("audit row = %+v", first)
	}
	if first.PathEnc == "/api/transactions" {
		t.Error("path stored in plaintext")
	}
	if got := util.DecryptField("audit-key", first.ActionEnc); got != `POST /api/transactions {"amount":12}` {
		t.Errorf("decrypted action = %q", got)
	}
	if got := util.DecryptField("audit-key", audit.logs[1].ActionEnc); strings.Contains(got, "hunter22") {
		t.Errorf("password body recorded: %q", got)
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(io.Discard)), Recovery())
	r.GET("/ok", func(c *gin.Context) {
		if zerolog.Ctx(c.Request.Context()).GetLevel() == zerolog.Disabled {
			t.Error("request logger not in context")
		}
		c.Status(http.StatusOK)
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID not generated")
	}

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want the caller's id", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("panic status = %d, want 500", w.Code)
	}
}
