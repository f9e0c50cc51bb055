package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/wildwave/safaris/internal/auth"
)

func newGateRouter(codec *auth.TokenCodec) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(codec), func(c *gin.Context) {
		claims := c.MustGet(ClaimsKey).(*auth.Claims)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	return r
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r := newGateRouter(auth.NewTokenCodec("secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if body := w.Body.String(); body != `{"error":"No token provided"}` {
		t.Errorf("body = %s", body)
	}
}

func TestRequireAuthRejectsBadTokens(t *testing.T) {
	codec := auth.NewTokenCodec("secret")
	r := newGateRouter(codec)

	otherToken, err := auth.NewTokenCodec("other-secret").Issue(1, "a@b.com", auth.TypeAdmin, "")
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	for _, header := range []string{
		"Bearer garbage",
		"Basic abc123",
		"Bearer " + otherToken,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, w.Code)
		}
		if body := w.Body.String(); body != `{"error":"Invalid token"}` {
			t.Errorf("header %q: body = %s", header, body)
		}
	}
}

func TestRequireAuthPassesClaims(t *testing.T) {
	codec := auth.NewTokenCodec("secret")
	r := newGateRouter(codec)

	token, err := codec.Issue(9, "ops@wildwave.com", auth.TypeAdmin, "admin")
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != `{"email":"ops@wildwave.com"}` {
		t.Errorf("body = %s", body)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "fixed-id" {
		t.Errorf("X-Request-ID = %q, want fixed-id", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID not generated when absent")
	}
}
