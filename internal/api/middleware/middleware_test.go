package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw...)
	router.GET("/whoami", func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "request_id": c.GetString("request_id")})
	})
	router.POST("/whoami", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func signToken(t *testing.T, secret, subject string, expires time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: "player@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestNoAuthSetsAnonymousUser(t *testing.T) {
	router := newRouter(NoAuth())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), anonymousUser)
}

func TestGatewayAuth(t *testing.T) {
	router := newRouter(GatewayAuth())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-User-ID", "42")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"42"`)
}

func TestJWTAuth(t *testing.T) {
	router := newRouter(JWTAuth(testSecret))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", header: "Token abc", wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + signToken(t, "other", "u1", time.Now().Add(time.Hour)), wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + signToken(t, testSecret, "u1", time.Now().Add(-time.Hour)), wantStatus: http.StatusUnauthorized},
		{name: "no subject", header: "Bearer " + signToken(t, testSecret, "", time.Now().Add(time.Hour)), wantStatus: http.StatusUnauthorized},
		{name: "valid", header: "Bearer " + signToken(t, testSecret, "u1", time.Now().Add(time.Hour)), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
			}
		})
	}
}

func TestParseTokenRequiresSecret(t *testing.T) {
	_, err := ParseToken("anything", "")
	assert.Error(t, err)
}

func TestRequestTrackingSetsRequestID(t *testing.T) {
	router := newRouter(RequestTracking(nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(requestIDHeader, "upstream-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "upstream-id", w.Header().Get(requestIDHeader))
	assert.Contains(t, w.Body.String(), "upstream-id")
}

func TestRecoverWithSentry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RecoverWithSentry())
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestSentryUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		headers map[string]string
		want    sentry.User
		wantOK  bool
	}{
		{
			name:    "id and email",
			headers: map[string]string{"X-User-ID": "42", "X-User-Email": "player@example.com"},
			want:    sentry.User{ID: "42", Email: "player@example.com"},
			wantOK:  true,
		},
		{
			name:    "id only",
			headers: map[string]string{"X-User-ID": "42"},
			want:    sentry.User{ID: "42"},
			wantOK:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got sentry.User
				ok  bool
			)
			router := gin.New()
			router.Use(GatewayAuth())
			router.GET("/user", func(c *gin.Context) {
				got, ok = sentryUser(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/user", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := sentryUser(c)
	assert.False(t, ok)
}

func TestCORS(t *testing.T) {
	router := newRouter(CORS([]string{"https://daw.example.com"}))

	preflight := httptest.NewRequest(http.MethodOptions, "/whoami", nil)
	preflight.Header.Set("Origin", "https://daw.example.com")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, preflight)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://daw.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
