package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/configs"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityProbe(cfg *configs.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", Identity(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": utils.CurrentUserID(c)})
	})
	r.GET("/protected", Identity(cfg), RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func testConfig() *configs.Config {
	return &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
}

func TestIdentityHeaderWins(t *testing.T) {
	r := identityProbe(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-User-Id", "7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7}`, w.Body.String())
}

func TestIdentityCookieFallback(t *testing.T) {
	cfg := testConfig()
	r := identityProbe(cfg)

	token, err := utils.GenerateSessionToken(9, cfg.JWTSecret, cfg.JWTTTL)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.JSONEq(t, `{"user_id":9}`, w.Body.String())
}

func TestIdentityBadCredentialsAreAnonymous(t *testing.T) {
	r := identityProbe(testConfig())

	for _, tc := range []struct {
		name  string
		setup func(req *http.Request)
	}{
		{"garbage header", func(req *http.Request) { req.Header.Set("X-User-Id", "abc") }},
		{"forged cookie", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-token"})
		}},
		{"nothing", func(req *http.Request) {}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			tc.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.JSONEq(t, `{"user_id":0}`, w.Body.String())

			req = httptest.NewRequest(http.MethodGet, "/protected", nil)
			tc.setup(req)
			w = httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
