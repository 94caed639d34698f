package security

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestOriginPolicySwap(t *testing.T) {
	p := NewOriginPolicy([]string{"http://a.example"})
	assert.True(t, p.Allowed("http://a.example"))
	assert.False(t, p.Allowed("http://b.example"))

	p.Set([]string{"http://b.example"})
	assert.False(t, p.Allowed("http://a.example"))
	assert.True(t, p.Allowed("http://b.example"))

	p.Set([]string{"*"})
	assert.True(t, p.Allowed("http://anything.example"))
}

func TestRateLimiterBurst(t *testing.T) {
	l := NewRateLimiter(2, time.Hour)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"))

	// 调整参数后计数重置
	l.Update(3, time.Hour)
	assert.True(t, l.Allow("10.0.0.1"))
}

func TestMiddlewareRejectsOverLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := NewRateLimiter(1, time.Hour)

	router := gin.New()
	router.Use(CORS(NewOriginPolicy([]string{"http://a.example"})), l.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://a.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://a.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
