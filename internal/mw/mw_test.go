package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestResponseCache_HitMissAndInvalidate(t *testing.T) {
	rc := NewResponseCache(time.Minute)
	calls := 0

	r := gin.New()
	r.GET("/shops", rc.Middleware(), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"calls": calls})
	})

	get := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/shops", nil)
		r.ServeHTTP(w, req)
		return w
	}

	first := get()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get(CacheHeader))
	assert.JSONEq(t, `{"calls":1}`, first.Body.String())

	second := get()
	assert.Equal(t, "HIT", second.Header().Get(CacheHeader))
	assert.JSONEq(t, `{"calls":1}`, second.Body.String())
	assert.Equal(t, 1, rc.Len())

	rc.Invalidate()
	assert.Equal(t, 0, rc.Len())

	third := get()
	assert.Equal(t, "MISS", third.Header().Get(CacheHeader))
	assert.JSONEq(t, `{"calls":2}`, third.Body.String())
}

func TestResponseCache_DropsResponseRenderedBeforeInvalidate(t *testing.T) {
	rc := NewResponseCache(time.Minute)
	calls := 0

	r := gin.New()
	r.GET("/shops", rc.Middleware(), func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"calls": calls})
		if calls == 1 {
			// the data changes after this response was rendered
			rc.Invalidate()
		}
	})

	get := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/shops", nil)
		r.ServeHTTP(w, req)
		return w
	}

	first := get()
	assert.Equal(t, "MISS", first.Header().Get(CacheHeader))
	assert.Equal(t, 0, rc.Len())

	second := get()
	assert.Equal(t, "MISS", second.Header().Get(CacheHeader))
	assert.JSONEq(t, `{"calls":2}`, second.Body.String())
	assert.Equal(t, 1, rc.Len())
}

func TestResponseCache_SkipsErrorsAndNonGet(t *testing.T) {
	rc := NewResponseCache(time.Minute)

	r := gin.New()
	r.Use(rc.Middleware())
	r.GET("/missing", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
	})
	r.POST("/refresh", func(c *gin.Context) {
		c.Status(http.StatusAccepted)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/missing", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/refresh", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusAccepted, w.Code)

	assert.Equal(t, 0, rc.Len())
}

func TestRateLimiter_RejectsBurst(t *testing.T) {
	r := gin.New()
	r.Use(RateLimiter(rate.Limit(1), 2))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// A different client has its own bucket.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIPRateLimiter_ReusesBucket(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(1), 1, time.Minute)
	assert.Same(t, l.GetLimiter("1.2.3.4"), l.GetLimiter("1.2.3.4"))
	assert.NotSame(t, l.GetLimiter("1.2.3.4"), l.GetLimiter("5.6.7.8"))
}
