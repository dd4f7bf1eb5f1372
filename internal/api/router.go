package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"laundry-finder-backend/config"
	"laundry-finder-backend/internal/directory"
	"laundry-finder-backend/internal/mw"
	"laundry-finder-backend/internal/notify"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(dir *directory.Directory, notes *notify.Store, cfg config.ServerConfig) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(dir, notes)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	// Shop views are derived from the directory, so any reload makes them stale.
	responseCache := mw.NewResponseCache(ttl)
	dir.OnChange(responseCache.Invalidate)
	caching := responseCache.Middleware()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.GET("/shops", caching, handler.ListShops)
		api.GET("/shops/:shop_id", caching, handler.GetShop)

		api.GET("/selection", handler.GetSelection)
		api.PUT("/selection", handler.PutSelection)
		api.DELETE("/selection", handler.DeleteSelection)

		api.GET("/refresh", handler.GetRefreshStatus)
		api.POST("/refresh", handler.Refresh)

		api.GET("/notifications", handler.ListNotifications)
		api.POST("/notifications", handler.AddNotification)
		api.DELETE("/notifications/:id", handler.DeleteNotification)
	}

	return r
}
