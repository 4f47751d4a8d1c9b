// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"wayfarer/internal/http/handlers"
	"wayfarer/internal/http/middleware"
	"wayfarer/internal/modules/content"
	"wayfarer/internal/modules/usage"
	"wayfarer/internal/ollama"
)

type RouterDeps struct {
	Content *content.Service
	Client  *ollama.Client
	Usage   *usage.Service
	Redis   *redis.Client
	// RateLimitPerMin caps /api/travel requests per client IP; 0 disables.
	RateLimitPerMin int
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	travelHandler := handlers.NewTravelHandler(deps.Content)
	travel := r.Group("/api/travel", middleware.RateLimit(deps.Redis, deps.RateLimitPerMin))
	travel.GET("/weather", travelHandler.Weather)
	travel.GET("/plan", travelHandler.Plan)
	travel.GET("/tips", travelHandler.Tips)

	modelHandler := handlers.NewModelHandler(deps.Client)
	r.GET("/api/models", modelHandler.List)
	r.POST("/api/models/switch", modelHandler.Switch)

	usageHandler := handlers.NewUsageHandler(deps.Usage)
	r.GET("/api/usage/recent", usageHandler.Recent)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
