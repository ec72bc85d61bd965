package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	SIP    *SIPHandler
	Goal   *GoalHandler
	StepUp *StepUpHandler
	Page   *PageHandler
}

// NewRouter wires the page, the JSON API and the health check. Every route that runs a
// calculation goes through limiter.
func NewRouter(h Handlers, limiter Limiter) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(requestLogger(), gin.Recovery())
	router.SetHTMLTemplate(loadTemplates())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	limited := RateLimitMiddleware(limiter)

	router.GET("/", h.Page.Index)
	router.POST("/calculate", limited, h.Page.Submit)
	router.GET("/chart", limited, h.Page.Chart)

	api := router.Group("/api/v1/sip")
	api.Use(limited, RequireJSON())
	{
		api.POST("/calculate", h.SIP.CalculateSIP)
		api.POST("/goal", h.Goal.RecommendDuration)
		api.POST("/compare", h.StepUp.Compare)
		api.GET("/history", h.SIP.History)
	}

	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP())
	}
}
