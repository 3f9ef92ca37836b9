package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	"github.com/nickmafra/sym-balls/internal/telemetry"
)

const (
	requestIDKey = "request_id"
	serviceName  = "symballs"
)

// RouterOptions tunes the middleware chain. A zero RateLimit disables limiting.
type RouterOptions struct {
	RateLimit float64
	Burst     int
}

// NewRouter builds the engine with recovery, tracing, request ids, request
// logging, optional rate limiting, the API routes, health and metrics.
func NewRouter(h *Handler, logger *slog.Logger, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), otelgin.Middleware(serviceName), RequestID(), RequestLogger(logger))
	if opts.RateLimit > 0 {
		r.Use(RateLimit(rate.NewLimiter(rate.Limit(opts.RateLimit), max(opts.Burst, 1))))
	}
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": h.UC.SessionCount()})
	})
	r.GET("/metrics", gin.WrapH(telemetry.Handler()))
	RegisterRoutes(r.Group("/api"), h)
	return r
}

// RegisterRoutes mounts the level and session endpoints on rg.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	levels := rg.Group("/levels")
	levels.GET("", h.ListLevels)
	levels.POST("", h.SaveLevel)
	levels.POST("/scramble", h.Scramble)
	levels.GET("/:id", h.GetLevel)

	sessions := rg.Group("/sessions")
	sessions.POST("", h.StartSession)
	sessions.GET("/:id", h.GetSession)
	sessions.DELETE("/:id", h.EndSession)
	sessions.POST("/:id/apply", h.ApplyMove)
	sessions.POST("/:id/reset", h.ResetSession)
	sessions.GET("/:id/hint", h.Hint)
	sessions.GET("/:id/solution", h.Solve)
	sessions.POST("/:id/moves", h.AuthorMove)
	sessions.DELETE("/:id/moves/:index", h.RemoveMove)
	sessions.POST("/:id/moves/:index/invert", h.InvertMove)
	sessions.POST("/:id/moves/:index/duplicate", h.DuplicateMove)
}

// RequestID echoes X-Request-ID or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Set(requestIDKey, id)
		c.Next()
	}
}

// RateLimit rejects requests with 429 once the limiter runs dry.
func RateLimit(l *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Error: "rate limit exceeded", Code: "RATE_LIMITED"})
			return
		}
		c.Next()
	}
}

// RequestLogger logs method, path, status, bytes and duration per request.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
			"request_id", c.GetString(requestIDKey),
		)
	}
}
