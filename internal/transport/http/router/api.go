package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"medsystem/internal/core/auth"
	mdw "medsystem/internal/transport/http/middleware"
)

// NewAPIEngine wires the middleware chain and mounts every registered
// module under /api/v1. Public routes go first; the rest sit behind the
// JWT middleware.
func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Unauthenticated routes (login, cpf-exists) get a tighter per-IP
	// limit on top of the global bucket.
	api := r.Group("/api/v1")
	public := api.Group("")
	public.Use(mdw.RateLimitPerIP(5, 10))
	MountAllPublic(public)

	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter))
	MountAllAPI(authed)

	return r
}
