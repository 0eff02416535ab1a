package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/middleware"
	"github.com/placelists/placelists/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// GetEngine creates a Gin engine with the middleware every route shares. Routes are registered by
// the Routes functions of each package.
func GetEngine(logger *slog.Logger, basePath string, tracingEnabled bool) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("authorization")
	corsConfig.AddExposeHeaders(middleware.CorrelationIDHeader)
	r.Use(cors.New(corsConfig))

	if tracingEnabled {
		r.Use(otelgin.Middleware(tracing.ServiceName))
	}

	r.Use(
		middleware.CorrelationID(),
		middleware.RequestLogger(logger),
		middleware.ErrorHandler(),
	)

	router := r.Group(basePath)
	router.GET("/health", health)

	return r
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}
