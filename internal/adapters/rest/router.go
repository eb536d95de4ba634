package rest

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cp25sy5-modjot/market-proxy-service/internal/pkg/logging"
)

// NewRouter wires the API routes, allow-all CORS, request logging and, when
// staticDir is set, static assets for every path no route claims.
func NewRouter(h *Handler, logger zerolog.Logger, staticDir string) *gin.Engine {
	r := gin.New()

	r.Use(logging.Middleware(logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zerolog.Ctx(c.Request.Context()).Error().Interface("panic", recovered).Msg("handler panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	api := r.Group("/api")
	api.GET("/stooq", h.GetStooq)
	api.POST("/newssummary", h.PostNewsSummary)
	api.GET("/news", h.GetNews)

	r.GET("/healthz", h.GetHealth)

	if staticDir != "" {
		r.NoRoute(staticFiles(staticDir))
	}

	return r
}

func staticFiles(dir string) gin.HandlerFunc {
	fs := http.FileServer(http.Dir(dir))
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound})
			return
		}
		fs.ServeHTTP(c.Writer, c.Request)
	}
}
