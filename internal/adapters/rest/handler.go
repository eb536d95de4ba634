package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cp25sy5-modjot/market-proxy-service/internal/ports"
)

type Handler struct {
	service ports.DashboardPort
}

func NewHandler(service ports.DashboardPort) *Handler {
	return &Handler{service: service}
}

// GetStooq returns the daily closing prices for ?stock= as a bare array.
func (h *Handler) GetStooq(c *gin.Context) {
	stock := c.Query("stock")
	if stock == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgStockRequired})
		return
	}

	points, err := h.service.PriceHistory(c.Request.Context(), stock)
	if err != nil {
		logUpstreamFailure(c, "stooq", stock, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgStockDataFailed})
		return
	}

	c.JSON(http.StatusOK, points)
}

func (h *Handler) GetNews(c *gin.Context) {
	stock := c.Query("stock")
	if stock == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgMissingStockSymbol})
		return
	}

	res, err := h.service.SearchNews(c.Request.Context(), stock)
	if err != nil {
		logUpstreamFailure(c, "news", stock, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgNewsFailed})
		return
	}

	c.JSON(http.StatusOK, res)
}

// PostNewsSummary keeps the "reply" field on errors too; the dashboard reads
// that field whatever the status.
func (h *Handler) PostNewsSummary(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"reply": msgNoMessage})
		return
	}

	res, err := h.service.Summarize(c.Request.Context(), req.Message)
	if err != nil {
		logUpstreamFailure(c, "newssummary", "", err)
		c.JSON(http.StatusInternalServerError, gin.H{"reply": msgSummaryFailed})
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetHealth(c *gin.Context) {
	healthy, msg := h.service.Check(c.Request.Context(), c.Query("name"))
	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"healthy": healthy, "message": msg})
}

func logUpstreamFailure(c *gin.Context, route, stock string, err error) {
	ev := zerolog.Ctx(c.Request.Context()).Error().Err(err).Str("route", route)
	if stock != "" {
		ev = ev.Str("stock", stock)
	}
	ev.Msg("upstream request failed")
}
