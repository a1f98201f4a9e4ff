package server

import (
	"github.com/Suprit166/crypto-trade-api/internal/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// NewRouter assembles the gin engine with all API routes.
func NewRouter(log *zap.Logger, h *Handler, upload config.Upload) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(RequestLogger(log), gin.Recovery())

	uploadLimiter := rate.NewLimiter(rate.Limit(upload.RateLimit), upload.RateLimitBurst)

	api := r.Group("/api")
	api.POST("/balance", h.Balance)
	api.POST("/upload-csv", RateLimit(uploadLimiter), h.UploadCSV)
	api.GET("/trades", h.Trades)

	r.GET("/health", h.Health)

	return r
}
