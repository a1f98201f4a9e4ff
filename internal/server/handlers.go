package server

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/Suprit166/crypto-trade-api/internal/balance"
	"github.com/Suprit166/crypto-trade-api/internal/config"
	"github.com/Suprit166/crypto-trade-api/internal/ingest"
	"github.com/Suprit166/crypto-trade-api/internal/models"
	"github.com/Suprit166/crypto-trade-api/internal/store"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Slack on top of the file size cap to account for multipart framing.
const multipartOverhead = 64 << 10

// Handler holds dependencies for the API endpoints.
type Handler struct {
	log      *zap.Logger
	pipeline *ingest.Pipeline
	engine   *balance.Engine
	store    store.TradeStore
	upload   config.Upload
}

// NewHandler creates a new Handler.
func NewHandler(log *zap.Logger, pipeline *ingest.Pipeline, engine *balance.Engine, st store.TradeStore, upload config.Upload) *Handler {
	return &Handler{
		log:      log,
		pipeline: pipeline,
		engine:   engine,
		store:    st,
		upload:   upload,
	}
}

type balanceRequest struct {
	Timestamp string `json:"timestamp"`
}

// Balance answers a point-in-time balance query. The timestamp is validated
// here, before the engine runs, so a bad request is always distinguishable
// from a store failure.
func (h *Handler) Balance(c *gin.Context) {
	var req balanceRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Timestamp) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Timestamp is required"})
		return
	}

	ts, err := models.ParseTimestamp(req.Timestamp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timestamp format"})
		return
	}

	balances, err := h.engine.AsOf(c.Request.Context(), ts)
	if err != nil {
		h.log.Error("Failed to compute balance", zap.Time("as_of", ts), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch balance"})
		return
	}

	response := make(map[string]float64, len(balances))
	for asset, total := range balances {
		response[asset] = total.InexactFloat64()
	}
	c.JSON(http.StatusOK, response)
}

// UploadCSV ingests a CSV of trade rows. The uploaded temporary file is
// removed on every exit path.
func (h *Handler) UploadCSV(c *gin.Context) {
	if h.upload.MaxFileSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.upload.MaxFileSize+multipartOverhead)
	}

	file, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if h.upload.MaxFileSize > 0 && file.Size > h.upload.MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}
	if !isCSVUpload(file) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only CSV files are allowed"})
		return
	}

	tmp, err := os.CreateTemp(h.upload.TempDir, "upload-*.csv")
	if err != nil {
		h.log.Error("Failed to create temporary upload file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process CSV file"})
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		h.log.Error("Failed to save uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process CSV file"})
		return
	}

	f, err := os.Open(tmpPath)
	if err != nil {
		h.log.Error("Failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process CSV file"})
		return
	}
	defer f.Close()

	report, err := h.pipeline.Ingest(c.Request.Context(), ingest.NewCSVRows(f))
	switch {
	case errors.Is(err, ingest.ErrNoValidRecords):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid trade data found in CSV"})
		return
	case errors.Is(err, ingest.ErrStoreWrite):
		h.log.Error("Failed to persist trade batch", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save trades to the database"})
		return
	case err != nil:
		h.log.Error("Failed to ingest CSV", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process CSV file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    fmt.Sprintf("%d trades successfully uploaded and saved.", report.Accepted),
		"accepted":   report.Accepted,
		"rejected":   len(report.Rejected),
		"rejections": report.Rejected,
	})
}

// Trades returns all persisted trades, most recent first.
func (h *Handler) Trades(c *gin.Context) {
	trades, err := h.store.ReadUpTo(c.Request.Context(), time.Now().UTC())
	if err != nil {
		h.log.Error("Failed to get trades from store", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get trades"})
		return
	}
	sort.Slice(trades, func(i, j int) bool {
		return trades[i].UTCTime.After(trades[j].UTCTime)
	})
	c.JSON(http.StatusOK, trades)
}

// Health is a liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// isCSVUpload accepts the content types the original importer allowed, plus
// a filename fallback for clients that send a generic type.
func isCSVUpload(file *multipart.FileHeader) bool {
	switch file.Header.Get("Content-Type") {
	case "text/csv", "application/vnd.ms-excel":
		return true
	}
	return strings.HasSuffix(strings.ToLower(file.Filename), ".csv")
}
