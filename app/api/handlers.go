package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eubelhor/house-scraper/app/dataset"
	"github.com/eubelhor/house-scraper/app/export"
	"github.com/eubelhor/house-scraper/app/scraper"
	"github.com/eubelhor/house-scraper/app/tasks"
)

func NewHandler(store *dataset.Store, configCache *scraper.ConfigCache,
	refresher tasks.RefresherInterface) *Handler {
	return &Handler{
		store:       store,
		configCache: configCache,
		csvExporter: export.NewCSVExporter(),
		refresher:   refresher,
	}
}

func (h *Handler) GetRepresentatives(c *gin.Context) {
	members := h.store.Members()
	if members == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no dataset acquired yet"})
		return
	}

	c.Header("X-Record-Count", strconv.Itoa(len(members)))
	c.Header("X-Last-Updated", h.store.UpdatedAt().Format(time.RFC3339))

	c.JSON(http.StatusOK, gin.H{
		"count":           len(members),
		"updated_at":      h.store.UpdatedAt().Format(time.RFC3339),
		"representatives": members,
	})
}

func (h *Handler) GetRepresentativesCSV(c *gin.Context) {
	members := h.store.Members()
	if members == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="house_members.csv"`)
	c.Header("X-Record-Count", strconv.Itoa(len(members)))

	if err := h.csvExporter.Write(c.Writer, members); err != nil {
		slog.Error("CSV streaming error", "error", err)
		c.Status(http.StatusInternalServerError)
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"seats":     h.store.Count(),
		"sources":   h.configCache.GetConfigCount(),
	}

	if updatedAt := h.store.UpdatedAt(); !updatedAt.IsZero() {
		health["last_updated"] = updatedAt.Format(time.RFC3339)
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := h.store.Stats()
	if stats == nil {
		c.JSON(http.StatusOK, gin.H{"seats": 0})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"seats":      stats.Seats,
		"parsed":     stats.Parsed,
		"skipped":    stats.Skipped,
		"consulted":  stats.Consulted,
		"per_source": stats.PerSource,
		"updated_at": h.store.UpdatedAt().Format(time.RFC3339),
	})
}

func (h *Handler) APIRefresh(c *gin.Context) {
	slog.Info("Manual refresh requested", "client", c.ClientIP())

	if err := h.refresher.Refresh(c.Request.Context()); err != nil {
		slog.Error("Manual refresh failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "refresh failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "refreshed",
		"seats":  h.store.Count(),
	})
}
