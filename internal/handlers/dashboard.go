package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	errDashboardSummary = "failed to load dashboard summary"
	errDashboardFeed    = "failed to load activities"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// @Summary      Dashboard statistics snapshot
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.DashboardSummary
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/dashboard/summary [get]
func (h *Handler) dashboardSummary(c *gin.Context) {
	summary, err := h.services.Summary(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errDashboardSummary, "dashboard_summary_failed", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary      Recent activity feed
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "activities"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/dashboard/activities [get]
func (h *Handler) dashboardActivities(c *gin.Context) {
	activities, err := h.services.Activities(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errDashboardFeed, "dashboard_activities_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
