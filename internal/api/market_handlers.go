package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/service"

	"github.com/gin-gonic/gin"
)

type MarketHandler struct {
	marketService   service.MarketService
	overrideService service.OverrideService
}

func NewMarketHandler(marketService service.MarketService, overrideService service.OverrideService) *MarketHandler {
	return &MarketHandler{
		marketService:   marketService,
		overrideService: overrideService,
	}
}

// @Summary Get combined market status
// @Description Returns the effective open/closed decision after folding trading hours and any active override
// @Tags Market
// @Produce json
// @Success 200 {object} models.CombinedMarketStatus
// @Router /market/status [get]
func (h *MarketHandler) GetMarketStatus(c *gin.Context) {
	status := h.marketService.GetMarketStatus()
	c.JSON(http.StatusOK, gin.H{
		"is_open":            status.IsOpen,
		"is_override_active": status.IsOverrideActive,
		"effective_status":   status.EffectiveStatus,
		"message":            status.Message,
		"server_time":        h.marketService.CurrentTime(),
	})
}

// @Summary Get trading schedule status
// @Description Returns the schedule evaluator's raw view: open state, next transition and minutes remaining
// @Tags Market
// @Produce json
// @Success 200 {object} models.MarketStatus
// @Router /market/schedule [get]
func (h *MarketHandler) GetSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, h.marketService.Schedule())
}

type ActivateOverrideRequest struct {
	ActiveUntil string `json:"active_until" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}

// @Summary Activate a market hours override
// @Description Forces subscription access open until the given time; replaces any prior override
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param override body ActivateOverrideRequest true "Override window and justification"
// @Success 201 {object} models.MarketOverride
// @Failure 400 {object} map[string]string "Invalid JSON or past expiry"
// @Failure 500 {object} map[string]string "Server error"
// @Router /admin/override [post]
func (h *MarketHandler) ActivateOverride(c *gin.Context) {
	var req ActivateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	activeUntil, err := time.Parse(time.RFC3339, req.ActiveUntil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "active_until must be an RFC3339 timestamp"})
		return
	}

	userID, userName := callerIdentity(c)
	override, err := h.overrideService.Activate(activeUntil, req.Reason, userID, userName, requestMeta(c))
	if err == service.ErrActiveUntilPast {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Override end time must be in the future"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate override"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "Override activated", "override": override})
}

// @Summary Deactivate the current override
// @Description Disables the override while keeping the record; a safe no-op when none exists
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /admin/override [delete]
func (h *MarketHandler) DeactivateOverride(c *gin.Context) {
	userID, userName := callerIdentity(c)
	if err := h.overrideService.Deactivate(userID, userName, requestMeta(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate override"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Override deactivated"})
}

// @Summary Clear the override record
// @Description Removes the override record entirely
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /admin/override/clear [delete]
func (h *MarketHandler) ClearOverride(c *gin.Context) {
	userID, userName := callerIdentity(c)
	if err := h.overrideService.Clear(userID, userName, requestMeta(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear override"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Override cleared"})
}

// @Summary Get override status
// @Description Reports whether an override is active, when it ends and whether the caller can bypass market hours
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.OverrideStatus
// @Router /admin/override [get]
func (h *MarketHandler) GetOverrideStatus(c *gin.Context) {
	role, _ := c.Get("role")
	roleStr, _ := role.(string)
	c.JSON(http.StatusOK, h.overrideService.Status(models.UserRole(roleStr)))
}

// @Summary Get override audit log
// @Description Most recent override state transitions, newest first
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries" default(10)
// @Success 200 {array} models.OverrideAuditEntry
// @Router /admin/override/logs [get]
func (h *MarketHandler) GetOverrideAuditLog(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	entries, err := h.overrideService.AuditLog(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve audit log"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func callerIdentity(c *gin.Context) (string, string) {
	userID, _ := c.Get("user_id")
	userIDStr, _ := userID.(string)
	userName, _ := c.Get("user_name")
	userNameStr, _ := userName.(string)
	return userIDStr, userNameStr
}

func requestMeta(c *gin.Context) models.RequestMeta {
	return models.RequestMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}
