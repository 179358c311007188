package api

import (
	"errors"
	"net/http"

	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/service"

	"github.com/gin-gonic/gin"
)

type IPOHandler struct {
	ipoService  service.IPOService
	userService service.UserService
	logService  service.LogService
}

func NewIPOHandler(ipoService service.IPOService, userService service.UserService, logService service.LogService) *IPOHandler {
	return &IPOHandler{
		ipoService:  ipoService,
		userService: userService,
		logService:  logService,
	}
}

// @Summary List all IPO offerings
// @Tags IPOs
// @Produce json
// @Param status query string false "Filter by offering status (upcoming, open, closed)"
// @Success 200 {array} models.IPO
// @Router /ipos [get]
func (h *IPOHandler) GetAllIPOs(c *gin.Context) {
	var ipos []*models.IPO
	var err error
	if status := c.Query("status"); status != "" {
		ipos, err = h.ipoService.GetIPOsByStatus(models.IPOStatus(status))
	} else {
		ipos, err = h.ipoService.GetAllIPOs()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve IPOs"})
		return
	}
	c.JSON(http.StatusOK, ipos)
}

// @Summary Get one IPO offering
// @Tags IPOs
// @Produce json
// @Param id path string true "IPO ID"
// @Success 200 {object} models.IPO
// @Failure 404 {object} map[string]string "IPO not found"
// @Router /ipos/{id} [get]
func (h *IPOHandler) GetIPO(c *gin.Context) {
	ipo, err := h.ipoService.GetIPO(c.Param("id"))
	if err != nil || ipo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "IPO not found"})
		return
	}
	c.JSON(http.StatusOK, ipo)
}

type SubscribeRequest struct {
	Shares        int64 `json:"shares" binding:"required"`
	AdminOverride bool  `json:"admin_override"`
}

// @Summary Subscribe to an IPO
// @Description Places a subscription order. Rejected outside trading hours unless an override is active.
// @Tags IPOs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "IPO ID"
// @Param subscription body SubscribeRequest true "Share count"
// @Success 201 {object} models.SubscriptionResult
// @Failure 400 {object} map[string]string "Validation failure"
// @Failure 403 {object} map[string]string "Market closed"
// @Router /ipos/{id}/subscribe [post]
func (h *IPOHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	userID, _ := c.Get("user_id")
	user, err := h.userService.GetUser(userID.(string))
	if err != nil || user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	result, err := h.ipoService.Subscribe(user, c.Param("id"), req.Shares, req.AdminOverride)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMarketClosed):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrIPONotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInsufficientBalance):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrKYCNotVerified):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	h.logService.LogAction(user.ID, "ipo_subscribe", "IPO subscription placed", c.ClientIP(), map[string]interface{}{
		"ipo_id":         c.Param("id"),
		"shares":         req.Shares,
		"using_override": result.UsingOverride,
	})
	c.JSON(http.StatusCreated, result)
}

// @Summary Create an IPO offering
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ipo body models.IPO true "Offering details"
// @Success 201 {object} models.IPO
// @Router /admin/ipos [post]
func (h *IPOHandler) CreateIPO(c *gin.Context) {
	var ipo models.IPO
	if err := c.ShouldBindJSON(&ipo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	userID, _ := c.Get("user_id")
	ipo.CreatedBy, _ = userID.(string)
	if err := h.ipoService.CreateIPO(&ipo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create IPO"})
		return
	}
	c.JSON(http.StatusCreated, ipo)
}

// @Summary Update an IPO offering
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "IPO ID"
// @Param ipo body models.IPO true "Updated offering"
// @Success 200 {object} map[string]string
// @Router /admin/ipos/{id} [put]
func (h *IPOHandler) UpdateIPO(c *gin.Context) {
	var ipo models.IPO
	if err := c.ShouldBindJSON(&ipo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := h.ipoService.UpdateIPO(c.Param("id"), &ipo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update IPO"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "IPO updated"})
}
