package api

import (
	"net/http"

	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/service"

	"github.com/gin-gonic/gin"
)

type CommissionHandler struct {
	commissionService service.CommissionService
}

func NewCommissionHandler(commissionService service.CommissionService) *CommissionHandler {
	return &CommissionHandler{commissionService: commissionService}
}

// @Summary List commission rules
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.CommissionRule
// @Router /admin/commissions [get]
func (h *CommissionHandler) GetAllRules(c *gin.Context) {
	rules, err := h.commissionService.GetAllRules()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve commission rules"})
		return
	}
	c.JSON(http.StatusOK, rules)
}

// @Summary Get one commission rule
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 200 {object} models.CommissionRule
// @Failure 404 {object} map[string]string "Rule not found"
// @Router /admin/commissions/{id} [get]
func (h *CommissionHandler) GetRule(c *gin.Context) {
	rule, err := h.commissionService.GetRule(c.Param("id"))
	if err != nil || rule == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commission rule not found"})
		return
	}
	c.JSON(http.StatusOK, rule)
}

// @Summary Create a commission rule
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rule body models.CommissionRule true "Rule definition"
// @Success 201 {object} models.CommissionRule
// @Router /admin/commissions [post]
func (h *CommissionHandler) CreateRule(c *gin.Context) {
	var rule models.CommissionRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := h.commissionService.CreateRule(&rule); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create commission rule"})
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// @Summary Update a commission rule
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Param rule body models.CommissionRule true "Updated rule"
// @Success 200 {object} map[string]string
// @Router /admin/commissions/{id} [put]
func (h *CommissionHandler) UpdateRule(c *gin.Context) {
	var rule models.CommissionRule
	if err := c.ShouldBindJSON(&rule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := h.commissionService.UpdateRule(c.Param("id"), &rule); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update commission rule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Commission rule updated"})
}

// @Summary Delete a commission rule
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 200 {object} map[string]string
// @Router /admin/commissions/{id} [delete]
func (h *CommissionHandler) DeleteRule(c *gin.Context) {
	if err := h.commissionService.DeleteRule(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete commission rule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Commission rule deleted"})
}

type CalculateCommissionRequest struct {
	Type   models.TransactionType `json:"type" binding:"required"`
	Amount float64                `json:"amount" binding:"required,gt=0"`
}

// @Summary Preview the commission for a transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param calculation body CalculateCommissionRequest true "Transaction type and gross amount"
// @Success 200 {object} models.CommissionCalculation
// @Router /commissions/calculate [post]
func (h *CommissionHandler) CalculateCommission(c *gin.Context) {
	var req CalculateCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	calc, err := h.commissionService.Calculate(req.Type, req.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate commission"})
		return
	}
	c.JSON(http.StatusOK, calc)
}

// @Summary Get the platform commission summary
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param period_start query string false "Period start (RFC3339)"
// @Param period_end query string false "Period end (RFC3339)"
// @Success 200 {object} models.CommissionSummary
// @Router /admin/commissions/summary [get]
func (h *CommissionHandler) GetSummary(c *gin.Context) {
	summary, err := h.commissionService.Summary(c.Query("period_start"), c.Query("period_end"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute commission summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
