package api

import (
	"net/http"

	"github.com/wcib/ipoportal/internal/service"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioService service.PortfolioService
}

func NewPortfolioHandler(portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

// @Summary List the caller's investments
// @Tags Portfolio
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Investment
// @Router /portfolio/investments [get]
func (h *PortfolioHandler) GetInvestments(c *gin.Context) {
	userID, _ := c.Get("user_id")
	investments, err := h.portfolioService.GetInvestments(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve investments"})
		return
	}
	c.JSON(http.StatusOK, investments)
}

// @Summary Get the caller's portfolio summary
// @Tags Portfolio
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.PortfolioSummary
// @Router /portfolio/summary [get]
func (h *PortfolioHandler) GetSummary(c *gin.Context) {
	userID, _ := c.Get("user_id")
	summary, err := h.portfolioService.GetSummary(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute portfolio summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Get the caller's sector allocation
// @Tags Portfolio
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SectorAllocation
// @Router /portfolio/sectors [get]
func (h *PortfolioHandler) GetSectorAllocation(c *gin.Context) {
	userID, _ := c.Get("user_id")
	allocation, err := h.portfolioService.GetSectorAllocation(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute sector allocation"})
		return
	}
	c.JSON(http.StatusOK, allocation)
}
