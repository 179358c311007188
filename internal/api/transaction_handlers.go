package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/service"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	txService   service.TransactionService
	userService service.UserService
	logService  service.LogService
}

func NewTransactionHandler(txService service.TransactionService, userService service.UserService, logService service.LogService) *TransactionHandler {
	return &TransactionHandler{
		txService:   txService,
		userService: userService,
		logService:  logService,
	}
}

type DepositRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// @Summary Deposit funds into the wallet
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param deposit body DepositRequest true "Amount to deposit"
// @Success 201 {object} models.Transaction
// @Router /transactions/deposit [post]
func (h *TransactionHandler) Deposit(c *gin.Context) {
	var req DepositRequest
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

	tx, err := h.txService.Deposit(user, req.Amount, req.Description)
	if err == service.ErrInvalidAmount {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be greater than zero"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process deposit"})
		return
	}

	h.logService.LogAction(user.ID, "deposit", "Wallet deposit", c.ClientIP(), map[string]interface{}{
		"amount": req.Amount,
	})
	c.JSON(http.StatusCreated, tx)
}

// @Summary List the caller's transactions
// @Description Optional query filters: type, status, start_date, end_date (RFC3339), min_amount, max_amount
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Transaction
// @Router /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	filters := models.TransactionFilters{
		Type:   models.TransactionType(c.Query("type")),
		Status: models.TransactionStatus(c.Query("status")),
	}
	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be an RFC3339 timestamp"})
			return
		}
		filters.StartDate = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be an RFC3339 timestamp"})
			return
		}
		filters.EndDate = &t
	}
	if v := c.Query("min_amount"); v != "" {
		filters.MinAmount, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.Query("max_amount"); v != "" {
		filters.MaxAmount, _ = strconv.ParseFloat(v, 64)
	}

	userID, _ := c.Get("user_id")
	txs, err := h.txService.GetUserTransactions(userID.(string), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transactions"})
		return
	}
	c.JSON(http.StatusOK, txs)
}

// @Summary Get the caller's transaction statistics
// @Tags Transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.TransactionStats
// @Router /transactions/stats [get]
func (h *TransactionHandler) GetStats(c *gin.Context) {
	userID, _ := c.Get("user_id")
	stats, err := h.txService.GetStats(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute transaction stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary List all transactions on the platform
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {array} models.Transaction
// @Router /admin/transactions [get]
func (h *TransactionHandler) GetAllTransactions(c *gin.Context) {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
		return
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	txs, err := h.txService.GetAllTransactions(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transactions"})
		return
	}
	c.JSON(http.StatusOK, txs)
}
