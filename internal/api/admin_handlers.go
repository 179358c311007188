package api

import (
	"net/http"
	"strconv"

	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService service.AdminService
	userService  service.UserService
	kycService   service.KYCService
	logService   service.LogService
}

func NewAdminHandler(adminService service.AdminService, userService service.UserService, kycService service.KYCService, logService service.LogService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		userService:  userService,
		kycService:   kycService,
		logService:   logService,
	}
}

// @Summary Get platform statistics
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.PlatformStats
// @Router /admin/stats [get]
func (h *AdminHandler) GetPlatformStats(c *gin.Context) {
	stats, err := h.adminService.PlatformStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute platform stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary List all users
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} map[string]interface{}
// @Router /admin/users [get]
func (h *AdminHandler) GetAllUsers(c *gin.Context) {
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

	users, total, err := h.userService.GetAllUsers(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "total": total, "page": page, "limit": limit})
}

type UserStatusRequest struct {
	Status models.UserStatus `json:"status" binding:"required"`
}

// @Summary Change a user's account status
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param status body UserStatusRequest true "New status"
// @Success 200 {object} map[string]string
// @Router /admin/users/{id}/status [put]
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	var req UserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if err := h.userService.SetUserStatus(c.Param("id"), req.Status); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "User status updated"})
}

// @Summary List all KYC submissions
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.KYCSubmission
// @Router /admin/kyc [get]
func (h *AdminHandler) GetAllKYC(c *gin.Context) {
	submissions, err := h.kycService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve KYC submissions"})
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// @Summary List pending KYC submissions
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.KYCSubmission
// @Router /admin/kyc/pending [get]
func (h *AdminHandler) GetPendingKYC(c *gin.Context) {
	submissions, err := h.kycService.GetPending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve KYC submissions"})
		return
	}
	c.JSON(http.StatusOK, submissions)
}

type KYCReviewRequest struct {
	Approve bool   `json:"approve"`
	Comment string `json:"comment"`
}

// @Summary Review a KYC submission
// @Description Approves or rejects the submission and mirrors the outcome onto the user record
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Submission ID"
// @Param review body KYCReviewRequest true "Review decision"
// @Success 200 {object} models.KYCSubmission
// @Router /admin/kyc/{id}/review [put]
func (h *AdminHandler) ReviewKYC(c *gin.Context) {
	var req KYCReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	userID, _ := c.Get("user_id")
	reviewer, _ := userID.(string)
	submission, err := h.kycService.Review(c.Param("id"), req.Approve, reviewer, req.Comment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to review KYC submission"})
		return
	}
	c.JSON(http.StatusOK, submission)
}

// @Summary Get platform activity logs
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(50)
// @Param user_id query string false "Filter by user"
// @Success 200 {array} models.ActivityLog
// @Router /admin/logs [get]
func (h *AdminHandler) GetActivityLogs(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	var logs []*models.ActivityLog
	if userID := c.Query("user_id"); userID != "" {
		logs, err = h.logService.GetLogsByUserID(userID, page, limit)
	} else {
		logs, err = h.logService.GetAllLogs(page, limit)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve activity logs"})
		return
	}
	c.JSON(http.StatusOK, logs)
}
