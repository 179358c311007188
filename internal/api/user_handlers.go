package api

import (
	"net/http"

	"github.com/wcib/ipoportal/internal/config"
	"github.com/wcib/ipoportal/internal/middleware"
	"github.com/wcib/ipoportal/internal/models"
	"github.com/wcib/ipoportal/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
	kycService  service.KYCService
	logService  service.LogService
	cfg         *config.Config
}

func NewUserHandler(userService service.UserService, kycService service.KYCService, logService service.LogService, cfg *config.Config) *UserHandler {
	return &UserHandler{
		userService: userService,
		kycService:  kycService,
		logService:  logService,
		cfg:         cfg,
	}
}

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Company  string `json:"company"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary Register a new client account
// @Tags Users
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid JSON"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Role:     models.RoleClient,
		Company:  req.Company,
	}
	err := h.userService.Register(user, req.Password)
	if err == service.ErrEmailTaken {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "Account created", "user_id": user.ID.Hex()})
}

// @Summary Authenticate and issue a JWT
// @Tags Users
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Email and password"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err == service.ErrInvalidCredentials {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	if user.Status == models.UserStatusSuspended {
		c.JSON(http.StatusForbidden, gin.H{"error": "Account suspended"})
		return
	}

	token, err := middleware.GenerateJWT(user.ID.Hex(), user.FullName, user.Role, h.cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	// Login succeeds even when the activity trail cannot be written.
	h.logService.LogAction(user.ID, "login", "User logged in", c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// @Summary Get the authenticated user's profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Router /users/me [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, _ := c.Get("user_id")
	user, err := h.userService.GetUser(userID.(string))
	if err != nil || user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

type KYCSubmitRequest struct {
	Documents []string `json:"documents" binding:"required,min=1"`
}

// @Summary Submit identity documents for verification
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body KYCSubmitRequest true "Document references"
// @Success 201 {object} models.KYCSubmission
// @Failure 409 {object} map[string]string "Submission already pending"
// @Router /users/kyc [post]
func (h *UserHandler) SubmitKYC(c *gin.Context) {
	var req KYCSubmitRequest
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

	submission, err := h.kycService.Submit(user, req.Documents)
	if err == service.ErrKYCAlreadyPending {
		c.JSON(http.StatusConflict, gin.H{"error": "A KYC submission is already under review"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit KYC documents"})
		return
	}

	h.logService.LogAction(user.ID, "kyc_submit", "KYC documents submitted", c.ClientIP(), map[string]interface{}{
		"documents": len(req.Documents),
	})
	c.JSON(http.StatusCreated, submission)
}
