// Package auth implements local signup/signin and the signed-cookie session.
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"vilcos/config"
	"vilcos/model"
	"vilcos/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db  *gorm.DB
	cfg config.Config
}

func NewHandler(db *gorm.DB, cfg config.Config) *Handler {
	return &Handler{db: db, cfg: cfg}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "email, username and a password of at least 8 characters are required"})
		return
	}

	user := model.User{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Username: strings.TrimSpace(req.Username),
		IsActive: true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to process password"})
		return
	}

	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Email or username is already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Account created, you can sign in now"})
}

type signinRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "email and password are required"})
		return
	}

	var user model.User
	if err := h.db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid email or password"})
		return
	}
	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Account is deactivated"})
		return
	}
	if err := user.CheckPassword(req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid email or password"})
		return
	}

	ttl := time.Duration(h.cfg.SessionMaxAge) * time.Second
	token, err := utils.GenerateSessionToken(h.cfg.SecretKey, user.ID, user.IsAdmin, ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create session"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookieName, token, h.cfg.SessionMaxAge, "/", "", h.cfg.SessionSecure, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
			"is_admin": user.IsAdmin,
		},
	})
}

func (h *Handler) Signout(c *gin.Context) {
	c.SetCookie(h.cfg.SessionCookieName, "", -1, "/", "", h.cfg.SessionSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Signed out successfully"})
}

// Me returns the authenticated user; mounted behind SessionMiddleware.
func (h *Handler) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return
	}

	var user model.User
	if err := h.db.First(&user, userID.(uint)).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Session user no longer exists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"username":   user.Username,
		"is_admin":   user.IsAdmin,
		"is_active":  user.IsActive,
		"created_at": user.CreatedAt,
	})
}
