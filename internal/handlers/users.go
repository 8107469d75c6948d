package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"printcare/internal/auth"
	"printcare/internal/database"
	"printcare/internal/httperr"
	"printcare/internal/logger"
	"printcare/internal/models"
)

// ListUsers returns every account for the admin panel. Password hashes are
// excluded by the model's json tag; last login and active flag are included.
func ListUsers(c *gin.Context) {
	var users []models.User
	err := database.DB.
		Order("created_at desc").
		Find(&users).Error
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,role"`
}

// CreateUser registers a new account. The email doubles as the username.
func CreateUser(c *gin.Context) {
	admin, ok := actor(c)
	if !ok {
		return
	}

	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("name, email, mobile and password are required"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	err := database.DB.Model(&models.User{}).
		Where("email = ? OR username = ?", email, email).
		Count(&count).Error
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	if count > 0 {
		httperr.Respond(c, httperr.Conflict("user with this email already exists"))
		return
	}

	role := models.Role(req.Role)
	if req.Role == "" {
		role = models.RoleEmployee
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	user := models.User{
		Username:     email,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	database.WriteAudit(database.DB, admin.ID, "CREATE_USER", "users", user.ID, nil, gin.H{
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "user created successfully",
		"user":    userSummary(&user),
	})
}

type updateUserRequest struct {
	ID       uint   `json:"id" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role" binding:"omitempty,role"`
	IsActive *bool  `json:"is_active"`
}

func UpdateUser(c *gin.Context) {
	admin, ok := actor(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("user id is required"))
		return
	}

	var current models.User
	if err := database.DB.First(&current, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.New(httperr.KindNotFound, "user not found"))
			return
		}
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	old := gin.H{
		"email":     current.Email,
		"role":      current.Role,
		"is_active": current.IsActive,
	}

	updated := current
	if req.Email != "" {
		updated.Email = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if req.Role != "" {
		updated.Role = models.Role(req.Role)
	}
	if req.IsActive != nil {
		updated.IsActive = *req.IsActive
	}

	err := database.DB.Model(&current).
		Select("email", "role", "is_active").
		Updates(map[string]interface{}{
			"email":     updated.Email,
			"role":      updated.Role,
			"is_active": updated.IsActive,
		}).Error
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	database.WriteAudit(database.DB, admin.ID, "UPDATE_USER", "users", current.ID, old, gin.H{
		"email":     updated.Email,
		"role":      updated.Role,
		"is_active": updated.IsActive,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "user updated successfully",
		"user": gin.H{
			"id":        current.ID,
			"username":  current.Username,
			"email":     updated.Email,
			"role":      updated.Role,
			"is_active": updated.IsActive,
		},
	})
}

// DeleteUser removes an account. Two guards run before any store mutation:
// an admin can never delete their own account, and accounts holding the
// ADMIN role cannot be deleted at all.
func DeleteUser(c *gin.Context) {
	admin, ok := actor(c)
	if !ok {
		return
	}

	idStr := c.Query("id")
	if idStr == "" {
		httperr.Respond(c, httperr.BadRequest("user id is required"))
		return
	}
	id64, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		httperr.Respond(c, httperr.BadRequest("invalid user id"))
		return
	}
	id := uint(id64)

	if id == admin.ID {
		httperr.Respond(c, httperr.BadRequest("cannot delete your own account"))
		return
	}

	var target models.User
	if err := database.DB.First(&target, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.New(httperr.KindNotFound, "user not found"))
			return
		}
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	if target.Role == models.RoleAdmin {
		httperr.Respond(c, httperr.New(httperr.KindForbidden, "cannot delete an administrator account"))
		return
	}

	if err := database.DB.Unscoped().Delete(&target).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	database.WriteAudit(database.DB, admin.ID, "DELETE_USER", "users", target.ID, gin.H{
		"username": target.Username,
		"email":    target.Email,
		"role":     target.Role,
	}, nil)

	c.JSON(http.StatusOK, gin.H{"message": "user deleted successfully"})
}

type resetPasswordRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// ResetPassword generates a temporary password, stores its hash and audits
// the action. The plaintext is logged exactly once for delivery to the user
// and never persisted or returned.
func ResetPassword(c *gin.Context) {
	admin, ok := actor(c)
	if !ok {
		return
	}

	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.BadRequest("user id is required"))
		return
	}

	var user models.User
	if err := database.DB.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Respond(c, httperr.New(httperr.KindNotFound, "user not found"))
			return
		}
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	plaintext, err := auth.GenerateTempPassword(auth.TempPasswordLength)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}
	hash, err := auth.HashPassword(plaintext)
	if err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	if err := database.DB.Model(&user).Update("password_hash", hash).Error; err != nil {
		httperr.Respond(c, httperr.Internal(err))
		return
	}

	database.WriteAudit(database.DB, admin.ID, "RESET_PASSWORD", "users", user.ID, nil, gin.H{
		"password_reset": true,
		"reset_by":       admin.Username,
	})

	// TODO: deliver by email instead of the log once SMTP settings exist.
	log := logger.Get()
	log.Info().
		Str("username", user.Username).
		Str("temp_password", plaintext).
		Msg("password reset")

	c.JSON(http.StatusOK, gin.H{
		"message": "password reset successfully and sent via email",
		"user":    userSummary(&user),
	})
}
