// Package auth implements credential verification, the centralized
// role-permission map, and temporary-password generation.
package auth

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"printcare/internal/httperr"
	"printcare/internal/logger"
	"printcare/internal/models"
)

// Identity is the minimal record returned after a successful login. It
// deliberately carries no credential material.
type Identity struct {
	ID       uint
	Username string
	Role     models.Role
}

// Authenticate verifies a username/password pair against the account store.
//
// Every failure mode — missing field, unknown username, deactivated account,
// wrong password — returns the same httperr.ErrInvalidCredentials, so a
// caller can never distinguish "no such user" from "bad password".
//
// On success the account's last-login timestamp is updated best-effort: a
// failed update is logged and the identity is returned anyway.
func Authenticate(db *gorm.DB, username, password string) (*Identity, error) {
	if username == "" || password == "" {
		return nil, httperr.ErrInvalidCredentials
	}

	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrInvalidCredentials
		}
		return nil, httperr.Internal(err)
	}

	if !user.IsActive {
		return nil, httperr.ErrInvalidCredentials
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, httperr.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := db.Model(&user).Update("last_login", now).Error; err != nil {
		log := logger.Get()
		log.Warn().
			Err(err).
			Uint("user_id", user.ID).
			Msg("failed to record last login")
	}

	return &Identity{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
