package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"printcare/internal/models"
)

// CurrentUserKey is the gin context key holding the loaded account.
const CurrentUserKey = "CurrentUser"

// InjectUser loads the account referenced by the session and stores it in
// the request context. A session pointing at a deleted or deactivated
// account is cleared on the spot, so later gates treat the request as
// unauthenticated — deactivation takes effect before the cookie expires.
func InjectUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get(SessionUserID); uidRaw != nil {
			uid, ok := uidRaw.(uint)
			if ok && uid > 0 {
				var user models.User
				err := db.First(&user, uid).Error
				if err == nil && user.IsActive {
					c.Set(CurrentUserKey, user)
				} else {
					sess.Clear()
					_ = sess.Save()
				}
			}
		}

		c.Next()
	}
}

// CurrentUser returns the account loaded by InjectUser, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(models.User)
	if !ok {
		return nil, false
	}
	return &user, true
}
