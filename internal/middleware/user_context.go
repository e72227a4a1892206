package middleware

import (
	"prospeo/internal/database"
	"prospeo/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func InjectUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				var user models.User
				if err := database.DB.First(&user, uid).Error; err == nil {
					c.Set("CurrentUser", user)
				}
			}
		}

		c.Next()
	}
}

// CurrentUser returns the injected user, when the session resolved one.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, ok := c.Get("CurrentUser")
	if !ok {
		return nil, false
	}
	user, ok := val.(models.User)
	if !ok {
		return nil, false
	}
	return &user, true
}
