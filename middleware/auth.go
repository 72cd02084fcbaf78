package middleware

import (
	"net/http"

	"github.com/parthbhalara/spring-price-calculator/logger"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthRequired checks if user is logged in
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		user := session.Get("user_id")
		if user == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired checks if user role is ADMIN
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		role := session.Get("role")
		if role != "ADMIN" {
			logger.Get().WithFields(map[string]interface{}{
				"user": session.Get("username"),
				"path": c.Request.URL.Path,
			}).Warn("admin route denied")
			c.String(http.StatusForbidden, "Access Denied: Admins Only")
			c.Abort()
			return
		}
		c.Next()
	}
}
