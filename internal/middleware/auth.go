package middleware

import (
	"strings"

	"helpcenter-backend/internal/auth"
	"helpcenter-backend/internal/errors"
	"helpcenter-backend/internal/user"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Secret []byte
}

// AuthMiddleware verifies the bearer token and stores user_id and
// user_role on the request context.
func (m *Auth) AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			ctx.Error(errors.Unauthorized("Authorization is not found!", nil))
			ctx.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		userID, role, err := auth.VerifyJWT(token, m.Secret)
		if err != nil {
			ctx.Error(errors.Unauthorized("Invalid token!", err))
			ctx.Abort()
			return
		}

		ctx.Set("user_id", userID)
		ctx.Set("user_role", role)
		ctx.Next()
	}
}

// RequireStaff guards the admin CMS routes. Runs after AuthMiddleware.
func (m *Auth) RequireStaff() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := ctx.GetString("user_role")
		if !user.IsStaffRole(role) {
			ctx.Error(errors.Forbidden("Staff access required!", nil))
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
