package middleware

import (
	"net/http"
	"strings"

	"github.com/achyut02/Ai-Placement-Tracker/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UserIDKey is the gin context key the authenticated user's id is stored under.
const UserIDKey = "userID"

// RequireAuth validates the Authorization bearer token and stores the user id
// in the request context. Absent, malformed, or expired tokens get a 401.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authz := ctx.GetHeader("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("No token provided"))
			return
		}
		tokenStr := strings.TrimPrefix(authz, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenUnverifiable
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Invalid token"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Invalid token"))
			return
		}
		// JWT numeric claims decode as float64.
		sub, ok := claims["sub"].(float64)
		if !ok || sub <= 0 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail("Invalid token"))
			return
		}

		ctx.Set(UserIDKey, uint(sub))
		ctx.Next()
	}
}

// UserID extracts the authenticated user id set by RequireAuth.
func UserID(ctx *gin.Context) (uint, bool) {
	v, exists := ctx.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
