package handler

import (
	"strings"

	"github.com/dormlife/notice-service/internal/apperr"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// adminMiddleware gates mutation endpoints on an externally issued admin
// capability: a Bearer JWT whose "role" claim is "admin". The service never
// issues tokens itself.
func (h *Handler) adminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := h.claimsFromRequest(c)
		if err != nil {
			h.respondError(c, err)
			c.Abort()
			return
		}

		role, ok := claims["role"].(string)
		if !ok || strings.ToLower(role) != "admin" {
			h.respondError(c, apperr.ErrNotAdmin)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (h *Handler) claimsFromRequest(c *gin.Context) (jwt.MapClaims, error) {
	bearerHeader := c.GetHeader("Authorization")

	if !strings.HasPrefix(bearerHeader, "Bearer ") {
		return nil, errNoToken
	}

	tokenString := strings.TrimPrefix(bearerHeader, "Bearer ")
	if tokenString == "" {
		return nil, errNoToken
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidJWT
		}
		return h.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidJWT
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidJWT
	}
	return claims, nil
}
