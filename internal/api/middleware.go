package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/no0bAuntor/online-voting-system/internal/models"
	"github.com/no0bAuntor/online-voting-system/pkg/constants"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Secured verifies the bearer token and puts the caller's id on the context.
// A missing credential is 401, a bad one 403.
func Secured(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authorizationHeader := c.GetHeader("Authorization")

		if len(authorizationHeader) == 0 {
			SendError(c, http.StatusUnauthorized, fmt.Errorf("missing authorization header"), models.ErrUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authorizationHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			SendError(c, http.StatusForbidden, fmt.Errorf("invalid token"), models.ErrUnauthorized)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			SendError(c, http.StatusForbidden, fmt.Errorf("invalid token claims"), models.ErrUnauthorized)
			return
		}

		userId, ok := claims["id"].(string)
		if !ok || userId == "" {
			SendError(c, http.StatusForbidden, fmt.Errorf("invalid token claims"), models.ErrUnauthorized)
			return
		}

		c.Set(constants.UserID, userId)
		c.Set(constants.Token, tokenString)
		c.Next()
	}
}
