// Package middleware chứa các middleware dùng chung cho API server.
package middleware

import (
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	basehdl "social_manager/internal/api/base/handler"
	"social_manager/internal/common"
	"social_manager/internal/logger"
)

// AccountClaims chứa data được mã hóa trong JWT token
type AccountClaims struct {
	AccountID string `json:"accountId"`
	Email     string `json:"email"`
	jwt.StandardClaims
}

// AuthMiddleware xác thực JWT token từ header Authorization.
// Token hợp lệ: set Locals "user_id" (hex ObjectID) và "email" cho handler phía sau.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Thiếu Authorization header")
			basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		claims := &AccountClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, common.ErrTokenInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil {
			if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
				basehdl.HandleResponse(c, nil, common.ErrTokenExpired)
				return nil
			}
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		if !token.Valid || claims.AccountID == "" {
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		c.Locals("user_id", claims.AccountID)
		c.Locals("email", claims.Email)
		return c.Next()
	}
}
