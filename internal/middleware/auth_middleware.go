// enrollboard/internal/middleware/auth_middleware.go
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"enrollboard/config"
)

// AuthMiddleware проверяет JWT дашборда из cookie или заголовка
// Authorization. Если общий пароль не задан, дашборд работает открыто -
// это внутренний инструмент.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.AuthDisabled() {
			c.Next()
			return
		}

		tokenStr, err := c.Cookie("auth_token")
		if err != nil || tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				handleAuthError(c, "Authorization token not provided")
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				handleAuthError(c, "Invalid Authorization header format")
				return
			}
			tokenStr = parts[1]
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return config.JwtKey, nil
		})
		if err != nil || !token.Valid {
			c.SetCookie("auth_token", "", -1, "/", "", false, true)
			handleAuthError(c, "Invalid or expired token")
			return
		}

		c.Next()
	}
}

func handleAuthError(c *gin.Context, message string) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusFound, "/")
	} else {
		c.JSON(http.StatusUnauthorized, gin.H{"error": message})
	}
	c.Abort()
}
