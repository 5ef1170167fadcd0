// enrollboard/internal/handlers/auth_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"enrollboard/config"
)

// LoginInput - данные формы входа. У дашборда один общий пароль,
// пользовательских аккаунтов нет.
type LoginInput struct {
	Password string `json:"password" binding:"required"`
}

// LoginHandler проверяет пароль дашборда и выдаёт JWT в cookie.
func LoginHandler(c *gin.Context) {
	if config.AuthDisabled() {
		c.JSON(http.StatusOK, gin.H{"message": "Аутентификация отключена"})
		return
	}

	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(config.DashboardPasswordHash()), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный пароль"})
		return
	}

	claims := jwt.MapClaims{
		"sub": "dashboard",
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString(config.JwtKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign token"})
		return
	}

	c.SetCookie("auth_token", tokenStr, int(24*time.Hour.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Вход выполнен"})
}

// LogoutHandler сбрасывает cookie аутентификации.
func LogoutHandler(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
