// enrollboard/internal/routes/auth_routes.go
package routes

import (
	"enrollboard/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes регистрирует публичные маршруты для аутентификации.
func RegisterAuthRoutes(r *gin.Engine) {
	// Главная страница для неавторизованных пользователей.
	r.GET("/", handlers.ShowLoginPage)

	r.POST("/login", handlers.LoginHandler)
	r.POST("/logout", handlers.LogoutHandler)
}
