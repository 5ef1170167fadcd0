// enrollboard/internal/routes/router.go
package routes

import (
	"enrollboard/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes инициализирует все маршруты приложения.
func SetupRoutes(r *gin.Engine) {
	r.Use(middleware.RequestID())

	// --- Публичные маршруты ---
	// Страница входа и обработчики формы не требуют аутентификации.
	RegisterAuthRoutes(r)

	// --- Защищенная группа маршрутов ---
	// Всё остальное доступно только с валидным токеном дашборда
	// (или свободно, если общий пароль не задан).
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterDashboardRoutes(authRequired)
		RegisterAPIRoutes(authRequired)
	}
}
