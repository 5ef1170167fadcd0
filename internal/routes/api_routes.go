// enrollboard/internal/routes/api_routes.go
package routes

import (
	"enrollboard/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes регистрирует маршруты страницы дашборда.
func RegisterDashboardRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", handlers.ShowDashboardPage)
}

// RegisterAPIRoutes регистрирует все маршруты API, требующие аутентификации.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	apiGroup := api.Group("/api")
	{
		// Сводка и наборы данных диаграмм для текущих фильтров.
		apiGroup.GET("/dashboard", handlers.GetDashboardHandler)

		// Значения для элементов управления фильтрами.
		apiGroup.GET("/filters", handlers.GetFiltersHandler)

		// Таблица отфильтрованных записей с пагинацией.
		apiGroup.GET("/records", handlers.ListRecordsHandler)

		// Сброс кэша и перечитывание книги.
		apiGroup.POST("/reload", handlers.ReloadHandler)

		// Экспорт набора данных диаграммы или таблицы в Excel.
		apiGroup.GET("/export/:view", handlers.ExportHandler)
	}
}
