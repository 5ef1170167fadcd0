// enrollboard/internal/handlers/pages.go
package handlers

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed web/dashboard.html
var dashboardPage []byte

//go:embed web/login.html
var loginPage []byte

// ShowDashboardPage отдаёт страницу дашборда.
func ShowDashboardPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", dashboardPage)
}

// ShowLoginPage отдаёт страницу входа.
func ShowLoginPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", loginPage)
}
