// enrollboard/config/config.go
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// JwtKey - секретный ключ для подписи токенов дашборда.
var JwtKey []byte

// Load читает .env (если файл существует) и инициализирует общие настройки.
// Все параметры приложения берутся из переменных окружения.
func Load() {
	if err := godotenv.Load(); err == nil {
		slog.Info("Файл .env загружен")
	}

	JwtKey = []byte(os.Getenv("JWT_SECRET"))
	if len(JwtKey) == 0 && !AuthDisabled() {
		slog.Error("Критическая ошибка: задан DASHBOARD_PASSWORD_HASH, но не задан JWT_SECRET.")
		os.Exit(1)
	}
}

// WorkbookPath возвращает путь к xlsx-книге, через которую фетчер передаёт
// данные дашборду.
func WorkbookPath() string {
	if v := os.Getenv("WORKBOOK_PATH"); v != "" {
		return v
	}
	return "./data/enrollments.xlsx"
}

// WorkbookTabs возвращает список вкладок книги, которые дашборд объединяет
// в одну таблицу. Задаётся через WORKBOOK_TABS (через запятую).
func WorkbookTabs() []string {
	raw := os.Getenv("WORKBOOK_TABS")
	if raw == "" {
		return []string{"Foundation Data", "CUET UG Data"}
	}
	var tabs []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tabs = append(tabs, t)
		}
	}
	return tabs
}

// DashboardPasswordHash возвращает bcrypt-хэш общего пароля дашборда.
// Пустое значение означает, что аутентификация отключена.
func DashboardPasswordHash() string {
	return os.Getenv("DASHBOARD_PASSWORD_HASH")
}

// AuthDisabled сообщает, работает ли дашборд без аутентификации.
func AuthDisabled() bool {
	return DashboardPasswordHash() == ""
}

// Port возвращает порт HTTP-сервера дашборда.
func Port() string {
	if v := os.Getenv("PORT"); v != "" {
		return v
	}
	return "8080"
}
