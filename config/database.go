// enrollboard/config/database.go
package config

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectWarehouse открывает соединение с витриной данных (Postgres).
// Нужна только команде fetch; дашборд к базе не обращается.
func ConnectWarehouse() {
	dsn := os.Getenv("WAREHOUSE_DB_URL")
	if dsn == "" {
		slog.Error("Критическая ошибка: переменная окружения WAREHOUSE_DB_URL не установлена.")
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("Ошибка подключения к витрине данных", "error", err)
		os.Exit(1)
	}

	DB = db
	slog.Info("Успешное подключение к витрине данных!")
}
