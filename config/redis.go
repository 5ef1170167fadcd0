// enrollboard/config/redis.go
package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client
var Ctx = context.Background()

// ConnectRedis подключает кэш снимков таблицы. Redis не обязателен:
// без него дашборд перечитывает книгу на каждый запрос.
func ConnectRedis() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		slog.Warn("Переменная окружения REDIS_ADDR не установлена, кэш снимков будет отключён.")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		slog.Error("Не удалось подключиться к Redis, дашборд продолжит без кэша", "error", err)
		RDB = nil
		return
	}

	slog.Info("Кэш снимков подключен", "addr", redisAddr)
}
