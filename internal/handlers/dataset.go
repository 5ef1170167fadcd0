// enrollboard/internal/handlers/dataset.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"enrollboard/config"
	"enrollboard/internal/workbook"
	"enrollboard/models"
)

const (
	datasetCacheKey = "enrollboard:dataset"
	datasetCacheTTL = 5 * time.Minute
)

// Snapshot - таблица записей, прочитанная из книги целиком, вместе с
// провенансом загрузки. Дашборд всегда работает со снимком, никогда с
// книгой напрямую.
type Snapshot struct {
	Records  []models.Enrollment `json:"records"`
	Tabs     []string            `json:"tabs"`
	LoadedAt time.Time           `json:"loadedAt"`
}

// loadSnapshot возвращает снимок таблицы: из кэша, если он свежий, иначе
// перечитывает книгу. force=true всегда идёт в книгу и обновляет кэш.
func loadSnapshot(force bool) (*Snapshot, error) {
	if !force && config.RDB != nil {
		cached, err := config.RDB.Get(config.Ctx, datasetCacheKey).Result()
		if err == nil {
			var snap Snapshot
			if json.Unmarshal([]byte(cached), &snap) == nil {
				return &snap, nil
			}
			slog.Warn("Не удалось разобрать кэшированный снимок, перечитываем книгу")
		} else if err != redis.Nil {
			slog.Error("Redis GET не выполнен", "error", err)
		}
	}

	tabs := config.WorkbookTabs()
	records, err := workbook.ReadWorkbook(config.WorkbookPath(), tabs)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{Records: records, Tabs: tabs, LoadedAt: time.Now()}
	if config.RDB != nil {
		if data, err := json.Marshal(snap); err == nil {
			if err := config.RDB.Set(config.Ctx, datasetCacheKey, data, datasetCacheTTL).Err(); err != nil {
				slog.Error("Не удалось записать снимок в кэш", "error", err)
			}
		}
	}
	slog.Info("Снимок таблицы загружен из книги", "rows", len(records), "tabs", len(tabs))
	return snap, nil
}
