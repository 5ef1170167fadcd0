// enrollboard/internal/handlers/records_handler.go
package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"enrollboard/internal/analytics"
	"enrollboard/models"
)

// ListRecordsHandler возвращает отфильтрованные строки для таблицы данных
// с пагинацией; по умолчанию страница из 50 строк, свежие зачисления первыми.
func ListRecordsHandler(c *gin.Context) {
	snap, err := loadSnapshot(false)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to load workbook data: " + err.Error()})
		return
	}

	filtered := analytics.Apply(snap.Records, parseFilter(c))
	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].EnrolledAt.Equal(filtered[j].EnrolledAt) {
			return filtered[i].EnrolledAt.After(filtered[j].EnrolledAt)
		}
		return filtered[i].BatchName < filtered[j].BatchName
	})

	page, pageSize := pageParams(c)
	start, end := pageBounds(len(filtered), page, pageSize)

	// Пустая страница сериализуется как [], а не null.
	rows := filtered[start:end]
	if rows == nil {
		rows = []models.Enrollment{}
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, rows, int64(len(filtered))))
}
