// enrollboard/internal/handlers/pagination.go
package handlers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PaginatedResponse defines the structure for any paginated API response.
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	TotalRows   int64       `json:"totalRows"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
	PageSize    int         `json:"pageSize"`
}

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// pageParams читает "page" и "pageSize" из query-параметров и приводит их
// к допустимым границам.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.Query("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.Query("pageSize"))
	switch {
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	case pageSize <= 0:
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// pageBounds возвращает границы страницы внутри среза длиной total.
// Таблица живёт в памяти, поэтому пагинация - срез, а не OFFSET/LIMIT.
func pageBounds(total, page, pageSize int) (int, int) {
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return start, end
}

// CreatePaginatedResponse constructs the standard paginated response object.
func CreatePaginatedResponse(c *gin.Context, data interface{}, totalRows int64) PaginatedResponse {
	page, pageSize := pageParams(c)

	totalPages := 0
	if totalRows > 0 {
		totalPages = int(math.Ceil(float64(totalRows) / float64(pageSize)))
	}

	return PaginatedResponse{
		Data:        data,
		TotalRows:   totalRows,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    pageSize,
	}
}
