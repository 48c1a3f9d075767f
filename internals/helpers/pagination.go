// file: internals/helpers/pagination.go
package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Parameter list standar: ?page=&limit=&sortBy=&sortOrder=&search=&status=
type ListParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string // asc|desc
	Search    string
	Status    string
}

// ResolveListParams membaca query params dan menormalisasi nilainya.
// page minimal 1, limit di-clamp 1..100, sortOrder default desc.
func ResolveListParams(c *fiber.Ctx, defaultSortBy string) ListParams {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if page < 1 {
		page = DefaultPage
	}

	limit, _ := strconv.Atoi(strings.TrimSpace(c.Query("limit", strconv.Itoa(DefaultLimit))))
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	sortBy := strings.TrimSpace(c.Query("sortBy"))
	if sortBy == "" {
		sortBy = defaultSortBy
	}

	sortOrder := strings.ToLower(strings.TrimSpace(c.Query("sortOrder")))
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	return ListParams{
		Page:      page,
		Limit:     limit,
		SortBy:    sortBy,
		SortOrder: sortOrder,
		Search:    strings.TrimSpace(c.Query("search")),
		Status:    strings.TrimSpace(c.Query("status")),
	}
}

func (p ListParams) Offset() int { return (p.Page - 1) * p.Limit }

// OrderClause memetakan sortBy lewat whitelist kolom.
// Key yang tidak dikenal jatuh diam-diam ke defaultKey (bukan error).
func (p ListParams) OrderClause(allowed map[string]string, defaultKey string) string {
	col, ok := allowed[p.SortBy]
	if !ok {
		col = allowed[defaultKey]
	}
	dir := "DESC"
	if p.SortOrder == "asc" {
		dir = "ASC"
	}
	return col + " " + dir
}

// LikePattern membungkus kata kunci pencarian untuk LOWER(col) LIKE ?.
func (p ListParams) LikePattern() string {
	return "%" + strings.ToLower(p.Search) + "%"
}

// Meta paginasi untuk amplop response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

func BuildPagination(total int64, page, limit int) Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
