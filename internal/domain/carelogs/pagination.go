package carelogs

import "strings"

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// PageMeta es la metadata de paginación que acompaña a cada página.
type PageMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// normalizePage devuelve page/limit saneados: página 1-based,
// limit acotado a 1..MaxLimit con default DefaultLimit.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

func buildPageMeta(page, limit, total int) PageMeta {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return PageMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// normalizeSort resuelve campo y dirección de ordenamiento.
// Un sort desconocido cae al default (log_date) en vez de fallar.
func normalizeSort(sort, order string) (SortField, SortOrder) {
	f := SortLogDate
	if SortField(sort) == SortCreatedAt {
		f = SortCreatedAt
	}
	o := OrderDesc
	if strings.EqualFold(order, string(OrderAsc)) {
		o = OrderAsc
	}
	return f, o
}
