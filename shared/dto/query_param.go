package dto

import (
	"hotel/shared/constant"
	"net/http"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries pagination and sorting for list endpoints. Unknown sort
// columns are ignored by the repository.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir. With withDefaults it pages from 1
// with the default limit and sorts newest first when the caller chose no order.
// Limits above the maximum are capped.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	query := r.URL.Query()

	q.Page = positiveInt(query.Get(constant.RequestParamPage), q.Page)
	q.Limit = min(positiveInt(query.Get(constant.RequestParamLimit), q.Limit), constant.MaxValueLimit)

	if sortBy := strings.TrimSpace(query.Get(constant.RequestParamSortBy)); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}

	if q.SortBy == "" {
		q.SortBy = constant.DefaultValueSortBy

		if q.SortDir == "" {
			q.SortDir = constant.DefaultValueSortDir
		}
	}
}

func positiveInt(raw string, fallback int) int {
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return n
	}

	return fallback
}
