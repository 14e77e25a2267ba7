// Package pagination turns raw page/perPage input into offsets and builds response metadata.
package pagination

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 200
)

// Params is a normalized page request
type Params struct {
	Page    int `json:"page"`
	PerPage int `json:"perPage"`
	Skip    int `json:"-"`
	Take    int `json:"-"`
}

// Meta describes a page of results
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	TotalPages int   `json:"totalPages"`
}

// Normalize converts raw page and perPage values. It never fails: unparseable input falls
// back to the defaults and non-positive values are raised to 1.
func Normalize(pageRaw, perPageRaw string) Params {
	page := toInt(pageRaw, DefaultPage)
	perPage := toInt(perPageRaw, DefaultPerPage)
	return FromInts(page, perPage)
}

// FromInts builds Params from already-parsed values
func FromInts(page, perPage int) Params {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	return Params{
		Page:    page,
		PerPage: perPage,
		Skip:    (page - 1) * perPage,
		Take:    perPage,
	}
}

// Clamp caps PerPage at max. A non-positive max leaves the params unchanged.
func (p Params) Clamp(max int) Params {
	if max <= 0 || p.PerPage <= max {
		return p
	}
	return FromInts(p.Page, max)
}

// Meta builds response metadata for these params
func (p Params) Meta(total int64) Meta {
	return NewMeta(total, p.Page, p.PerPage)
}

// NewMeta builds response metadata. TotalPages is ceil(total/perPage).
func NewMeta(total int64, page, perPage int) Meta {
	if perPage < 1 {
		perPage = 1
	}
	if total < 0 {
		total = 0
	}
	return Meta{
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: TotalPages(total, perPage),
	}
}

// TotalPages returns ceil(total/perPage)
func TotalPages(total int64, perPage int) int {
	if total <= 0 || perPage < 1 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// RecordRange returns the 1-based first and last record numbers of the page starting at skip.
// For an empty result first is skip+1 and last is 0.
func (m Meta) RecordRange(skip int) (first, last int64) {
	first = int64(skip) + 1
	last = int64(skip) + int64(m.PerPage)
	if last > m.Total {
		last = m.Total
	}
	return first, last
}

func toInt(raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	if f < math.MinInt32 {
		return math.MinInt32
	}
	return int(f)
}
