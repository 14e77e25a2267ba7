package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"fleet-admin/internal/pagination"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// PageSubtitle describes which slice of the result set a page export holds
func PageSubtitle(meta pagination.Meta, skip int, renderedAt string) string {
	first, last := meta.RecordRange(skip)
	return fmt.Sprintf("Page %d of %d | Records %d-%d of %d | Date: %s",
		meta.Page, meta.TotalPages, first, last, meta.Total, renderedAt)
}

// Filename builds {entity}_{scope}_page_{page}_of_{totalPages}_{timestamp}.xlsx. The timestamp
// is ISO-8601 UTC with colons replaced and the fractional seconds dropped.
func Filename(entity, scopeID string, page, totalPages int, at time.Time) string {
	return fmt.Sprintf("%s_%s_page_%d_of_%d_%s.xlsx",
		safePart(entity), safePart(scopeID), page, totalPages, Timestamp(at))
}

// Timestamp renders at as a filesystem-safe ISO-8601 string
func Timestamp(at time.Time) string {
	iso := at.UTC().Format("2006-01-02T15:04:05.000Z")
	if i := strings.Index(iso, "."); i >= 0 {
		iso = iso[:i]
	}
	return strings.NewReplacer(":", "-", ".", "-").Replace(iso)
}

func safePart(s string) string {
	s = strings.Trim(unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(s), "-"), "-")
	if s == "" {
		return "all"
	}
	return s
}
