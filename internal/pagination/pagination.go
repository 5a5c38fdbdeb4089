// Package pagination computes the window a validated page request addresses
// within a known record total.
package pagination

import (
	"errors"

	"github.com/tsimard/playerdex/internal/schema"
)

// ErrOutOfRange means the request addresses a page beyond the dataset. It is
// a semantic "page does not exist" condition, distinct from malformed input.
var ErrOutOfRange = errors.New("page is beyond the last record")

// PageResult is the derived window for one page request
type PageResult struct {
	Offset      int `json:"offset"`
	PlayerTotal int `json:"player_total"`
	PageCount   int `json:"page_count"`
}

// Paginate derives the offset and page count for a validated query against a
// total record count. The first page of an empty collection is valid and
// yields an empty result set; only totals greater than zero can put an offset
// out of range.
func Paginate(q schema.PageQuery, total int) (PageResult, error) {
	offset := (q.Page - 1) * q.PerPage

	if total > 0 && offset >= total {
		return PageResult{}, ErrOutOfRange
	}
	if total == 0 && q.Page > 1 {
		return PageResult{}, ErrOutOfRange
	}

	return PageResult{
		Offset:      offset,
		PlayerTotal: total,
		PageCount:   (total + q.PerPage - 1) / q.PerPage,
	}, nil
}
