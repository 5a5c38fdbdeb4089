// Package hypermedia synthesizes the navigation URLs embedded in paginated
// responses. Link construction is pure string composition: the scheme is
// resolved once per request and reused for the whole set.
package hypermedia

import (
	"fmt"

	"github.com/tsimard/playerdex/internal/pagination"
	"github.com/tsimard/playerdex/internal/schema"
)

// LinkSet is the group of navigation URLs for one page of a collection.
// Next and Previous are omitted from the JSON encoding when the adjacent
// page does not exist.
type LinkSet struct {
	Self     string `json:"cur_page"`
	First    string `json:"first_page"`
	Last     string `json:"last_page"`
	Next     string `json:"next_page,omitempty"`
	Previous string `json:"previous_page,omitempty"`
	PDF      string `json:"pdf_page"`
}

// BuildLinks synthesizes the LinkSet for a page of the collection at path.
// Every link reuses the originating request's per_page and order_by; only the
// page number varies. The PDF variant addresses the ".pdf"-suffixed path with
// the same parameters.
func BuildLinks(scheme, host, version, path string, q schema.PageQuery, pr pagination.PageResult) LinkSet {
	links := LinkSet{
		Self:  PageURL(scheme, host, version, path, q, q.Page),
		First: PageURL(scheme, host, version, path, q, 1),
		Last:  PageURL(scheme, host, version, path, q, pr.PageCount),
		PDF:   PageURL(scheme, host, version, path+".pdf", q, q.Page),
	}

	if q.Page+1 <= pr.PageCount {
		links.Next = PageURL(scheme, host, version, path, q, q.Page+1)
	}
	if q.Page-1 >= 1 {
		links.Previous = PageURL(scheme, host, version, path, q, q.Page-1)
	}

	return links
}

// PageURL builds one fully-qualified collection URL for the given page number
func PageURL(scheme, host, version, path string, q schema.PageQuery, page int) string {
	return fmt.Sprintf("%s://%s/%s%s?per_page=%d&page=%d&order_by=%s",
		scheme, host, version, path, q.PerPage, page, q.OrderByCSV())
}

// ResourceURL builds the fully-qualified detail link for a single resource
func ResourceURL(scheme, host, version, path string, id int64) string {
	return fmt.Sprintf("%s://%s/%s%s/%d", scheme, host, version, path, id)
}
