package schema

import (
	"net/url"
	"strings"
)

// Pagination defaults and bounds
const (
	DefaultPerPage = 50
	DefaultPage    = 1
)

// PlayerOrderFields is the vocabulary of columns a listing may be ordered by
var PlayerOrderFields = []string{"id", "username", "email", "level", "last_connection"}

// PageQuery is a normalized page request. The zero value is not valid; build
// one through ParsePageQuery or fill every field explicitly.
type PageQuery struct {
	PerPage int      `json:"per_page" validate:"min=10,max=100"`
	Page    int      `json:"page" validate:"min=1"`
	OrderBy []string `json:"order_by" validate:"required,min=1,dive,oneof=id username email level last_connection"`
}

// OrderByCSV returns the ordering as the comma-separated form used in links
// and queries
func (q PageQuery) OrderByCSV() string {
	return strings.Join(q.OrderBy, ",")
}

// Validate checks an already-normalized PageQuery. Parsing a value produced
// by ParsePageQuery is a fixed point: it validates without modification.
func (q PageQuery) Validate() error {
	return checkStruct(q)
}

// ParsePageQuery coerces raw query parameters into a PageQuery, substituting
// defaults for absent fields. A present-but-empty order_by is an error, not a
// default: "unset" is represented only by field absence.
func ParsePageQuery(query url.Values) (PageQuery, error) {
	q := PageQuery{
		PerPage: DefaultPerPage,
		Page:    DefaultPage,
		OrderBy: []string{"id"},
	}

	if raw, ok := queryValue(query, "per_page"); ok {
		n, err := coerceInt("per_page", raw)
		if err != nil {
			return PageQuery{}, err
		}
		q.PerPage = n
	}

	if raw, ok := queryValue(query, "page"); ok {
		n, err := coerceInt("page", raw)
		if err != nil {
			return PageQuery{}, err
		}
		q.Page = n
	}

	if raw, ok := queryValue(query, "order_by"); ok {
		fields, err := coerceOrderBy(raw)
		if err != nil {
			return PageQuery{}, err
		}
		q.OrderBy = fields
	}

	if err := q.Validate(); err != nil {
		return PageQuery{}, err
	}
	return q, nil
}

// queryValue reads a query parameter, joining repeated occurrences the way
// the csv coercion expects
func queryValue(query url.Values, key string) (string, bool) {
	vals, ok := query[key]
	if !ok {
		return "", false
	}
	return strings.Join(vals, ","), true
}

// coerceOrderBy splits a comma-separated field list into an ordered set.
// Every token must belong to PlayerOrderFields; empty tokens (from "" or
// ",,,") are unknown fields, so separator-only input fails rather than
// falling back to the default. Duplicates are collapsed keeping the first
// occurrence.
func coerceOrderBy(raw string) ([]string, error) {
	tokens := strings.Split(raw, ",")

	seen := make(map[string]bool, len(tokens))
	fields := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !isOrderField(tok) {
			return nil, NewFieldError("order_by", "must only contain fields among ["+strings.Join(PlayerOrderFields, " ")+"]")
		}
		if seen[tok] {
			continue
		}
		seen[tok] = true
		fields = append(fields, tok)
	}
	return fields, nil
}

func isOrderField(name string) bool {
	for _, f := range PlayerOrderFields {
		if f == name {
			return true
		}
	}
	return false
}
