package schema

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are the accepted shapes for date fields, tried in order
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// coerceInt converts a raw textual value into an integer. Floats, NaN and
// anything non-numeric fail the same way out-of-range values do later: as a
// FieldError on the named field.
func coerceInt(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, NewFieldError(field, "must be an integer")
	}
	return n, nil
}

// coerceDate converts a raw textual value into a timestamp. The empty string
// means "absent" and returns nil; an unparseable value is an error.
func coerceDate(field, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, NewFieldError(field, "must be a valid date")
}
