package repositories

import (
	"fmt"
	"strings"
)

const defaultPageLimit = 20

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	return page, limit
}

// Field pairs a column with an optional new value for a partial update.
// Value must be a *string, *int or *float64; a nil pointer keeps the
// stored value, a pointer to the zero value overwrites it.
type Field struct {
	Column string
	Value  any
}

// buildSet renders the SET clause and argument list for the fields that
// carry a value. Returns an empty clause when nothing changed.
func buildSet(fields []Field) (string, []any) {
	var parts []string
	var args []any

	for _, f := range fields {
		var v any
		switch p := f.Value.(type) {
		case *string:
			if p == nil {
				continue
			}
			v = *p
		case *int:
			if p == nil {
				continue
			}
			v = *p
		case *float64:
			if p == nil {
				continue
			}
			v = *p
		case *bool:
			if p == nil {
				continue
			}
			v = *p
		default:
			continue
		}
		args = append(args, v)
		parts = append(parts, fmt.Sprintf("%s=$%d", f.Column, len(args)))
	}

	return strings.Join(parts, ", "), args
}
