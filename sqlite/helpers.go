package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/meetparse"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// formatDate stores a meeting date as a sortable day, or NULL.
func formatDate(d *time.Time) sql.NullString {
	if d == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: d.Format(meetparse.DateLayout), Valid: true}
}

// parseDate reads a stored meeting date back as UTC midnight.
func parseDate(value sql.NullString) (*time.Time, error) {
	if !value.Valid {
		return nil, nil
	}
	d, err := time.Parse(meetparse.DateLayout, value.String)
	if err != nil {
		return nil, fmt.Errorf("failed to parse meeting_date: %w", err)
	}
	return &d, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite requires a LIMIT before OFFSET, so an offset alone uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
