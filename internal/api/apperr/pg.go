package apperr

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Map well-known constraint names to fields (extend as you add constraints)
var constraintField = map[string]string{
	"books_title_check":  "title",
	"books_author_check": "author",
}

// Guess a field from a column name present in PG error detail
func fieldFromDetail(detail string) string {
	for _, k := range []string{"title", "author", "genre", "year"} {
		if strings.Contains(detail, k) {
			return k
		}
	}
	return ""
}

func fieldFromConstraint(c string) string {
	if f, ok := constraintField[c]; ok {
		return f
	}
	return ""
}

// FromPG maps constraint-style Postgres failures to a ValidationError.
// Returns (nil, false) for anything that is not a field-level problem.
func FromPG(err error) (*ValidationError, bool) {
	var pg *pgconn.PgError
	if !errors.As(err, &pg) {
		return nil, false
	}

	field := fieldFromConstraint(pg.ConstraintName)
	if field == "" && pg.ColumnName != "" {
		field = pg.ColumnName
	}
	if field == "" && pg.Detail != "" {
		field = fieldFromDetail(pg.Detail)
	}
	if field == "" {
		field = "field"
	}

	var fe FieldError
	switch pg.Code {
	case "23502": // not_null_violation
		fe = FieldError{Field: field, Code: "not_null", Message: fieldLabel(field) + " is required"}
	case "23514": // check_violation
		fe = FieldError{Field: field, Code: "check", Message: fieldLabel(field) + " is invalid"}
	case "22001": // string_data_right_truncation
		fe = FieldError{Field: field, Code: "too_long", Message: fieldLabel(field) + " is too long"}
	default:
		return nil, false
	}
	return &ValidationError{Fields: []FieldError{fe}}, true
}

func fieldLabel(field string) string {
	if field == "" {
		return "Value"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
