package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestFromPG_CheckViolation(t *testing.T) {
	err := fmt.Errorf("insert book: %w", &pgconn.PgError{Code: "23514", ConstraintName: "books_title_check"})

	ve, ok := FromPG(err)
	if !ok {
		t.Fatal("expected check violation to map to a validation error")
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "title" || ve.Fields[0].Code != "check" {
		t.Fatalf("unexpected fields: %+v", ve.Fields)
	}
	if ve.Fields[0].Message != "Title is invalid" {
		t.Fatalf("unexpected message %q", ve.Fields[0].Message)
	}
}

func TestFromPG_NotNullUsesColumn(t *testing.T) {
	ve, ok := FromPG(&pgconn.PgError{Code: "23502", ColumnName: "author"})
	if !ok {
		t.Fatal("expected not_null to map")
	}
	if ve.Fields[0].Field != "author" || ve.Fields[0].Message != "Author is required" {
		t.Fatalf("unexpected field error: %+v", ve.Fields[0])
	}
}

func TestFromPG_IgnoresOtherCodes(t *testing.T) {
	if _, ok := FromPG(&pgconn.PgError{Code: "40001"}); ok {
		t.Fatal("serialization failure must not be treated as validation")
	}
	if _, ok := FromPG(errors.New("connection refused")); ok {
		t.Fatal("plain errors must not be treated as validation")
	}
}

func TestAsValidation(t *testing.T) {
	base := &ValidationError{Fields: []FieldError{{Field: "title", Code: "required", Message: "Title is required"}}}
	wrapped := fmt.Errorf("create: %w", base)

	ve, ok := AsValidation(wrapped)
	if !ok || ve != base {
		t.Fatal("expected wrapped validation error to be found")
	}
	if got := ve.Error(); got != "validation failed: title: Title is required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if _, ok := AsValidation(errors.New("boom")); ok {
		t.Fatal("plain error is not a validation error")
	}
}
