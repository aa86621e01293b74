package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/chxlky/taskboard-api/internal/apperror"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want failure
	}{
		{"gorm not found", gorm.ErrRecordNotFound, failureMissingRow},
		{"wrapped not found", fmt.Errorf("find: %w", gorm.ErrRecordNotFound), failureMissingRow},
		{"gorm foreign key", gorm.ErrForeignKeyViolated, failureForeignKey},
		{"gorm duplicate", gorm.ErrDuplicatedKey, failureDuplicateKey},
		{"sqlite foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, failureForeignKey},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, failureDuplicateKey},
		{"sqlite primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, failureDuplicateKey},
		{"sqlite check", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}, failureUnknown},
		{"pg foreign key", &pgconn.PgError{Code: "23503"}, failureForeignKey},
		{"pg unique", &pgconn.PgError{Code: "23505"}, failureDuplicateKey},
		{"pg other", &pgconn.PgError{Code: "57014"}, failureUnknown},
		{"context", context.DeadlineExceeded, failureUnknown},
		{"plain", errors.New("disk I/O error"), failureUnknown},
	}
	for _, tc := range cases {
		if got := classify(tc.err); got != tc.want {
			t.Fatalf("%s: expected %s got %s", tc.name, tc.want, got)
		}
	}
}

func TestTranslate(t *testing.T) {
	r := rules{
		failureMissingRow: apperror.NotFound("Board not found", nil),
		failureForeignKey: apperror.Validation("Board not found", nil),
	}

	if translate(nil, r) != nil {
		t.Fatal("nil must stay nil")
	}

	err := translate(gorm.ErrRecordNotFound, r)
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatal("expected cause to be preserved")
	}

	err = translate(gorm.ErrForeignKeyViolated, r)
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected Validation, got %v", err)
	}

	err = translate(gorm.ErrDuplicatedKey, r)
	if !apperror.IsKind(err, apperror.KindInternal) {
		t.Fatalf("expected unmapped failure to be Internal, got %v", err)
	}
	appErr, _ := apperror.As(err)
	if appErr.Message != "Database error occurred" {
		t.Fatalf("unexpected message %q", appErr.Message)
	}

	domain := apperror.Conflict("Board has tasks", nil)
	if got := translate(domain, r); got != error(domain) {
		t.Fatalf("expected domain error to pass through, got %v", got)
	}

	if r[failureMissingRow].Unwrap() != nil {
		t.Fatal("translate must not mutate rule templates")
	}
}
