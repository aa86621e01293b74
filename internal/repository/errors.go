package repository

import (
	"errors"

	"github.com/chxlky/taskboard-api/internal/apperror"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// failure is the closed set of storage failures the repositories react to.
type failure int

const (
	failureUnknown failure = iota
	failureMissingRow
	failureForeignKey
	failureDuplicateKey
)

func (f failure) String() string {
	switch f {
	case failureMissingRow:
		return "missing_row"
	case failureForeignKey:
		return "foreign_key"
	case failureDuplicateKey:
		return "duplicate_key"
	default:
		return "unknown"
	}
}

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// classify maps a storage error onto a failure. gorm's translated sentinels
// are checked first; raw driver codes cover errors that bypassed translation.
func classify(err error) failure {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return failureMissingRow
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return failureForeignKey
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return failureDuplicateKey
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintForeignKey:
			return failureForeignKey
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return failureDuplicateKey
		}
		return failureUnknown
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return failureForeignKey
		case pgUniqueViolation:
			return failureDuplicateKey
		}
	}
	return failureUnknown
}

// rules tells translate which domain error each failure becomes for one
// operation. Failures without a rule become Internal.
type rules map[failure]*apperror.Error

var errDatabase = apperror.Internal("Database error occurred", nil)

// translate is the only place storage errors turn into domain errors. Domain
// errors raised inside a transaction pass through untouched.
func translate(err error, r rules) error {
	if err == nil {
		return nil
	}
	if _, ok := apperror.As(err); ok {
		return err
	}
	if appErr, ok := r[classify(err)]; ok {
		return appErr.Wrap(err)
	}
	return errDatabase.Wrap(err)
}
