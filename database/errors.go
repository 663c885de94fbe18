package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

var (
	ErrEmptySlug            = errors.New("slug cannot be empty")
	ErrSlugTaken            = errors.New("slug is already taken")
	ErrWidgetConfigMismatch = errors.New("widget config does not match the widget type")
	ErrWidgetTypeTaken      = errors.New("a widget of this type already exists")
	ErrUnknownWidgetType    = errors.New("unknown widget type")
	ErrOutOfRange           = errors.New("value out of range")
	ErrInvalidChoice        = errors.New("value is not an allowed choice")
)

// IsUniqueViolation recognises duplicate-key failures from postgres (SQLSTATE
// 23505), from gorm's translated error and from sqlite.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}

	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
