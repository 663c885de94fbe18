package gorm

import (
	"errors"

	stdgorm "gorm.io/gorm"
)

func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, stdgorm.ErrRecordNotFound)
}

// IsFoundButHasErrors reports a real query failure, as opposed to a miss.
func IsFoundButHasErrors(err error) bool {
	return err != nil && !errors.Is(err, stdgorm.ErrRecordNotFound)
}

func HasDbIssues(err error) bool {
	return IsNotFound(err) || IsFoundButHasErrors(err)
}
