package storage

import (
	"errors"
	"fmt"
)

// ConstraintKind identifies which kind of store constraint was violated.
type ConstraintKind int

const (
	ConstraintUnknown ConstraintKind = iota
	ConstraintCheck
	ConstraintForeignKey
	ConstraintPrimaryKey
	ConstraintUnique
	ConstraintNotNull
)

func (k ConstraintKind) String() string {
	switch k {
	case ConstraintCheck:
		return "CHECK"
	case ConstraintForeignKey:
		return "FOREIGN KEY"
	case ConstraintPrimaryKey:
		return "PRIMARY KEY"
	case ConstraintUnique:
		return "UNIQUE"
	case ConstraintNotNull:
		return "NOT NULL"
	default:
		return "unknown"
	}
}

// ConstraintError reports a uniqueness, foreign-key, not-null or check
// violation raised by the store. Err is the driver's own error.
type ConstraintError struct {
	Kind ConstraintKind
	Err  error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s constraint failed: %v", e.Kind, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// IsConstraint reports whether err is, or wraps, a *ConstraintError.
func IsConstraint(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce)
}

// ConstraintKindOf returns the kind of the constraint error wrapped by err,
// or ConstraintUnknown with false when err is not a constraint failure.
func ConstraintKindOf(err error) (ConstraintKind, bool) {
	var ce *ConstraintError
	if !errors.As(err, &ce) {
		return ConstraintUnknown, false
	}
	return ce.Kind, true
}

// classifier inspects a driver error and reports whether it is a constraint
// violation. Each driver file registers its own.
type classifier func(err error) (ConstraintKind, bool)

var classifiers []classifier

func registerClassifier(c classifier) {
	classifiers = append(classifiers, c)
}

// classify wraps constraint violations in *ConstraintError and returns any
// other error unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, c := range classifiers {
		if kind, ok := c(err); ok {
			return &ConstraintError{Kind: kind, Err: err}
		}
	}
	return err
}
