package types

import (
	"fmt"

	"golang.org/x/xerrors"
)

var (
	// ErrEmptyValue is returned when a point carries an empty digit string.
	ErrEmptyValue = xerrors.New("empty value")

	// ErrDuplicateAbscissa is returned when two selected points share an x
	// coordinate.
	ErrDuplicateAbscissa = xerrors.New("duplicate x coordinate")

	// ErrSingularSystem is returned when elimination finds no non-zero pivot.
	ErrSingularSystem = xerrors.New("singular system")

	// ErrNonIntegral is returned when the exact value at x = 0 is not an
	// integer and rounding is disabled.
	ErrNonIntegral = xerrors.New("secret is not an integer")

	// ErrInvalidThreshold is returned for k < 1 or n < 0.
	ErrInvalidThreshold = xerrors.New("invalid threshold")

	// ErrInvalidModulus is returned when the modulus is not a prime > 1.
	ErrInvalidModulus = xerrors.New("modulus must be a prime greater than 1")

	// ErrInvalidKey is returned for a point key that is not a positive
	// decimal integer.
	ErrInvalidKey = xerrors.New("invalid point key")

	// ErrNoPoints is returned when interpolation is asked to work on nothing.
	ErrNoPoints = xerrors.New("no points to interpolate")
)

// InvalidDigitError reports a character that is not a digit of the base.
type InvalidDigitError struct {
	Char rune
	Base int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit %q in base %d", e.Char, e.Base)
}

// InvalidBaseError reports a base outside [2, 36].
type InvalidBaseError struct {
	Base string
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base %q: must be an integer in [2, 36]", e.Base)
}

// InsufficientPointsError reports that fewer than k points were found.
type InsufficientPointsError struct {
	Needed int
	Found  int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points: need %d, found %d", e.Needed, e.Found)
}
