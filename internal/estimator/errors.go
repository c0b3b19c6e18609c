package estimator

import "errors"

var (
	// ErrInvalidArea is returned when the usable area is negative or not a finite number.
	ErrInvalidArea = errors.New("area must be a finite non-negative number")
	// ErrInvalidCoats is returned when fewer than one coat is requested.
	ErrInvalidCoats = errors.New("coats must be a positive integer")
	// ErrAreaTooLarge is returned when the job needs more cans than can be counted or priced.
	ErrAreaTooLarge = errors.New("area and coats require more paint than can be priced")
)
