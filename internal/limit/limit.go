// Package limit parses user supplied line and byte counts.
package limit

import (
	"errors"
	"strconv"
)

// ErrInvalid is matched by every *InvalidError.
var ErrInvalid = errors.New("invalid limit")

// InvalidError reports a token that is not a positive base-10 integer.
// Error returns the token verbatim so callers can build messages such as
// "illegal line count -- foo".
type InvalidError struct {
	Token string
}

func (e *InvalidError) Error() string { return e.Token }

func (e *InvalidError) Is(target error) bool { return target == ErrInvalid }

// Parse converts token into a strictly positive integer.
func Parse(token string) (int, error) {
	// ParseUint rejects signs, spaces and any trailing garbage.
	n, err := strconv.ParseUint(token, 10, strconv.IntSize-1)
	if err != nil || n == 0 {
		return 0, &InvalidError{Token: token}
	}
	return int(n), nil
}
