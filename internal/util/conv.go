package util

import (
	"errors"
	"strconv"
)

var ErrInvalidID = errors.New("must be a positive integer")

// ParsePositiveUint parses an id-style parameter. Anything that is not a
// positive base-10 integer is rejected, including "0", "-1" and "1.5".
func ParsePositiveUint(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}
