// Package ranged holds the runtime support for types produced by the
// rangedint generator: a closed integer interval that clamps, the guard used
// by zero-argument constructors, and integer literal parsing.
package ranged

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrSyntax = errors.New("invalid integer literal")

// Range is the closed interval [Lower, Upper].
type Range struct {
	Lower, Upper int
}

func (r Range) Contains(v int) bool {
	return v >= r.Lower && v <= r.Upper
}

// Clamp replaces values outside r with the nearest bound.
func (r Range) Clamp(v int) int {
	if v < r.Lower {
		return r.Lower
	}
	if v > r.Upper {
		return r.Upper
	}
	return v
}

func (r Range) String() string {
	return fmt.Sprintf("%d...%d", r.Lower, r.Upper)
}

// MustContain panics if v lies outside r. Generated constructors call it
// with their default value, so a malformed table entry fails the first time
// the default is used rather than at generation time.
func MustContain(r Range, v int, name string) {
	if !r.Contains(v) {
		panic(fmt.Sprintf("%s: default value %d must be in range %s", name, v, r))
	}
}

// ParseLiteral parses s as a Go integer literal, accepting a sign, base
// prefixes and underscores.
func ParseLiteral(s string) (int, error) {
	lit := strings.TrimSpace(s)
	v, err := strconv.ParseInt(lit, 0, strconv.IntSize)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// out of int range still clamps, so saturate instead of failing
			if strings.HasPrefix(lit, "-") {
				return minInt, nil
			}
			return maxInt, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	return int(v), nil
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)
