package cswitch

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

var ageRe = regexp.MustCompile(`^([0-9]+)(s|min)$`)

// ParseAge reads an age of the form "<N>s" or "<N>min".
func ParseAge(value string) (time.Duration, error) {
	m := ageRe.FindStringSubmatch(value)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAge, value)
	}
	unit := time.Second
	if m[2] == "min" {
		unit = time.Minute
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil || n > math.MaxInt64/int64(unit) {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidAge, value)
	}
	return time.Duration(n) * unit, nil
}
