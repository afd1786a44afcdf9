package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidID is returned when an identifier cannot be parsed.
	ErrInvalidID = errors.New("invalid ID")

	// ErrIDsExhausted is returned when the largest stored ID is math.MaxInt.
	ErrIDsExhausted = fmt.Errorf("%w: cart IDs exhausted", ErrInvalidID)
)

// NextID returns the ID for a new cart: one more than the largest existing
// ID, or 1 when there are no carts.
// Returns ErrIDsExhausted if the next ID would overflow.
func NextID(carts []Cart) (int, error) {
	maxID := 0
	for _, c := range carts {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	if maxID == math.MaxInt {
		return 0, ErrIDsExhausted
	}
	return maxID + 1, nil
}

// ParseID normalizes an identifier received from outside the store.
// Accepts Go integers, integral floats (as decoded from JSON) and
// integer-valued text such as "7" or " 7 ".
// Returns ErrInvalidID for anything else, including values below 1.
func ParseID(v any) (int, error) {
	var n int64
	switch x := v.(type) {
	case int:
		n = int64(x)
	case int32:
		n = int64(x)
	case int64:
		n = x
	case uint:
		if uint64(x) > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d is out of range", ErrInvalidID, x)
		}
		n = int64(x)
	case uint32:
		n = int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d is out of range", ErrInvalidID, x)
		}
		n = int64(x)
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) || x >= math.MaxInt64 || x < math.MinInt64 {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidID, x)
		}
		n = int64(x)
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidID, x)
		}
		n = parsed
	case nil:
		return 0, fmt.Errorf("%w: missing", ErrInvalidID)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrInvalidID, v)
	}

	if n < 1 {
		return 0, fmt.Errorf("%w: %d must be at least 1", ErrInvalidID, n)
	}
	if n > math.MaxInt {
		return 0, fmt.Errorf("%w: %d is out of range", ErrInvalidID, n)
	}
	return int(n), nil
}
