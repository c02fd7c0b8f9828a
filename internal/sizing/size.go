// Package sizing provides zip size arithmetic and bounded reads.
package sizing

import (
	"io"
	"math"
)

// CeilHalf returns n/2 rounded toward positive infinity.
func CeilHalf(n int64) int64 {
	if n >= 0 {
		return n/2 + n%2
	}
	return n / 2
}

// Reported returns the size a container with the given children sum reports
// to its parent. Zips halve, rounding up; every other container passes the sum.
func Reported(zip bool, sum int64) int64 {
	if zip {
		return CeilHalf(sum)
	}
	return sum
}

// ReadAllWithLimit reads up to maxSize bytes from r.
// Returns overflowErr if more than maxSize bytes are available.
func ReadAllWithLimit(r io.Reader, maxSize uint64, overflowErr error) ([]byte, error) {
	if maxSize > uint64(math.MaxInt-1) {
		return nil, overflowErr
	}
	limit := int64(maxSize) + 1 //nolint:gosec // checked above
	lr := &io.LimitedReader{R: r, N: limit}
	data, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if uint64(len(data)) > maxSize { //nolint:gosec // len is always non-negative
		return nil, overflowErr
	}
	return data, nil
}
