package sizing

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCeilHalf(t *testing.T) {
	tests := []struct {
		in   int64
		want int64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{10, 5},
		{11, 6},
		{-1, 0},
		{-2, -1},
		{-11, -5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CeilHalf(tt.in), "CeilHalf(%d)", tt.in)
	}
}

func TestReported(t *testing.T) {
	assert.Equal(t, int64(11), Reported(false, 11))
	assert.Equal(t, int64(6), Reported(true, 11))
	assert.Equal(t, int64(3), Reported(true, Reported(true, 11)))
}

func TestReadAllWithLimit(t *testing.T) {
	errTooBig := errors.New("too big")

	data, err := ReadAllWithLimit(bytes.NewReader([]byte("abc")), 3, errTooBig)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)

	_, err = ReadAllWithLimit(bytes.NewReader([]byte("abcd")), 3, errTooBig)
	require.ErrorIs(t, err, errTooBig)
}
