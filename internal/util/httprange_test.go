package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	cases := []struct {
		name   string
		header string
		size   int64
		want   ByteRange
	}{
		{"explicit span", "bytes=0-499", 1000, ByteRange{0, 499}},
		{"mid span", "bytes=200-499", 1000, ByteRange{200, 499}},
		{"open ended", "bytes=500-", 1000, ByteRange{500, 999}},
		{"end truncated to size", "bytes=900-5000", 1000, ByteRange{900, 999}},
		{"single byte", "bytes=0-0", 1000, ByteRange{0, 0}},
		{"last byte", "bytes=999-999", 1000, ByteRange{999, 999}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRange(tc.header, tc.size)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRangeRejects(t *testing.T) {
	cases := []struct {
		name   string
		header string
		size   int64
	}{
		{"wrong unit", "chunks=0-10", 1000},
		{"no prefix", "0-10", 1000},
		{"suffix range", "bytes=-500", 1000},
		{"multi range", "bytes=0-1,5-9", 1000},
		{"start past eof", "bytes=1000-", 1000},
		{"start after end", "bytes=500-200", 1000},
		{"negative start", "bytes=-1-10", 1000},
		{"garbage", "bytes=abc-def", 1000},
		{"empty spec", "bytes=", 1000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRange(tc.header, tc.size)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestByteRangeHelpers(t *testing.T) {
	r := ByteRange{Start: 200, End: 499}
	assert.Equal(t, int64(300), r.Length())
	assert.Equal(t, "bytes 200-499/1000", r.ContentRange(1000))
}
