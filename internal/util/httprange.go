package util

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ByteRange is a single satisfiable byte span parsed from a Range header.
type ByteRange struct {
	Start int64
	End   int64
}

var ErrInvalidRange = errors.New("invalid or unsatisfiable range")

// ParseRange parses a single-range "bytes=start-end" header against a file of
// the given size. The end position is optional and defaults to size-1; an end
// past the file is truncated. Multi-range and suffix-range requests are
// rejected; browser video players only issue the simple form.
func ParseRange(header string, size int64) (ByteRange, error) {
	const prefix = "bytes="
	if !strings.HasPrefix(header, prefix) {
		return ByteRange{}, ErrInvalidRange
	}

	spec := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if strings.Contains(spec, ",") {
		return ByteRange{}, ErrInvalidRange
	}

	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 || parts[0] == "" {
		return ByteRange{}, ErrInvalidRange
	}

	start, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || start < 0 || start >= size {
		return ByteRange{}, ErrInvalidRange
	}

	end := size - 1
	if parts[1] != "" {
		end, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return ByteRange{}, ErrInvalidRange
		}
		if end >= size {
			end = size - 1
		}
	}

	if start > end {
		return ByteRange{}, ErrInvalidRange
	}

	return ByteRange{Start: start, End: end}, nil
}

func (r ByteRange) Length() int64 {
	return r.End - r.Start + 1
}

func (r ByteRange) ContentRange(size int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", r.Start, r.End, size)
}
