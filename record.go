package pagestore

import (
	"math"
	"unicode/utf8"

	"github.com/pkg/errors"
)

func readKey(c *byteCursor) (uint32, error) {
	v, _, err := ReadVarInt(c)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, errors.Wrapf(ErrInvalidRecord, "key %d overflows uint32", v)
	}
	return uint32(v), nil
}

func readUint32(c *byteCursor, field string) (uint32, error) {
	v, _, err := ReadVarInt(c)
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, errors.Wrapf(ErrInvalidRecord, "%s %d overflows uint32", field, v)
	}
	return uint32(v), nil
}

// readBytes reads a length-prefixed byte sequence. The returned slice
// references the cursor buffer.
func readBytes(c *byteCursor) ([]byte, error) {
	n, _, err := ReadVarInt(c)
	if err != nil {
		return nil, err
	}
	if n > uint64(c.Len()) {
		return nil, errors.Wrapf(ErrTruncatedBlock, "length %d exceeds remaining %d bytes", n, c.Len())
	}
	return c.Next(int(n))
}

func readString(c *byteCursor, field string) (string, error) {
	p, err := readBytes(c)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(p) {
		return "", errors.Wrapf(ErrInvalidRecord, "%s is not valid UTF-8", field)
	}
	return string(p), nil
}
