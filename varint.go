package pagestore

import (
	"io"
	"math/bits"

	"github.com/pkg/errors"
)

// MaxVarIntLen is the maximum number of bytes of an encoded VarInt.
const MaxVarIntLen = 9

// ReadVarInt decodes a single VarInt from r and returns the value together
// with the number of bytes consumed. It returns ErrTruncatedVarInt if r ends
// before the value is complete.
func ReadVarInt(r io.ByteReader) (uint64, int, error) {
	b0, err := r.ReadByte()
	if err != nil {
		return 0, 0, varIntErr(err, 0)
	}

	extra := bits.LeadingZeros8(^b0)
	if extra == 0 {
		return uint64(b0), 1, nil
	}

	var val uint64
	for i := 1; i <= extra; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, i, varIntErr(err, i)
		}
		val += uint64(b) << uint((extra-i)*8)
	}

	// residual bits of the prefix byte are only used for short encodings
	if extra <= 4 {
		rest := (b0 << uint(extra)) >> uint(extra)
		val += uint64(rest) << uint(extra*8)
	}

	return val, 1 + extra, nil
}

// DecodeVarInt decodes a VarInt from the start of buf, see ReadVarInt.
func DecodeVarInt(buf []byte) (uint64, int, error) {
	return ReadVarInt(&byteCursor{buf: buf})
}

func varIntErr(err error, read int) error {
	if isEOF(err) {
		return errors.Wrapf(ErrTruncatedVarInt, "after %d byte(s)", read)
	}
	return err
}

// --------------------------------------------------------------------

// byteCursor reads sequentially from a bounded byte slice.
type byteCursor struct {
	buf []byte
	pos int
}

func (c *byteCursor) ReadByte() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, io.EOF
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

// Next returns the next n bytes, or io.ErrUnexpectedEOF if fewer remain.
func (c *byteCursor) Next(n int) ([]byte, error) {
	if n < 0 || n > c.Len() {
		return nil, io.ErrUnexpectedEOF
	}
	p := c.buf[c.pos : c.pos+n]
	c.pos += n
	return p, nil
}

// Len returns the number of unread bytes.
func (c *byteCursor) Len() int { return len(c.buf) - c.pos }
