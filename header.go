package pagestore

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Header is the store preamble, stored at the start of block 0.
type Header struct {
	Version uint32

	PropertyIndex uint32 // first block of the property chain
	CategoryIndex uint32 // first block of the category chain
	ItemKindIndex uint32 // first block of the item-kind index chain
}

// ReadHeader reads the header from the current position of r.
func ReadHeader(r io.Reader) (Header, error) {
	tmp := make([]byte, headerSize)
	if _, err := io.ReadFull(r, tmp); err != nil {
		if isEOF(err) {
			return Header{}, errors.Wrap(ErrTruncatedBlock, "header")
		}
		return Header{}, err
	}

	if !bytes.Equal(tmp[:8], magic) {
		return Header{}, ErrBadMagic
	}

	h := Header{
		Version:       binary.LittleEndian.Uint32(tmp[8:]),
		PropertyIndex: binary.LittleEndian.Uint32(tmp[12:]),
		CategoryIndex: binary.LittleEndian.Uint32(tmp[16:]),
		ItemKindIndex: binary.LittleEndian.Uint32(tmp[20:]),
	}
	if h.Version != formatVersion {
		return Header{}, errors.Wrapf(ErrBadVersion, "version %d", h.Version)
	}
	return h, nil
}
