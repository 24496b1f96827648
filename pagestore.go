package pagestore

import (
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

var magic = []byte{80, 71, 83, 84, 14, 211, 7, 159}

const (
	// PageSize is the size of a block in bytes.
	PageSize = 4096

	// MetaSize is the size of the meta record at the start of each block.
	MetaSize = 16

	// MaxPayload is the maximum number of payload bytes a block can hold.
	MaxPayload = PageSize - MetaSize

	// Terminator marks the end of a chain.
	Terminator uint32 = 0xFFFFFFFF

	headerSize    = 24
	formatVersion = 1
)

// Errors returned when reading a store. Returned errors carry additional
// context, use errors.Is to test for them.
var (
	ErrBadMagic        = errors.New("pagestore: bad magic byte sequence")
	ErrBadVersion      = errors.New("pagestore: unsupported version")
	ErrFormatMismatch  = errors.New("pagestore: block type mismatch")
	ErrCorruptChain    = errors.New("pagestore: corrupt chain")
	ErrTruncatedBlock  = errors.New("pagestore: truncated block")
	ErrTruncatedVarInt = errors.New("pagestore: truncated varint")
	ErrInvalidRecord   = errors.New("pagestore: invalid record")
)

func isEOF(err error) bool {
	return err == io.EOF || err == io.ErrUnexpectedEOF
}

// blockOffset returns the byte offset of a block.
func blockOffset(index uint32) int64 {
	return int64(index) * PageSize
}

// --------------------------------------------------------------------

// BlockType is the type tag of a block.
type BlockType uint32

// Supported block types.
const (
	PropertyBlockType BlockType = iota + 1
	CategoryBlockType
)

func (t BlockType) String() string {
	switch t {
	case PropertyBlockType:
		return "property"
	case CategoryBlockType:
		return "category"
	}
	return "unknown"
}

// --------------------------------------------------------------------

// Options define reader specific options.
type Options struct {
	// MaxChainLength is the maximum number of blocks in a single chain.
	// Default: 0 (unlimited, chains are still checked for cycles).
	MaxChainLength int

	// Logger receives debug events about walked chains.
	// Default: discard.
	Logger *slog.Logger
}

func (o *Options) norm() *Options {
	var oo Options
	if o != nil {
		oo = *o
	}

	if oo.MaxChainLength < 0 {
		oo.MaxChainLength = 0
	}
	if oo.Logger == nil {
		oo.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &oo
}
