package pagestore

import (
	"io"
	"sync"

	"github.com/pkg/errors"
)

// Block contains the decoded records of a single block.
type Block[V any] struct {
	Meta    Meta
	Records map[uint32]V
}

// Len returns the number of records.
func (b *Block[V]) Len() int { return len(b.Records) }

// Block types.
type (
	PropertyBlock = Block[Property]
	CategoryBlock = Block[Category]
)

// codec decodes the values of a single block type.
type codec[V any] interface {
	BlockType() BlockType
	DecodeValue(key uint32, c *byteCursor) (V, error)
}

// DecodePropertyBlock decodes a property block. The reader must be
// positioned at the start of the block described by meta.
func DecodePropertyBlock(r io.Reader, meta Meta) (*PropertyBlock, error) {
	return decodeBlock[Property, propertyCodec](r, meta)
}

// DecodeCategoryBlock decodes a category block. The reader must be
// positioned at the start of the block described by meta.
func DecodeCategoryBlock(r io.Reader, meta Meta) (*CategoryBlock, error) {
	return decodeBlock[Category, categoryCodec](r, meta)
}

func decodeBlock[V any, C codec[V]](r io.Reader, meta Meta) (*Block[V], error) {
	var dec C
	if meta.Type != dec.BlockType() {
		return nil, errors.Wrapf(ErrFormatMismatch, "block %d: expected %s, got %s", meta.Index, dec.BlockType(), meta.Type)
	}
	if meta.Length > MaxPayload {
		return nil, errors.Wrapf(ErrCorruptChain, "block %d: payload length %d exceeds %d", meta.Index, meta.Length, MaxPayload)
	}

	raw := fetchBuffer(MetaSize + int(meta.Length))
	defer releaseBuffer(raw)

	if _, err := io.ReadFull(r, raw); err != nil {
		if isEOF(err) {
			return nil, errors.Wrapf(ErrTruncatedBlock, "block %d: payload", meta.Index)
		}
		return nil, err
	}
	if got := parseMeta(meta.Index, raw); got.Type != meta.Type {
		return nil, errors.Wrapf(ErrFormatMismatch, "block %d: expected %s, got %s", meta.Index, meta.Type, got.Type)
	}

	cur := &byteCursor{buf: raw[MetaSize:]}
	block := &Block[V]{
		Meta:    meta,
		Records: make(map[uint32]V, int(minU32(meta.Count, MaxPayload))),
	}
	for n := uint32(0); n < meta.Count; n++ {
		key, err := readKey(cur)
		if err != nil {
			return nil, recordErr(err, meta.Index, n)
		}
		if _, ok := block.Records[key]; ok {
			return nil, errors.Wrapf(ErrInvalidRecord, "block %d: record %d: duplicate key %d", meta.Index, n, key)
		}

		val, err := dec.DecodeValue(key, cur)
		if err != nil {
			return nil, recordErr(err, meta.Index, n)
		}
		block.Records[key] = val
	}
	return block, nil
}

// recordErr converts record decoding errors. Running out of payload
// means the block holds fewer records than declared.
func recordErr(err error, index, n uint32) error {
	if errors.Is(err, ErrTruncatedVarInt) || isEOF(err) {
		return errors.Wrapf(ErrTruncatedBlock, "block %d: record %d", index, n)
	}
	return errors.Wrapf(err, "block %d: record %d", index, n)
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

// --------------------------------------------------------------------

// readChain plans the chain starting at start and decodes its blocks
// in chain order. Records of later blocks overwrite earlier ones.
func readChain[V any, C codec[V]](r io.ReadSeeker, name string, start uint32, o *Options) (map[uint32]V, error) {
	var dec C

	plan, err := planChain(r, dec.BlockType(), start, o.MaxChainLength)
	if err != nil {
		return nil, err
	}

	data := make(map[uint32]V)
	if plan.Len() == 0 {
		return data, nil
	}
	if _, err := r.Seek(blockOffset(start), io.SeekStart); err != nil {
		return nil, err
	}

	for i := 0; i < plan.Len(); i++ {
		meta := plan.At(i)

		block, err := decodeBlock[V, C](r, meta)
		if err != nil {
			return nil, err
		}
		for key, val := range block.Records {
			data[key] = val
		}

		if !meta.IsLast() {
			if _, err := r.Seek(blockOffset(meta.Next), io.SeekStart); err != nil {
				return nil, err
			}
		}
	}

	o.Logger.Debug("pagestore: read chain",
		"chain", name,
		"type", plan.Type().String(),
		"start", start,
		"blocks", plan.Len(),
		"records", len(data),
	)
	return data, nil
}

// --------------------------------------------------------------------

var bufPool sync.Pool

func fetchBuffer(sz int) []byte {
	if v := bufPool.Get(); v != nil {
		if p := v.([]byte); sz <= cap(p) {
			return p[:sz]
		}
	}
	return make([]byte, sz, PageSize)
}

func releaseBuffer(p []byte) {
	if cap(p) != 0 {
		bufPool.Put(p)
	}
}
