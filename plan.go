package pagestore

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Meta describes a single block.
type Meta struct {
	Index  uint32    // index of the block itself
	Type   BlockType // declared block type
	Next   uint32    // index of the next block, or Terminator
	Count  uint32    // number of records
	Length uint32    // payload length in bytes
}

// IsLast returns true if the block terminates its chain.
func (m Meta) IsLast() bool { return m.Next == Terminator }

func parseMeta(index uint32, p []byte) Meta {
	return Meta{
		Index:  index,
		Type:   BlockType(binary.LittleEndian.Uint32(p[0:])),
		Next:   binary.LittleEndian.Uint32(p[4:]),
		Count:  binary.LittleEndian.Uint32(p[8:]),
		Length: binary.LittleEndian.Uint32(p[12:]),
	}
}

// readMeta seeks to a block and reads its meta record.
func readMeta(r io.ReadSeeker, index uint32, tmp []byte) (Meta, error) {
	if _, err := r.Seek(blockOffset(index), io.SeekStart); err != nil {
		return Meta{}, err
	}
	if _, err := io.ReadFull(r, tmp[:MetaSize]); err != nil {
		if isEOF(err) {
			return Meta{}, errors.Wrapf(ErrTruncatedBlock, "block %d: meta", index)
		}
		return Meta{}, err
	}
	return parseMeta(index, tmp), nil
}

// --------------------------------------------------------------------

// ChainPlan is the validated, ordered list of blocks of a single chain.
type ChainPlan struct {
	typ   BlockType
	start uint32
	metas []Meta
}

// Type returns the block type shared by all blocks of the chain.
func (p *ChainPlan) Type() BlockType { return p.typ }

// Start returns the index of the first block.
func (p *ChainPlan) Start() uint32 { return p.start }

// Len returns the number of blocks in the chain.
func (p *ChainPlan) Len() int { return len(p.metas) }

// At returns the meta of the n-th block in chain order.
func (p *ChainPlan) At(n int) Meta { return p.metas[n] }

// NumRecords returns the total number of records declared by the chain.
func (p *ChainPlan) NumRecords() int {
	var n int
	for _, m := range p.metas {
		n += int(m.Count)
	}
	return n
}

// PlanChain walks the chain of blocks starting at the start index and
// returns its plan. Only meta records are read. Every block must declare
// the expected type, otherwise ErrFormatMismatch is returned. Revisited
// blocks and invalid links result in ErrCorruptChain.
//
// A start index of Terminator is an empty chain.
func PlanChain(r io.ReadSeeker, typ BlockType, start uint32) (*ChainPlan, error) {
	return planChain(r, typ, start, 0)
}

func planChain(r io.ReadSeeker, typ BlockType, start uint32, maxLen int) (*ChainPlan, error) {
	plan := &ChainPlan{typ: typ, start: start}
	if start == Terminator {
		return plan, nil
	}

	tmp := make([]byte, MetaSize)
	seen := make(map[uint32]struct{})

	for index := start; ; {
		if index == 0 {
			return nil, errors.Wrap(ErrCorruptChain, "link to header block")
		}
		if _, ok := seen[index]; ok {
			return nil, errors.Wrapf(ErrCorruptChain, "block %d visited twice", index)
		}
		if maxLen > 0 && len(plan.metas) == maxLen {
			return nil, errors.Wrapf(ErrCorruptChain, "exceeds %d blocks", maxLen)
		}
		seen[index] = struct{}{}

		meta, err := readMeta(r, index, tmp)
		if err != nil {
			return nil, err
		}
		if meta.Type != typ {
			return nil, errors.Wrapf(ErrFormatMismatch, "block %d: expected %s, got %s (%d)", index, typ, meta.Type, uint32(meta.Type))
		}
		if meta.Length > MaxPayload {
			return nil, errors.Wrapf(ErrCorruptChain, "block %d: payload length %d exceeds %d", index, meta.Length, MaxPayload)
		}

		plan.metas = append(plan.metas, meta)
		if meta.IsLast() {
			return plan, nil
		}
		index = meta.Next
	}
}
