package pagestore

import "github.com/pkg/errors"

// Category is a named group of properties. Categories form a tree
// through their parent IDs.
type Category struct {
	ID          uint32
	Parent      uint32
	Name        string
	PropertyIDs []uint32
}

// Resolve returns the properties of the category which exist in store s.
func (c Category) Resolve(s *Store) []Property {
	props := make([]Property, 0, len(c.PropertyIDs))
	for _, id := range c.PropertyIDs {
		if p, ok := s.Properties[id]; ok {
			props = append(props, p)
		}
	}
	return props
}

// --------------------------------------------------------------------

type categoryCodec struct{}

func (categoryCodec) BlockType() BlockType { return CategoryBlockType }

func (categoryCodec) DecodeValue(key uint32, c *byteCursor) (Category, error) {
	parent, err := readUint32(c, "parent")
	if err != nil {
		return Category{}, err
	}

	name, err := readString(c, "name")
	if err != nil {
		return Category{}, err
	}

	num, _, err := ReadVarInt(c)
	if err != nil {
		return Category{}, err
	}
	// every property ID occupies at least one byte
	if num > uint64(c.Len()) {
		return Category{}, errors.Wrapf(ErrTruncatedBlock, "%d property IDs exceed remaining %d bytes", num, c.Len())
	}

	var ids []uint32
	if num != 0 {
		ids = make([]uint32, 0, int(num))
	}
	for i := uint64(0); i < num; i++ {
		id, err := readUint32(c, "property id")
		if err != nil {
			return Category{}, err
		}
		ids = append(ids, id)
	}

	return Category{
		ID:          key,
		Parent:      parent,
		Name:        name,
		PropertyIDs: ids,
	}, nil
}
