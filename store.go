package pagestore

import (
	"io"
	"sort"
)

// Store is the decoded content of a store file.
type Store struct {
	Header     Header
	Properties map[uint32]Property
	Categories map[uint32]Category
}

// ReadStore reads a complete store from r. It either returns a fully
// decoded Store or an error.
func ReadStore(r io.ReadSeeker, o *Options) (*Store, error) {
	o = o.norm()

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	header, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	properties, err := readChain[Property, propertyCodec](r, "properties", header.PropertyIndex, o)
	if err != nil {
		return nil, err
	}

	categories, err := readChain[Category, categoryCodec](r, "categories", header.CategoryIndex, o)
	if err != nil {
		return nil, err
	}

	// The item-kind index is validated but not retained.
	if _, err := readChain[Category, categoryCodec](r, "item-kinds", header.ItemKindIndex, o); err != nil {
		return nil, err
	}

	return &Store{
		Header:     header,
		Properties: properties,
		Categories: categories,
	}, nil
}

// Property returns the property for an id.
func (s *Store) Property(id uint32) (Property, bool) {
	p, ok := s.Properties[id]
	return p, ok
}

// Category returns the category for an id.
func (s *Store) Category(id uint32) (Category, bool) {
	c, ok := s.Categories[id]
	return c, ok
}

// PropertyIDs returns the sorted IDs of all properties.
func (s *Store) PropertyIDs() []uint32 {
	ids := make([]uint32, 0, len(s.Properties))
	for id := range s.Properties {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CategoryIDs returns the sorted IDs of all categories.
func (s *Store) CategoryIDs() []uint32 {
	ids := make([]uint32, 0, len(s.Categories))
	for id := range s.Categories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
