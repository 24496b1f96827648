package pagestore

import (
	"encoding/binary"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// PropertyType is the data type of a property.
type PropertyType uint8

// Supported property types.
const (
	BoolProperty PropertyType = iota + 1
	IntProperty
	FloatProperty
	StringProperty
	BytesProperty
	unknownProperty
)

func (t PropertyType) isValid() bool {
	return t >= BoolProperty && t < unknownProperty
}

func (t PropertyType) String() string {
	switch t {
	case BoolProperty:
		return "bool"
	case IntProperty:
		return "int"
	case FloatProperty:
		return "float"
	case StringProperty:
		return "string"
	case BytesProperty:
		return "bytes"
	}
	return "PropertyType(" + strconv.Itoa(int(t)) + ")"
}

// Property is a named, typed value.
type Property struct {
	ID   uint32
	Type PropertyType
	Name string
	Data []byte
}

// Bool returns the value of a bool property.
func (p Property) Bool() (bool, error) {
	if err := p.expect(BoolProperty, 1); err != nil {
		return false, err
	}
	return p.Data[0] != 0, nil
}

// Int returns the value of an int property.
func (p Property) Int() (int64, error) {
	if err := p.expect(IntProperty, 8); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(p.Data)), nil
}

// Float returns the value of a float property.
func (p Property) Float() (float64, error) {
	if err := p.expect(FloatProperty, 8); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(p.Data)), nil
}

// Text returns the value of a string property.
func (p Property) Text() (string, error) {
	if err := p.expect(StringProperty, -1); err != nil {
		return "", err
	}
	if !utf8.Valid(p.Data) {
		return "", errors.Wrapf(ErrInvalidRecord, "property %d: data is not valid UTF-8", p.ID)
	}
	return string(p.Data), nil
}

func (p Property) expect(t PropertyType, size int) error {
	if p.Type != t {
		return errors.Wrapf(ErrInvalidRecord, "property %d: is %s, not %s", p.ID, p.Type, t)
	}
	if size > -1 && len(p.Data) != size {
		return errors.Wrapf(ErrInvalidRecord, "property %d: %s data must be %d bytes, got %d", p.ID, t, size, len(p.Data))
	}
	return nil
}

// --------------------------------------------------------------------

type propertyCodec struct{}

func (propertyCodec) BlockType() BlockType { return PropertyBlockType }

func (propertyCodec) DecodeValue(key uint32, c *byteCursor) (Property, error) {
	t, _, err := ReadVarInt(c)
	if err != nil {
		return Property{}, err
	}
	if t > math.MaxUint8 || !PropertyType(t).isValid() {
		return Property{}, errors.Wrapf(ErrInvalidRecord, "unknown property type %d", t)
	}

	name, err := readString(c, "name")
	if err != nil {
		return Property{}, err
	}

	data, err := readBytes(c)
	if err != nil {
		return Property{}, err
	}

	return Property{
		ID:   key,
		Type: PropertyType(t),
		Name: name,
		Data: append([]byte(nil), data...),
	}, nil
}
