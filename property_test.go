package pagestore_test

import (
	"github.com/bsm/pagestore"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Property", func() {
	It("should convert values", func() {
		Expect(pagestore.Property{Type: pagestore.BoolProperty, Data: []byte{1}}.Bool()).To(BeTrue())
		Expect(pagestore.Property{Type: pagestore.BoolProperty, Data: []byte{0}}.Bool()).To(BeFalse())
		Expect(pagestore.Property{Type: pagestore.IntProperty, Data: []byte{0xfe, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}}.Int()).To(Equal(int64(-2)))
		Expect(pagestore.Property{Type: pagestore.FloatProperty, Data: []byte{0, 0, 0, 0, 0, 0, 0xf8, 0x3f}}.Float()).To(Equal(1.5))
		Expect(pagestore.Property{Type: pagestore.StringProperty, Data: []byte("hi")}.Text()).To(Equal("hi"))
	})

	It("should reject type mismatches", func() {
		_, err := pagestore.Property{ID: 3, Type: pagestore.StringProperty, Data: []byte{1}}.Bool()
		Expect(err).To(MatchError(pagestore.ErrInvalidRecord))
		Expect(err.Error()).To(HavePrefix("property 3: is string, not bool"))

		_, err = pagestore.Property{Type: pagestore.BytesProperty}.Text()
		Expect(err).To(MatchError(pagestore.ErrInvalidRecord))
	})

	It("should reject bad data", func() {
		_, err := pagestore.Property{Type: pagestore.IntProperty, Data: []byte{1, 2}}.Int()
		Expect(err).To(MatchError(pagestore.ErrInvalidRecord))

		_, err = pagestore.Property{Type: pagestore.BoolProperty}.Bool()
		Expect(err).To(MatchError(pagestore.ErrInvalidRecord))

		_, err = pagestore.Property{Type: pagestore.StringProperty, Data: []byte{0xff}}.Text()
		Expect(err).To(MatchError(pagestore.ErrInvalidRecord))
	})

	It("should name types", func() {
		Expect(pagestore.FloatProperty.String()).To(Equal("float"))
		Expect(pagestore.PropertyType(42).String()).To(Equal("PropertyType(42)"))
		Expect(pagestore.CategoryBlockType.String()).To(Equal("category"))
	})
})
