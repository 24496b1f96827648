package pagestore_test

import (
	"bytes"
	"log/slog"

	"github.com/bsm/pagestore"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Store", func() {
	pt, ct := pagestore.PropertyBlockType, pagestore.CategoryBlockType

	var subject *pagestore.Store

	BeforeEach(func() {
		var err error
		subject, err = pagestore.ReadStore(seedStore().Reader(), nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should read", func() {
		Expect(subject.Header).To(Equal(pagestore.Header{
			Version:       1,
			PropertyIndex: 1,
			CategoryIndex: 4,
			ItemKindIndex: 5,
		}))
		Expect(subject.PropertyIDs()).To(Equal([]uint32{7, 8, 9, 300}))
		Expect(subject.CategoryIDs()).To(Equal([]uint32{1, 2}))
	})

	It("should let later blocks win", func() {
		p, ok := subject.Property(7)
		Expect(ok).To(BeTrue())
		Expect(p.Text()).To(Equal("blue"))
	})

	It("should not expose the item-kind index", func() {
		_, ok := subject.Category(100)
		Expect(ok).To(BeFalse())
	})

	It("should resolve category properties", func() {
		c, ok := subject.Category(2)
		Expect(ok).To(BeTrue())

		props := c.Resolve(subject)
		Expect(props).To(HaveLen(2))
		Expect(props[0].Name).To(Equal("fragile"))
		Expect(props[1].Name).To(Equal("price"))
		Expect(props[1].Float()).To(Equal(9.95))
	})

	It("should read stores with empty chains", func() {
		s, err := pagestore.ReadStore(newStoreBuilder().Reader(), nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Properties).To(BeEmpty())
		Expect(s.Categories).To(BeEmpty())
	})

	It("should fail on bad headers", func() {
		_, err := pagestore.ReadStore(bytes.NewReader(nil), nil)
		Expect(err).To(MatchError(pagestore.ErrTruncatedBlock))

		_, err = pagestore.ReadStore(bytes.NewReader(make([]byte, pagestore.PageSize)), nil)
		Expect(err).To(MatchError(pagestore.ErrBadMagic))

		b := seedStore()
		b.version = 2
		_, err = pagestore.ReadStore(b.Reader(), nil)
		Expect(err).To(MatchError(pagestore.ErrBadVersion))
	})

	It("should fail on corrupt property chains", func() {
		b := seedStore().Block(2, pt, 1)
		s, err := pagestore.ReadStore(b.Reader(), nil)
		Expect(err).To(MatchError(pagestore.ErrCorruptChain))
		Expect(s).To(BeNil())
	})

	It("should fail on mismatching category chains", func() {
		b := seedStore().Chains(1, 3, 5)
		s, err := pagestore.ReadStore(b.Reader(), nil)
		Expect(err).To(MatchError(pagestore.ErrFormatMismatch))
		Expect(s).To(BeNil())
	})

	It("should validate the item-kind index", func() {
		b := seedStore().Block(5, ct, 6).Block(6, pt, pagestore.Terminator)
		s, err := pagestore.ReadStore(b.Reader(), nil)
		Expect(err).To(MatchError(pagestore.ErrFormatMismatch))
		Expect(s).To(BeNil())

		b = seedStore().Block(5, ct, pagestore.Terminator, []byte{0x80})
		_, err = pagestore.ReadStore(b.Reader(), nil)
		Expect(err).To(MatchError(pagestore.ErrTruncatedBlock))
	})

	It("should limit chain lengths", func() {
		_, err := pagestore.ReadStore(seedStore().Reader(), &pagestore.Options{MaxChainLength: 2})
		Expect(err).To(MatchError(pagestore.ErrCorruptChain))

		_, err = pagestore.ReadStore(seedStore().Reader(), &pagestore.Options{MaxChainLength: 3})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should log chains", func() {
		buf := new(bytes.Buffer)
		logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		_, err := pagestore.ReadStore(seedStore().Reader(), &pagestore.Options{Logger: logger})
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring(`chain=properties type=property start=1 blocks=3 records=4`))
		Expect(buf.String()).To(ContainSubstring(`chain=categories type=category start=4 blocks=1 records=2`))
		Expect(buf.String()).To(ContainSubstring(`chain=item-kinds type=category start=5 blocks=1 records=1`))
	})
})
