package pagestore

import (
	"bytes"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

var (
	snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")
	zstdMagic   = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// Open reads the store file at path. Files may be stored plain, or
// compressed as a snappy framed or zstd stream.
func Open(path string, o *Options) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fs, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fs.Size() == 0 {
		return ReadStore(bytes.NewReader(nil), o)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer m.Unmap()

	r, err := NewContainerReader(m)
	if err != nil {
		return nil, err
	}
	return ReadStore(r, o)
}

// NewContainerReader returns a seekable reader over the plain store
// contained in data, decompressing it if necessary. Plain data is not
// copied.
func NewContainerReader(data []byte) (io.ReadSeeker, error) {
	switch {
	case bytes.HasPrefix(data, snappyMagic):
		plain, err := io.ReadAll(snappy.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(plain), nil
	case bytes.HasPrefix(data, zstdMagic):
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		defer dec.Close()

		plain, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, err
		}
		return bytes.NewReader(plain), nil
	}
	return bytes.NewReader(data), nil
}
