package loader

import (
	"bytes"
	"path/filepath"
)

// Compression is the compression format of an input file
type Compression int

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
	CompressionXz
)

// String returns the string representation of Compression
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionXz:
		return "xz"
	default:
		return "unknown"
	}
}

// Magic bytes for compression detection
var (
	gzipMagic = []byte{0x1F, 0x8B}
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	xzMagic   = []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}
)

// DetectCompression determines the compression of a file from its first
// bytes, falling back to the file extension
func DetectCompression(path string, header []byte) Compression {
	switch {
	case bytes.HasPrefix(header, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(header, zstdMagic):
		return CompressionZstd
	case bytes.HasPrefix(header, xzMagic):
		return CompressionXz
	}

	// A truncated file still gets a meaningful decompression error
	switch filepath.Ext(path) {
	case ".gz":
		return CompressionGzip
	case ".zst":
		return CompressionZstd
	case ".xz":
		return CompressionXz
	}

	return CompressionNone
}
