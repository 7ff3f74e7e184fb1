// Package b64 implements the functionality for encoding and decoding to and from base64 bytes
package b64

import (
	"encoding/base64"
)

// Base64Encoding wraps a base64 encoding scheme
type Base64Encoding struct {
	encoding *base64.Encoding
}

// NewRawStandardEncoding creates a raw, unpadded base64 encoding with the standard character set
func NewRawStandardEncoding() Base64Encoding {
	return Base64Encoding{encoding: base64.RawStdEncoding}
}

// NewRawURLEncoding creates a raw, unpadded base64 encoding with the URL safe character set
func NewRawURLEncoding() Base64Encoding {
	return Base64Encoding{encoding: base64.RawURLEncoding}
}

// Encode encodes the input into base64 bytes
func (b Base64Encoding) Encode(in []byte) []byte {
	buf := make([]byte, b.encoding.EncodedLen(len(in)))
	b.encoding.Encode(buf, in)
	return buf
}

// Decode decodes a base64 encoded []byte
func (b Base64Encoding) Decode(in []byte) ([]byte, error) {
	buf := make([]byte, b.encoding.DecodedLen(len(in)))
	n, err := b.encoding.Decode(buf, in)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// Encode encodes the input using base64 raw standard encoder
func Encode(in []byte) []byte {
	return NewRawStandardEncoding().Encode(in)
}

// Decode decodes a base64 encoded []byte using raw standard encoder
func Decode(in []byte) ([]byte, error) {
	return NewRawStandardEncoding().Decode(in)
}
