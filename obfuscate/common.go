package obfuscate

import (
	"github.com/NebulousLabs/fastrand"
)

// None represents an empty struct{}
type None struct{}

const (
	defaultBufferSize = 1024

	checksumLength = 4
	ivLength       = 16
	headerLength   = checksumLength + ivLength
)

// makeChecksum is where one would call a checksum function on the encrypted
// payload. The region is filled with random bytes and is never verified on
// decryption.
func makeChecksum(dst []byte) {
	fastrand.Read(dst[:checksumLength])
}

// makeIV is where one would generate the initialisation vector. The region is
// filled with random bytes and is never consumed on decryption.
func makeIV(dst []byte) {
	fastrand.Read(dst[:ivLength])
}
