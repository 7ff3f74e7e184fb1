package obfuscate

// RotN is the "rotn" transform. Without a secret key it acts as a rot-N
// substitution over the alphabetic bytes of the payload, where N is the value
// of the configured key id. With a secret key every payload byte is shifted by
// the repeating table derived from the key.
//
// IT IS TRIVIAL TO BREAK AND DOES NOT OFFER ANY SECURITY!
//
// Every encrypted payload is prefixed with a checksum and an IV region. Both
// are filled with random bytes and are never read back; they only keep the
// frame layout compatible with what a real encryptor would produce.
type RotN struct {
	key *Key
}

// New creates the template "rotn" encryptor. The template holds no key material
// and is only meant to be registered with the host and used as the prototype
// for Customize.
func New() *RotN {
	return &RotN{key: &Key{}}
}

// Sizing returns the fixed number of bytes the checksum and IV regions add to
// every encrypted payload.
func (r *RotN) Sizing() int {
	return headerLength
}

// Customize creates a new encryptor bound to the key material found in the
// configuration. The new instance shares no mutable state with the template or
// with any other customised instance.
func (r *RotN) Customize(cfg Config) (Encryptor, error) {
	keyID, _ := cfg.Get("keyid")
	secretKey, _ := cfg.Get("secretkey")

	key, err := KeyFromConfig(keyID, secretKey)
	if err != nil {
		return nil, err
	}

	custom := *r
	custom.key = key
	return &custom, nil
}

// Encrypt copies src into the payload region of dst, transforms the payload in
// place and randomises the checksum and IV regions. It returns the total number
// of bytes written, which is always len(src)+Sizing().
//
// The destination is checked up front; no byte is written on failure.
func (r *RotN) Encrypt(src, dst []byte) (int, error) {
	if src == nil {
		return 0, nil
	}
	if len(dst) < len(src)+headerLength {
		return 0, ErrBufferTooSmall
	}

	payload := dst[headerLength : headerLength+len(src)]
	copy(payload, src)
	if r.key.isRotationOnly() {
		rotate(payload, r.key.rotation)
	} else {
		shift(payload, r.key.shiftForward)
	}

	makeChecksum(dst)
	makeIV(dst[checksumLength:])
	return len(src) + headerLength, nil
}

// Decrypt copies the payload region of the framed src into dst and reverses the
// transform in place. It returns the number of payload bytes written, which is
// always len(src)-Sizing(). The checksum and IV regions are skipped without
// being verified.
func (r *RotN) Decrypt(src, dst []byte) (int, error) {
	if src == nil {
		return 0, nil
	}
	if len(src) < headerLength {
		return 0, ErrShortFrame
	}
	length := len(src) - headerLength
	if len(dst) < length {
		return 0, ErrBufferTooSmall
	}

	payload := dst[:length]
	copy(payload, src[headerLength:])
	if r.key.isRotationOnly() {
		rotate(payload, 26-r.key.rotation%26)
	} else {
		shift(payload, r.key.shiftBackward)
	}
	return length, nil
}

// Terminate releases the key material of the encryptor. Calling it twice on the
// same instance, or using the instance afterwards, is the caller's fault and is
// not detected.
func (r *RotN) Terminate() error {
	r.key.release()
	r.key = nil
	return nil
}
