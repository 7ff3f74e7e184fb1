package obfuscate

import "strconv"

// Key holds the key material of a customised encryptor.
type Key struct {
	// rotation rot-N distance derived from the key id
	rotation int
	// keyID the original key id string
	keyID string
	// secretKey the original secret key string
	secretKey string
	// shiftForward per-position encryption shift table built from the secret key
	shiftForward []byte
	// shiftBackward additive inverse of shiftForward, used for decryption
	shiftBackward []byte
}

// KeyFromConfig derives the key material from the "keyid" and "secretkey"
// configuration values.
//
// The key id must be the string form of a non-negative integer and becomes the
// rot-N distance. The secret key is optional; when present it must only contain
// alphabetic characters. For every character the distance from the start of its
// case's alphabet, increased by the key id, becomes a forward shift table entry.
// The backward table holds the additive inverses.
func KeyFromConfig(keyID, secretKey string) (*Key, error) {
	rotation, err := strconv.Atoi(keyID)
	if err != nil || rotation < 0 {
		return nil, ErrInvalidKeyID
	}

	key := &Key{
		rotation:  rotation,
		keyID:     keyID,
		secretKey: secretKey,
	}

	if len(secretKey) == 0 {
		return key, nil
	}

	key.shiftForward = make([]byte, len(secretKey))
	key.shiftBackward = make([]byte, len(secretKey))
	for i := 0; i < len(secretKey); i++ {
		c := secretKey[i]
		var base byte
		switch {
		case c >= 'a' && c <= 'z':
			base = 'a'
		case c >= 'A' && c <= 'Z':
			base = 'A'
		default:
			return nil, ErrNonAlphabeticKey
		}
		base -= byte(rotation)
		key.shiftForward[i] = c - base
		key.shiftBackward[i] = base - c
	}
	return key, nil
}

// KeyID returns the original key id string
func (k *Key) KeyID() string {
	return k.keyID
}

// SecretKey returns the original secret key string
func (k *Key) SecretKey() string {
	return k.secretKey
}

// Rotation returns the rot-N distance derived from the key id
func (k *Key) Rotation() int {
	return k.rotation
}

func (k *Key) shiftLength() int {
	return len(k.shiftForward)
}

// isRotationOnly reports whether no secret key has been configured, in which
// case the plain rot-N substitution is active
func (k *Key) isRotationOnly() bool {
	return k.shiftLength() == 0
}

func (k *Key) release() {
	k.keyID = ""
	k.secretKey = ""
	k.shiftForward = nil
	k.shiftBackward = nil
}
