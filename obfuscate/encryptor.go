package obfuscate

// Config is the host's key/value configuration lookup service. Customize reads
// the "keyid" and "secretkey" values through it instead of parsing raw
// configuration strings.
type Config interface {
	// Get returns the value of the given configuration key and whether the key
	// has been configured at all
	Get(key string) (string, bool)
}

// Encryptor is the contract between the host storage engine and a pluggable
// transform. The host registers a named template encryptor once, customises it
// per logical use and drives the customised instance per buffer.
type Encryptor interface {
	// Encrypt writes the framed, transformed form of src into dst and returns
	// the number of bytes written. dst must be able to hold len(src)+Sizing()
	// bytes. A nil src is a no-op success.
	Encrypt(src, dst []byte) (int, error)
	// Decrypt reverses Encrypt. It writes the recovered payload of the framed
	// src into dst and returns the number of bytes written. dst must be able to
	// hold len(src)-Sizing() bytes. A nil src is a no-op success.
	Decrypt(src, dst []byte) (int, error)
	// Sizing returns the constant number of bytes Encrypt adds to every
	// payload. It never fails and does not depend on the configuration.
	Sizing() int
	// Customize creates a new, independently keyed encryptor from the
	// configuration. No partial instance is ever returned on failure.
	Customize(cfg Config) (Encryptor, error)
	// Terminate releases every resource the encryptor owns. The caller must not
	// use the encryptor, nor call Terminate again, afterwards.
	Terminate() error
}
