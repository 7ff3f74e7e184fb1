// Package obfuscate implements the core functionality of the rotn transform.
//
// The central type of the package is RotN, a pluggable encryptor a host storage
// engine drives through the Encryptor interface. The template encryptor returned
// by New holds no key material. Calling Customize with a configuration produces
// an independently keyed instance:
//
//	template := obfuscate.New()
//
//	enc, err := template.Customize(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	framed := make([]byte, len(payload)+enc.Sizing())
//	n, err := enc.Encrypt(payload, framed)
//
// When "keyid" is the only configured value, the transform is a rot-N substitution
// over the alphabetic bytes of the payload. When a "secretkey" is configured as
// well, every payload byte is shifted by a repeating per-position table derived
// from the key. Neither mode provides any security; the checksum and IV regions
// of the frame are filled with random bytes and are never verified.
//
// The package also ships an Engine which serves encode/decode tasks flowing from
// a Tap, the same way the host engine would invoke the transform per record.
package obfuscate
