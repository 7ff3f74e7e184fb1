// Package rotn provides a pluggable "rotn" obfuscation transform for storage engines.
// The transform is NOT a secure cipher. It implements a rot-N (Caesar) substitution, or a
// Vigenère style byte shifting when a secret key is configured, and wraps every encoded
// payload with a fixed size checksum + IV header so the framed buffer can be written
// straight to a page. Check the obfuscate package for the transform engine and the
// extension package for the host side registry.
package rotn
