package obfuscate

// rotate performs an in-place rot-N substitution on the buffer. Only ASCII
// alphabetic bytes are changed and their case is preserved. The distance is
// wrapped within the 26 letter alphabet, so rotating by 26-n reverses a
// rotation by n (including n = 0).
func rotate(buf []byte, n int) {
	for i, b := range buf {
		switch {
		case b >= 'a' && b <= 'z':
			buf[i] = byte((int(b)-'a'+n)%26) + 'a'
		case b >= 'A' && b <= 'Z':
			buf[i] = byte((int(b)-'A'+n)%26) + 'A'
		}
	}
}

// shift adds the repeating shift table to the buffer in place. Every byte is
// mutated with 8-bit wraparound arithmetic, so shifting with the additive
// inverse table restores the original buffer.
func shift(buf, table []byte) {
	for i := range buf {
		buf[i] += table[i%len(table)]
	}
}
