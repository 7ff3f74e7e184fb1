package obfuscate

import "testing"

var benchInput = []byte("The quick brown fox jumps over the lazy dog")

func BenchmarkRotate(b *testing.B) {
	buf := make([]byte, len(benchInput))
	copy(buf, benchInput)
	for i := 0; i < b.N; i++ {
		rotate(buf, 13)
	}
}

func BenchmarkShift(b *testing.B) {
	buf := make([]byte, len(benchInput))
	copy(buf, benchInput)
	table := []byte{2, 3, 4}
	for i := 0; i < b.N; i++ {
		shift(buf, table)
	}
}

func BenchmarkEncrypt(b *testing.B) {
	key, _ := KeyFromConfig("2", "ABC")
	enc := &RotN{key: key}
	dst := make([]byte, len(benchInput)+enc.Sizing())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		enc.Encrypt(benchInput, dst)
	}
}

func BenchmarkDecrypt(b *testing.B) {
	key, _ := KeyFromConfig("2", "ABC")
	enc := &RotN{key: key}
	framed := make([]byte, len(benchInput)+enc.Sizing())
	enc.Encrypt(benchInput, framed)
	dst := make([]byte, len(benchInput))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		enc.Decrypt(framed, dst)
	}
}
