package alphaid

import (
	"testing"
)

var (
	globalID  []byte //nolint:gochecknoglobals
	globalVal uint64 //nolint:gochecknoglobals
)

func BenchmarkEncode(b *testing.B) {
	c := MustNew[uint64](Options{})

	b.Run("small value", func(b *testing.B) {
		var id []byte
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			id = c.Encode(42)
		}
		globalID = id
	})

	b.Run("large value", func(b *testing.B) {
		var id []byte
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			id = c.Encode(1<<63 + 11)
		}
		globalID = id
	})

	b.Run("padded", func(b *testing.B) {
		cp := MustNew[uint64](Options{MinLen: 8})
		var id []byte
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			id = cp.Encode(42)
		}
		globalID = id
	})
}

func BenchmarkDecode(b *testing.B) {
	c := MustNew[uint64](Options{})
	id := c.Encode(1350997667)

	b.Run("unpadded", func(b *testing.B) {
		var v uint64
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v, _ = c.Decode(id)
		}
		globalVal = v
	})

	b.Run("padded", func(b *testing.B) {
		cp := MustNew[uint64](Options{MinLen: 8})
		pid := cp.Encode(1350997667)
		var v uint64
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v, _ = cp.Decode(pid)
		}
		globalVal = v
	})
}
