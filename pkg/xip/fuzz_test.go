package xip

import (
	"testing"
)

// =============================================================================
// 表示转换往返模糊测试
// =============================================================================

func FuzzUint32RoundTrip(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(0x7f000001))
	f.Add(uint32(0xc0a80101))
	f.Add(uint32(0xffffffff))

	f.Fuzz(func(t *testing.T, v uint32) {
		// uint32 → octets → uint32
		if got := OctetsToUint32(Uint32ToOctets(v)); got != v {
			t.Fatalf("octets round-trip mismatch: %d → %d", v, got)
		}

		// uint32 → binary → uint32
		got, err := BinaryToUint32(Uint32ToBinary(v))
		if err != nil {
			t.Fatalf("BinaryToUint32 failed for %d: %v", v, err)
		}
		if got != v {
			t.Fatalf("binary round-trip mismatch: %d → %d", v, got)
		}

		// uint32 → string → octets → uint32
		o, err := StringToOctets(Uint32ToString(v))
		if err != nil {
			t.Fatalf("StringToOctets(%q) failed: %v", Uint32ToString(v), err)
		}
		if got := OctetsToUint32(o); got != v {
			t.Fatalf("string round-trip mismatch: %d → %d", v, got)
		}

		// uint32 → netip.Addr → uint32
		u, ok := AddrToUint32(AddrFromUint32(v))
		if !ok || u != v {
			t.Fatalf("addr round-trip mismatch: %d → %d (ok=%v)", v, u, ok)
		}
	})
}

func FuzzValidateOctets(f *testing.F) {
	f.Add(1, 2, 3, 4)
	f.Add(0, 0, 0, 0)
	f.Add(255, 255, 255, 255)
	f.Add(-1, 256, 1000, 0)

	f.Fuzz(func(t *testing.T, a, b, c, d int) {
		o, err := ValidateOctets([]int{a, b, c, d})
		valid := a >= 0 && a <= 255 && b >= 0 && b <= 255 &&
			c >= 0 && c <= 255 && d >= 0 && d <= 255
		if valid {
			if err != nil {
				t.Fatalf("unexpected error for in-range elements: %v", err)
			}
			if o != [4]byte{byte(a), byte(b), byte(c), byte(d)} {
				t.Fatalf("octet mismatch: %v", o)
			}
			return
		}
		if err == nil {
			t.Fatalf("expected range error for [%d %d %d %d]", a, b, c, d)
		}
	})
}
