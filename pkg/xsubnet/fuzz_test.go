package xsubnet

import (
	"testing"
)

// =============================================================================
// 解析与渲染往返模糊测试
// =============================================================================

func FuzzParseStringRoundTrip(f *testing.F) {
	f.Add("192.168.1.0/24")
	f.Add("10.0.0.1")
	f.Add("0.0.0.0/0")
	f.Add("192.168")
	f.Add("172.16.0.0/255.240.0.0")
	f.Add("8.8.8.8/32")

	f.Fuzz(func(t *testing.T, input string) {
		s, err := Parse(input)
		if err != nil {
			return
		}
		// 规范渲染再解析必须得到相同的子网值
		back, err := Parse(s.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed after render of %q: %v", s.String(), input, err)
		}
		if back != s {
			t.Fatalf("round-trip mismatch: %q → %v → %v", input, s, back)
		}
		// 点分掩码渲染同样可逆
		back, err = Parse(s.StringMask())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s.StringMask(), err)
		}
		if back != s {
			t.Fatalf("mask-form round-trip mismatch: %q → %v → %v", input, s, back)
		}
	})
}

// =============================================================================
// 构造不变式模糊测试
// =============================================================================

func FuzzConstructionInvariants(f *testing.F) {
	f.Add(uint32(0x0a000001), uint8(8))
	f.Add(uint32(0xc0a80101), uint8(24))
	f.Add(uint32(0), uint8(0))
	f.Add(uint32(0xffffffff), uint8(32))

	f.Fuzz(func(t *testing.T, addr uint32, prefix uint8) {
		if prefix > 32 {
			return
		}
		var mask uint32
		if prefix > 0 {
			mask = ^uint32(0) << (32 - prefix)
		}
		s, err := New(Uint32Spec(addr), Uint32Spec(mask))
		if err != nil {
			t.Fatalf("New failed for addr=%d prefix=%d: %v", addr, prefix, err)
		}

		// 基地址不变式：base & mask == base
		if s.NetworkUint32()&s.MaskUint32() != s.NetworkUint32() {
			t.Fatalf("base invariant violated: %v", s)
		}
		// 前缀长度与掩码一致
		if s.Prefix() != int(prefix) {
			t.Fatalf("prefix mismatch: got %d, want %d", s.Prefix(), prefix)
		}
		// 网络地址 ≤ 广播地址，覆盖 2^(32-prefix) 个地址
		span := uint64(s.BroadcastUint32()-s.NetworkUint32()) + 1
		if span != uint64(1)<<(32-prefix) {
			t.Fatalf("span mismatch: got %d for /%d", span, prefix)
		}
		// 主机数与枚举一致（只在范围足够小时枚举）
		if prefix >= 22 {
			n := uint64(0)
			for range s.Hosts(0) {
				n++
			}
			if n != s.HostCount() {
				t.Fatalf("HostCount=%d but enumeration yielded %d for %v", s.HostCount(), n, s)
			}
		}
	})
}
