package xip

import (
	"net"
	"testing"
)

// =============================================================================
// 表示转换基准测试
// =============================================================================

func BenchmarkUint32ToString(b *testing.B) {
	b.Run("xip.Uint32ToString", func(b *testing.B) {
		for b.Loop() {
			_ = Uint32ToString(0xc0a80101)
		}
	})
	b.Run("net.IP.String", func(b *testing.B) {
		ip := net.IPv4(192, 168, 1, 1)
		for b.Loop() {
			_ = ip.String()
		}
	})
}

func BenchmarkStringToOctets(b *testing.B) {
	for b.Loop() {
		_, _ = StringToOctets("192.168.1.1")
	}
}

func BenchmarkConvert(b *testing.B) {
	for b.Loop() {
		_ = Convert(0xc0a80101, FormatString)
	}
}
