package xip

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	const v = uint32(0xc0a80101) // 192.168.1.1

	tests := []struct {
		name   string
		format Format
		want   any
	}{
		{name: "binary", format: FormatBinary, want: []byte{192, 168, 1, 1}},
		{name: "octets", format: FormatOctets, want: [4]byte{192, 168, 1, 1}},
		{name: "string", format: FormatString, want: "192.168.1.1"},
		{name: "uint32", format: FormatUint32, want: v},
		{name: "addr", format: FormatAddr, want: netip.MustParseAddr("192.168.1.1")},
		{name: "zero defaults to addr", format: 0, want: netip.MustParseAddr("192.168.1.1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Convert(v, tt.format))
		})
	}
}

func TestConvertPriority(t *testing.T) {
	const v = uint32(0x0a000001)

	// 多个标志同时设置时，按 binary → octets → string → uint32 优先级取第一个匹配
	assert.Equal(t, []byte{10, 0, 0, 1}, Convert(v, FormatBinary|FormatUint32))
	assert.Equal(t, [4]byte{10, 0, 0, 1}, Convert(v, FormatOctets|FormatString|FormatAddr))
	assert.Equal(t, "10.0.0.1", Convert(v, FormatString|FormatUint32))
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "binary", FormatBinary.String())
	assert.Equal(t, "octets", FormatOctets.String())
	assert.Equal(t, "string", FormatString.String())
	assert.Equal(t, "uint32", FormatUint32.String())
	assert.Equal(t, "addr", FormatAddr.String())
	assert.Equal(t, "instance", Format(0).String())
	// 组合标志取最高优先级
	assert.Equal(t, "binary", (FormatBinary | FormatString).String())
}
