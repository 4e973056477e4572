package xsubnet

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPrefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain v4", input: "192.168.1.0/24", want: "192.168.1.0/24"},
		{name: "unmasked base normalized", input: "192.168.1.77/24", want: "192.168.1.0/24"},
		{name: "host prefix", input: "8.8.8.8/32", want: "8.8.8.8"},
		{name: "mapped /120 becomes /24", input: "::ffff:192.168.1.0/120", want: "192.168.1.0/24"},
		{name: "mapped /128 becomes /32", input: "::ffff:10.0.0.1/128", want: "10.0.0.1"},
		{name: "mapped narrower than 96 rejected", input: "::ffff:10.0.0.0/64", errIs: ErrInvalidType},
		{name: "pure v6 rejected", input: "2001:db8::/32", errIs: ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := FromPrefix(netip.MustParsePrefix(tt.input))
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.String())
		})
	}
}

func TestFromPrefixInvalid(t *testing.T) {
	_, err := FromPrefix(netip.Prefix{})
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestToPrefixRoundTrip(t *testing.T) {
	for _, input := range []string{"10.0.0.0/8", "192.168.1.0/24", "0.0.0.0/0", "8.8.8.8/32"} {
		s := MustParse(input)
		p := s.ToPrefix()
		back, err := FromPrefix(p)
		require.NoError(t, err)
		assert.Equal(t, s, back, "input %q", input)
	}
}

func TestToIPRange(t *testing.T) {
	r := MustParse("192.168.1.0/24").ToIPRange()
	assert.Equal(t, "192.168.1.0", r.From().String())
	assert.Equal(t, "192.168.1.255", r.To().String())

	r = MustParse("10.0.0.1/32").ToIPRange()
	assert.Equal(t, r.From(), r.To())
}

func TestContainsAddr(t *testing.T) {
	s := MustParse("192.168.1.0/24")

	assert.True(t, s.ContainsAddr(netip.MustParseAddr("192.168.1.0")))
	assert.True(t, s.ContainsAddr(netip.MustParseAddr("192.168.1.255")))
	assert.True(t, s.ContainsAddr(netip.MustParseAddr("::ffff:192.168.1.100")))
	assert.False(t, s.ContainsAddr(netip.MustParseAddr("192.168.2.0")))
	assert.False(t, s.ContainsAddr(netip.MustParseAddr("2001:db8::1")))
	assert.False(t, s.ContainsAddr(netip.Addr{}))
}
