package xsubnet

import (
	"fmt"
	"net/netip"
	"strconv"

	"go4.org/netipx"

	"github.com/omeyang/xsubnet/pkg/xip"
)

// FromPrefix 从 [netip.Prefix] 构造 Subnet。
// IPv4-mapped IPv6 前缀在 bits ≥ 96 时转换为纯 IPv4（bits − 96），
// 否则返回 [ErrInvalidType]；纯 IPv6 前缀同样拒绝。
func FromPrefix(p netip.Prefix) (Subnet, error) {
	if !p.IsValid() {
		return Subnet{}, fmt.Errorf("%w: invalid prefix", ErrInvalidType)
	}
	addr, n := p.Addr(), p.Bits()
	if addr.Is4In6() {
		if n < 96 {
			return Subnet{}, fmt.Errorf("%w: IPv4-mapped prefix %s narrower than /96", ErrInvalidType, p)
		}
		addr, n = addr.Unmap(), n-96
	}
	u, ok := xip.AddrToUint32(addr)
	if !ok {
		return Subnet{}, fmt.Errorf("%w: non-IPv4 prefix %s", ErrInvalidType, p)
	}
	return New(Uint32Spec(u), TextSpec(strconv.Itoa(n)))
}

// ToPrefix 将子网转换为 [netip.Prefix]。
func (s Subnet) ToPrefix() netip.Prefix {
	return netip.PrefixFrom(xip.AddrFromUint32(s.base), s.Prefix())
}

// ToIPRange 将子网转换为 [netipx.IPRange]：网络地址到广播地址。
func (s Subnet) ToIPRange() netipx.IPRange {
	return netipx.IPRangeFrom(
		xip.AddrFromUint32(s.base),
		xip.AddrFromUint32(s.BroadcastUint32()),
	)
}

// ContainsAddr 报告单个地址是否落在子网内。
// 非 IPv4 地址返回 false。IPv4-mapped IPv6 地址视为 IPv4。
func (s Subnet) ContainsAddr(a netip.Addr) bool {
	u, ok := xip.AddrToUint32(a)
	return ok && u&s.mask == s.base
}
