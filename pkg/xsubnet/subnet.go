package xsubnet

import (
	"math/bits"
	"strconv"

	"github.com/omeyang/xsubnet/pkg/xip"
)

// hostMask 是单主机（/32）掩码。
const hostMask = ^uint32(0)

// explicitFormats 是 xip 的全部显式格式标志；
// 选择器不含任何显式标志时落入本包的实例默认输出。
const explicitFormats = xip.FormatBinary | xip.FormatOctets | xip.FormatString | xip.FormatUint32 | xip.FormatAddr

// Subnet 是不可变的 IPv4 子网值：基地址加连续掩码。
// 构造后恒有 base & mask == base。零值为 0.0.0.0/0（默认路由）。
// 值类型，可比较，可作 map key，可安全跨 goroutine 共享。
type Subnet struct {
	base uint32
	mask uint32
}

// NetworkUint32 返回网络地址（即基地址）的 uint32 表示。
func (s Subnet) NetworkUint32() uint32 { return s.base }

// BroadcastUint32 返回广播地址的 uint32 表示：base | ^mask。
func (s Subnet) BroadcastUint32() uint32 { return s.base | ^s.mask }

// MaskUint32 返回掩码的 uint32 表示。
func (s Subnet) MaskUint32() uint32 { return s.mask }

// Prefix 返回 CIDR 前缀长度：掩码剥离尾部 0 位后剩余的位数。
func (s Subnet) Prefix() int { return 32 - bits.TrailingZeros32(s.mask) }

// IsHost 报告子网是否只含一个地址（/32）。
func (s Subnet) IsHost() bool { return s.mask == hostMask }

// Network 返回网络地址，输出格式由 f 决定。
// 无显式格式标志时返回包裹该单地址的 Subnet 实例。
func (s Subnet) Network(f xip.Format) any { return s.convert(s.base, f) }

// Broadcast 返回广播地址，输出格式由 f 决定。
// 无显式格式标志时返回包裹该单地址的 Subnet 实例。
func (s Subnet) Broadcast(f xip.Format) any { return s.convert(s.BroadcastUint32(), f) }

// Mask 返回掩码，输出格式由 f 决定。
// 与地址查询不同，掩码的默认输出是点分十进制字符串。
func (s Subnet) Mask(f xip.Format) any {
	if f&explicitFormats == 0 {
		return xip.Uint32ToString(s.mask)
	}
	return xip.Convert(s.mask, f)
}

// convert 将 32 位地址值转换为 f 指定的表示，
// 实例默认输出为单主机 Subnet（区别于 xip 层的 netip.Addr 默认）。
func (s Subnet) convert(v uint32, f xip.Format) any {
	if f&explicitFormats == 0 {
		return Subnet{base: v, mask: hostMask}
	}
	return xip.Convert(v, f)
}

// HostCount 返回可用主机地址数量。
// /31 和 /32 没有保留的网络/广播对（掩码低两位不全为 0），
// 范围内所有地址都计为主机；其余前缀排除网络地址和广播地址。
func (s Subnet) HostCount() uint64 {
	diff := uint64(s.BroadcastUint32() - s.base)
	if diff > 2 {
		return diff - 1
	}
	return diff + 1
}

// String 返回 CIDR 形式的文本渲染："addr/prefix"。
// 单主机子网只渲染裸地址，无掩码后缀。
func (s Subnet) String() string {
	addr := xip.Uint32ToString(s.base)
	if s.mask == hostMask {
		return addr
	}
	return addr + "/" + strconv.Itoa(s.Prefix())
}

// StringMask 返回点分掩码形式的文本渲染："addr/m.m.m.m"。
// 单主机子网只渲染裸地址，无掩码后缀。
func (s Subnet) StringMask() string {
	addr := xip.Uint32ToString(s.base)
	if s.mask == hostMask {
		return addr
	}
	return addr + "/" + xip.Uint32ToString(s.mask)
}
