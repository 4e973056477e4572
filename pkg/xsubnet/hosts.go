package xsubnet

import (
	"iter"

	"github.com/omeyang/xsubnet/pkg/xip"
)

// HostMode 是主机枚举的标志位。
type HostMode uint8

const (
	// WithNetwork 请求在枚举结果中包含网络地址。
	// 仅当子网实际保留网络地址（前缀 ≤ /30）时生效。
	WithNetwork HostMode = 1 << iota
	// WithBroadcast 请求在枚举结果中包含广播地址。
	// 仅当子网实际保留广播地址（前缀 ≤ /30）时生效。
	WithBroadcast
)

// reservesEndpoints 报告子网是否保留独立的网络/广播地址对。
// 掩码低两位有任何置位（/31、/32）时不保留。
func (s Subnet) reservesEndpoints() bool { return s.mask&0b11 == 0 }

// Hosts 按地址升序惰性枚举子网内的主机，产出单主机 Subnet。
// 序列有限、可重启（每次 range 从头开始）。
// 前缀 ≤ /30 时默认跳过网络地址和广播地址，
// 可用 [WithNetwork] / [WithBroadcast] 请求包含；
// /31 和 /32 的所有地址都是主机，标志位无效果。
func (s Subnet) Hosts(mode HostMode) iter.Seq[Subnet] {
	return func(yield func(Subnet) bool) {
		network := s.base
		broadcast := s.BroadcastUint32()
		skipEnds := s.reservesEndpoints()
		// 续行条件是包含性测试而非固定计数，对 /31 和 /32 自然退化；
		// 在广播地址处显式终止，避免 uint32 回绕。
		for c := network; c&s.mask == network; c++ {
			switch {
			case skipEnds && c == network && mode&WithNetwork == 0:
			case skipEnds && c == broadcast && mode&WithBroadcast == 0:
			default:
				if !yield(Subnet{base: c, mask: hostMask}) {
					return
				}
			}
			if c == broadcast {
				return
			}
		}
	}
}

// HostsAs 枚举主机并以 f 指定的格式收集结果。
// 无显式格式标志时元素为单主机 Subnet。
func (s Subnet) HostsAs(f xip.Format, mode HostMode) []any {
	out := make([]any, 0, s.HostCount())
	for h := range s.Hosts(mode) {
		out = append(out, s.convert(h.base, f))
	}
	return out
}

// HostAt 按索引查找主机：索引 0 对应第一个真实主机
// （子网保留网络地址时从 network+1 起算）。
// 越界或负索引返回 (Subnet{}, false)，不产生错误。
func (s Subnet) HostAt(i int) (Subnet, bool) {
	if i < 0 || uint64(i) >= s.HostCount() {
		return Subnet{}, false
	}
	off := uint32(i)
	if s.reservesEndpoints() {
		off++
	}
	return Subnet{base: s.base + off, mask: hostMask}, true
}

// HostByName 解析哨兵键 "network" 和 "broadcast"，
// 与前缀长度无关，始终可解析；未知键返回 (Subnet{}, false)。
func (s Subnet) HostByName(name string) (Subnet, bool) {
	switch name {
	case "network":
		return Subnet{base: s.base, mask: hostMask}, true
	case "broadcast":
		return Subnet{base: s.BroadcastUint32(), mask: hostMask}, true
	default:
		return Subnet{}, false
	}
}
