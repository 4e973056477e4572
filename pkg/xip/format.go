package xip

// Format 是输出格式选择器，位标志可组合。
// [Convert] 按声明顺序检查标志，多个标志同时设置时取第一个匹配。
type Format uint8

const (
	// FormatBinary 输出 4 字节大端序 []byte。
	FormatBinary Format = 1 << iota
	// FormatOctets 输出八位段数组 [4]byte。
	FormatOctets
	// FormatString 输出点分十进制字符串。
	FormatString
	// FormatUint32 输出 uint32。
	FormatUint32
	// FormatAddr 输出 [netip.Addr] 实例。
	FormatAddr
)

// String 返回格式选择器的可读表示（取最高优先级的标志）。
func (f Format) String() string {
	switch {
	case f&FormatBinary != 0:
		return "binary"
	case f&FormatOctets != 0:
		return "octets"
	case f&FormatString != 0:
		return "string"
	case f&FormatUint32 != 0:
		return "uint32"
	case f&FormatAddr != 0:
		return "addr"
	default:
		return "instance"
	}
}

// Convert 将 32 位地址值转换为 f 指定的表示。
// 标志按 binary → octets → string → uint32 的优先级检查，
// 无显式标志（含 [FormatAddr]）时返回 [netip.Addr] 实例。
//
// 返回值的动态类型依次为 []byte、[4]byte、string、uint32、[netip.Addr]。
func Convert(v uint32, f Format) any {
	switch {
	case f&FormatBinary != 0:
		return Uint32ToBinary(v)
	case f&FormatOctets != 0:
		return Uint32ToOctets(v)
	case f&FormatString != 0:
		return Uint32ToString(v)
	case f&FormatUint32 != 0:
		return v
	default:
		return AddrFromUint32(v)
	}
}
