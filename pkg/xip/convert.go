package xip

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// ValidateOctets 校验整数序列并返回补齐到 4 个元素的八位段数组。
// 这是所有产生八位段数组的转换路径的唯一校验入口：
//   - 超过 4 个元素返回 [ErrLength]
//   - 不足 4 个元素时尾部补 0
//   - 任一元素超出 0–255 返回 [ErrRange]，错误信息包含 1 起始的位置
func ValidateOctets(elems []int) ([4]byte, error) {
	if len(elems) > 4 {
		return [4]byte{}, fmt.Errorf("%w: got %d elements, want at most 4", ErrLength, len(elems))
	}
	var b [4]byte
	for i, e := range elems {
		if e < 0 || e > 255 {
			return [4]byte{}, fmt.Errorf("%w: element %d is %d, want 0-255", ErrRange, i+1, e)
		}
		b[i] = byte(e)
	}
	return b, nil
}

// BinaryToOctets 将原始二进制（最多 4 字节，大端序）转换为八位段数组。
// 输入经由 [ValidateOctets] 校验，不足 4 字节时尾部补 0。
func BinaryToOctets(raw []byte) ([4]byte, error) {
	elems := make([]int, len(raw))
	for i, c := range raw {
		elems[i] = int(c)
	}
	return ValidateOctets(elems)
}

// OctetsToBinary 将八位段数组转换为 4 字节大端序二进制。
func OctetsToBinary(o [4]byte) []byte {
	return []byte{o[0], o[1], o[2], o[3]}
}

// BinaryToUint32 将原始二进制转换为 uint32（网络字节序）。
func BinaryToUint32(raw []byte) (uint32, error) {
	o, err := BinaryToOctets(raw)
	if err != nil {
		return 0, err
	}
	return OctetsToUint32(o), nil
}

// Uint32ToBinary 将 uint32 转换为 4 字节大端序二进制。
func Uint32ToBinary(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// OctetsToUint32 将八位段数组转换为 uint32：(b0<<24)|(b1<<16)|(b2<<8)|b3。
func OctetsToUint32(o [4]byte) uint32 {
	return binary.BigEndian.Uint32(o[:])
}

// Uint32ToOctets 将 uint32 按大端序拆分为八位段数组。
func Uint32ToOctets(v uint32) [4]byte {
	var o [4]byte
	binary.BigEndian.PutUint32(o[:], v)
	return o
}

// OctetsToString 将八位段数组格式化为点分十进制字符串。
func OctetsToString(o [4]byte) string {
	var b strings.Builder
	b.Grow(15) // "xxx.xxx.xxx.xxx"
	for i, c := range o {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(int(c)))
	}
	return b.String()
}

// Uint32ToString 将 uint32 格式化为点分十进制字符串。
func Uint32ToString(v uint32) string {
	return OctetsToString(Uint32ToOctets(v))
}

// StringToOctets 将点分十进制字符串解析为八位段数组。
// 八位段之间的空白会被忽略；不足 4 段时尾部补 0（如 "192.168" → 192.168.0.0）。
// 非数字或越界的八位段返回 [ErrRange]，超过 4 段返回 [ErrLength]。
func StringToOctets(s string) ([4]byte, error) {
	parts := strings.Split(s, ".")
	elems := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return [4]byte{}, fmt.Errorf("%w: element %d %q is not a number", ErrRange, i+1, p)
		}
		elems[i] = n
	}
	return ValidateOctets(elems)
}

// AddrFromUint32 从 IPv4 的 uint32 表示创建 [netip.Addr]。
// 使用网络字节序（大端）。
func AddrFromUint32(v uint32) netip.Addr {
	return netip.AddrFrom4(Uint32ToOctets(v))
}

// AddrToUint32 将 IPv4 地址转换为 uint32（网络字节序）。
// 非 IPv4 地址返回 (0, false)。IPv4-mapped IPv6 地址视为 IPv4。
func AddrToUint32(addr netip.Addr) (uint32, bool) {
	if !addr.Is4() && !addr.Is4In6() {
		return 0, false
	}
	b := addr.Unmap().As4()
	return binary.BigEndian.Uint32(b[:]), true
}
