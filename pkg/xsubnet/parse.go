package xsubnet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/omeyang/xsubnet/pkg/xip"
)

// New 从地址与掩码描述构造 Subnet。
// 两个参数各自独立多态（见 [Spec]）；显式掩码参数优先于
// 地址字符串中 "/" 后缀携带的掩码。
// 构造时即完成规范化：base = addr & mask。
func New(addr, mask Spec) (Subnet, error) {
	addrOct, implied, err := parseAddr(addr)
	if err != nil {
		return Subnet{}, err
	}
	if mask.kind == specAbsent {
		mask = implied
	}
	maskOct, err := parseMask(mask)
	if err != nil {
		return Subnet{}, err
	}
	m := xip.OctetsToUint32(maskOct)
	if err := checkContiguous(m); err != nil {
		return Subnet{}, err
	}
	a := xip.OctetsToUint32(addrOct)
	return Subnet{base: a & m, mask: m}, nil
}

// Parse 从字符串构造 Subnet，等价于 New(TextSpec(s), NoSpec)。
// 支持 "a.b.c.d"、"a.b.c.d/prefix"、"a.b.c.d/m.m.m.m"，
// 以及部分地址简写（"192.168" → 192.168.0.0/16）。
func Parse(s string) (Subnet, error) {
	return New(TextSpec(s), NoSpec)
}

// MustParse 与 [Parse] 相同，解析失败时 panic。
// 用于常量子网的初始化。
func MustParse(s string) Subnet {
	sn, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sn
}

// parseAddr 将地址描述规范化为 4 个八位段，并返回掩码缺省时使用的
// 推导掩码描述：每提供一个八位段对应一个 255（空输入 → 0.0.0.0，默认路由）。
func parseAddr(sp Spec) ([4]byte, Spec, error) {
	switch sp.kind {
	case specAbsent:
		return [4]byte{}, impliedMask(0), nil
	case specUint32:
		return xip.Uint32ToOctets(sp.num), impliedMask(4), nil
	case specOctets:
		oct, err := xip.ValidateOctets(sp.elems)
		if err != nil {
			return [4]byte{}, NoSpec, err
		}
		return oct, impliedMask(len(sp.elems)), nil
	case specText:
		return parseAddrText(sp.text)
	default:
		return [4]byte{}, NoSpec, fmt.Errorf("%w: spec kind %d", ErrInvalidType, sp.kind)
	}
}

// parseAddrText 解析文本形式的地址。
// 空白字符串等价于缺省输入；"/" 分隔符至多一个，两侧空白被忽略。
func parseAddrText(s string) ([4]byte, Spec, error) {
	if strings.TrimSpace(s) == "" {
		return [4]byte{}, impliedMask(0), nil
	}

	parts := strings.Split(s, "/")
	if len(parts) > 2 {
		return [4]byte{}, NoSpec, fmt.Errorf("%w: more than one %q in %q", ErrSyntax, "/", s)
	}
	addrPart := strings.TrimSpace(parts[0])
	if addrPart == "" {
		return [4]byte{}, NoSpec, fmt.Errorf("%w: %q", ErrEmptyInput, s)
	}

	oct, err := xip.StringToOctets(addrPart)
	if err != nil {
		return [4]byte{}, NoSpec, err
	}

	if len(parts) == 2 {
		return oct, TextSpec(strings.TrimSpace(parts[1])), nil
	}
	return oct, impliedMask(strings.Count(addrPart, ".") + 1), nil
}

// impliedMask 返回按八位段数量推导的掩码描述：前 n 段为 255，其余为 0。
func impliedMask(n int) Spec {
	elems := make([]int, n)
	for i := range elems {
		elems[i] = 255
	}
	return OctetsSpec(elems...)
}

// parseMask 将掩码描述规范化为 4 个八位段。
// 文本形式必须是单个 CIDR 前缀长度（0–32）或完整的 4 段点分十进制。
func parseMask(sp Spec) ([4]byte, error) {
	switch sp.kind {
	case specAbsent:
		return [4]byte{255, 255, 255, 255}, nil
	case specUint32:
		return xip.Uint32ToOctets(sp.num), nil
	case specOctets:
		return xip.ValidateOctets(sp.elems)
	case specText:
		return parseMaskText(sp.text)
	default:
		return [4]byte{}, fmt.Errorf("%w: spec kind %d", ErrInvalidType, sp.kind)
	}
}

func parseMaskText(s string) ([4]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return [4]byte{255, 255, 255, 255}, nil
	}

	toks := strings.Split(s, ".")
	switch len(toks) {
	case 1:
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 || n > 32 {
			return [4]byte{}, fmt.Errorf("%w: CIDR prefix %q outside 0-32", ErrRange, s)
		}
		if n == 0 {
			// 0 特判，不走移位路径
			return [4]byte{}, nil
		}
		return xip.Uint32ToOctets(^uint32(0) << (32 - n)), nil
	case 4:
		elems := make([]int, 4)
		for i, tk := range toks {
			v, err := strconv.Atoi(strings.TrimSpace(tk))
			if err != nil {
				return [4]byte{}, fmt.Errorf("%w: element %d %q is not a number", ErrRange, i+1, tk)
			}
			elems[i] = v
		}
		return xip.ValidateOctets(elems)
	default:
		return [4]byte{}, fmt.Errorf("%w: %q has %d dot-separated parts, want 1 or 4", ErrFormat, s, len(toks))
	}
}

// checkContiguous 校验掩码置位从最高位开始连续（前缀全 1 后缀全 0）。
func checkContiguous(m uint32) error {
	inverted := ^m
	if inverted&(inverted+1) != 0 {
		return fmt.Errorf("%w: %s", ErrContiguity, xip.Uint32ToString(m))
	}
	return nil
}
