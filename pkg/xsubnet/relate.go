package xsubnet

import (
	"fmt"
	"net/netip"

	"github.com/omeyang/xsubnet/pkg/xip"
)

// Coerce 将多态参数转换为 Subnet。
// 接受 Subnet、*Subnet、string、uint32、int、[4]byte、[]byte、[]int、
// [netip.Addr] 与 [netip.Prefix]；其余类型返回 [ErrInvalidType]。
// 字符串与数值输入按构造规则解析（含缺省掩码推导）。
func Coerce(v any) (Subnet, error) {
	switch x := v.(type) {
	case Subnet:
		return x, nil
	case *Subnet:
		if x == nil {
			return Subnet{}, fmt.Errorf("%w: nil *Subnet", ErrInvalidType)
		}
		return *x, nil
	case string:
		return Parse(x)
	case uint32:
		return New(Uint32Spec(x), NoSpec)
	case int:
		if x < 0 || int64(x) > int64(^uint32(0)) {
			return Subnet{}, fmt.Errorf("%w: int %d outside uint32 range", ErrInvalidType, x)
		}
		return New(Uint32Spec(uint32(x)), NoSpec)
	case [4]byte:
		return New(OctetsSpec(int(x[0]), int(x[1]), int(x[2]), int(x[3])), NoSpec)
	case []byte:
		elems := make([]int, len(x))
		for i, c := range x {
			elems[i] = int(c)
		}
		return New(OctetsSpec(elems...), NoSpec)
	case []int:
		return New(OctetsSpec(x...), NoSpec)
	case netip.Addr:
		u, ok := xip.AddrToUint32(x)
		if !ok {
			return Subnet{}, fmt.Errorf("%w: non-IPv4 address %s", ErrInvalidType, x)
		}
		return New(Uint32Spec(u), NoSpec)
	case netip.Prefix:
		return FromPrefix(x)
	default:
		return Subnet{}, fmt.Errorf("%w: %T", ErrInvalidType, v)
	}
}

// ContainsSubnet 报告 s 是否严格包含 o：
// 掩码不同、s 的掩码更宽（s 的每个掩码位都在 o 中置位）、
// 且 o 的网络地址落在 s 内。子网不包含自身。
func (s Subnet) ContainsSubnet(o Subnet) bool {
	if s.mask == o.mask {
		return false
	}
	if s.mask&o.mask != s.mask {
		return false
	}
	return o.base&s.mask == s.base
}

// WithinSubnet 报告 s 是否严格被 o 包含，即 o.ContainsSubnet(s) 的镜像。
func (s Subnet) WithinSubnet(o Subnet) bool { return o.ContainsSubnet(s) }

// EqualSubnet 报告两个子网的基地址与掩码是否逐位相同。
func (s Subnet) EqualSubnet(o Subnet) bool { return s.base == o.base && s.mask == o.mask }

// IntersectsSubnet 报告两个子网是否相交：相等、包含或被包含。
// CIDR 对齐的子网之间不存在部分重叠，嵌套与相等即覆盖全部相交情形。
func (s Subnet) IntersectsSubnet(o Subnet) bool {
	return s.EqualSubnet(o) || s.ContainsSubnet(o) || o.ContainsSubnet(s)
}

// Contains 是 [Subnet.ContainsSubnet] 的多态形式，参数经 [Coerce] 转换。
func (s Subnet) Contains(v any) (bool, error) {
	o, err := Coerce(v)
	if err != nil {
		return false, err
	}
	return s.ContainsSubnet(o), nil
}

// Within 是 [Subnet.WithinSubnet] 的多态形式，参数经 [Coerce] 转换。
func (s Subnet) Within(v any) (bool, error) {
	o, err := Coerce(v)
	if err != nil {
		return false, err
	}
	return s.WithinSubnet(o), nil
}

// Equal 是 [Subnet.EqualSubnet] 的多态形式，参数经 [Coerce] 转换。
func (s Subnet) Equal(v any) (bool, error) {
	o, err := Coerce(v)
	if err != nil {
		return false, err
	}
	return s.EqualSubnet(o), nil
}

// Intersects 是 [Subnet.IntersectsSubnet] 的多态形式，参数经 [Coerce] 转换。
func (s Subnet) Intersects(v any) (bool, error) {
	o, err := Coerce(v)
	if err != nil {
		return false, err
	}
	return s.IntersectsSubnet(o), nil
}
