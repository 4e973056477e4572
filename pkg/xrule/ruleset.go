package xrule

import (
	"fmt"
	"net/netip"

	lru "github.com/hashicorp/golang-lru/v2"
	"go4.org/netipx"

	"github.com/omeyang/xsubnet/pkg/xsubnet"
)

// defaultCacheSize 是 LRU 匹配缓存的默认条目数。
const defaultCacheSize = 1024

// Option 定义 RuleSet 可选配置函数类型。
type Option func(*options)

type options struct {
	cacheSize int
}

// WithCacheSize 设置 LRU 匹配缓存的条目数。
// n ≤ 0 时禁用缓存。默认 1024。
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// RuleSet 是编译后的子网规则集。
// 构建后不可变，可安全跨 goroutine 共享。
type RuleSet struct {
	rules []xsubnet.Subnet
	set   *netipx.IPSet
	cache *lru.Cache[netip.Addr, bool]
}

// New 解析规则并构建 RuleSet。
// 每条规则的语法同 [xsubnet.Parse]；解析失败返回 [ErrInvalidRule]，
// 错误信息包含规则下标。重叠与相邻的范围自动归并。
func New(rules []string, opts ...Option) (*RuleSet, error) {
	subnets := make([]xsubnet.Subnet, len(rules))
	for i, rule := range rules {
		s, err := xsubnet.Parse(rule)
		if err != nil {
			return nil, fmt.Errorf("%w: rule [%d] %q: %w", ErrInvalidRule, i, rule, err)
		}
		subnets[i] = s
	}
	return FromSubnets(subnets, opts...)
}

// FromSubnets 从已构造的子网构建 RuleSet。
func FromSubnets(subnets []xsubnet.Subnet, opts ...Option) (*RuleSet, error) {
	o := options{cacheSize: defaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}

	var b netipx.IPSetBuilder
	for _, s := range subnets {
		b.AddRange(s.ToIPRange())
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build IPSet: %w", err)
	}

	rs := &RuleSet{
		rules: append([]xsubnet.Subnet(nil), subnets...),
		set:   set,
	}
	if o.cacheSize > 0 {
		// lru.New 仅在 size ≤ 0 时报错，此处已排除
		rs.cache, _ = lru.New[netip.Addr, bool](o.cacheSize)
	}
	return rs, nil
}

// Match 报告地址是否命中任一规则。
// IPv4-mapped IPv6 地址统一 Unmap 后匹配；纯 IPv6 与无效地址恒不匹配。
func (r *RuleSet) Match(addr netip.Addr) bool {
	if addr.Is4In6() {
		addr = addr.Unmap()
	}
	if !addr.Is4() {
		return false
	}
	if r.cache != nil {
		if hit, ok := r.cache.Get(addr); ok {
			return hit
		}
	}
	matched := r.set.Contains(addr)
	if r.cache != nil {
		r.cache.Add(addr, matched)
	}
	return matched
}

// MatchString 解析地址字符串后匹配。
// 无法解析的地址返回 [ErrInvalidAddress]。
func (r *RuleSet) MatchString(s string) (bool, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return r.Match(addr), nil
}

// MatchSubnet 报告子网是否整体落在规则集内。
func (r *RuleSet) MatchSubnet(s xsubnet.Subnet) bool {
	return r.set.ContainsRange(s.ToIPRange())
}

// Rules 返回构建时的规则子网副本，保持原始顺序与重复。
func (r *RuleSet) Rules() []xsubnet.Subnet {
	return append([]xsubnet.Subnet(nil), r.rules...)
}

// Ranges 返回归并后的地址范围（已排序、无重叠）。
func (r *RuleSet) Ranges() []netipx.IPRange {
	return r.set.Ranges()
}

// Len 返回构建时的规则条数（归并前）。
func (r *RuleSet) Len() int {
	return len(r.rules)
}
