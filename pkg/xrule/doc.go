// Package xrule 提供基于子网规则的地址匹配器。
//
// [RuleSet] 将一组子网规则（CIDR、点分掩码或裸地址，语法同 xsubnet.Parse）
// 编译为 [*netipx.IPSet]，提供 O(log n) 的地址匹配，
// 并用 LRU 缓存加速重复查询。典型用途是访问控制白名单/黑名单。
//
// # 快速示例
//
// 从规则列表构建并匹配：
//
//	rs, _ := xrule.New([]string{
//	    "10.0.0.0/8",
//	    "192.168.0.0/255.255.0.0",
//	    "8.8.8.8",
//	})
//	rs.Match(netip.MustParseAddr("10.1.2.3"))  // true
//	rs.Match(netip.MustParseAddr("1.1.1.1"))   // false
//
// 从 YAML/JSON 规则文件加载：
//
//	rs, _ := xrule.LoadFile("rules.yaml")
//
// 规则文件格式：
//
//	rules:
//	  - 10.0.0.0/8
//	  - 192.168.1.0/24
//
// # 设计决策
//
//   - 规则在构建时一次性解析并合并为 [*netipx.IPSet]，
//     重叠与相邻的范围自动归并，匹配无需遍历规则
//   - 构建后 RuleSet 不可变（缓存内部同步），可安全跨 goroutine 共享
//   - LRU 缓存默认 1024 条，[WithCacheSize] 可调整或禁用（n ≤ 0）
//   - 缓存无 TTL：规则集不可变，匹配结果永不失效
//   - IPv4-mapped IPv6 地址统一 Unmap 后匹配，纯 IPv6 地址恒不匹配
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xrule.New([]string{"10.0.0.0/33"})
//	if errors.Is(err, xrule.ErrInvalidRule) {
//	    // 规则解析失败，错误信息包含规则下标
//	}
package xrule
