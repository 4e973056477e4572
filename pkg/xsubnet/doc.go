// Package xsubnet 提供不可变的 IPv4 子网值类型。
//
// [Subnet] 由基地址和掩码两个 32 位值组成，构造时即完成规范化
// （base = addr & mask），此后不可变，可安全跨 goroutine 共享。
// 所有表示转换委托给底层的 xip 包。
//
// # 核心功能
//
//   - input.go: 封闭输入联合 [Spec]（缺省/整数/八位段/文本）
//   - parse.go: 地址与掩码解析、掩码连续性校验
//   - subnet.go: 网络地址/广播地址/掩码查询、主机数、文本渲染
//   - hosts.go: 主机枚举（惰性序列）、索引查找、哨兵查找
//   - relate.go: 包含/被包含/相等/相交关系判断
//   - netip.go: 与 [netip.Prefix] / [netipx.IPRange] 互转
//
// # 快速示例
//
// 解析与查询：
//
//	s, _ := xsubnet.Parse("192.168.1.0/24")
//	fmt.Println(s.String())      // 192.168.1.0/24
//	fmt.Println(s.HostCount())   // 254
//	fmt.Println(s.Mask(0))       // 255.255.255.0
//
// 枚举主机（惰性、可重启、有限）：
//
//	for h := range s.Hosts(0) {
//	    fmt.Println(h) // 192.168.1.1, 192.168.1.2, ...
//	}
//
// 关系判断：
//
//	a := xsubnet.MustParse("10.0.0.0/24")
//	ok, _ := a.Contains("10.0.0.0/25") // true
//
// # 输入形式
//
// 地址与掩码各自独立接受四种输入形式（封闭联合 [Spec]）：
//
//   - 缺省（[NoSpec]）：地址按 0.0.0.0 处理，掩码按地址八位段数量推导
//   - 整数（[Uint32Spec]）：按大端序拆分为 4 个八位段
//   - 八位段（[OctetsSpec]）：经 xip.ValidateOctets 校验，尾部补 0
//   - 文本（[TextSpec]）：地址支持 "a.b.c.d[/mask]"，部分地址右侧补 0；
//     掩码支持 CIDR 前缀长度（"24"）或完整点分十进制（"255.255.255.0"）
//
// 显式掩码参数优先于地址字符串中 "/" 后缀携带的掩码。
//
// # 缺省掩码推导
//
// 掩码缺省时按地址提供的八位段数量推导：每提供一个八位段对应一个 255。
//
//	"192.168.1.1" → /32
//	"192.168"     → /16
//	""            → 0.0.0.0/0（默认路由）
//
// # 掩码连续性
//
// 掩码的置位必须从最高位开始连续（等价于某个 0–32 的 CIDR 前缀长度），
// 这是掩码的唯一语义约束。非连续掩码（如 "255.0.255.0"）返回 [ErrContiguity]。
// 校验使用位技巧：inverted & (inverted+1) != 0。
//
// # 主机枚举
//
// [Subnet.Hosts] 返回 [iter.Seq]，按地址升序产出单主机 Subnet。
// 前缀 ≤ /30 的子网默认排除网络地址和广播地址，
// 可用 [WithNetwork] / [WithBroadcast] 标志请求包含；
// /31 和 /32 没有保留的网络/广播对，所有地址都是主机。
// 循环以包含性测试 (candidate & mask) == network 为续行条件，
// 对 /31 和 /32 自然退化。
//
// [Subnet.HostAt] 按索引查找：索引 0 对应第一个真实主机
// （存在保留网络地址时偏移 1），越界返回 (Subnet{}, false) 而非错误。
// [Subnet.HostByName] 识别 "network" 和 "broadcast" 两个哨兵键，
// 与前缀长度无关，始终可解析。
//
// # 关系判断
//
// [Subnet.Contains] 是严格超集判断：掩码不同、本子网掩码更宽、
// 且对方网络地址落在本子网内。子网不包含自身（用 [Subnet.Equal] 判断相等）。
// [Subnet.Intersects] 等价于 equal ∨ contains ∨ within——
// 合法的 CIDR 对齐子网之间不存在部分重叠，嵌套与相等即覆盖全部相交情形。
//
// 关系方法接受多态参数（Subnet/string/整数/字节序列等），
// 经 [Coerce] 统一转换，不支持的类型返回 [ErrInvalidType]。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xsubnet.Parse("10.0.0.0/33")
//	if errors.Is(err, xsubnet.ErrRange) {
//	    // CIDR 前缀越界
//	}
//
// [ErrLength] 和 [ErrRange] 与 xip 包共享同一错误值，
// 跨包的 errors.Is 判断均成立。
package xsubnet
