// Package xip 提供 IPv4 地址的表示转换工具。
//
// 同一个 32 位 IPv4 地址有五种等价表示：
//
//   - 原始二进制: 4 字节大端序 []byte
//   - 八位段数组: [4]byte，每段 0–255
//   - 点分十进制: "192.168.1.1"
//   - 无符号整数: uint32（网络字节序）
//   - 地址值: [netip.Addr]（标准库值类型）
//
// xip 提供上述表示之间的双向转换，全部为纯函数，无状态、无 I/O。
// 上层的 xsubnet 包在此基础上增加 Subnet 实体表示。
//
// # 校验入口
//
// [ValidateOctets] 是所有产生八位段数组的转换路径的唯一校验入口：
//
//   - 最多 4 个元素，超出返回 [ErrLength]
//   - 不足 4 个元素时尾部补 0
//   - 任一元素超出 0–255 返回 [ErrRange]，错误信息包含 1 起始的位置
//
// 任何转换路径都不会绕过该校验。
//
// # 格式分发
//
// [Convert] 按固定优先级检查 [Format] 位标志
// （binary → octets → string → uint32），多个标志同时设置时取第一个匹配，
// 无显式标志时默认返回 [netip.Addr] 实例。
//
// # 字节序
//
// 所有二进制/整数转换均使用网络字节序（大端），不存在字节序歧义：
//
//	(b0<<24) | (b1<<16) | (b2<<8) | b3
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xip.ValidateOctets([]int{1, 2, 300, 4})
//	if errors.Is(err, xip.ErrRange) {
//	    // 八位段越界
//	}
package xip
