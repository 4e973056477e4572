package xsubnet

import (
	"errors"

	"github.com/omeyang/xsubnet/pkg/xip"
)

var (
	// ErrEmptyInput 表示 "/" 分隔符之前的地址部分为空（如 "/24"）。
	ErrEmptyInput = errors.New("xsubnet: empty address part")

	// ErrSyntax 表示地址字符串包含多于一个 "/" 分隔符。
	ErrSyntax = errors.New("xsubnet: malformed address string")

	// ErrFormat 表示掩码字符串既不是单个 CIDR 前缀长度也不是完整点分十进制。
	ErrFormat = errors.New("xsubnet: mask must be a CIDR prefix length or full dotted-decimal")

	// ErrContiguity 表示掩码置位不是从最高位开始连续。
	ErrContiguity = errors.New("xsubnet: mask bits are not contiguous from the most significant bit")

	// ErrInvalidType 表示地址、掩码或比较参数的类型不受支持。
	ErrInvalidType = errors.New("xsubnet: unsupported input type")

	// ErrLength 与 xip.ErrLength 共享同一错误值：八位段数量超过 4 个。
	ErrLength = xip.ErrLength

	// ErrRange 与 xip.ErrRange 共享同一错误值：八位段或 CIDR 前缀越界。
	ErrRange = xip.ErrRange
)
