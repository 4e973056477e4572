package xip

import "errors"

var (
	// ErrLength 表示八位段数量超过 4 个。
	ErrLength = errors.New("xip: too many octets")

	// ErrRange 表示某个八位段超出 0–255 范围。
	ErrRange = errors.New("xip: octet out of range")
)
