package xrule

import "errors"

var (
	// ErrInvalidRule 表示某条规则无法解析为合法子网。
	ErrInvalidRule = errors.New("xrule: invalid subnet rule")

	// ErrInvalidAddress 表示待匹配的地址字符串无法解析。
	ErrInvalidAddress = errors.New("xrule: invalid IP address")

	// ErrUnsupportedFormat 表示规则文件格式不受支持（仅支持 yaml/json）。
	ErrUnsupportedFormat = errors.New("xrule: unsupported rules format")

	// ErrNoRules 表示规则文件中没有任何规则。
	ErrNoRules = errors.New("xrule: no rules defined")
)
