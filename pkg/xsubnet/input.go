package xsubnet

// specKind 标记 Spec 的输入形式。
type specKind uint8

const (
	specAbsent specKind = iota
	specUint32
	specOctets
	specText
)

// Spec 是地址或掩码的输入描述，封闭联合：缺省、整数、八位段、文本。
// 零值表示缺省（等价于 [NoSpec]）。
type Spec struct {
	kind  specKind
	num   uint32
	elems []int
	text  string
}

// NoSpec 表示缺省输入。
// 地址缺省按 0.0.0.0 处理，掩码缺省按地址八位段数量推导。
var NoSpec Spec

// Uint32Spec 构造整数形式的输入：v 按大端序拆分为 4 个八位段。
func Uint32Spec(v uint32) Spec {
	return Spec{kind: specUint32, num: v}
}

// OctetsSpec 构造八位段形式的输入。
// 最多 4 个元素，不足时尾部补 0；每个元素必须在 0–255 范围内。
func OctetsSpec(elems ...int) Spec {
	return Spec{kind: specOctets, elems: elems}
}

// TextSpec 构造文本形式的输入。
// 地址文本支持 "a.b.c.d[/mask]"；掩码文本支持 CIDR 前缀长度或点分十进制。
func TextSpec(s string) Spec {
	return Spec{kind: specText, text: s}
}
