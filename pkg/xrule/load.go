package xrule

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// rulesKey 是规则文件中规则列表的配置键。
const rulesKey = "rules"

// LoadBytes 从 YAML 或 JSON 字节数据加载规则集。
// format 取 "yaml"/"yml" 或 "json"；数据需包含 "rules" 字符串列表。
func LoadBytes(data []byte, format string, opts ...Option) (*RuleSet, error) {
	var parser koanf.Parser
	switch strings.ToLower(format) {
	case "yaml", "yml":
		parser = kyaml.Parser()
	case "json":
		parser = kjson.Parser()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("parse rules data: %w", err)
	}

	rules := k.Strings(rulesKey)
	if len(rules) == 0 {
		return nil, ErrNoRules
	}
	return New(rules, opts...)
}

// LoadFile 从规则文件加载规则集，按扩展名检测格式
// （.yaml/.yml → YAML，.json → JSON）。
func LoadFile(path string, opts ...Option) (*RuleSet, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return nil, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return LoadBytes(data, ext, opts...)
}
