package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xsubnet/pkg/xip"
	"github.com/omeyang/xsubnet/pkg/xrule"
	"github.com/omeyang/xsubnet/pkg/xsubnet"
)

// exitError 表示需要非零退出码但错误详情已输出完毕的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示命令参数错误，由 run() 映射为退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// isCLIUsageError 判断错误是否来自 CLI 框架的参数解析
// （未知 flag、未知命令等），这类错误框架已自行输出提示。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "No help topic for") ||
		strings.Contains(msg, "unknown command")
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createValidateCommand(),
		createExpandCommand(),
		createRelateCommand(),
		createMatchCommand(),
	}
}

func createValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "解析并规范化子网，打印 CIDR、点分掩码与主机数",
		ArgsUsage: "<subnet>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return &usageError{msg: "validate 命令需要至少一个子网参数"}
			}
			return cmdValidate(args, os.Stdout, os.Stderr)
		},
	}
}

func createExpandCommand() *cli.Command {
	return &cli.Command{
		Name:      "expand",
		Usage:     "按地址升序枚举子网内的主机",
		ArgsUsage: "<subnet>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "network",
				Usage: "包含网络地址（仅前缀 ≤ /30 时有意义）",
			},
			&cli.BoolFlag{
				Name:  "broadcast",
				Usage: "包含广播地址（仅前缀 ≤ /30 时有意义）",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "最多输出的地址数量（0 表示不限制）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return &usageError{msg: "expand 命令需要且仅需要一个子网参数"}
			}
			return cmdExpand(args[0], cmd.Bool("network"), cmd.Bool("broadcast"), cmd.Int("limit"), os.Stdout)
		},
	}
}

func createRelateCommand() *cli.Command {
	return &cli.Command{
		Name:      "relate",
		Usage:     "判断两个子网的集合关系（equal/contains/within/disjoint）",
		ArgsUsage: "<a> <b>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 2 {
				return &usageError{msg: "relate 命令需要且仅需要两个子网参数"}
			}
			return cmdRelate(args[0], args[1], os.Stdout)
		},
	}
}

func createMatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "match",
		Usage:     "按规则文件匹配地址，全部命中时退出码为 0",
		ArgsUsage: "<addr>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "rules",
				Usage: "规则文件路径（YAML 或 JSON，按扩展名检测）",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			rulesPath := cmd.String("rules")
			if rulesPath == "" {
				return &usageError{msg: "match 命令需要通过 --rules 指定规则文件"}
			}
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return &usageError{msg: "match 命令需要至少一个地址参数"}
			}
			return cmdMatch(rulesPath, args, os.Stdout, os.Stderr)
		},
	}
}

// cmdValidate 逐个解析子网并输出规范形式。
// 任一参数解析失败时继续处理剩余参数，最终返回退出码 1。
func cmdValidate(args []string, out, errOut io.Writer) error {
	failed := false
	for _, arg := range args {
		s, err := xsubnet.Parse(arg)
		if err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", arg, err)
			failed = true
			continue
		}
		fmt.Fprintf(out, "%s\tnetwork=%s\tbroadcast=%s\tmask=%s\thosts=%d\n",
			s.String(),
			xip.Uint32ToString(s.NetworkUint32()),
			xip.Uint32ToString(s.BroadcastUint32()),
			xip.Uint32ToString(s.MaskUint32()),
			s.HostCount())
	}
	if failed {
		return &exitError{code: 1}
	}
	return nil
}

// cmdExpand 枚举子网内的主机地址。
func cmdExpand(arg string, withNetwork, withBroadcast bool, limit int, out io.Writer) error {
	s, err := xsubnet.Parse(arg)
	if err != nil {
		return fmt.Errorf("解析子网失败: %w", err)
	}

	var mode xsubnet.HostMode
	if withNetwork {
		mode |= xsubnet.WithNetwork
	}
	if withBroadcast {
		mode |= xsubnet.WithBroadcast
	}

	count := 0
	for host := range s.Hosts(mode) {
		if limit > 0 && count >= limit {
			break
		}
		fmt.Fprintln(out, host.String())
		count++
	}
	return nil
}

// cmdRelate 输出两个子网的集合关系关键字。
func cmdRelate(aArg, bArg string, out io.Writer) error {
	a, err := xsubnet.Parse(aArg)
	if err != nil {
		return fmt.Errorf("解析子网 %q 失败: %w", aArg, err)
	}
	b, err := xsubnet.Parse(bArg)
	if err != nil {
		return fmt.Errorf("解析子网 %q 失败: %w", bArg, err)
	}

	fmt.Fprintln(out, relationKeyword(a, b))
	return nil
}

// relationKeyword 返回 a 相对 b 的集合关系关键字。
func relationKeyword(a, b xsubnet.Subnet) string {
	switch {
	case a.EqualSubnet(b):
		return "equal"
	case a.ContainsSubnet(b):
		return "contains"
	case a.WithinSubnet(b):
		return "within"
	default:
		return "disjoint"
	}
}

// cmdMatch 按规则文件匹配地址。
// 所有地址都命中规则时返回 nil；存在未命中或无效地址时返回退出码 1。
func cmdMatch(rulesPath string, addrs []string, out, errOut io.Writer) error {
	rs, err := xrule.LoadFile(rulesPath)
	if err != nil {
		return fmt.Errorf("加载规则文件失败: %w", err)
	}

	allMatched := true
	for _, addr := range addrs {
		matched, err := rs.MatchString(addr)
		if err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", addr, err)
			allMatched = false
			continue
		}
		if matched {
			fmt.Fprintf(out, "%s: matched\n", addr)
		} else {
			fmt.Fprintf(out, "%s: unmatched\n", addr)
			allMatched = false
		}
	}
	if !allMatched {
		return &exitError{code: 1}
	}
	return nil
}
