// xsubnetctl 是 IPv4 子网计算与规则匹配的命令行工具。
//
// 用法:
//
//	xsubnetctl <命令> [命令参数]
//
// 命令:
//
//	validate <subnet>...             解析并规范化子网，打印 CIDR、点分掩码与主机数
//	expand <subnet>                  按地址升序枚举子网内的主机
//	  --network                      包含网络地址（前缀 ≤ /30 时有效）
//	  --broadcast                    包含广播地址（前缀 ≤ /30 时有效）
//	  --limit <n>                    最多输出 n 个地址（0 表示不限制）
//	relate <a> <b>                   判断两个子网的集合关系
//	match --rules <file> <addr>...   按规则文件匹配地址
//
// 子网语法（validate/expand/relate 的参数与规则文件中的规则一致）:
//
//	192.168.1.0/24                   CIDR 前缀
//	192.168.1.0/255.255.255.0        点分掩码
//	8.8.8.8                          裸地址（/32）
//	192.168                          部分地址（掩码按八位段数量推导，/16）
//
// 规则文件为 YAML 或 JSON（按扩展名检测），格式:
//
//	rules:
//	  - 10.0.0.0/8
//	  - 192.168.1.0/24
//
// 退出码:
//
//	0: 命令执行成功（match 命令: 所有地址都命中规则）
//	1: 操作失败（解析失败、文件不可读、match 存在未命中地址）
//	2: 参数错误（缺少参数、未知命令、未知 flag）
//
// 示例:
//
//	xsubnetctl validate 192.168.1.0/24 10/8
//	xsubnetctl expand 10.0.0.0/29 --network
//	xsubnetctl relate 10.0.0.0/24 10.0.0.0/25
//	xsubnetctl match --rules allow.yaml 10.1.2.3 8.8.8.8
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:           "xsubnetctl",
		Usage:          "IPv4 子网计算与规则匹配工具",
		Version:        fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			// ExitCoder 错误（如未知命令）的消息需在此输出，
			// 替代 HandleExitCoder 的默认 os.Exit 行为。
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
		Description: `xsubnetctl 对 IPv4 子网做解析、规范化、主机枚举、
集合关系判断与规则文件匹配。

主要命令:
  validate <subnet>...             解析并规范化子网
  expand <subnet>                  枚举子网内的主机
    --network / --broadcast        包含网络/广播地址
    --limit <n>                    限制输出数量
  relate <a> <b>                   判断集合关系
  match --rules <file> <addr>...   按规则文件匹配地址

子网语法: CIDR（192.168.1.0/24）、点分掩码（192.168.1.0/255.255.255.0）、
裸地址（8.8.8.8 → /32）、部分地址（192.168 → /16，掩码按八位段数量推导）。`,
	}
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
