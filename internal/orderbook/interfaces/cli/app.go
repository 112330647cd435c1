// Package cli 命令行接口层：参数解析、子命令分派、结果渲染与错误转换
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/wyfcoding/obcli/internal/orderbook/application"
	"github.com/wyfcoding/obcli/internal/orderbook/infrastructure/rpc"
	"github.com/wyfcoding/obcli/pkg/config"
	"github.com/wyfcoding/obcli/pkg/grpcclient"
	"github.com/wyfcoding/obcli/pkg/logger"
)

// ProgramName 可执行文件名
const ProgramName = "obcli"

// 退出码
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Option Run 的可选项
type Option func(*runOptions)

type runOptions struct {
	dialer func(ctx context.Context, addr string) (net.Conn, error)
}

// WithDialer 使用自定义拨号器建立连接
func WithDialer(d func(ctx context.Context, addr string) (net.Conn, error)) Option {
	return func(o *runOptions) {
		o.dialer = d
	}
}

type globalFlags struct {
	configPath string
	envFile    string
	addr       string
	timeout    int
	logLevel   string
}

func newFlagSet(g *globalFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet(ProgramName, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	// 子命令之后的参数全部视为位置参数，负数价格不会被当作 flag
	fs.SetInterspersed(false)

	fs.StringVarP(&g.configPath, "config", "c", "", "path to a TOML config file")
	fs.StringVar(&g.envFile, "env-file", "", "path to a .env file (default: ./.env if present)")
	fs.StringVar(&g.addr, "addr", config.DefaultEndpoint, "order-matching service address")
	fs.IntVar(&g.timeout, "timeout", 0, "per-call timeout in seconds, 0 waits indefinitely")
	fs.StringVar(&g.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	return fs
}

// Run 执行一次命令行调用并返回退出码
// 流程：解析参数 → 分派子命令 → 加载配置 → 建立连接 → 执行并渲染结果或错误
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...Option) int {
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}

	var g globalFlags
	fs := newFlagSet(&g)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(stdout, fs)
			return ExitOK
		}
		fmt.Fprintf(stderr, "%s: %v\n\n", ProgramName, err)
		printUsage(stderr, fs)
		return ExitUsage
	}

	rest := fs.Args()
	if len(rest) == 0 {
		printUsage(stdout, fs)
		return ExitOK
	}

	spec, ok := commands[ParseCommand(rest[0])]
	if !ok {
		fmt.Fprintf(stderr, "%s: unknown command %q\n\n", ProgramName, rest[0])
		printUsage(stderr, fs)
		return ExitUsage
	}

	inv, err := spec.parse(rest[1:])
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", ProgramName, err)
		return ExitUsage
	}

	cfg, err := config.Load(config.Options{
		Path:      g.configPath,
		EnvFile:   g.envFile,
		Overrides: overrides(fs, &g),
	})
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", ProgramName, err)
		return ExitFailure
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}, stderr); err != nil {
		fmt.Fprintf(stderr, "%s: failed to initialize logger: %v\n", ProgramName, err)
		return ExitFailure
	}

	ctx = logger.WithRequestID(ctx, uuid.NewString())
	defer logger.LogDuration(ctx, "command finished", "command", rest[0])()

	conn, err := grpcclient.NewClient(grpcclient.ClientConfig{
		Target:         cfg.Endpoint,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		MaxRecvMsgSize: cfg.MaxRecvMsgSizeMB * 1024 * 1024,
		Dialer:         o.dialer,
	})
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", ProgramName, err)
		return ExitFailure
	}
	defer conn.Close()

	svc := application.NewOrderBookService(rpc.NewOrderBookClient(conn))
	if err := inv.execute(ctx, svc, stdout); err != nil {
		return reportError(err, stdout, stderr)
	}
	return ExitOK
}

// overrides 只收集命令行上显式给出的参数
func overrides(fs *pflag.FlagSet, g *globalFlags) map[string]any {
	out := map[string]any{}
	if fs.Changed("addr") {
		out["endpoint"] = g.addr
	}
	if fs.Changed("timeout") {
		out["request_timeout"] = g.timeout
	}
	if fs.Changed("log-level") {
		out["logger.level"] = g.logLevel
	}
	return out
}

// reportError 远程调用失败输出单行 Error 并正常退出，其他错误视为本地失败
func reportError(err error, stdout, stderr io.Writer) int {
	if msg, ok := TranslateFailure(err); ok {
		fmt.Fprintln(stdout, msg)
		return ExitOK
	}
	fmt.Fprintf(stderr, "%s: %v\n", ProgramName, err)
	return ExitFailure
}

func printUsage(w io.Writer, fs *pflag.FlagSet) {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [flags] <command> [arguments]\n\n", ProgramName)
	b.WriteString("OrderBook CLI: submit orders to and read the order book of a remote matching service.\n\n")
	b.WriteString("Commands:\n")
	for _, c := range commandOrder {
		spec := commands[c]
		fmt.Fprintf(&b, "  %-60s %s\n", c.String()+" "+spec.args, spec.summary)
	}
	b.WriteString("\nFlags:\n")
	b.WriteString(fs.FlagUsages())
	_, _ = io.WriteString(w, b.String())
}
