// obcli 主程序
// 功能：命令行客户端，向远程撮合服务提交订单（place）并查询订单簿快照（book）
// 架构：DDD 分层 + gRPC，单进程单连接，每次调用发起一次同步远程请求
package main

import (
	"context"
	"os"

	"github.com/wyfcoding/obcli/internal/orderbook/interfaces/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
