// Package grpcclient 提供 gRPC 客户端工厂：非加密连接、请求超时、request_id 透传与调用日志
//
// 连接不做重试、不做连接池，一个进程持有一个连接，由调用方负责 Close。
package grpcclient

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/wyfcoding/obcli/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader 透传 request_id 的 metadata key
const RequestIDHeader = "x-request-id"

// ClientConfig gRPC 客户端配置
type ClientConfig struct {
	// 目标地址
	Target string
	// 单次请求超时，0 表示不设超时
	RequestTimeout time.Duration
	// 最大接收消息大小（字节），0 使用 gRPC 默认值
	MaxRecvMsgSize int
	// 自定义拨号器（测试时用于 bufconn）
	Dialer func(ctx context.Context, addr string) (net.Conn, error)
}

// NewClient 创建 gRPC 客户端连接
// 连接是惰性的：此处不发生网络 I/O，首次调用时才建立连接
func NewClient(cfg ClientConfig) (*grpc.ClientConn, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(unaryClientInterceptor(cfg)),
	}

	if cfg.MaxRecvMsgSize > 0 {
		opts = append(opts, grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(cfg.MaxRecvMsgSize)))
	}

	if cfg.Dialer != nil {
		opts = append(opts, grpc.WithContextDialer(cfg.Dialer))
	}

	conn, err := grpc.NewClient(cfg.Target, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC client for %s: %w", cfg.Target, err)
	}

	logger.Debug(context.Background(), "gRPC client created", "target", cfg.Target)
	return conn, nil
}

// unaryClientInterceptor 一元 RPC 拦截器
func unaryClientInterceptor(cfg ClientConfig) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		if cfg.RequestTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.RequestTimeout)
			defer cancel()
		}

		if id := logger.RequestIDFromContext(ctx); id != "" {
			ctx = metadata.AppendToOutgoingContext(ctx, RequestIDHeader, id)
		}

		start := time.Now()
		logger.Debug(ctx, "gRPC request started", "method", method, "target", cc.Target())

		err := invoker(ctx, method, req, reply, cc, opts...)
		if err != nil {
			// 失败只记 debug，用户可见的输出由调用方决定
			logger.Debug(ctx, "gRPC request failed",
				"method", method,
				"code", status.Code(err).String(),
				"duration", time.Since(start),
				"error", err,
			)
			return err
		}

		logger.Debug(ctx, "gRPC request succeeded", "method", method, "duration", time.Since(start))
		return nil
	}
}
