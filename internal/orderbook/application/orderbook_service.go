// Package application 编排订单簿客户端的命令与查询
package application

import (
	"context"

	"github.com/wyfcoding/obcli/internal/orderbook/domain"
	"github.com/wyfcoding/obcli/pkg/logger"
)

// PlaceOrderCommand 下单命令
// Price/Quantity 保留命令行上的原始文本，由十进制编解码转换
type PlaceOrderCommand struct {
	ID        uint64
	Price     string
	Quantity  string
	Side      domain.Side
	OrderType domain.OrderType
}

// GetOrderBookQuery 订单簿查询
type GetOrderBookQuery struct {
	Depth uint32
}

// OrderBookService 订单簿客户端应用服务
type OrderBookService struct {
	client domain.OrderBookClient
}

// NewOrderBookService 创建应用服务实例
func NewOrderBookService(client domain.OrderBookClient) *OrderBookService {
	return &OrderBookService{client: client}
}

// PlaceOrder 构造请求并提交订单
// 数值格式错误时直接返回，不发起远程调用
func (s *OrderBookService) PlaceOrder(ctx context.Context, cmd PlaceOrderCommand) (*domain.OrderResponse, error) {
	req, err := domain.NewOrderRequest(cmd.ID, cmd.Price, cmd.Quantity, cmd.Side, cmd.OrderType)
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "placing order",
		"id", req.ID,
		"price", req.Price,
		"quantity", req.Quantity,
		"side", req.Side,
		"order_type", req.OrderType,
	)
	return s.client.PlaceOrder(ctx, req)
}

// GetOrderBook 查询指定深度的订单簿
func (s *OrderBookService) GetOrderBook(ctx context.Context, q GetOrderBookQuery) (*domain.OrderBook, error) {
	logger.Debug(ctx, "fetching order book", "depth", q.Depth)
	return s.client.GetOrderBook(ctx, q.Depth)
}
