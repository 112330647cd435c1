// Package domain 包含订单簿客户端的领域模型：订单请求、订单簿快照与十进制编解码
package domain

import (
	"context"
	"fmt"
	"strings"
)

// Side 买卖方向
type Side string

const (
	SideBid Side = "BID"
	SideAsk Side = "ASK"
)

// ParseSide 不区分大小写地解析方向，只接受 bid/ask
func ParseSide(s string) (Side, error) {
	switch Side(strings.ToUpper(strings.TrimSpace(s))) {
	case SideBid:
		return SideBid, nil
	case SideAsk:
		return SideAsk, nil
	default:
		return "", fmt.Errorf("%w: side must be bid or ask, got %q", ErrMalformedArgument, s)
	}
}

// OrderType 订单类型
type OrderType string

const (
	OrderTypeLimit  OrderType = "LIMIT"
	OrderTypeMarket OrderType = "MARKET"
)

// ParseOrderType 不区分大小写地解析订单类型，只接受 limit/market
func ParseOrderType(s string) (OrderType, error) {
	switch OrderType(strings.ToUpper(strings.TrimSpace(s))) {
	case OrderTypeLimit:
		return OrderTypeLimit, nil
	case OrderTypeMarket:
		return OrderTypeMarket, nil
	default:
		return "", fmt.Errorf("%w: type must be limit or market, got %q", ErrMalformedArgument, s)
	}
}

// OrderRequest 下单请求
// 每次调用构造一次，构造后不再修改；ID 的唯一性由服务端负责
type OrderRequest struct {
	ID        uint64
	Price     string // 精确十进制文本
	Quantity  string // 精确十进制文本
	Side      Side
	OrderType OrderType
}

// NewOrderRequest 通过十进制编解码构造下单请求
func NewOrderRequest(id uint64, rawPrice, rawQuantity string, side Side, orderType OrderType) (*OrderRequest, error) {
	price, err := EncodeDecimal(rawPrice)
	if err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}
	quantity, err := EncodeDecimal(rawQuantity)
	if err != nil {
		return nil, fmt.Errorf("quantity: %w", err)
	}
	return &OrderRequest{
		ID:        id,
		Price:     price,
		Quantity:  quantity,
		Side:      side,
		OrderType: orderType,
	}, nil
}

// OrderResponse 下单响应，Status 原样保留服务端返回值
type OrderResponse struct {
	ID     uint64
	Status string
}

// BookLevel 订单簿价格档位
type BookLevel struct {
	Price    string
	Quantity string
}

// OrderBook 订单簿快照
// 档位顺序以服务端返回为准，客户端不重新排序也不校验
type OrderBook struct {
	Bids []BookLevel
	Asks []BookLevel
}

// OrderBookClient 远程撮合服务端口
// 每个方法恰好发起一次同步远程调用
type OrderBookClient interface {
	PlaceOrder(ctx context.Context, req *OrderRequest) (*OrderResponse, error)
	// GetOrderBook depth 的含义（包括 0）由服务端定义
	GetOrderBook(ctx context.Context, depth uint32) (*OrderBook, error)
}
