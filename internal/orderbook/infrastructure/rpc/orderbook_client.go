// Package rpc 基于 gRPC 实现 domain.OrderBookClient
package rpc

import (
	"context"
	"fmt"

	pb "github.com/wyfcoding/obcli/goapi/orderbook/v1"
	"github.com/wyfcoding/obcli/internal/orderbook/domain"
	"google.golang.org/grpc"
)

// OrderBookClient 远程撮合服务适配器
type OrderBookClient struct {
	client pb.OrderBookServiceClient
}

// NewOrderBookClient 基于连接句柄创建适配器
func NewOrderBookClient(cc grpc.ClientConnInterface) *OrderBookClient {
	return &OrderBookClient{client: pb.NewOrderBookServiceClient(cc)}
}

// PlaceOrder 提交订单
func (c *OrderBookClient) PlaceOrder(ctx context.Context, req *domain.OrderRequest) (*domain.OrderResponse, error) {
	resp, err := c.client.PlaceOrder(ctx, &pb.OrderRequest{
		Id:        req.ID,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Side:      toProtoSide(req.Side),
		OrderType: toProtoOrderType(req.OrderType),
	})
	if err != nil {
		return nil, fmt.Errorf("PlaceOrder rpc: %w", err)
	}
	return &domain.OrderResponse{ID: resp.GetId(), Status: resp.GetStatus()}, nil
}

// GetOrderBook 查询订单簿快照
func (c *OrderBookClient) GetOrderBook(ctx context.Context, depth uint32) (*domain.OrderBook, error) {
	resp, err := c.client.GetOrderBook(ctx, &pb.GetOrderBookRequest{Depth: depth})
	if err != nil {
		return nil, fmt.Errorf("GetOrderBook rpc: %w", err)
	}
	return &domain.OrderBook{
		Bids: toDomainLevels(resp.GetBids()),
		Asks: toDomainLevels(resp.GetAsks()),
	}, nil
}

// --- converters ---

// toProtoSide 调用方保证 side 只会是 BID 或 ASK
func toProtoSide(s domain.Side) pb.Side {
	if s == domain.SideAsk {
		return pb.Side_ASK
	}
	return pb.Side_BID
}

func toProtoOrderType(t domain.OrderType) pb.OrderType {
	if t == domain.OrderTypeMarket {
		return pb.OrderType_MARKET
	}
	return pb.OrderType_LIMIT
}

func toDomainLevels(levels []*pb.PriceLevel) []domain.BookLevel {
	out := make([]domain.BookLevel, 0, len(levels))
	for _, lvl := range levels {
		out = append(out, domain.BookLevel{
			Price:    domain.DecodeDecimal(lvl.GetPrice()),
			Quantity: domain.DecodeDecimal(lvl.GetQuantity()),
		})
	}
	return out
}
