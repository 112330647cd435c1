package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/obcli/internal/orderbook/domain"
)

type fakeClient struct {
	calls  int
	placed *domain.OrderRequest
	depth  uint32
	book   *domain.OrderBook
	err    error
}

func (f *fakeClient) PlaceOrder(_ context.Context, req *domain.OrderRequest) (*domain.OrderResponse, error) {
	f.calls++
	f.placed = req
	if f.err != nil {
		return nil, f.err
	}
	return &domain.OrderResponse{ID: req.ID, Status: "OPEN"}, nil
}

func (f *fakeClient) GetOrderBook(_ context.Context, depth uint32) (*domain.OrderBook, error) {
	f.calls++
	f.depth = depth
	if f.err != nil {
		return nil, f.err
	}
	return f.book, nil
}

func TestPlaceOrder(t *testing.T) {
	tests := []struct {
		name string
		cmd  PlaceOrderCommand
		want domain.OrderRequest
	}{
		{
			name: "limit bid keeps decimal text",
			cmd:  PlaceOrderCommand{ID: 1, Price: "10.00", Quantity: "5.00", Side: domain.SideBid, OrderType: domain.OrderTypeLimit},
			want: domain.OrderRequest{ID: 1, Price: "10.00", Quantity: "5.00", Side: domain.SideBid, OrderType: domain.OrderTypeLimit},
		},
		{
			name: "market ask",
			cmd:  PlaceOrderCommand{ID: 2, Price: "100", Quantity: "1", Side: domain.SideAsk, OrderType: domain.OrderTypeMarket},
			want: domain.OrderRequest{ID: 2, Price: "100", Quantity: "1", Side: domain.SideAsk, OrderType: domain.OrderTypeMarket},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			svc := NewOrderBookService(client)

			resp, err := svc.PlaceOrder(context.Background(), tt.cmd)
			require.NoError(t, err)
			assert.Equal(t, 1, client.calls)
			assert.Equal(t, tt.want, *client.placed)
			assert.Equal(t, tt.cmd.ID, resp.ID)
			assert.Equal(t, "OPEN", resp.Status)
		})
	}
}

func TestPlaceOrderInvalidNumberSkipsRemoteCall(t *testing.T) {
	client := &fakeClient{}
	svc := NewOrderBookService(client)

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderCommand{ID: 1, Price: "abc", Quantity: "1"})
	require.ErrorIs(t, err, domain.ErrInvalidNumberFormat)
	assert.Zero(t, client.calls)
}

func TestPlaceOrderPropagatesRemoteError(t *testing.T) {
	remote := errors.New("rejected")
	svc := NewOrderBookService(&fakeClient{err: remote})

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderCommand{ID: 1, Price: "1", Quantity: "1"})
	assert.ErrorIs(t, err, remote)
}

func TestGetOrderBook(t *testing.T) {
	book := &domain.OrderBook{
		Bids: []domain.BookLevel{{Price: "101.0", Quantity: "3"}},
		Asks: []domain.BookLevel{{Price: "102.0", Quantity: "4"}},
	}
	client := &fakeClient{book: book}
	svc := NewOrderBookService(client)

	got, err := svc.GetOrderBook(context.Background(), GetOrderBookQuery{Depth: 0})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), client.depth)
	assert.Equal(t, 1, client.calls)
	assert.Same(t, book, got)
}
