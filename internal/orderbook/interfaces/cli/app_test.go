package cli

import (
	"bytes"
	"context"
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pb "github.com/wyfcoding/obcli/goapi/orderbook/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
)

const testTarget = "passthrough:///bufnet"

type fakeMatchingService struct {
	pb.UnimplementedOrderBookServiceServer

	mu     sync.Mutex
	orders []*pb.OrderRequest
	depths []uint32
	book   *pb.OrderBookResponse
	err    error
}

func (s *fakeMatchingService) PlaceOrder(_ context.Context, req *pb.OrderRequest) (*pb.OrderResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, req)
	if s.err != nil {
		return nil, s.err
	}
	return &pb.OrderResponse{Id: req.Id, Status: "ACCEPTED"}, nil
}

func (s *fakeMatchingService) GetOrderBook(_ context.Context, req *pb.GetOrderBookRequest) (*pb.OrderBookResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.depths = append(s.depths, req.Depth)
	if s.err != nil {
		return nil, s.err
	}
	return s.book, nil
}

func (s *fakeMatchingService) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders) + len(s.depths)
}

type harness struct {
	srv    *fakeMatchingService
	dials  atomic.Int32
	dialer func(context.Context, string) (net.Conn, error)
}

func newHarness(t *testing.T, srv *fakeMatchingService) *harness {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	pb.RegisterOrderBookServiceServer(s, srv)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	h := &harness{srv: srv}
	h.dialer = func(ctx context.Context, _ string) (net.Conn, error) {
		h.dials.Add(1)
		return lis.DialContext(ctx)
	}
	return h
}

func (h *harness) run(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	full := append([]string{"--addr", testTarget}, args...)
	code = Run(context.Background(), full, &out, &errOut, WithDialer(h.dialer))
	return code, out.String(), errOut.String()
}

func TestRunPlaceOrder(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantOut   string
		wantOrder *pb.OrderRequest
	}{
		{
			name:      "limit bid keeps trailing zeros",
			args:      []string{"place", "1", "10.00", "5.00", "bid", "limit"},
			wantOut:   "Order placed: ID=1, Status=ACCEPTED\n",
			wantOrder: &pb.OrderRequest{Id: 1, Price: "10.00", Quantity: "5.00", Side: pb.Side_BID, OrderType: pb.OrderType_LIMIT},
		},
		{
			name:      "market ask",
			args:      []string{"place", "2", "100", "1", "ask", "market"},
			wantOut:   "Order placed: ID=2, Status=ACCEPTED\n",
			wantOrder: &pb.OrderRequest{Id: 2, Price: "100", Quantity: "1", Side: pb.Side_ASK, OrderType: pb.OrderType_MARKET},
		},
		{
			name:      "tokens are case-insensitive",
			args:      []string{"place", "3", "0.1", "0.30", "BID", "Market"},
			wantOut:   "Order placed: ID=3, Status=ACCEPTED\n",
			wantOrder: &pb.OrderRequest{Id: 3, Price: "0.1", Quantity: "0.30", Side: pb.Side_BID, OrderType: pb.OrderType_MARKET},
		},
		{
			name:      "negative price is passed to the server",
			args:      []string{"place", "4", "-5", "1", "ask", "limit"},
			wantOut:   "Order placed: ID=4, Status=ACCEPTED\n",
			wantOrder: &pb.OrderRequest{Id: 4, Price: "-5", Quantity: "1", Side: pb.Side_ASK, OrderType: pb.OrderType_LIMIT},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, &fakeMatchingService{})

			code, out, errOut := h.run(tt.args...)
			assert.Equal(t, ExitOK, code)
			assert.Equal(t, tt.wantOut, out)
			assert.Empty(t, errOut)

			require.Len(t, h.srv.orders, 1)
			assert.True(t, proto.Equal(tt.wantOrder, h.srv.orders[0]), "got %v", h.srv.orders[0])
		})
	}
}

func TestRunBook(t *testing.T) {
	h := newHarness(t, &fakeMatchingService{book: &pb.OrderBookResponse{
		Bids: []*pb.PriceLevel{{Price: "101.0", Quantity: "3"}, {Price: "100.5", Quantity: "2"}},
		Asks: []*pb.PriceLevel{{Price: "102.0", Quantity: "4"}},
	}})

	code, out, _ := h.run("book", "5")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Bids:\n  101.0: 3\n  100.5: 2\n\nAsks:\n  102.0: 4\n", out)
	assert.Equal(t, []uint32{5}, h.srv.depths)
}

func TestRunBookEmpty(t *testing.T) {
	h := newHarness(t, &fakeMatchingService{book: &pb.OrderBookResponse{}})

	code, out, _ := h.run("book", "0")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Bids:\n\nAsks:\n", out)
	assert.Equal(t, []uint32{0}, h.srv.depths)
}

func TestRunRemoteFailure(t *testing.T) {
	h := newHarness(t, &fakeMatchingService{err: status.Error(codes.Unavailable, "connection refused")})

	code, out, errOut := h.run("place", "1", "10.00", "5.00", "bid", "limit")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Error: connection refused\n", out)
	assert.Empty(t, errOut)

	code, out, _ = h.run("book", "5")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Error: connection refused\n", out)
}

func TestRunRemoteFailureIsSingleLine(t *testing.T) {
	h := newHarness(t, &fakeMatchingService{err: status.Error(codes.FailedPrecondition, "order rejected:\n  insufficient\r\n  liquidity")})

	code, out, errOut := h.run("place", "1", "10.00", "5.00", "bid", "market")
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "Error: order rejected: insufficient liquidity\n", out)
	assert.Empty(t, errOut)
}

func TestRunUnreachableEndpoint(t *testing.T) {
	var out, errOut bytes.Buffer
	dialer := func(context.Context, string) (net.Conn, error) {
		return nil, errors.New("dial tcp 127.0.0.1:50051: connect: connection refused")
	}

	code := Run(context.Background(), []string{"--addr", testTarget, "book", "1"}, &out, &errOut, WithDialer(dialer))
	assert.Equal(t, ExitOK, code)
	assert.Regexp(t, `^Error: .+\n$`, out.String())
}

func TestRunNoSubcommandPrintsHelp(t *testing.T) {
	for _, args := range [][]string{nil, {"--help"}, {"-h"}} {
		h := newHarness(t, &fakeMatchingService{})

		var out, errOut bytes.Buffer
		code := Run(context.Background(), args, &out, &errOut, WithDialer(h.dialer))
		assert.Equal(t, ExitOK, code)
		assert.Contains(t, out.String(), "Usage: obcli")
		assert.Contains(t, out.String(), "place <id> <price> <quantity> <bid|ask> <limit|market>")
		assert.Contains(t, out.String(), "book <depth>")
		assert.Empty(t, errOut.String())
		assert.Zero(t, h.dials.Load())
		assert.Zero(t, h.srv.calls())
	}
}

func TestRunMalformedArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown command", args: []string{"cancel", "1"}, wantErr: `unknown command "cancel"`},
		{name: "bad side", args: []string{"place", "1", "10", "1", "buy", "limit"}, wantErr: "side must be bid or ask"},
		{name: "bad type", args: []string{"place", "1", "10", "1", "bid", "stop"}, wantErr: "type must be limit or market"},
		{name: "negative id", args: []string{"place", "-1", "10", "1", "bid", "limit"}, wantErr: "id must be a non-negative integer"},
		{name: "missing args", args: []string{"place", "1", "10"}, wantErr: "place expects 5 arguments"},
		{name: "negative depth", args: []string{"book", "-1"}, wantErr: "depth must be a non-negative integer"},
		{name: "depth not a number", args: []string{"book", "ten"}, wantErr: "depth must be a non-negative integer"},
		{name: "unknown flag", args: []string{"--bogus", "book", "1"}, wantErr: "unknown flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, &fakeMatchingService{})

			code, out, errOut := h.run(tt.args...)
			assert.Equal(t, ExitUsage, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, tt.wantErr)
			assert.Zero(t, h.srv.calls())
		})
	}
}

func TestRunInvalidNumberAbortsLocally(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		quantity string
	}{
		{name: "not a number", price: "abc", quantity: "5"},
		{name: "tiny exponent", price: "1e-100000000", quantity: "5"},
		{name: "huge exponent", price: "10", quantity: "1e10000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, &fakeMatchingService{})

			code, out, errOut := h.run("place", "1", tt.price, tt.quantity, "bid", "limit")
			assert.Equal(t, ExitFailure, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "invalid number format")
			assert.NotContains(t, errOut, "Error:")
			assert.Zero(t, h.dials.Load())
			assert.Zero(t, h.srv.calls())
		})
	}
}

func TestRunConfigError(t *testing.T) {
	h := newHarness(t, &fakeMatchingService{})

	code, _, errOut := h.run("--timeout=-1", "book", "1")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "invalid request_timeout")
	assert.Zero(t, h.srv.calls())
}
