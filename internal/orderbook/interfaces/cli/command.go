package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/wyfcoding/obcli/internal/orderbook/application"
	"github.com/wyfcoding/obcli/internal/orderbook/domain"
)

// Command 子命令类型
type Command uint8

const (
	CommandUnknown Command = iota
	CommandPlace
	CommandBook
)

var commandNames = map[string]Command{
	"place": CommandPlace,
	"book":  CommandBook,
}

// ParseCommand 解析子命令名，未知名称返回 CommandUnknown
func ParseCommand(name string) Command {
	return commandNames[name]
}

func (c Command) String() string {
	switch c {
	case CommandPlace:
		return "place"
	case CommandBook:
		return "book"
	default:
		return "unknown"
	}
}

// invocation 已完成参数解析、待执行的一次调用
type invocation interface {
	execute(ctx context.Context, svc *application.OrderBookService, out io.Writer) error
}

const (
	placeArgs = "<id> <price> <quantity> <bid|ask> <limit|market>"
	bookArgs  = "<depth>"
)

// commandSpec 子命令的参数解析与帮助信息
type commandSpec struct {
	args    string
	summary string
	parse   func(args []string) (invocation, error)
}

// commands 子命令分派表
var commands = map[Command]commandSpec{
	CommandPlace: {
		args:    placeArgs,
		summary: "Submit a new order",
		parse:   parsePlace,
	},
	CommandBook: {
		args:    bookArgs,
		summary: "Print bids and asks up to <depth> levels (depth semantics are server-defined)",
		parse:   parseBook,
	},
}

// commandOrder 帮助信息中的展示顺序
var commandOrder = []Command{CommandPlace, CommandBook}

type placeInvocation struct {
	cmd application.PlaceOrderCommand
}

func parsePlace(args []string) (invocation, error) {
	if len(args) != 5 {
		return nil, fmt.Errorf("%w: place expects 5 arguments (%s), got %d",
			domain.ErrMalformedArgument, placeArgs, len(args))
	}

	id, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: id must be a non-negative integer, got %q", domain.ErrMalformedArgument, args[0])
	}
	side, err := domain.ParseSide(args[3])
	if err != nil {
		return nil, err
	}
	orderType, err := domain.ParseOrderType(args[4])
	if err != nil {
		return nil, err
	}

	// 价格与数量保留原始文本，交由十进制编解码处理
	return placeInvocation{cmd: application.PlaceOrderCommand{
		ID:        id,
		Price:     args[1],
		Quantity:  args[2],
		Side:      side,
		OrderType: orderType,
	}}, nil
}

func (p placeInvocation) execute(ctx context.Context, svc *application.OrderBookService, out io.Writer) error {
	resp, err := svc.PlaceOrder(ctx, p.cmd)
	if err != nil {
		return err
	}
	return renderOrderResponse(out, resp)
}

type bookInvocation struct {
	query application.GetOrderBookQuery
}

func parseBook(args []string) (invocation, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: book expects 1 argument (%s), got %d",
			domain.ErrMalformedArgument, bookArgs, len(args))
	}
	depth, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: depth must be a non-negative integer, got %q", domain.ErrMalformedArgument, args[0])
	}
	return bookInvocation{query: application.GetOrderBookQuery{Depth: uint32(depth)}}, nil
}

func (b bookInvocation) execute(ctx context.Context, svc *application.OrderBookService, out io.Writer) error {
	book, err := svc.GetOrderBook(ctx, b.query)
	if err != nil {
		return err
	}
	return renderOrderBook(out, book)
}
