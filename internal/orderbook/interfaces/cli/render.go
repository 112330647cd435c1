package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wyfcoding/obcli/internal/orderbook/domain"
	"google.golang.org/grpc/status"
)

func renderOrderResponse(w io.Writer, resp *domain.OrderResponse) error {
	_, err := fmt.Fprintf(w, "Order placed: ID=%d, Status=%s\n", resp.ID, resp.Status)
	return err
}

// renderOrderBook 先买盘后卖盘，按服务端返回顺序输出
func renderOrderBook(w io.Writer, book *domain.OrderBook) error {
	var b strings.Builder
	b.WriteString("Bids:\n")
	writeLevels(&b, book.Bids)
	b.WriteString("\nAsks:\n")
	writeLevels(&b, book.Asks)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeLevels(b *strings.Builder, levels []domain.BookLevel) {
	for _, lvl := range levels {
		fmt.Fprintf(b, "  %s: %s\n", lvl.Price, lvl.Quantity)
	}
}

// TranslateFailure 将远程调用失败（传输层或服务端返回）转换为单行提示
// 只识别 gRPC status 错误；其他错误返回 false，由调用方按本地错误处理
// 服务端详情中的换行与连续空白折叠为单个空格
func TranslateFailure(err error) (string, bool) {
	var se interface{ GRPCStatus() *status.Status }
	if err == nil || !errors.As(err, &se) {
		return "", false
	}
	st := se.GRPCStatus()
	if st == nil {
		return "", false
	}
	return "Error: " + strings.Join(strings.Fields(st.Message()), " "), true
}
