package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxDecimalScale 十进制指数绝对值上限，超出视为无效数字
const MaxDecimalScale = 1000

// EncodeDecimal 将用户输入的十进制文本转换为线上使用的精确十进制文本
// 保留输入中的全部小数位（"10.00" 不会变成 "10"），指数形式展开为普通小数，负零保留符号
func EncodeDecimal(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	d, err := decimal.NewFromString(text)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumberFormat, raw)
	}
	if err := checkScale(d); err != nil {
		return "", fmt.Errorf("%w: %q", err, raw)
	}
	out := canonical(d)
	if d.IsZero() && strings.HasPrefix(text, "-") {
		out = "-" + out
	}
	return out, nil
}

// EncodeFloat 编解码器的浮点入口：将已解析为浮点数的值转换为十进制文本
// 命令行路径始终走 EncodeDecimal 以保留原始文本，此函数供只持有浮点数的调用方使用
// 使用能唯一还原该浮点数的最短十进制表示，不做二进制运算
func EncodeFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidNumberFormat, f)
	}
	return canonical(decimal.NewFromFloat(f)), nil
}

// DecodeDecimal 将线上十进制文本转换为展示文本，原样保留每一位
func DecodeDecimal(wire string) string {
	return wire
}

func checkScale(d decimal.Decimal) error {
	exp := int64(d.Exponent())
	if exp > MaxDecimalScale || exp < -MaxDecimalScale {
		return fmt.Errorf("%w: exponent %d out of range [-%d, %d]",
			ErrInvalidNumberFormat, exp, MaxDecimalScale, MaxDecimalScale)
	}
	return nil
}

func canonical(d decimal.Decimal) string {
	places := -d.Exponent()
	if places < 0 {
		places = 0
	}
	return d.StringFixed(places)
}
