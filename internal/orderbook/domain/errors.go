package domain

import "errors"

var (
	// ErrInvalidNumberFormat 价格或数量无法解析为十进制数，发生在任何网络调用之前
	ErrInvalidNumberFormat = errors.New("invalid number format")
	// ErrMalformedArgument 命令行参数不合法（方向、类型、ID、深度等）
	ErrMalformedArgument = errors.New("malformed argument")
)
