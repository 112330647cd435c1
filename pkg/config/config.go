// Package config 提供 TOML 配置加载、.env 与环境变量覆盖、命令行参数覆盖与校验
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 OBCLI_ENDPOINT、OBCLI_LOGGER_LEVEL
const EnvPrefix = "OBCLI"

// DefaultEndpoint 撮合服务默认地址
const DefaultEndpoint = "localhost:50051"

// Config 客户端配置
type Config struct {
	// 撮合服务地址
	Endpoint string `mapstructure:"endpoint"`
	// 单次调用超时（秒），0 表示不设超时
	RequestTimeout int `mapstructure:"request_timeout"`
	// 最大接收消息大小（MB）
	MaxRecvMsgSizeMB int `mapstructure:"max_recv_msg_size_mb"`
	// 日志配置
	Logger LoggerConfig `mapstructure:"logger"`
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
	WithCaller bool   `mapstructure:"with_caller"`
}

// Options 加载选项
type Options struct {
	// TOML 配置文件路径，为空则不读取
	Path string
	// .env 文件路径，为空则尝试当前目录下的 .env，不存在时忽略
	EnvFile string
	// 命令行覆盖项，key 与配置 key 一致（如 "endpoint"、"logger.level"）
	Overrides map[string]any
}

// Load 加载配置
// 优先级：命令行覆盖 > 环境变量 > .env > 配置文件 > 默认值
func Load(opts Options) (*Config, error) {
	if err := loadDotEnv(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if opts.Path != "" {
		v.SetConfigFile(opts.Path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, val := range opts.Overrides {
		v.Set(key, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv 读取 .env，已存在的环境变量不会被覆盖
func loadDotEnv(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Endpoint) == "" {
		return fmt.Errorf("endpoint is required")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("invalid request_timeout: %d", c.RequestTimeout)
	}
	if c.MaxRecvMsgSizeMB <= 0 {
		return fmt.Errorf("invalid max_recv_msg_size_mb: %d", c.MaxRecvMsgSizeMB)
	}
	return nil
}

// setDefaults 设置默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("endpoint", DefaultEndpoint)
	v.SetDefault("request_timeout", 0)
	v.SetDefault("max_recv_msg_size_mb", 16)

	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.output", "stderr")
	v.SetDefault("logger.file_path", "logs/obcli.log")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.with_caller", false)
}
