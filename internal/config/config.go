package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 默认值（与推理引擎约定的 token 预算）
const (
	DefaultPort            = 8080
	DefaultAnalyzeMaxToken = 1500
	DefaultScanMaxToken    = 4000
	DefaultScanLimit       = 50
)

// Config 全局配置结构体（完全匹配config.yaml）
type Config struct {
	Server    ServerConfig              `mapstructure:"server"`    // 服务器配置
	Database  DatabaseConfig            `mapstructure:"database"`  // 快照库配置（可选）
	Platforms map[string]PlatformConfig `mapstructure:"platforms"` // 行情数据源配置
	LLM       LLMConfig                 `mapstructure:"llm"`       // 推理引擎配置
	Scan      ScanConfig                `mapstructure:"scan"`      // 批量扫描配置
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port int    `mapstructure:"port"` // 服务端口
	Mode string `mapstructure:"mode"` // Gin运行模式：debug/release/test
}

// DatabaseConfig PostgreSQL 配置，仅用于行情快照同步
type DatabaseConfig struct {
	Enabled         bool          `mapstructure:"enabled"`           // 是否启用快照库
	DSN             string        `mapstructure:"dsn"`               // 连接DSN（URL 形式）
	MaxOpenConns    int           `mapstructure:"max_open_conns"`    // 最大打开连接数
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`    // 最大空闲连接数
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"` // 连接最大存活时间
	SyncSchedule    string        `mapstructure:"sync_schedule"`     // 定时同步 cron 表达式（5 段），为空不启用
}

// PlatformConfig 单个行情平台的配置
type PlatformConfig struct {
	BaseURL    string `mapstructure:"base_url"`    // API基础地址
	Timeout    int    `mapstructure:"timeout"`     // 请求超时（秒），0 表示不设超时
	RetryCount int    `mapstructure:"retry_count"` // 预留：当前不做内部重试
	Proxy      string `mapstructure:"proxy"`       // 代理地址
}

// LLMConfig 推理引擎配置
type LLMConfig struct {
	Provider         string       `mapstructure:"provider"`           // claude / gemini
	AnalyzeMaxTokens int          `mapstructure:"analyze_max_tokens"` // 单事件分析 token 上限
	ScanMaxTokens    int          `mapstructure:"scan_max_tokens"`    // 批量扫描 token 上限
	Claude           ClaudeConfig `mapstructure:"claude"`
	Gemini           GeminiConfig `mapstructure:"gemini"`
}

// ClaudeConfig Anthropic 配置
type ClaudeConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"` // 为空时使用官方地址
}

// GeminiConfig Google Gemini 配置
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// ScanConfig 批量扫描配置
type ScanConfig struct {
	DefaultLimit int `mapstructure:"default_limit"` // 实时扫描默认拉取事件数
}

// LoadConfig 加载配置文件（config/config.yaml），敏感项从 .env 覆盖（不提交 git）
func LoadConfig() (*Config, error) {
	// .env 可不存在
	_ = godotenv.Load()
	return LoadConfigFrom("./config")
}

// LoadConfigFrom 从指定目录读取 config.yaml，并用环境变量覆盖敏感字段
func LoadConfigFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	v.SetTypeByDefaultValue(true)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	// 敏感字段：用 env 覆盖（优先级 env > yaml）
	overrideFromEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// overrideFromEnv 用环境变量覆盖敏感配置
func overrideFromEnv(cfg *Config) {
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.LLM.Claude.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.LLM.Gemini.APIKey = v
	}
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if cfg.Platforms == nil {
		cfg.Platforms = make(map[string]PlatformConfig)
	}
	if p, ok := cfg.Platforms["polymarket"]; ok {
		if v := os.Getenv("POLYMARKET_PROXY"); v != "" {
			p.Proxy = v
		}
		cfg.Platforms["polymarket"] = p
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
}

// Validate 补齐默认值并校验必要字段
func (c *Config) Validate() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Mode == "" {
		c.Server.Mode = "release"
	}
	if c.LLM.AnalyzeMaxTokens <= 0 {
		c.LLM.AnalyzeMaxTokens = DefaultAnalyzeMaxToken
	}
	if c.LLM.ScanMaxTokens <= 0 {
		c.LLM.ScanMaxTokens = DefaultScanMaxToken
	}
	if c.Scan.DefaultLimit <= 0 {
		c.Scan.DefaultLimit = DefaultScanLimit
	}
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	if c.LLM.Provider == "" {
		c.LLM.Provider = "claude"
	}
	if c.LLM.Provider != "claude" && c.LLM.Provider != "gemini" {
		return fmt.Errorf("不支持的推理引擎: %s", c.LLM.Provider)
	}
	if c.Database.Enabled && c.Database.DSN == "" {
		return fmt.Errorf("database.enabled 为 true 时必须配置 database.dsn")
	}
	return nil
}

// Polymarket 返回 polymarket 平台配置（未配置时返回零值）
func (c *Config) Polymarket() PlatformConfig {
	return c.Platforms["polymarket"]
}
