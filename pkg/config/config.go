// Package config 載入 teller 的設定：yaml 檔、.env 與環境變數
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-teller/pkg/logging"
)

// 環境變數名稱，優先於 yaml
const (
	EnvLogLevel         = "TELLER_LOG_LEVEL"
	EnvLogFormat        = "TELLER_LOG_FORMAT"
	EnvJournalPath      = "TELLER_JOURNAL_PATH"
	EnvMetricsAddr      = "TELLER_METRICS_ADDR"
	EnvMetricsNamespace = "TELLER_METRICS_NAMESPACE"
)

// Config 應用程式設定
type Config struct {
	Log     logging.Config `yaml:"log"`
	Journal JournalConfig  `yaml:"journal"`
	Metrics MetricsConfig  `yaml:"metrics"`
}

// JournalConfig 稽核日誌設定，Path 為空表示停用
type JournalConfig struct {
	Path string `yaml:"path"`
}

// MetricsConfig Prometheus 設定，Addr 為空表示不啟動 /metrics
type MetricsConfig struct {
	Addr      string `yaml:"addr"`
	Namespace string `yaml:"namespace"`
}

// Default 不讀任何檔案時的設定
func Default() Config {
	return Config{
		Log: logging.DefaultConfig(),
		Metrics: MetricsConfig{
			Namespace: "teller",
		},
	}
}

// Load 依序套用：預設值 → yaml 檔 → .env → 環境變數
//
// 參數:
//
//	path: yaml 設定檔路徑，檔案不存在時使用預設值
//	envPath: .env 路徑，空字串則嘗試載入目前目錄的 .env (不存在不報錯)
//
// 回傳:
//
//	*Config: 設定
//	error: yaml 格式錯誤、指定的 .env 讀取失敗或驗證失敗
func Load(path string, envPath string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// 沒有設定檔就用預設值
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envPath, err)
		}
	} else {
		_ = godotenv.Load()
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv(EnvJournalPath); v != "" {
		cfg.Journal.Path = v
	}
	if v := os.Getenv(EnvMetricsAddr); v != "" {
		cfg.Metrics.Addr = v
	}
	if v := os.Getenv(EnvMetricsNamespace); v != "" {
		cfg.Metrics.Namespace = v
	}
}

// Validate 檢查設定
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be console or json", c.Log.Format)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Metrics.Addr != "" && c.Metrics.Namespace == "" {
		return errors.New("metrics.namespace is required when metrics.addr is set")
	}
	return nil
}
