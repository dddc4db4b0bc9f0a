package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger 包裝 zap.Logger
type Logger struct {
	*zap.Logger
}

// Config 日誌設定
type Config struct {
	// Level 日誌等級 (debug, info, warn, error)
	Level string `yaml:"level"`
	// Format 輸出格式 (json 或 console)
	Format string `yaml:"format"`
	// OutputPaths 輸出位置，預設 stderr，避免與 stdout 上的選單混在一起
	OutputPaths []string `yaml:"output_paths"`
	// ErrorOutputPaths zap 內部錯誤的輸出位置
	ErrorOutputPaths []string `yaml:"error_output_paths"`
	// Development 開發模式
	Development bool `yaml:"development"`
	// EnableCaller 紀錄呼叫位置
	EnableCaller bool `yaml:"enable_caller"`
	// EnableStacktrace error 等級附上 stack trace
	EnableStacktrace bool `yaml:"enable_stacktrace"`
}

// DefaultConfig 預設設定：console 格式、warn 等級、寫到 stderr
func DefaultConfig() Config {
	return Config{
		Level:            "warn",
		Format:           "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
}

// DevelopmentConfig 開發用設定 (--debug)
func DevelopmentConfig() Config {
	return Config{
		Level:            "debug",
		Format:           "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		Development:      true,
		EnableCaller:     true,
		EnableStacktrace: true,
	}
}

// NewLogger 依設定建立 Logger
func NewLogger(config Config) (*Logger, error) {
	level, err := ParseLevel(config.Level)
	if err != nil {
		return nil, err
	}

	var encoderConfig zapcore.EncoderConfig
	if config.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	zapConfig := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       config.Development,
		DisableCaller:     !config.EnableCaller,
		DisableStacktrace: !config.EnableStacktrace,
		Encoding:          config.Format,
		EncoderConfig:     encoderConfig,
		OutputPaths:       config.OutputPaths,
		ErrorOutputPaths:  config.ErrorOutputPaths,
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return &Logger{logger}, nil
}

// NewNoOpLogger 丟棄所有日誌
func NewNoOpLogger() *Logger {
	return &Logger{zap.NewNop()}
}

// ParseLevel 字串轉 zapcore.Level，空字串視為 info
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// With 建立帶額外欄位的子 logger
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{l.Logger.With(fields...)}
}

// Named 建立具名的子 logger
func (l *Logger) Named(name string) *Logger {
	return &Logger{l.Logger.Named(name)}
}
