// Package cmd 提供 teller 的 CLI 指令
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	console_adapter "github.com/JoeShih716/go-teller/internal/app/core/adapter/in/console"
	memory_adapter "github.com/JoeShih716/go-teller/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-teller/internal/app/core/usecase"
	"github.com/JoeShih716/go-teller/pkg/config"
	"github.com/JoeShih716/go-teller/pkg/journal"
	"github.com/JoeShih716/go-teller/pkg/logging"
	"github.com/JoeShih716/go-teller/pkg/metrics"
	prom "github.com/JoeShih716/go-teller/pkg/metrics/prometheus"
)

var (
	cfgFile string
	envFile string
	debug   bool
)

// rootCmd 沒有子指令，直接進入選單
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "teller",
		Short: "Single-session in-memory ledger driven by a text menu",
		Long: `teller keeps one balance and an ordered transaction history in memory
and lets you deposit, withdraw, check the balance and list the history
from a text menu. Nothing is kept after the program exits.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	c.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "config file (missing file uses defaults)")
	c.PersistentFlags().StringVar(&envFile, "env", "", "env file (default is .env if present)")
	c.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	return c
}

// Execute 執行 root command，由 main.main() 呼叫
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// run 組裝所有元件並執行選單迴圈
func run(ctx context.Context, in io.Reader, out io.Writer) error {
	// 1. 載入設定
	cfg, err := config.Load(cfgFile, envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if debug {
		cfg.Log = logging.DevelopmentConfig()
	}

	// 2. 初始化 Logger
	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// 3. 稽核日誌 (可選)
	var j *journal.Journal
	if cfg.Journal.Path != "" {
		j, err = journal.Open(cfg.Journal.Path)
		if err != nil {
			return fmt.Errorf("open journal %s: %w", cfg.Journal.Path, err)
		}
		defer j.Close()
		logger.Info("journal enabled", zap.String("path", cfg.Journal.Path))
	}

	// 4. Metrics (可選)
	var collector metrics.Collector = metrics.NoOpCollector{}
	if cfg.Metrics.Addr != "" {
		pc := prom.NewCollector(cfg.Metrics.Namespace)
		stop, err := serveMetrics(cfg.Metrics.Addr, pc.Handler(), logger)
		if err != nil {
			return fmt.Errorf("start metrics server: %w", err)
		}
		defer stop()
		collector = pc
	}

	// 5. 帳本、UseCase 與 Console Adapter
	ledger := memory_adapter.NewLedger(j)
	core := usecase.NewCoreUseCase(ledger, logger, collector)
	dispatcher := console_adapter.NewDispatcher(core, in, out, logger)

	return dispatcher.Run(ctx)
}

// serveMetrics 在背景啟動 /metrics，回傳關閉函式
func serveMetrics(addr string, handler http.Handler, logger *logging.Logger) (func(), error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("metrics server listening", zap.String("addr", lis.Addr().String()))
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", zap.Error(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
