package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-teller/internal/app/core/domain"
	"github.com/JoeShih716/go-teller/pkg/logging"
	"github.com/JoeShih716/go-teller/pkg/metrics"
)

// CoreUseCase 是核心業務邏輯層，負責記錄日誌與指標後轉呼叫 Ledger
type CoreUseCase struct {
	ledger    Ledger
	logger    *logging.Logger
	collector metrics.Collector
}

// NewCoreUseCase 建立 CoreUseCase，logger 與 collector 可為 nil
func NewCoreUseCase(ledger Ledger, logger *logging.Logger, collector metrics.Collector) *CoreUseCase {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	if collector == nil {
		collector = metrics.NoOpCollector{}
	}
	return &CoreUseCase{
		ledger:    ledger,
		logger:    logger.Named("core"),
		collector: collector,
	}
}

// Deposit 存款
func (c *CoreUseCase) Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	start := time.Now()
	balance, err := c.ledger.Deposit(ctx, amount)
	c.observe(metrics.OpDeposit, amount, balance, err, time.Since(start))
	return balance, err
}

// Withdraw 提款
func (c *CoreUseCase) Withdraw(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	start := time.Now()
	balance, err := c.ledger.Withdraw(ctx, amount)
	c.observe(metrics.OpWithdraw, amount, balance, err, time.Since(start))
	return balance, err
}

// Balance 取得目前餘額
func (c *CoreUseCase) Balance(ctx context.Context) decimal.Decimal {
	start := time.Now()
	balance := c.ledger.Balance(ctx)
	c.collector.RecordOperation(metrics.OpBalance, domain.ErrorKindNone.String(), time.Since(start))
	return balance
}

// History 取得交易紀錄
func (c *CoreUseCase) History(ctx context.Context) []string {
	start := time.Now()
	history := c.ledger.History(ctx)
	c.collector.RecordOperation(metrics.OpHistory, domain.ErrorKindNone.String(), time.Since(start))
	return history
}

// Transactions 取得結構化的交易紀錄 (含順序號與 UUID)
func (c *CoreUseCase) Transactions(ctx context.Context) []domain.Transaction {
	start := time.Now()
	trans := c.ledger.Transactions(ctx)
	c.collector.RecordOperation(metrics.OpTransactions, domain.ErrorKindNone.String(), time.Since(start))
	return trans
}

// observe 記錄一次寫入操作的結果
// 驗證錯誤是使用者輸入造成的，記為 info；其他錯誤記為 error
func (c *CoreUseCase) observe(op string, amount, balance decimal.Decimal, err error, d time.Duration) {
	kind := domain.KindOf(err)
	c.collector.RecordOperation(op, kind.String(), d)

	fields := []zap.Field{
		zap.String("op", op),
		zap.String("amount", amount.String()),
	}
	switch {
	case err == nil:
		c.collector.RecordBalance(balance.InexactFloat64())
		c.logger.Debug("transaction applied", append(fields, zap.String("balance", balance.String()))...)
	case kind.IsValidation():
		c.logger.Info("transaction rejected", append(fields, zap.String("reason", kind.String()))...)
	default:
		c.logger.Error("transaction failed", append(fields, zap.Error(err))...)
	}
}
