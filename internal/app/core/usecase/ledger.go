package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-teller/internal/app/core/domain"
)

// Ledger 是帳務系統的介面
type Ledger interface {
	// Deposit 存款，回傳新餘額
	Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	// Withdraw 提款，回傳新餘額
	Withdraw(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error)
	// Balance 取得目前餘額
	Balance(ctx context.Context) decimal.Decimal
	// History 依時間順序回傳格式化後的交易紀錄
	History(ctx context.Context) []string
	// Transactions 依時間順序回傳交易紀錄
	Transactions(ctx context.Context) []domain.Transaction
}
