package memory

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-teller/internal/app/core/domain"
	"github.com/JoeShih716/go-teller/internal/app/core/usecase"
	"github.com/JoeShih716/go-teller/pkg/journal"
)

// Ledger 單一餘額的記憶體帳本
//
// 結構:
//
//	account: 餘額與金額規則
//	history: 已入帳交易，只能追加
//	sequence: 最後分配的順序號
//	journal: 稽核日誌 (可為 nil)
//
// 只供單一呼叫端使用，不做鎖定
type Ledger struct {
	account  *domain.Account
	history  []domain.Transaction
	sequence uint64
	journal  *journal.Journal
	now      func() time.Time
}

// NewLedger 建立餘額為 0、沒有任何紀錄的帳本
//
// 參數:
//
//	j: 稽核日誌，nil 表示不寫
//
// 回傳:
//
//	*Ledger: 帳本實例
func NewLedger(j *journal.Journal) *Ledger {
	return &Ledger{
		account: domain.NewAccount(),
		history: make([]domain.Transaction, 0),
		journal: j,
		now:     time.Now,
	}
}

// Deposit 存款
//
// 參數:
//
//	ctx: 上下文
//	amount: 金額，必須 > 0
//
// 回傳:
//
//	decimal.Decimal: 新餘額
//	error: ErrInvalidAmount / ErrJournalWriteFailed
func (l *Ledger) Deposit(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := l.account.ValidateDeposit(amount); err != nil {
		return l.account.Balance, err
	}
	return l.post(domain.TransactionTypeDeposit, amount)
}

// Withdraw 提款
//
// 參數:
//
//	ctx: 上下文
//	amount: 金額，必須 > 0 且不超過餘額
//
// 回傳:
//
//	decimal.Decimal: 新餘額
//	error: ErrInvalidAmount / ErrInsufficientFunds / ErrJournalWriteFailed
func (l *Ledger) Withdraw(ctx context.Context, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := l.account.ValidateWithdraw(amount); err != nil {
		return l.account.Balance, err
	}
	return l.post(domain.TransactionTypeWithdrawal, amount)
}

// post 金額已通過驗證，寫入稽核日誌後才修改狀態
func (l *Ledger) post(txType domain.TransactionType, amount decimal.Decimal) (decimal.Decimal, error) {
	tran := domain.Transaction{
		Sequence:      l.sequence + 1,
		TransactionID: uuid.New(),
		Amount:        amount,
		CreatedAt:     l.now().UnixMilli(),
		Type:          txType,
	}

	// 1. 寫入稽核日誌 (Critical Path)
	if l.journal != nil {
		if err := l.journal.Write(tran); err != nil {
			return l.account.Balance, errors.Join(domain.ErrJournalWriteFailed, err)
		}
	}

	// 2. 套用到餘額
	var err error
	switch txType {
	case domain.TransactionTypeDeposit:
		err = l.account.Deposit(amount)
	case domain.TransactionTypeWithdrawal:
		err = l.account.Withdraw(amount)
	}
	if err != nil {
		return l.account.Balance, err
	}

	l.sequence = tran.Sequence
	l.history = append(l.history, tran)
	return l.account.Balance, nil
}

// Balance 取得目前餘額
func (l *Ledger) Balance(ctx context.Context) decimal.Decimal {
	return l.account.Balance
}

// History 依入帳順序回傳 "Deposit: $10" 格式的紀錄
func (l *Ledger) History(ctx context.Context) []string {
	out := make([]string, 0, len(l.history))
	for _, tran := range l.history {
		out = append(out, tran.String())
	}
	return out
}

// Transactions 回傳交易紀錄的拷貝
func (l *Ledger) Transactions(ctx context.Context) []domain.Transaction {
	out := make([]domain.Transaction, len(l.history))
	copy(out, l.history)
	return out
}

var _ usecase.Ledger = (*Ledger)(nil)
