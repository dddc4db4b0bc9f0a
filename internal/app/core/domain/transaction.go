package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType 交易類型
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
	// 提款
	TransactionTypeWithdrawal TransactionType = 2
)

// String 顯示用名稱，也是歷史紀錄的前綴
func (t TransactionType) String() string {
	switch t {
	case TransactionTypeDeposit:
		return "Deposit"
	case TransactionTypeWithdrawal:
		return "Withdrawal"
	default:
		return "Unknown"
	}
}

// MarshalJSON 日誌裡寫名稱而不是數字，方便人工閱讀
func (t TransactionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Transaction 一筆已入帳的交易，建立後不可變
type Transaction struct {
	// Sequence: 帳本分配的順序號 (1, 2, 3...)
	Sequence uint64 `json:"sequence"`
	// TransactionID: 外部追蹤號 (UUID)
	TransactionID uuid.UUID `json:"transaction_id"`
	// Amount: 金額，恆為正數
	Amount decimal.Decimal `json:"amount"`
	// CreatedAt: 交易時間 (unix milli)
	CreatedAt int64 `json:"created_at"`
	// Type: 存款或提款
	Type TransactionType `json:"type"`
}

// String 歷史紀錄的顯示格式，例如 "Deposit: $10"
// 只使用類型與金額，其餘欄位僅供追蹤
func (t Transaction) String() string {
	return fmt.Sprintf("%s: $%s", t.Type, t.Amount.String())
}
