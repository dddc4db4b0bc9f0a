// Package metrics 定義帳本操作的指標收集介面
package metrics

import "time"

// Operation 名稱
const (
	OpDeposit      = "deposit"
	OpWithdraw     = "withdraw"
	OpBalance      = "balance"
	OpHistory      = "history"
	OpTransactions = "transactions"
)

// Collector 收集帳本操作指標，實作可匯出到 Prometheus 等後端
type Collector interface {
	// RecordOperation 紀錄一次操作，outcome 為 "ok" 或錯誤分類
	RecordOperation(op string, outcome string, duration time.Duration)
	// RecordBalance 紀錄目前餘額
	RecordBalance(balance float64)
}

// NoOpCollector 預設實作，不做任何事
type NoOpCollector struct{}

// RecordOperation does nothing.
func (NoOpCollector) RecordOperation(op string, outcome string, duration time.Duration) {}

// RecordBalance does nothing.
func (NoOpCollector) RecordBalance(balance float64) {}

var _ Collector = NoOpCollector{}
