package domain

import "errors"

var (
	// ErrInvalidAmount 金額必須大於 0
	ErrInvalidAmount = errors.New("invalid amount. Must be greater than 0")

	// ErrInsufficientFunds 餘額不足
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrMalformedInput 輸入不是數值 (由 console 解析時產生)
	ErrMalformedInput = errors.New("invalid input. Enter a numeric value")

	// ErrJournalWriteFailed 稽核日誌寫入失敗
	ErrJournalWriteFailed = errors.New("journal write failed")
)

// ErrorKind 錯誤分類，讓呼叫端不用比對字串就能分流
type ErrorKind uint8

const (
	ErrorKindNone ErrorKind = iota
	ErrorKindInvalidAmount
	ErrorKindInsufficientFunds
	ErrorKindMalformedInput
	ErrorKindJournal
	ErrorKindUnknown
)

// String 回傳分類名稱，同時作為 metrics 的 outcome label
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNone:
		return "ok"
	case ErrorKindInvalidAmount:
		return "invalid_amount"
	case ErrorKindInsufficientFunds:
		return "insufficient_funds"
	case ErrorKindMalformedInput:
		return "malformed_input"
	case ErrorKindJournal:
		return "journal"
	default:
		return "error"
	}
}

// KindOf 將錯誤轉成 ErrorKind，nil 為 ErrorKindNone
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.Is(err, ErrInvalidAmount):
		return ErrorKindInvalidAmount
	case errors.Is(err, ErrInsufficientFunds):
		return ErrorKindInsufficientFunds
	case errors.Is(err, ErrMalformedInput):
		return ErrorKindMalformedInput
	case errors.Is(err, ErrJournalWriteFailed):
		return ErrorKindJournal
	default:
		return ErrorKindUnknown
	}
}

// IsValidation 是否為可直接回報給使用者的驗證錯誤
func (k ErrorKind) IsValidation() bool {
	return k == ErrorKindInvalidAmount || k == ErrorKindInsufficientFunds || k == ErrorKindMalformedInput
}
