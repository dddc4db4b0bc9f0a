package domain

import "github.com/shopspring/decimal"

// Account 持有餘額並負責金額規則，餘額恆 >= 0
type Account struct {
	Balance decimal.Decimal
}

func NewAccount() *Account {
	return &Account{
		Balance: decimal.Zero,
	}
}

// ValidateDeposit 檢查存款金額，不修改狀態
func (a *Account) ValidateDeposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateWithdraw 檢查提款金額與餘額，不修改狀態
func (a *Account) ValidateWithdraw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	return nil
}

// Deposit 存款
func (a *Account) Deposit(amount decimal.Decimal) error {
	if err := a.ValidateDeposit(amount); err != nil {
		return err
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

// Withdraw 提款
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if err := a.ValidateWithdraw(amount); err != nil {
		return err
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}
