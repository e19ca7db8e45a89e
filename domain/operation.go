package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidOperationType = &ValidationError{Field: "type", Reason: "invalid operation type"}
	ErrNonPositiveAmount    = &ValidationError{Field: "amount", Reason: "amount must be > 0"}
)

// Operation ссылается на счёт и категорию только по id; ссылки с
// репозиториями не сверяются.
type Operation struct {
	ID          OperationID     `json:"id"              yaml:"id"`
	Type        OperationType   `json:"type"            yaml:"type"`
	BankAccount AccountID       `json:"bank_account_id" yaml:"bank_account_id"`
	Amount      decimal.Decimal `json:"amount"          yaml:"amount"`
	Date        time.Time       `json:"date"            yaml:"date"`
	Description string          `json:"description"     yaml:"description"`
	Category    CategoryID      `json:"category_id"     yaml:"category_id"`
}

func (o Operation) Validate() error {
	if !o.Type.Valid() {
		return ErrInvalidOperationType
	}
	if !o.Amount.GreaterThan(decimal.Zero) {
		return ErrNonPositiveAmount
	}
	return nil
}

func (o Operation) IsIncome() bool  { return o.Type == OpIncome }
func (o Operation) IsExpense() bool { return o.Type == OpExpense }

// InRange: лежит ли дата операции в [from, to].
func (o Operation) InRange(from, to time.Time) bool {
	return !o.Date.Before(from) && !o.Date.After(to)
}
