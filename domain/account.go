package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyAccountName = &ValidationError{Field: "name", Reason: "account name is empty"}
)

type BankAccount struct {
	ID      AccountID       `json:"id"      yaml:"id"`
	Name    string          `json:"name"    yaml:"name"`
	Balance decimal.Decimal `json:"balance" yaml:"balance"`
}

// Validate проверяет инварианты создания. Баланс может быть отрицательным.
func (a BankAccount) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyAccountName
	}
	return nil
}

func (a *BankAccount) Rename(name string) error {
	if a == nil {
		return errors.New("nil receiver: BankAccount")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyAccountName
	}
	a.Name = name
	return nil
}
