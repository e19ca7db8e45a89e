package domain

import (
	"fmt"
	"strings"
)

type AccountID string
type CategoryID string
type OperationID string

// OperationType общий для категорий и операций; совпадать они не обязаны.
type OperationType int

const (
	OpIncome OperationType = iota
	OpExpense
)

type CategoryType = OperationType

const (
	CatIncome  CategoryType = OpIncome
	CatExpense CategoryType = OpExpense
)

func (t OperationType) Valid() bool { return t == OpIncome || t == OpExpense }

func (t OperationType) String() string {
	switch t {
	case OpIncome:
		return "Income"
	case OpExpense:
		return "Expense"
	default:
		return fmt.Sprintf("OperationType(%d)", int(t))
	}
}

// ParseOperationType принимает коды меню 0/1 и имена в любом регистре.
func ParseOperationType(s string) (OperationType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "income", "i":
		return OpIncome, nil
	case "1", "expense", "e":
		return OpExpense, nil
	default:
		return 0, &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown operation type %q", s)}
	}
}

// Entity: закрытый набор записей учёта: *BankAccount, *Category и
// *Operation.
type Entity interface {
	entity()
}

func (*BankAccount) entity() {}
func (*Category) entity()    {}
func (*Operation) entity()   {}
