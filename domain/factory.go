package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Factory создаёт проверенные сущности с новыми id. Имена сохраняются как
// есть, пустые отклоняются. Репозитории фабрика не видит, поэтому ссылки
// операции здесь не проверяются.
type Factory struct{}

func (Factory) NewBankAccount(name string, balance decimal.Decimal) (*BankAccount, error) {
	a := BankAccount{
		ID:      AccountID(uuid.NewString()),
		Name:    name,
		Balance: balance,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

func (Factory) NewCategory(t CategoryType, name string) (*Category, error) {
	c := Category{
		ID:   CategoryID(uuid.NewString()),
		Type: t,
		Name: name,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (Factory) NewOperation(
	t OperationType,
	accountID AccountID,
	amount decimal.Decimal,
	when time.Time,
	categoryID CategoryID,
	desc string,
) (*Operation, error) {
	op := Operation{
		ID:          OperationID(uuid.NewString()),
		Type:        t,
		BankAccount: accountID,
		Amount:      amount,
		Date:        when,
		Description: desc,
		Category:    categoryID,
	}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return &op, nil
}
