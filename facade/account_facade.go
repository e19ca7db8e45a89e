package facade

import (
	"errors"

	"financetracker/domain"

	"github.com/shopspring/decimal"
)

var ErrAccountNotFound = errors.New("account not found")

type AccountFacade struct {
	F        domain.Factory
	Accounts AccountRepo
}

func NewAccountFacade(f domain.Factory, accounts AccountRepo) *AccountFacade {
	return &AccountFacade{F: f, Accounts: accounts}
}

func (f *AccountFacade) Create(name string, balance decimal.Decimal) (*domain.BankAccount, error) {
	acc, err := f.F.NewBankAccount(name, balance)
	if err != nil {
		return nil, err
	}
	f.Accounts.Create(acc)
	return acc, nil
}

// Delete не трогает операции, ссылающиеся на счёт.
func (f *AccountFacade) Delete(id domain.AccountID) { f.Accounts.Delete(id) }

func (f *AccountFacade) GetAll() []*domain.BankAccount { return f.Accounts.List() }

func (f *AccountFacade) GetByID(id domain.AccountID) (*domain.BankAccount, bool) {
	return f.Accounts.Get(id)
}

func (f *AccountFacade) Rename(id domain.AccountID, newName string) error {
	acc, ok := f.Accounts.Get(id)
	if !ok {
		return ErrAccountNotFound
	}
	return acc.Rename(newName)
}
