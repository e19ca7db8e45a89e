package facade

import (
	"time"

	"financetracker/domain"
)

type AccountRepo interface {
	Create(a *domain.BankAccount)
	Delete(id domain.AccountID) int
	Get(id domain.AccountID) (*domain.BankAccount, bool)
	List() []*domain.BankAccount
}

type CategoryRepo interface {
	Create(c *domain.Category)
	Delete(id domain.CategoryID) int
	Get(id domain.CategoryID) (*domain.Category, bool)
	List() []*domain.Category
	FindByName(name string) (*domain.Category, bool)
}

type OperationRepo interface {
	Create(o *domain.Operation)
	Delete(id domain.OperationID) int
	Get(id domain.OperationID) (*domain.Operation, bool)
	List() []*domain.Operation
	ListByAccount(accID domain.AccountID) []*domain.Operation
	ListInRange(from, to time.Time) []*domain.Operation
}
