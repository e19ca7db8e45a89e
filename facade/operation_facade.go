package facade

import (
	"errors"
	"strings"
	"time"

	"financetracker/domain"

	"github.com/shopspring/decimal"
)

// Входы для сценариев
type AddOpInput struct {
	AccountID    domain.AccountID
	Amount       decimal.Decimal
	When         time.Time
	CategoryName string
	Description  string
}

type OperationFacade struct {
	F          domain.Factory
	Categories *CategoryFacade
	Operations OperationRepo
}

func NewOperationFacade(f domain.Factory, categories *CategoryFacade, operations OperationRepo) *OperationFacade {
	return &OperationFacade{F: f, Categories: categories, Operations: operations}
}

// Create сохраняет операцию. accountID и categoryID не проверяются:
// существование проверяет вызывающий.
func (f *OperationFacade) Create(
	t domain.OperationType,
	accountID domain.AccountID,
	amount decimal.Decimal,
	when time.Time,
	categoryID domain.CategoryID,
	desc string,
) (*domain.Operation, error) {
	op, err := f.F.NewOperation(t, accountID, amount, when, categoryID, desc)
	if err != nil {
		return nil, err
	}
	f.Operations.Create(op)
	return op, nil
}

func (f *OperationFacade) Delete(id domain.OperationID) { f.Operations.Delete(id) }

func (f *OperationFacade) GetAll() []*domain.Operation { return f.Operations.List() }

func (f *OperationFacade) GetByID(id domain.OperationID) (*domain.Operation, bool) {
	return f.Operations.Get(id)
}

func (f *OperationFacade) ListByAccount(accID domain.AccountID) []*domain.Operation {
	return f.Operations.ListByAccount(accID)
}

func (f *OperationFacade) AddIncome(in AddOpInput) (*domain.Operation, error) {
	return f.add(domain.OpIncome, in)
}

func (f *OperationFacade) AddExpense(in AddOpInput) (*domain.Operation, error) {
	return f.add(domain.OpExpense, in)
}

// add находит категорию по имени или создаёт её с типом операции.
func (f *OperationFacade) add(t domain.OperationType, in AddOpInput) (*domain.Operation, error) {
	if strings.TrimSpace(in.CategoryName) == "" {
		return nil, errors.New("category is required")
	}
	if f.Categories == nil {
		return nil, errors.New("operation facade has no category facade")
	}
	// не создаём категорию под заведомо невалидную операцию
	if err := (domain.Operation{Type: t, Amount: in.Amount}).Validate(); err != nil {
		return nil, err
	}
	cat, err := f.Categories.Ensure(t, in.CategoryName)
	if err != nil {
		return nil, err
	}
	return f.Create(t, in.AccountID, in.Amount, in.When, cat.ID, in.Description)
}
