package service

import (
	"time"

	"financetracker/domain"

	"github.com/shopspring/decimal"
)

// OperationSource: читающая сторона репозитория операций.
type OperationSource interface {
	List() []*domain.Operation
	ListInRange(from, to time.Time) []*domain.Operation
}

type AnalyticsService struct {
	ops OperationSource
}

func NewAnalyticsService(ops OperationSource) *AnalyticsService {
	return &AnalyticsService{ops: ops}
}

type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal // Income - Expense
}

// SummaryByPeriod: агрегирует операции за период [from; to].
// При from > to период пуст и все суммы нулевые.
func (s *AnalyticsService) SummaryByPeriod(from, to time.Time) Summary {
	income := decimal.Zero
	expense := decimal.Zero
	for _, o := range s.ops.ListInRange(from, to) {
		switch o.Type {
		case domain.OpIncome:
			income = income.Add(o.Amount)
		case domain.OpExpense:
			expense = expense.Add(o.Amount)
		}
	}
	return Summary{
		Income:  income,
		Expense: expense,
		Net:     income.Sub(expense),
	}
}

// BalanceDelta: доходы минус расходы за [from, to], обе границы
// включительно.
func (s *AnalyticsService) BalanceDelta(from, to time.Time) decimal.Decimal {
	return s.SummaryByPeriod(from, to).Net
}

// CategoryTotal: агрегат по категории.
type CategoryTotal struct {
	Category *domain.Category
	Total    decimal.Decimal
}

// GroupByCategory суммирует операции типа t по id категории в порядке
// первого появления id. Каждая группа сопоставляется первой категории с
// этим id; группы без категории отбрасываются. Тип самой категории не
// учитывается.
func (s *AnalyticsService) GroupByCategory(categories []*domain.Category, t domain.OperationType) []CategoryTotal {
	var order []domain.CategoryID
	sums := map[domain.CategoryID]decimal.Decimal{}
	for _, o := range s.ops.List() {
		if o.Type != t {
			continue
		}
		sum, seen := sums[o.Category]
		if !seen {
			order = append(order, o.Category)
			sum = decimal.Zero
		}
		sums[o.Category] = sum.Add(o.Amount)
	}

	byID := make(map[domain.CategoryID]*domain.Category, len(categories))
	for _, c := range categories {
		if c == nil {
			continue
		}
		if _, dup := byID[c.ID]; !dup {
			byID[c.ID] = c
		}
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, id := range order {
		c, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, CategoryTotal{Category: c, Total: sums[id]})
	}
	return out
}
