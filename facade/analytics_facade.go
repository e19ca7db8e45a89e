package facade

import (
	"sort"
	"time"

	"financetracker/domain"
	"financetracker/service"

	"github.com/shopspring/decimal"
)

type AnalyticsFacade struct {
	Svc        *service.AnalyticsService
	Categories CategoryRepo
}

func NewAnalyticsFacade(svc *service.AnalyticsService, categories CategoryRepo) *AnalyticsFacade {
	return &AnalyticsFacade{Svc: svc, Categories: categories}
}

func (a *AnalyticsFacade) Summary(from, to time.Time) service.Summary {
	return a.Svc.SummaryByPeriod(from, to)
}

func (a *AnalyticsFacade) BalanceDelta(from, to time.Time) decimal.Decimal {
	return a.Svc.BalanceDelta(from, to)
}

// GroupByCategory группирует по всем сохранённым категориям.
func (a *AnalyticsFacade) GroupByCategory(t domain.OperationType) []service.CategoryTotal {
	return a.Svc.GroupByCategory(a.Categories.List(), t)
}

type Breakdown struct {
	Incomes  []service.CategoryTotal
	Expenses []service.CategoryTotal
}

// Breakdown: обе группировки сразу, по убыванию суммы.
func (a *AnalyticsFacade) Breakdown() Breakdown {
	cats := a.Categories.List()
	out := Breakdown{
		Incomes:  a.Svc.GroupByCategory(cats, domain.OpIncome),
		Expenses: a.Svc.GroupByCategory(cats, domain.OpExpense),
	}
	sort.SliceStable(out.Incomes, func(i, j int) bool { return out.Incomes[i].Total.GreaterThan(out.Incomes[j].Total) })
	sort.SliceStable(out.Expenses, func(i, j int) bool { return out.Expenses[i].Total.GreaterThan(out.Expenses[j].Total) })
	return out
}
