package facade

import (
	"errors"
	"testing"
	"time"

	"financetracker/domain"
	"financetracker/repo"
	"financetracker/service"

	"github.com/shopspring/decimal"
)

type ledger struct {
	acc *AccountFacade
	cat *CategoryFacade
	op  *OperationFacade
	ana *AnalyticsFacade
}

func newLedger() ledger {
	var f domain.Factory
	ops := repo.NewMemOperationRepo()
	cats := repo.NewMemCategoryRepo()
	cat := NewCategoryFacade(f, cats)
	return ledger{
		acc: NewAccountFacade(f, repo.NewMemAccountRepo()),
		cat: cat,
		op:  NewOperationFacade(f, cat, ops),
		ana: NewAnalyticsFacade(service.NewAnalyticsService(ops), cats),
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCreateThenDeleteAccount(t *testing.T) {
	l := newLedger()
	a, err := l.acc.Create("Wallet", dec("1000"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, ok := l.acc.GetByID(a.ID)
	if !ok || got != a {
		t.Fatalf("GetByID returned %+v ok=%v", got, ok)
	}
	l.acc.Delete(a.ID)
	if _, ok := l.acc.GetByID(a.ID); ok {
		t.Fatalf("account still present after delete")
	}
	if len(l.acc.GetAll()) != 0 {
		t.Fatalf("expected empty account list")
	}
	// deleting twice is a no-op
	l.acc.Delete(a.ID)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	l := newLedger()
	if _, err := l.acc.Create("  ", decimal.Zero); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := l.cat.Create(domain.CatIncome, ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := l.op.Create(domain.OpIncome, "a", decimal.Zero, time.Now(), "c", ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(l.acc.GetAll())+len(l.cat.GetAll())+len(l.op.GetAll()) != 0 {
		t.Fatalf("invalid input must not be stored")
	}
}

func TestRenameAndChangeType(t *testing.T) {
	l := newLedger()
	a, _ := l.acc.Create("Wallet", decimal.Zero)
	if err := l.acc.Rename(a.ID, "Cash"); err != nil || a.Name != "Cash" {
		t.Fatalf("rename: name=%q err=%v", a.Name, err)
	}
	if err := l.acc.Rename("missing", "X"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	if err := l.acc.Rename(a.ID, " "); !errors.Is(err, domain.ErrEmptyAccountName) || a.Name != "Cash" {
		t.Fatalf("blank rename: name=%q err=%v", a.Name, err)
	}

	c, _ := l.cat.Create(domain.CatExpense, "Food")
	if err := l.cat.ChangeType(c.ID, domain.CatIncome); err != nil || !c.IsIncome() {
		t.Fatalf("change type: %+v err=%v", c, err)
	}
	if err := l.cat.Rename("missing", "X"); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestEnsureReusesByName(t *testing.T) {
	l := newLedger()
	first, err := l.cat.Ensure(domain.CatExpense, "Food")
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	again, err := l.cat.Ensure(domain.CatIncome, " food ")
	if err != nil || again != first {
		t.Fatalf("expected the existing category, got %+v err=%v", again, err)
	}
	if len(l.cat.GetAll()) != 1 {
		t.Fatalf("expected one category, got %d", len(l.cat.GetAll()))
	}
}

func TestAddExpenseCreatesCategory(t *testing.T) {
	l := newLedger()
	a, _ := l.acc.Create("Wallet", decimal.Zero)
	op, err := l.op.AddExpense(AddOpInput{
		AccountID:    a.ID,
		Amount:       dec("12.50"),
		When:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		CategoryName: "Taxi",
	})
	if err != nil {
		t.Fatalf("add expense: %v", err)
	}
	cats := l.cat.GetAll()
	if len(cats) != 1 || cats[0].Name != "Taxi" || !cats[0].IsExpense() || op.Category != cats[0].ID {
		t.Fatalf("unexpected categories %+v for op %+v", cats, op)
	}
}

func TestAddWithInvalidAmountLeavesNoCategory(t *testing.T) {
	l := newLedger()
	_, err := l.op.AddIncome(AddOpInput{AccountID: "a", Amount: dec("-5"), When: time.Now(), CategoryName: "Bonus"})
	if !errors.Is(err, domain.ErrNonPositiveAmount) {
		t.Fatalf("expected ErrNonPositiveAmount, got %v", err)
	}
	if len(l.cat.GetAll()) != 0 || len(l.op.GetAll()) != 0 {
		t.Fatalf("nothing should be stored")
	}
	if _, err := l.op.AddIncome(AddOpInput{Amount: dec("5"), CategoryName: " "}); err == nil {
		t.Fatalf("expected error for blank category")
	}
}

func TestDeleteDoesNotCascade(t *testing.T) {
	l := newLedger()
	a, _ := l.acc.Create("Wallet", decimal.Zero)
	c, _ := l.cat.Create(domain.CatExpense, "Food")
	op, _ := l.op.Create(domain.OpExpense, a.ID, dec("10"), time.Now(), c.ID, "")

	l.acc.Delete(a.ID)
	l.cat.Delete(c.ID)
	got, ok := l.op.GetByID(op.ID)
	if !ok || got.BankAccount != a.ID || got.Category != c.ID {
		t.Fatalf("operation should keep its dangling references: %+v ok=%v", got, ok)
	}
	if n := len(l.op.ListByAccount(a.ID)); n != 1 {
		t.Fatalf("ListByAccount got=%d want=1", n)
	}
}

func TestLunchScenario(t *testing.T) {
	l := newLedger()
	when := time.Date(2024, 1, 15, 13, 0, 0, 0, time.UTC)

	a, err := l.acc.Create("Wallet", dec("1000"))
	if err != nil {
		t.Fatal(err)
	}
	c, err := l.cat.Create(domain.CatExpense, "Food")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.op.Create(domain.OpExpense, a.ID, dec("250"), when, c.ID, "Lunch"); err != nil {
		t.Fatal(err)
	}

	got := l.ana.GroupByCategory(domain.OpExpense)
	if len(got) != 1 || got[0].Category != c || !got[0].Total.Equal(dec("250")) {
		t.Fatalf("unexpected grouping %+v", got)
	}
	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }
	if delta := l.ana.BalanceDelta(day(1), day(31)); !delta.Equal(dec("-250")) {
		t.Fatalf("delta got=%s want=-250", delta)
	}
	if !a.Balance.Equal(dec("1000")) {
		t.Fatalf("operations must not touch the account balance, got %s", a.Balance)
	}
}

func TestBreakdownSortsByTotal(t *testing.T) {
	l := newLedger()
	when := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	small, _ := l.cat.Create(domain.CatExpense, "Coffee")
	big, _ := l.cat.Create(domain.CatExpense, "Rent")
	salary, _ := l.cat.Create(domain.CatIncome, "Salary")
	l.op.Create(domain.OpExpense, "a", dec("5"), when, small.ID, "")
	l.op.Create(domain.OpExpense, "a", dec("700"), when, big.ID, "")
	l.op.Create(domain.OpIncome, "a", dec("1500"), when, salary.ID, "")

	b := l.ana.Breakdown()
	if len(b.Expenses) != 2 || b.Expenses[0].Category != big || b.Expenses[1].Category != small {
		t.Fatalf("unexpected expense order %+v", b.Expenses)
	}
	if len(b.Incomes) != 1 || !b.Incomes[0].Total.Equal(dec("1500")) {
		t.Fatalf("unexpected incomes %+v", b.Incomes)
	}
}
