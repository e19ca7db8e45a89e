package files

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"financetracker/domain"
	"financetracker/facade"
	"financetracker/repo"

	"github.com/shopspring/decimal"
)

type stepRecorder struct {
	steps   []string
	readErr error
	saved   int
	saveErr error
}

func (r *stepRecorder) ReadFile(path string) ([]byte, error) {
	r.steps = append(r.steps, "read:"+path)
	return []byte("payload"), r.readErr
}

func (r *stepRecorder) ParseData(data []byte) ([]Row, error) {
	r.steps = append(r.steps, "parse:"+string(data))
	return []Row{{}, {}}, nil
}

func (r *stepRecorder) SaveData(_ context.Context, rows []Row) (int, error) {
	r.steps = append(r.steps, "save")
	if r.saveErr != nil {
		return r.saved, r.saveErr
	}
	return len(rows), nil
}

func TestImportRunsStepsInOrder(t *testing.T) {
	r := &stepRecorder{}
	n, err := Import(context.Background(), r, "in.csv")
	if err != nil || n != 2 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	want := []string{"read:in.csv", "parse:payload", "save"}
	if !reflect.DeepEqual(r.steps, want) {
		t.Fatalf("steps got=%v want=%v", r.steps, want)
	}
}

func TestImportStopsOnReadError(t *testing.T) {
	boom := errors.New("boom")
	r := &stepRecorder{readErr: boom}
	if _, err := Import(context.Background(), r, "x"); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if len(r.steps) != 1 {
		t.Fatalf("later steps ran: %v", r.steps)
	}
}

func TestImportReportsRowsSavedBeforeFailure(t *testing.T) {
	boom := errors.New("boom")
	r := &stepRecorder{saved: 1, saveErr: boom}
	n, err := Import(context.Background(), r, "x")
	if !errors.Is(err, boom) || n != 1 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestUnknownFormats(t *testing.T) {
	if _, err := EncoderFor("xml"); err == nil {
		t.Fatalf("expected error for xml encoder")
	}
	if _, err := ParserFor("xml"); err == nil {
		t.Fatalf("expected error for xml parser")
	}
}

func newOpFacade() *facade.OperationFacade {
	var f domain.Factory
	cats := facade.NewCategoryFacade(f, repo.NewMemCategoryRepo())
	return facade.NewOperationFacade(f, cats, repo.NewMemOperationRepo())
}

func TestExportImportRoundTrip(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }
	src := newOpFacade()
	if _, err := src.AddIncome(facade.AddOpInput{AccountID: "a", Amount: decimal.NewFromInt(1500), When: day(1), CategoryName: "Salary", Description: "May"}); err != nil {
		t.Fatal(err)
	}
	if _, err := src.AddExpense(facade.AddOpInput{AccountID: "a", Amount: decimal.RequireFromString("12.40"), When: day(3), CategoryName: "Food", Description: "lunch, with \"friends\""}); err != nil {
		t.Fatal(err)
	}

	for _, format := range []string{"csv", "json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			enc, err := EncoderFor(format)
			if err != nil {
				t.Fatal(err)
			}
			path := filepath.Join(t.TempDir(), "ops."+format)
			if err := ExportOperationsFile(path, src.GetAll(), src.Categories.GetAll(), enc); err != nil {
				t.Fatalf("export: %v", err)
			}

			parser, err := ParserFor(format)
			if err != nil {
				t.Fatal(err)
			}
			dst := newOpFacade()
			imp := FileImporter{Parser: parser, Saver: LedgerSaver{Ops: dst, AccountID: "b"}}
			n, err := Import(context.Background(), imp, path)
			if err != nil || n != 2 {
				t.Fatalf("import: n=%d err=%v", n, err)
			}

			want := BuildRows(src.GetAll(), src.Categories.GetAll())
			got := BuildRows(dst.GetAll(), dst.Categories.GetAll())
			if len(got) != len(want) {
				t.Fatalf("rows got=%d want=%d", len(got), len(want))
			}
			for i := range want {
				g, w := got[i], want[i]
				if g.Type != w.Type || !g.Amount.Equal(w.Amount) || !g.Date.Equal(w.Date) ||
					g.Category != w.Category || g.Description != w.Description {
					t.Fatalf("[%d] got %+v want %+v", i, g, w)
				}
			}
			for _, o := range dst.GetAll() {
				if o.BankAccount != "b" {
					t.Fatalf("imported operation on account %q", o.BankAccount)
				}
			}
		})
	}
}

func TestCSVParserSkipsBadRows(t *testing.T) {
	data := []byte("type,amount,date,category,description\n" +
		"Income,10,2024-01-01,Salary,ok\n" +
		"Bogus,10,2024-01-01,Salary,bad type\n" +
		"Expense,abc,2024-01-01,Food,bad amount\n" +
		"Expense,5,01/02/2024,Food,bad date\n" +
		"Expense,5\n" +
		"1,7,2024-01-02,Food,numeric type\n")
	rows, err := CSVParser{}.Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 2 || rows[0].Type != domain.OpIncome || rows[1].Type != domain.OpExpense {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestLedgerSaverReportsRow(t *testing.T) {
	ops := newOpFacade()
	rows := []Row{
		{Type: domain.OpIncome, Amount: decimal.NewFromInt(1), Category: "A"},
		{Type: domain.OpExpense, Amount: decimal.Zero, Category: "B"},
	}
	n, err := LedgerSaver{Ops: ops, AccountID: "a"}.Save(context.Background(), rows)
	if !errors.Is(err, domain.ErrNonPositiveAmount) || n != 1 {
		t.Fatalf("expected ErrNonPositiveAmount after one row, got n=%d err=%v", n, err)
	}
	if len(ops.GetAll()) != 1 {
		t.Fatalf("rows before the failure must be kept")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (LedgerSaver{Ops: ops}).Save(ctx, rows); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRoundTripKeepsDanglingCategoryAndTime(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2024, 1, 15, h, m, 0, 0, time.UTC) }
	src := newOpFacade()
	food, err := src.Categories.Create(domain.CatExpense, "Food")
	if err != nil {
		t.Fatal(err)
	}
	gone, err := src.Categories.Create(domain.CatExpense, "Gone")
	if err != nil {
		t.Fatal(err)
	}
	for _, o := range []struct {
		amount int64
		cat    domain.CategoryID
		when   time.Time
	}{
		{10, food.ID, at(9, 0)},
		{20, gone.ID, at(13, 30)},
		{30, food.ID, at(18, 45)},
	} {
		if _, err := src.Create(domain.OpExpense, "a", decimal.NewFromInt(o.amount), o.when, o.cat, "b"); err != nil {
			t.Fatal(err)
		}
	}
	src.Categories.Delete(gone.ID)

	for _, format := range []string{"csv", "json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			enc, _ := EncoderFor(format)
			parser, _ := ParserFor(format)
			path := filepath.Join(t.TempDir(), "ops."+format)
			if err := ExportOperationsFile(path, src.GetAll(), src.Categories.GetAll(), enc); err != nil {
				t.Fatalf("export: %v", err)
			}

			dst := newOpFacade()
			n, err := Import(context.Background(), FileImporter{Parser: parser, Saver: LedgerSaver{Ops: dst, AccountID: "b"}}, path)
			if err != nil || n != 3 {
				t.Fatalf("import: n=%d err=%v", n, err)
			}

			ops := dst.GetAll()
			if !ops[1].Date.Equal(at(13, 30)) {
				t.Fatalf("time of day lost: %v", ops[1].Date)
			}
			c, ok := dst.Categories.GetByID(ops[1].Category)
			if !ok || c.Name != UncategorizedName {
				t.Fatalf("dangling row category got %+v ok=%v", c, ok)
			}
			if len(dst.Categories.GetAll()) != 2 {
				t.Fatalf("categories got=%d want=2", len(dst.Categories.GetAll()))
			}
		})
	}
}

func TestParseRowDateAcceptsDayOnly(t *testing.T) {
	got, ok := parseRowDate("2024-01-15")
	if !ok || !got.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("got %v ok=%v", got, ok)
	}
	if _, ok := parseRowDate("15.01.2024"); ok {
		t.Fatalf("unexpected parse of 15.01.2024")
	}
}

func TestLedgerSaverFillsBlankCategory(t *testing.T) {
	ops := newOpFacade()
	rows := []Row{{Type: domain.OpIncome, Amount: decimal.NewFromInt(5), Category: " "}}
	if n, err := (LedgerSaver{Ops: ops, AccountID: "a"}).Save(context.Background(), rows); err != nil || n != 1 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	cats := ops.Categories.GetAll()
	if len(cats) != 1 || cats[0].Name != UncategorizedName || !cats[0].IsIncome() {
		t.Fatalf("unexpected categories %+v", cats)
	}
}
