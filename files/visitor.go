package files

import (
	"fmt"
	"io"
	"strings"

	"financetracker/domain"
)

const (
	recordSep        = ";"
	recordDateLayout = "2006-01-02 15:04:05"
)

// ExportVisitor: по методу на каждый вид сущности; набор закрыт.
type ExportVisitor interface {
	VisitAccount(a *domain.BankAccount) error
	VisitCategory(c *domain.Category) error
	VisitOperation(o *domain.Operation) error
}

// Visit вызывает метод посетителя, соответствующий e.
func Visit(v ExportVisitor, e domain.Entity) error {
	switch x := e.(type) {
	case *domain.BankAccount:
		return v.VisitAccount(x)
	case *domain.Category:
		return v.VisitCategory(x)
	case *domain.Operation:
		return v.VisitOperation(x)
	default:
		return fmt.Errorf("export: unsupported entity %T", e)
	}
}

// FormatRecord: одна запись с переводом строки в конце. Текст не
// экранируется: ';' в имени или описании даёт лишние поля.
func FormatRecord(e domain.Entity) (string, error) {
	var fields []string
	switch x := e.(type) {
	case *domain.BankAccount:
		fields = []string{"Account", string(x.ID), x.Name, x.Balance.String()}
	case *domain.Category:
		fields = []string{"Category", string(x.ID), x.Type.String(), x.Name}
	case *domain.Operation:
		fields = []string{
			"Operation",
			string(x.ID),
			x.Type.String(),
			string(x.BankAccount),
			x.Amount.String(),
			x.Date.Format(recordDateLayout),
			string(x.Category),
			x.Description,
		}
	default:
		return "", fmt.Errorf("export: unsupported entity %T", e)
	}
	return strings.Join(fields, recordSep) + "\n", nil
}

// CSVExportVisitor пишет по одной записи через ';' на сущность.
type CSVExportVisitor struct {
	w io.Writer
}

func NewCSVExportVisitor(w io.Writer) *CSVExportVisitor { return &CSVExportVisitor{w: w} }

func (v *CSVExportVisitor) VisitAccount(a *domain.BankAccount) error { return v.write(a) }
func (v *CSVExportVisitor) VisitCategory(c *domain.Category) error   { return v.write(c) }
func (v *CSVExportVisitor) VisitOperation(o *domain.Operation) error { return v.write(o) }

func (v *CSVExportVisitor) write(e domain.Entity) error {
	rec, err := FormatRecord(e)
	if err != nil {
		return err
	}
	_, err = io.WriteString(v.w, rec)
	return err
}

// ExportAll пишет сначала счета, затем категории, затем операции.
func ExportAll(w io.Writer, accounts []*domain.BankAccount, cats []*domain.Category, ops []*domain.Operation) error {
	entities := make([]domain.Entity, 0, len(accounts)+len(cats)+len(ops))
	for _, a := range accounts {
		entities = append(entities, a)
	}
	for _, c := range cats {
		entities = append(entities, c)
	}
	for _, o := range ops {
		entities = append(entities, o)
	}
	v := NewCSVExportVisitor(w)
	for _, e := range entities {
		if err := Visit(v, e); err != nil {
			return err
		}
	}
	return nil
}
