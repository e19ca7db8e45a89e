package menu

import (
	"fmt"

	"financetracker/domain"
	"financetracker/service"

	"github.com/olekukonko/tablewriter"
)

func (s *Shell) Draw(m Menu) {
	fmt.Fprintln(s.out, "==== Меню ====")
	for i, it := range m.Items {
		fmt.Fprintf(s.out, "%d) %s\n", i+1, it.Field)
	}
}

func (s *Shell) table(header []string, rows [][]string) {
	t := tablewriter.NewWriter(s.out)
	t.SetHeader(header)
	t.SetAutoWrapText(false)
	t.AppendBulk(rows)
	t.Render()
}

func (s *Shell) renderAccounts(accs []*domain.BankAccount) {
	rows := make([][]string, 0, len(accs))
	for i, a := range accs {
		rows = append(rows, []string{fmt.Sprint(i + 1), string(a.ID), a.Name, a.Balance.String()})
	}
	s.table([]string{"№", "ID", "Название", "Баланс"}, rows)
}

func (s *Shell) renderCategories(cats []*domain.Category) {
	rows := make([][]string, 0, len(cats))
	for i, c := range cats {
		rows = append(rows, []string{fmt.Sprint(i + 1), string(c.ID), c.Name, c.Type.String()})
	}
	s.table([]string{"№", "ID", "Название", "Тип"}, rows)
}

func (s *Shell) renderOperations(ops []*domain.Operation) {
	rows := make([][]string, 0, len(ops))
	for i, o := range ops {
		cat := ""
		if c, ok := s.d.Cat.GetByID(o.Category); ok {
			cat = c.Name
		}
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			o.Date.Format("2006-01-02 15:04"),
			o.Type.String(),
			o.Amount.String(),
			cat,
			o.Description,
		})
	}
	s.table([]string{"№", "Дата", "Тип", "Сумма", "Категория", "Описание"}, rows)
}

func (s *Shell) renderTotals(totals []service.CategoryTotal) {
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{t.Category.Name, t.Category.Type.String(), t.Total.String()})
	}
	s.table([]string{"Категория", "Тип", "Итого"}, rows)
}
