package menu

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"financetracker/commands"
	"financetracker/files"
	"financetracker/logx"
	"financetracker/service"

	"github.com/shopspring/decimal"
)

func actionCreateAccount(ctx context.Context, s *Shell) error {
	name, err := s.readLine("Название счета: ")
	if err != nil {
		return err
	}
	bal, err := s.readDecimal("Начальный баланс (пусто = 0): ", decimal.Zero)
	if err != nil {
		return err
	}
	cmd := &commands.CreateAccountCommand{Accounts: s.d.Acc, Title: name, Balance: bal}
	if err := cmd.Execute(ctx); err != nil {
		return err
	}
	s.log.Debug("account created", logx.FieldOperation, logx.OpCreate, logx.FieldEntityID, cmd.Created.ID)
	fmt.Fprintln(s.out, "Счёт создан:", cmd.Created.Name, cmd.Created.ID)
	return nil
}

func actionListAccounts(_ context.Context, s *Shell) error {
	accs := s.d.Acc.GetAll()
	if len(accs) == 0 {
		fmt.Fprintln(s.out, "Счетов нет")
		return nil
	}
	s.renderAccounts(accs)
	return nil
}

func actionRenameAccount(_ context.Context, s *Shell) error {
	acc, err := s.chooseAccount()
	if err != nil {
		return err
	}
	name, err := s.readLine("Новое имя счёта: ")
	if err != nil {
		return err
	}
	if err := s.d.Acc.Rename(acc.ID, name); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Счёт переименован.")
	return nil
}

func actionDeleteAccount(_ context.Context, s *Shell) error {
	acc, err := s.chooseAccount()
	if err != nil {
		return err
	}
	if n := len(s.d.Op.ListByAccount(acc.ID)); n > 0 {
		fmt.Fprintf(s.out, "Внимание: на счёт ссылается операций: %d, они останутся.\n", n)
	}
	ok, err := s.confirm("Удалить счёт?")
	if err != nil || !ok {
		return err
	}
	s.d.Acc.Delete(acc.ID)
	s.log.Debug("account deleted", logx.FieldOperation, logx.OpDelete, logx.FieldEntityID, acc.ID)
	fmt.Fprintln(s.out, "Счёт удалён.")
	return nil
}

func actionCreateCategory(_ context.Context, s *Shell) error {
	name, err := s.readLine("Название категории: ")
	if err != nil {
		return err
	}
	t, err := s.readType("Тип")
	if err != nil {
		return err
	}
	c, err := s.d.Cat.Create(t, name)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Категория создана:", c.Name, c.ID)
	return nil
}

func actionListCategories(_ context.Context, s *Shell) error {
	cats := s.d.Cat.GetAll()
	if len(cats) == 0 {
		fmt.Fprintln(s.out, "Категорий нет")
		return nil
	}
	s.renderCategories(cats)
	return nil
}

func actionRenameCategory(_ context.Context, s *Shell) error {
	c, err := s.chooseCategory()
	if err != nil {
		return err
	}
	name, err := s.readLine("Новое имя категории: ")
	if err != nil {
		return err
	}
	if err := s.d.Cat.Rename(c.ID, name); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Категория переименована.")
	return nil
}

func actionDeleteCategory(_ context.Context, s *Shell) error {
	c, err := s.chooseCategory()
	if err != nil {
		return err
	}
	ok, err := s.confirm("Удалить категорию?")
	if err != nil || !ok {
		return err
	}
	s.d.Cat.Delete(c.ID)
	fmt.Fprintln(s.out, "Категория удалена.")
	return nil
}

// actionAddOperation выбирает счёт и категорию из текущих списков, поэтому
// на момент записи операции оба существуют.
func actionAddOperation(_ context.Context, s *Shell) error {
	acc, err := s.chooseAccount()
	if err != nil {
		return err
	}
	cat, err := s.chooseCategory()
	if err != nil {
		return err
	}
	amt, err := s.readDecimal("Сумма: ", decimal.Zero)
	if err != nil {
		return err
	}
	t, err := s.readType("Тип операции")
	if err != nil {
		return err
	}
	when, err := s.readDate("Дата (пусто = сейчас)", time.Now())
	if err != nil {
		return err
	}
	desc, err := s.readLine("Описание: ")
	if err != nil {
		return err
	}
	op, err := s.d.Op.Create(t, acc.ID, amt, when, cat.ID, desc)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Операция добавлена:", op.ID)
	return nil
}

func actionListOperations(_ context.Context, s *Shell) error {
	ops := s.d.Op.GetAll()
	if len(ops) == 0 {
		fmt.Fprintln(s.out, "Операций нет")
		return nil
	}
	s.renderOperations(ops)
	return nil
}

func actionDeleteOperation(_ context.Context, s *Shell) error {
	op, err := s.chooseOperation()
	if err != nil {
		return err
	}
	ok, err := s.confirm("Удалить выбранную операцию?")
	if err != nil || !ok {
		return err
	}
	s.d.Op.Delete(op.ID)
	fmt.Fprintln(s.out, "Операция удалена.")
	return nil
}

func actionGroupByCategory(_ context.Context, s *Shell) error {
	t, err := s.readType("Группировка по категориям")
	if err != nil {
		return err
	}
	totals := s.d.Ana.GroupByCategory(t)
	if len(totals) == 0 {
		fmt.Fprintln(s.out, "Нет данных")
		return nil
	}
	s.renderTotals(totals)
	return nil
}

func actionBreakdown(_ context.Context, s *Shell) error {
	b := s.d.Ana.Breakdown()
	if len(b.Incomes) == 0 && len(b.Expenses) == 0 {
		fmt.Fprintln(s.out, "Нет данных")
		return nil
	}
	for _, part := range []struct {
		title  string
		totals []service.CategoryTotal
	}{
		{"Доходы по категориям:", b.Incomes},
		{"Расходы по категориям:", b.Expenses},
	} {
		fmt.Fprintln(s.out, part.title)
		if len(part.totals) == 0 {
			fmt.Fprintln(s.out, "  нет")
			continue
		}
		s.renderTotals(part.totals)
	}
	return nil
}

// readRange читает период по дням включительно; дата конца берётся целиком.
func (s *Shell) readRange() (time.Time, time.Time, error) {
	now := time.Now()
	from, err := s.readDate("Дата начала (пусто = 30 дней назад)", now.AddDate(0, 0, -30))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := s.readDate("Дата конца (пусто = сегодня)", now)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, endOfDay(to), nil
}

func actionBalanceDelta(_ context.Context, s *Shell) error {
	from, to, err := s.readRange()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Разница доходов и расходов:", s.d.Ana.BalanceDelta(from, to).String())
	return nil
}

func actionSummary(_ context.Context, s *Shell) error {
	from, to, err := s.readRange()
	if err != nil {
		return err
	}
	sum := s.d.Ana.Summary(from, to)
	fmt.Fprintf(s.out, "Доход: %s | Расход: %s | Итого: %s\n",
		sum.Income.String(), sum.Expense.String(), sum.Net.String())
	return nil
}

func actionExportRecords(_ context.Context, s *Shell) error {
	path, err := s.readLine(fmt.Sprintf("Путь к файлу для экспорта (пусто = %s): ", s.d.ExportPath))
	if err != nil {
		return err
	}
	if path == "" {
		path = s.d.ExportPath
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := files.ExportAll(f, s.d.Acc.GetAll(), s.d.Cat.GetAll(), s.d.Op.GetAll()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.log.Info("records exported", logx.FieldOperation, logx.OpExport, logx.FieldPath, path)
	fmt.Fprintln(s.out, "Данные экспортированы в", path)
	return nil
}

func (s *Shell) readFormat() (string, error) {
	raw, err := s.readLine("Формат (csv/json/yaml, пусто = csv): ")
	if err != nil {
		return "", err
	}
	if raw == "" {
		return "csv", nil
	}
	return strings.ToLower(raw), nil
}

func actionExportOps(_ context.Context, s *Shell) error {
	format, err := s.readFormat()
	if err != nil {
		return err
	}
	enc, err := files.EncoderFor(format)
	if err != nil {
		return err
	}
	path, err := s.readLine("Путь к файлу (пусто = ops." + format + "): ")
	if err != nil {
		return err
	}
	if path == "" {
		path = "ops." + format
	}
	ops := s.d.Op.GetAll()
	if err := files.ExportOperationsFile(path, ops, s.d.Cat.GetAll(), enc); err != nil {
		return err
	}
	s.log.Info("operations exported",
		logx.FieldOperation, logx.OpExport, logx.FieldFormat, format, logx.FieldPath, path, logx.FieldCount, len(ops))
	fmt.Fprintln(s.out, "Экспортировано в", path)
	return nil
}

func actionImportOps(ctx context.Context, s *Shell) error {
	format, err := s.readFormat()
	if err != nil {
		return err
	}
	parser, err := files.ParserFor(format)
	if err != nil {
		return err
	}
	path, err := s.readLine("Путь к файлу для импорта: ")
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(s.out, "Файл не указан")
		return nil
	}
	acc, err := s.chooseAccount()
	if err != nil {
		return err
	}
	imp := files.FileImporter{
		Parser: parser,
		Saver:  files.LedgerSaver{Ops: s.d.Op, AccountID: acc.ID},
	}
	n, err := files.Import(ctx, imp, path)
	if err != nil {
		if n > 0 {
			fmt.Fprintf(s.out, "Импортировано операций до ошибки: %d.\n", n)
		}
		s.log.Warn("import stopped",
			logx.FieldOperation, logx.OpImport, logx.FieldPath, path, logx.FieldCount, n, logx.FieldError, err)
		return err
	}
	s.log.Info("operations imported",
		logx.FieldOperation, logx.OpImport, logx.FieldFormat, format, logx.FieldPath, path, logx.FieldCount, n)
	fmt.Fprintf(s.out, "Импортировано операций: %d.\n", n)
	return nil
}
