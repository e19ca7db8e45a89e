package files

import (
	"context"
	"fmt"
	"os"
	"strings"

	"financetracker/domain"
	"financetracker/facade"
)

// Importer задаёт шаги шаблонного метода импорта. Import всегда вызывает их
// в порядке чтение, разбор, сохранение.
type Importer interface {
	ReadFile(path string) ([]byte, error)
	ParseData(data []byte) ([]Row, error)
	// SaveData возвращает число сохранённых строк и при ошибке тоже.
	SaveData(ctx context.Context, rows []Row) (int, error)
}

// Import выполняет шаги imp и возвращает число сохранённых строк.
func Import(ctx context.Context, imp Importer, path string) (int, error) {
	data, err := imp.ReadFile(path)
	if err != nil {
		return 0, err
	}
	rows, err := imp.ParseData(data)
	if err != nil {
		return 0, err
	}
	return imp.SaveData(ctx, rows)
}

type Parser interface {
	Parse(data []byte) ([]Row, error)
}

type Saver interface {
	Save(ctx context.Context, rows []Row) (int, error)
}

// ParserFor: парсер по имени формата (csv, json, yaml).
func ParserFor(format string) (Parser, error) {
	switch format {
	case "csv":
		return CSVParser{}, nil
	case "json":
		return JSONParser{}, nil
	case "yaml", "yml":
		return YAMLParser{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// FileImporter читает файл с диска, разбор и сохранение делегирует.
type FileImporter struct {
	Parser Parser
	Saver  Saver
}

func (FileImporter) ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

func (i FileImporter) ParseData(data []byte) ([]Row, error) { return i.Parser.Parse(data) }

func (i FileImporter) SaveData(ctx context.Context, rows []Row) (int, error) {
	return i.Saver.Save(ctx, rows)
}

// LedgerSaver записывает строки операциями на один счёт. Категория ищется
// по имени и создаётся с типом строки; пустое имя заменяется на
// UncategorizedName. Строки до ошибочной остаются сохранёнными.
type LedgerSaver struct {
	Ops       *facade.OperationFacade
	AccountID domain.AccountID
}

func (s LedgerSaver) Save(ctx context.Context, rows []Row) (int, error) {
	saved := 0
	for i, r := range rows {
		if err := ctx.Err(); err != nil {
			return saved, err
		}
		cat := r.Category
		if strings.TrimSpace(cat) == "" {
			cat = UncategorizedName
		}
		in := facade.AddOpInput{
			AccountID:    s.AccountID,
			Amount:       r.Amount,
			When:         r.Date,
			CategoryName: cat,
			Description:  r.Description,
		}
		var err error
		if r.Type == domain.OpIncome {
			_, err = s.Ops.AddIncome(in)
		} else {
			_, err = s.Ops.AddExpense(in)
		}
		if err != nil {
			return saved, fmt.Errorf("row %d: %w", i+1, err)
		}
		saved++
	}
	return saved, nil
}
