package files

import (
	"fmt"
	"io"
	"os"

	"financetracker/domain"
)

// Encoder: стратегия кодирования строк операций.
type Encoder interface {
	EncodeRows(rows []Row) ([]byte, error)
}

// EncoderFor: кодировщик по имени формата (csv, json, yaml).
func EncoderFor(format string) (Encoder, error) {
	switch format {
	case "csv":
		return CSVEncoder{}, nil
	case "json":
		return JSONEncoder{}, nil
	case "yaml", "yml":
		return YAMLEncoder{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// BuildRows переводит операции в строки, имена категорий берутся из cats.
// Операция с удалённой категорией получает UncategorizedName, чтобы строку
// можно было импортировать обратно.
func BuildRows(ops []*domain.Operation, cats []*domain.Category) []Row {
	names := make(map[domain.CategoryID]string, len(cats))
	for _, c := range cats {
		if _, ok := names[c.ID]; !ok {
			names[c.ID] = c.Name
		}
	}
	rows := make([]Row, 0, len(ops))
	for _, o := range ops {
		name, ok := names[o.Category]
		if !ok {
			name = UncategorizedName
		}
		rows = append(rows, Row{
			Type:        o.Type,
			Amount:      o.Amount,
			Date:        o.Date,
			Category:    name,
			Description: o.Description,
		})
	}
	return rows
}

func ExportOperations(w io.Writer, ops []*domain.Operation, cats []*domain.Category, enc Encoder) error {
	b, err := enc.EncodeRows(BuildRows(ops, cats))
	if err != nil {
		return fmt.Errorf("encode rows: %w", err)
	}
	_, err = w.Write(b)
	return err
}

func ExportOperationsFile(path string, ops []*domain.Operation, cats []*domain.Category, enc Encoder) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := ExportOperations(f, ops, cats, enc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
