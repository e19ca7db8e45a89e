package files

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

var csvHeader = []string{"type", "amount", "date", "category", "description"}

// CSVEncoder пишет строки в формате: type,amount,date,category,description
type CSVEncoder struct{}

func (CSVEncoder) EncodeRows(rows []Row) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		rec := toRecord(r)
		if err := w.Write([]string{rec.Type, rec.Amount, rec.Date, rec.Category, rec.Description}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type CSVParser struct{}

// Parse пропускает хедер и нечитаемые записи.
func (CSVParser) Parse(data []byte) ([]Row, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(recs) <= 1 {
		return nil, nil // только хедер
	}
	out := make([]Row, 0, len(recs)-1)
	for _, rec := range recs[1:] {
		if len(rec) < len(csvHeader) {
			continue
		}
		row, ok := fromRecord(rowRecord{
			Type:        rec[0],
			Amount:      rec[1],
			Date:        rec[2],
			Category:    rec[3],
			Description: rec[4],
		})
		if !ok {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}
