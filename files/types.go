package files

import (
	"time"

	"financetracker/domain"

	"github.com/shopspring/decimal"
)

// Дата пишется с временем и зоной; при чтении принимается и старый формат
// без времени.
const (
	dateLayout    = time.RFC3339Nano
	dayDateLayout = "2006-01-02"
)

// UncategorizedName подставляется вместо имени удалённой категории.
const UncategorizedName = "Без категории"

// Row: универсальная запись операции для импорт/экспорт.
type Row struct {
	Type        domain.OperationType
	Amount      decimal.Decimal
	Date        time.Time
	Category    string // имя категории
	Description string
}

// rowRecord: текстовое представление строки для JSON и YAML.
type rowRecord struct {
	Type        string `json:"type"        yaml:"type"`
	Amount      string `json:"amount"      yaml:"amount"`
	Date        string `json:"date"        yaml:"date"`
	Category    string `json:"category"    yaml:"category"`
	Description string `json:"description" yaml:"description"`
}

func toRecord(r Row) rowRecord {
	return rowRecord{
		Type:        r.Type.String(),
		Amount:      r.Amount.String(),
		Date:        r.Date.Format(dateLayout),
		Category:    r.Category,
		Description: r.Description,
	}
}

// fromRecord возвращает false для нечитаемой записи; импорт её пропускает.
func fromRecord(rec rowRecord) (Row, bool) {
	t, err := domain.ParseOperationType(rec.Type)
	if err != nil {
		return Row{}, false
	}
	amt, err := decimal.NewFromString(rec.Amount)
	if err != nil {
		return Row{}, false
	}
	dt, ok := parseRowDate(rec.Date)
	if !ok {
		return Row{}, false
	}
	return Row{
		Type:        t,
		Amount:      amt,
		Date:        dt,
		Category:    rec.Category,
		Description: rec.Description,
	}, true
}

func parseRowDate(s string) (time.Time, bool) {
	for _, layout := range []string{dateLayout, dayDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
