package menu

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"financetracker/domain"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var errBadChoice = errors.New("неверный выбор")

// readLine возвращает io.EOF, только если ввод кончился до текста.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) readInt(prompt string) (int, error) {
	raw, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errBadChoice
	}
	return n, nil
}

// readDecimal принимает "12.5" и "12,5"; пустой ввод: def.
func (s *Shell) readDecimal(prompt string, def decimal.Decimal) (decimal.Decimal, error) {
	raw, err := s.readLine(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	if raw == "" {
		return def, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("неверная сумма %q", raw)
	}
	return d, nil
}

// readDate разбирает YYYY-MM-DD в местном времени; пустой ввод: def.
func (s *Shell) readDate(label string, def time.Time) (time.Time, error) {
	raw, err := s.readLine(label + " (YYYY-MM-DD): ")
	if err != nil {
		return time.Time{}, err
	}
	if raw == "" {
		return def, nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("формат даты неверный, ожидается YYYY-MM-DD: %q", raw)
	}
	return t, nil
}

func (s *Shell) readType(prompt string) (domain.OperationType, error) {
	raw, err := s.readLine(prompt + " (0 - Доход, 1 - Расход): ")
	if err != nil {
		return 0, err
	}
	return domain.ParseOperationType(raw)
}

func (s *Shell) confirm(prompt string) (bool, error) {
	raw, err := s.readLine(prompt + " [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(raw) {
	case "y", "yes", "д", "да":
		return true, nil
	}
	return false, nil
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
