package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Run крутит цикл до пункта выхода, конца ввода или отмены ctx. Ошибки
// действий печатаются, цикл продолжается.
func (s *Shell) Run(ctx context.Context, m Menu) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Draw(m)
		idx, err := s.readInt(fmt.Sprintf("Ваш выбор (1..%d): ", len(m.Items)))
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out, "До свидания!")
			return nil
		case errors.Is(err, errBadChoice), err == nil && (idx < 1 || idx > len(m.Items)):
			fmt.Fprintln(s.out, "Неверный ввод")
			fmt.Fprintln(s.out)
			continue
		case err != nil:
			return err
		}

		item := m.Items[idx-1]
		if item.Key == "exit" || item.Key == "" {
			fmt.Fprintln(s.out, "До свидания!")
			return nil
		}

		err = s.Command(item).Execute(ctx)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out, "До свидания!")
			return nil
		case err != nil:
			fmt.Fprintln(s.out, "Ошибка:", err)
		}
		fmt.Fprintln(s.out)
	}
}
