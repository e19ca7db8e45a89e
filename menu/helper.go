package menu

import (
	"fmt"

	"financetracker/domain"
)

func (s *Shell) chooseAccount() (*domain.BankAccount, error) {
	accs := s.d.Acc.GetAll()
	if len(accs) == 0 {
		return nil, fmt.Errorf("нет счетов")
	}
	s.renderAccounts(accs)
	n, err := s.readInt("Выбери № счёта: ")
	if err != nil {
		return nil, err
	}
	if n < 1 || n > len(accs) {
		return nil, errBadChoice
	}
	return accs[n-1], nil
}

func (s *Shell) chooseCategory() (*domain.Category, error) {
	cats := s.d.Cat.GetAll()
	if len(cats) == 0 {
		return nil, fmt.Errorf("нет категорий")
	}
	s.renderCategories(cats)
	n, err := s.readInt("Выбери № категории: ")
	if err != nil {
		return nil, err
	}
	if n < 1 || n > len(cats) {
		return nil, errBadChoice
	}
	return cats[n-1], nil
}

func (s *Shell) chooseOperation() (*domain.Operation, error) {
	ops := s.d.Op.GetAll()
	if len(ops) == 0 {
		return nil, fmt.Errorf("операций не найдено")
	}
	s.renderOperations(ops)
	n, err := s.readInt("Выбери № операции: ")
	if err != nil {
		return nil, err
	}
	if n < 1 || n > len(ops) {
		return nil, errBadChoice
	}
	return ops[n-1], nil
}
