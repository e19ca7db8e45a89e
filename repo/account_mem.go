package repo

import "financetracker/domain"

type MemAccountRepo struct {
	s *memStore[domain.AccountID, domain.BankAccount]
}

func NewMemAccountRepo() *MemAccountRepo {
	return &MemAccountRepo{s: newMemStore(func(a *domain.BankAccount) domain.AccountID { return a.ID })}
}

func (r *MemAccountRepo) Create(a *domain.BankAccount) { r.s.add(a) }

// Delete для неизвестного id ничего не делает. Операции со ссылкой на счёт
// остаются как есть.
func (r *MemAccountRepo) Delete(id domain.AccountID) int { return r.s.remove(id) }

func (r *MemAccountRepo) Get(id domain.AccountID) (*domain.BankAccount, bool) { return r.s.get(id) }

func (r *MemAccountRepo) List() []*domain.BankAccount { return r.s.list() }
