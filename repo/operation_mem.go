package repo

import (
	"time"

	"financetracker/domain"
)

type MemOperationRepo struct {
	s *memStore[domain.OperationID, domain.Operation]
}

func NewMemOperationRepo() *MemOperationRepo {
	return &MemOperationRepo{s: newMemStore(func(o *domain.Operation) domain.OperationID { return o.ID })}
}

func (r *MemOperationRepo) Create(o *domain.Operation) { r.s.add(o) }

func (r *MemOperationRepo) Delete(id domain.OperationID) int { return r.s.remove(id) }

func (r *MemOperationRepo) Get(id domain.OperationID) (*domain.Operation, bool) { return r.s.get(id) }

func (r *MemOperationRepo) List() []*domain.Operation { return r.s.list() }

func (r *MemOperationRepo) ListByAccount(accID domain.AccountID) []*domain.Operation {
	return r.s.filter(func(o *domain.Operation) bool { return o.BankAccount == accID })
}

// ListInRange: операции с датой в [from, to] в порядке добавления.
func (r *MemOperationRepo) ListInRange(from, to time.Time) []*domain.Operation {
	return r.s.filter(func(o *domain.Operation) bool { return o.InRange(from, to) })
}
