package repo

import (
	"strings"

	"financetracker/domain"
)

type MemCategoryRepo struct {
	s *memStore[domain.CategoryID, domain.Category]
}

func NewMemCategoryRepo() *MemCategoryRepo {
	return &MemCategoryRepo{s: newMemStore(func(c *domain.Category) domain.CategoryID { return c.ID })}
}

func (r *MemCategoryRepo) Create(c *domain.Category) { r.s.add(c) }

func (r *MemCategoryRepo) Delete(id domain.CategoryID) int { return r.s.remove(id) }

func (r *MemCategoryRepo) Get(id domain.CategoryID) (*domain.Category, bool) { return r.s.get(id) }

func (r *MemCategoryRepo) List() []*domain.Category { return r.s.list() }

// FindByName сравнивает имена без учёта регистра; берётся первое совпадение.
func (r *MemCategoryRepo) FindByName(name string) (*domain.Category, bool) {
	name = strings.TrimSpace(name)
	found := r.s.filter(func(c *domain.Category) bool { return strings.EqualFold(strings.TrimSpace(c.Name), name) })
	if len(found) == 0 {
		return nil, false
	}
	return found[0], true
}
