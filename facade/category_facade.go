package facade

import (
	"errors"

	"financetracker/domain"
)

var ErrCategoryNotFound = errors.New("category not found")

// CategoryFacade инкапсулирует сценарии для категорий.
type CategoryFacade struct {
	F          domain.Factory
	Categories CategoryRepo
}

func NewCategoryFacade(f domain.Factory, categories CategoryRepo) *CategoryFacade {
	return &CategoryFacade{F: f, Categories: categories}
}

// Create не проверяет дубли имён: идентичность только по id.
func (f *CategoryFacade) Create(t domain.CategoryType, name string) (*domain.Category, error) {
	c, err := f.F.NewCategory(t, name)
	if err != nil {
		return nil, err
	}
	f.Categories.Create(c)
	return c, nil
}

func (f *CategoryFacade) Delete(id domain.CategoryID) { f.Categories.Delete(id) }

func (f *CategoryFacade) GetAll() []*domain.Category { return f.Categories.List() }

func (f *CategoryFacade) GetByID(id domain.CategoryID) (*domain.Category, bool) {
	return f.Categories.Get(id)
}

// Ensure находит категорию по имени или создаёт её с типом t. Найденная
// категория возвращается независимо от её типа.
func (f *CategoryFacade) Ensure(t domain.CategoryType, name string) (*domain.Category, error) {
	if c, ok := f.Categories.FindByName(name); ok {
		return c, nil
	}
	return f.Create(t, name)
}

func (f *CategoryFacade) Rename(id domain.CategoryID, newName string) error {
	c, ok := f.Categories.Get(id)
	if !ok {
		return ErrCategoryNotFound
	}
	return c.Rename(newName)
}

func (f *CategoryFacade) ChangeType(id domain.CategoryID, t domain.CategoryType) error {
	c, ok := f.Categories.Get(id)
	if !ok {
		return ErrCategoryNotFound
	}
	return c.SetType(t)
}
