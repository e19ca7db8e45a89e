package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCategoryName   = &ValidationError{Field: "name", Reason: "category name is empty"}
	ErrInvalidCategoryType = &ValidationError{Field: "type", Reason: "invalid category type"}
)

type Category struct {
	ID   CategoryID   `json:"id"   yaml:"id"`
	Type CategoryType `json:"type" yaml:"type"`
	Name string       `json:"name" yaml:"name"`
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCategoryName
	}
	if !c.Type.Valid() {
		return ErrInvalidCategoryType
	}
	return nil
}

func (c Category) IsIncome() bool  { return c.Type == CatIncome }
func (c Category) IsExpense() bool { return c.Type == CatExpense }

func (c *Category) Rename(name string) error {
	if c == nil {
		return errors.New("nil receiver: Category")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCategoryName
	}
	c.Name = name
	return nil
}

func (c *Category) SetType(t CategoryType) error {
	if c == nil {
		return errors.New("nil receiver: Category")
	}
	if !t.Valid() {
		return ErrInvalidCategoryType
	}
	c.Type = t
	return nil
}
