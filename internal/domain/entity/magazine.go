package entity

import "github.com/google/uuid"

// Magazine represents a named, categorized publication that hosts articles.
// Name and Category may change after construction, subject to the same validation.
type Magazine struct {
	ID       uuid.UUID
	Name     string
	Category string
}

// NewMagazine validates name and category and returns a Magazine with a fresh ID.
func NewMagazine(name, category string) (*Magazine, error) {
	m := &Magazine{ID: uuid.New(), Name: name, Category: category}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate validates the Magazine entity fields.
func (m *Magazine) Validate() error {
	if err := ValidateMagazineName(m.Name); err != nil {
		return err
	}
	return ValidateCategory(m.Category)
}

// Clone returns a copy that shares no state with m.
func (m *Magazine) Clone() *Magazine {
	c := *m
	return &c
}
