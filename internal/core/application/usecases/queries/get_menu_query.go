package queries

import (
	"errors"

	"concierge/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the available menu, optionally narrowed to a
// category. An empty category means the whole menu.
type GetMenuQuery struct {
	category string

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query for available menu items.
func NewGetMenuQuery(category string) GetMenuQuery {
	return GetMenuQuery{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// Category returns the optional category filter.
func (q GetMenuQuery) Category() string {
	return q.category
}
