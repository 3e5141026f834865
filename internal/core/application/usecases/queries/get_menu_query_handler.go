package queries

import (
	"context"

	"concierge/internal/core/domain/model/menu"
	"concierge/internal/core/ports"
)

// GetMenuQueryHandler serves the available menu from the remote store.
// Only items with the availability flag set are returned; that predicate is
// applied by the store, not in memory.
type GetMenuQueryHandler struct {
	menu ports.MenuRepository
}

// NewGetMenuQueryHandler creates a handler for menu reads.
func NewGetMenuQueryHandler(menuRepo ports.MenuRepository) GetMenuQueryHandler {
	return GetMenuQueryHandler{menu: menuRepo}
}

// Handle returns the available menu items matching the query.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]menu.Item, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.menu.FindAvailable(ctx, query.Category())
}
