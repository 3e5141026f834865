package ports

import (
	"context"

	"concierge/internal/core/domain/model/menu"
)

// MenuRepository reads menu items from the remote store. The menu is
// read-only from this core's perspective.
type MenuRepository interface {
	// FindAvailable returns available menu items, optionally narrowed to a
	// category. The availability and category predicates are applied by the
	// remote store.
	FindAvailable(ctx context.Context, category string) ([]menu.Item, error)

	// FindByID returns the menu item with the given identity, or an
	// ItemNotFoundError naming the id when no such item exists.
	FindByID(ctx context.Context, itemID int64) (menu.Item, error)
}
