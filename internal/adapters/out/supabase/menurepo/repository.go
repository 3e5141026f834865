// Package menurepo reads menu items from the remote store's menu_items table.
package menurepo

import (
	"context"

	"concierge/internal/adapters/out/supabase"
	"concierge/internal/core/domain/model/menu"
	"concierge/internal/pkg/errs"
)

const tableName = "menu_items"

// ItemDTO is a row of the menu_items table.
type ItemDTO struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	Available       bool    `json:"available"`
	PrepTimeMinutes int     `json:"prep_time_minutes"`
	ImageURL        string  `json:"image_url"`
}

func toDomain(dto ItemDTO) menu.Item {
	return menu.Item{
		ID:              dto.ID,
		Name:            dto.Name,
		Description:     dto.Description,
		Price:           dto.Price,
		Category:        dto.Category,
		Available:       dto.Available,
		PrepTimeMinutes: dto.PrepTimeMinutes,
		ImageURL:        dto.ImageURL,
	}
}

// Repository implements ports.MenuRepository against the remote store.
type Repository struct {
	client *supabase.Client
}

// NewRepository creates a menu repository on the given gateway.
func NewRepository(client *supabase.Client) (*Repository, error) {
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	return &Repository{client: client}, nil
}

// FindAvailable returns available menu items, optionally narrowed to a
// category. Both predicates are applied by the store.
func (r *Repository) FindAvailable(ctx context.Context, category string) ([]menu.Item, error) {
	filters := []supabase.Filter{supabase.Eq("available", true)}
	if category != "" {
		filters = append(filters, supabase.Eq("category", category))
	}

	var dtos []ItemDTO
	if err := r.client.Select(ctx, tableName, filters, &dtos); err != nil {
		return nil, err
	}

	items := make([]menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, toDomain(dto))
	}
	return items, nil
}

// FindByID returns the menu item with the given identity. A zero-row result
// maps to an ItemNotFoundError naming the id.
func (r *Repository) FindByID(ctx context.Context, itemID int64) (menu.Item, error) {
	var dtos []ItemDTO
	filters := []supabase.Filter{supabase.Eq("id", itemID)}
	if err := r.client.Select(ctx, tableName, filters, &dtos); err != nil {
		return menu.Item{}, err
	}
	if len(dtos) == 0 {
		return menu.Item{}, errs.NewItemNotFoundError(itemID)
	}

	return toDomain(dtos[0]), nil
}
