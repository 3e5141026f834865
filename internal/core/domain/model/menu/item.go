// Package menu contains the read-only menu item model. Menu items are owned
// by the remote store; this core only reads them to serve the menu endpoint
// and to price order lines at creation time.
package menu

// Item is a menu entry as stored in the remote store.
type Item struct {
	ID              int64
	Name            string
	Description     string
	Price           float64
	Category        string
	Available       bool
	PrepTimeMinutes int
	ImageURL        string
}
