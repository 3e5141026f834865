// Package orderrepo persists room-service orders in the remote store's
// room_service_orders table, handling the mapping between domain aggregates
// and row representations.
package orderrepo

import (
	"time"

	"concierge/internal/core/domain/model/order"
)

const tableName = "room_service_orders"

// OrderDTO is a row of the room_service_orders table. Line items are stored
// denormalized as a JSON array column, so an order is always a single row.
type OrderDTO struct {
	OrderID             int64      `json:"order_id,omitempty"`
	BookingID           *int64     `json:"booking_id"`
	RoomID              int        `json:"room_id"`
	ServiceType         string     `json:"service_type,omitempty"`
	OrderTime           time.Time  `json:"order_time"`
	DeliveryTime        *time.Time `json:"delivery_time"`
	CompletionTime      *time.Time `json:"completion_time"`
	Status              string     `json:"status"`
	SpecialInstructions string     `json:"special_instructions,omitempty"`
	TotalAmount         float64    `json:"total_amount"`
	Items               []LineDTO  `json:"items,omitempty"`
}

// LineDTO is one element of the items column.
type LineDTO struct {
	ItemID   int64   `json:"item_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes,omitempty"`
}

// fromDraft builds the insert payload for a new order. The order_id is left
// zero and omitted so the store assigns it.
func fromDraft(draft order.Draft) OrderDTO {
	return OrderDTO{
		BookingID:           draft.BookingID,
		RoomID:              draft.RoomID,
		ServiceType:         draft.ServiceType,
		OrderTime:           draft.OrderTime,
		Status:              string(draft.Status),
		SpecialInstructions: draft.SpecialInstructions,
		TotalAmount:         draft.TotalAmount,
		Items:               linesToDTO(draft.Items),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.Restore(
		dto.OrderID,
		dto.BookingID,
		dto.RoomID,
		dto.ServiceType,
		dto.OrderTime,
		dto.DeliveryTime,
		dto.CompletionTime,
		order.Status(dto.Status),
		dto.SpecialInstructions,
		dto.TotalAmount,
		linesFromDTO(dto.Items),
	)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

func linesToDTO(lines []order.Line) []LineDTO {
	if len(lines) == 0 {
		return nil
	}
	dtos := make([]LineDTO, 0, len(lines))
	for _, line := range lines {
		dtos = append(dtos, LineDTO{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Price:    line.Price,
			Notes:    line.Notes,
		})
	}
	return dtos
}

func linesFromDTO(dtos []LineDTO) []order.Line {
	if len(dtos) == 0 {
		return nil
	}
	lines := make([]order.Line, 0, len(dtos))
	for _, dto := range dtos {
		lines = append(lines, order.Line{
			ItemID:   dto.ItemID,
			Quantity: dto.Quantity,
			Price:    dto.Price,
			Notes:    dto.Notes,
		})
	}
	return lines
}
