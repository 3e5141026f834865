package commands_test

import (
	"context"
	"time"

	"concierge/internal/core/domain/model/booking"
	"concierge/internal/core/domain/model/housekeeping"
	"concierge/internal/core/domain/model/menu"
	"concierge/internal/core/domain/model/order"
	"concierge/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) FindAll(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, draft order.Draft) (*order.Order, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(
	ctx context.Context,
	orderID int64,
	status order.Status,
	deliveryTime *time.Time,
) (*order.Order, error) {
	args := m.Called(ctx, orderID, status, deliveryTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CompleteForRoom(
	ctx context.Context,
	roomID int,
	completedAt time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, roomID, completedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockHousekeepingRepository struct{ mock.Mock }

func (m *MockHousekeepingRepository) FindAll(
	ctx context.Context,
	filter ports.HousekeepingFilter,
) ([]*housekeeping.Schedule, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*housekeeping.Schedule), args.Error(1)
}

func (m *MockHousekeepingRepository) UpdateStatus(
	ctx context.Context,
	scheduleID int64,
	status housekeeping.Status,
	completedAt *time.Time,
	notes string,
) (*housekeeping.Schedule, error) {
	args := m.Called(ctx, scheduleID, status, completedAt, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*housekeeping.Schedule), args.Error(1)
}

func (m *MockHousekeepingRepository) SetRoomState(
	ctx context.Context,
	roomID int,
	state string,
	scheduledDate time.Time,
) ([]*housekeeping.Schedule, error) {
	args := m.Called(ctx, roomID, state, scheduledDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*housekeeping.Schedule), args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) FindAvailable(ctx context.Context, category string) ([]menu.Item, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]menu.Item), args.Error(1)
}

func (m *MockMenuRepository) FindByID(ctx context.Context, itemID int64) (menu.Item, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(menu.Item), args.Error(1)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) FindByID(ctx context.Context, bookingID int64) (booking.Booking, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(booking.Booking), args.Error(1)
}

// mustRestoreOrder builds a restored order for mock return values.
func mustRestoreOrder(
	id int64,
	status order.Status,
	deliveryTime *time.Time,
	total float64,
) *order.Order {
	o, err := order.Restore(id, nil, 101, "", time.Now().UTC(), deliveryTime, nil, status, "", total, nil)
	if err != nil {
		panic(err)
	}
	return o
}

// mustRestoreSchedule builds a restored schedule for mock return values.
func mustRestoreSchedule(
	id int64,
	status housekeeping.Status,
	completedAt *time.Time,
	notes string,
) *housekeeping.Schedule {
	s, err := housekeeping.Restore(id, 101, time.Now().UTC(), status, "", notes, completedAt)
	if err != nil {
		panic(err)
	}
	return s
}
