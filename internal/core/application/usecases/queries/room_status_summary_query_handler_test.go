package queries_test

import (
	"context"
	"testing"
	"time"

	"concierge/internal/core/application/usecases/queries"
	"concierge/internal/core/domain/model/housekeeping"
	"concierge/internal/core/domain/model/order"
	"concierge/internal/core/ports"
	"concierge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRoomStatusSummaryQueryHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	query := queries.NewRoomStatusSummaryQuery()

	// Two rooms share pending orders; room sets must be distinct and sorted.
	orders := new(MockOrderRepository)
	orders.On("FindAll", ctx, ports.OrderFilter{Status: order.StatusPending}).
		Return([]*order.Order{
			pendingOrderInRoom(1, 305),
			pendingOrderInRoom(2, 101),
			pendingOrderInRoom(3, 305),
		}, nil).Once()

	schedules := new(MockHousekeepingRepository)
	schedules.On("FindAll", ctx, mock.MatchedBy(func(f ports.HousekeepingFilter) bool {
		return f.Date != nil && f.Status == housekeeping.Status("") && f.RoomID == 0
	})).Return([]*housekeeping.Schedule{
		scheduleInRoom(4, 102),
		scheduleInRoom(5, 101),
	}, nil).Once()

	h := queries.NewRoomStatusSummaryQueryHandler(orders, schedules)
	summary, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.PendingOrders)
	assert.Equal(t, 2, summary.ScheduledCleaning)
	assert.Equal(t, []int{101, 305}, summary.RoomsWithOrders)
	assert.Equal(t, []int{101, 102}, summary.RoomsToClean)
	assert.WithinDuration(t, time.Now().UTC(), summary.GeneratedAt, time.Minute)
	orders.AssertExpectations(t)
	schedules.AssertExpectations(t)
}

func TestRoomStatusSummaryQueryHandler_Handle_Empty(t *testing.T) {
	ctx := context.Background()
	query := queries.NewRoomStatusSummaryQuery()

	orders := new(MockOrderRepository)
	orders.On("FindAll", ctx, ports.OrderFilter{Status: order.StatusPending}).
		Return([]*order.Order{}, nil).Once()

	schedules := new(MockHousekeepingRepository)
	schedules.On("FindAll", ctx, mock.AnythingOfType("ports.HousekeepingFilter")).
		Return([]*housekeeping.Schedule{}, nil).Once()

	h := queries.NewRoomStatusSummaryQueryHandler(orders, schedules)
	summary, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Zero(t, summary.PendingOrders)
	assert.Zero(t, summary.ScheduledCleaning)
	assert.Empty(t, summary.RoomsWithOrders)
	assert.Empty(t, summary.RoomsToClean)
}

func TestRoomStatusSummaryQueryHandler_Handle_RemoteError(t *testing.T) {
	ctx := context.Background()
	query := queries.NewRoomStatusSummaryQuery()

	orders := new(MockOrderRepository)
	orders.On("FindAll", ctx, ports.OrderFilter{Status: order.StatusPending}).
		Return(nil, errs.NewRemoteStoreError("select", "room_service_orders", 500)).Once()

	h := queries.NewRoomStatusSummaryQueryHandler(orders, new(MockHousekeepingRepository))
	_, err := h.Handle(ctx, query)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrRemoteStore)
}

func TestRoomStatusSummaryQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	var query queries.RoomStatusSummaryQuery // not constructed properly

	h := queries.NewRoomStatusSummaryQueryHandler(new(MockOrderRepository), new(MockHousekeepingRepository))
	_, err := h.Handle(ctx, query)

	require.Error(t, err)
}
