package queries_test

import (
	"context"
	"testing"

	"concierge/internal/core/application/usecases/queries"
	"concierge/internal/core/domain/model/housekeeping"
	"concierge/internal/core/domain/model/menu"
	"concierge/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMenuQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the category filter to the store", func(t *testing.T) {
		items := []menu.Item{
			{ID: 3, Name: "Club Sandwich", Category: "mains", Price: 12.5, Available: true},
		}

		menuRepo := new(MockMenuRepository)
		menuRepo.On("FindAvailable", ctx, "mains").Return(items, nil).Once()

		h := queries.NewGetMenuQueryHandler(menuRepo)
		result, err := h.Handle(ctx, queries.NewGetMenuQuery("mains"))

		require.NoError(t, err)
		assert.Equal(t, items, result)
		menuRepo.AssertExpectations(t)
	})

	t.Run("empty category means the whole menu", func(t *testing.T) {
		menuRepo := new(MockMenuRepository)
		menuRepo.On("FindAvailable", ctx, "").Return([]menu.Item{}, nil).Once()

		h := queries.NewGetMenuQueryHandler(menuRepo)
		_, err := h.Handle(ctx, queries.NewGetMenuQuery(""))

		require.NoError(t, err)
		menuRepo.AssertExpectations(t)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetMenuQuery

		h := queries.NewGetMenuQueryHandler(new(MockMenuRepository))
		_, err := h.Handle(ctx, query)

		require.Error(t, err)
	})
}

func TestNewGetRoomServiceOrdersQuery(t *testing.T) {
	t.Run("accepts an empty status filter", func(t *testing.T) {
		_, err := queries.NewGetRoomServiceOrdersQuery("", 0)

		require.NoError(t, err)
	})

	t.Run("rejects a status outside the enum", func(t *testing.T) {
		_, err := queries.NewGetRoomServiceOrdersQuery("shipped", 0)

		require.Error(t, err)
	})

	t.Run("accepts enum statuses", func(t *testing.T) {
		query, err := queries.NewGetRoomServiceOrdersQuery(order.StatusPending, 101)

		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, query.Status())
		assert.Equal(t, 101, query.RoomID())
	})
}

func TestNewGetHousekeepingScheduleQuery(t *testing.T) {
	t.Run("rejects a status outside the enum", func(t *testing.T) {
		_, err := queries.NewGetHousekeepingScheduleQuery(nil, "dirty")

		require.Error(t, err)
	})

	t.Run("accepts enum statuses and no date", func(t *testing.T) {
		query, err := queries.NewGetHousekeepingScheduleQuery(nil, housekeeping.StatusScheduled)

		require.NoError(t, err)
		assert.Nil(t, query.Date())
		assert.Equal(t, housekeeping.StatusScheduled, query.Status())
	})
}
