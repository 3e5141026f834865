package commands_test

import (
	"context"
	"testing"
	"time"

	"concierge/internal/core/application/usecases/commands"
	"concierge/internal/core/domain/model/housekeeping"
	"concierge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateHousekeepingStatusCommand(t *testing.T) {
	t.Run("constructs a valid command", func(t *testing.T) {
		cmd, err := commands.NewUpdateHousekeepingStatusCommand(4, housekeeping.StatusInProgress, "vacuum broke")

		require.NoError(t, err)
		assert.Equal(t, int64(4), cmd.ScheduleID())
		assert.Equal(t, housekeeping.StatusInProgress, cmd.NewStatus())
		assert.Equal(t, "vacuum broke", cmd.Notes())
	})

	t.Run("rejects a status outside the enum", func(t *testing.T) {
		_, err := commands.NewUpdateHousekeepingStatusCommand(4, "dirty", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
	})
}

func TestUpdateHousekeepingStatusCommandHandler_Handle_Completed(t *testing.T) {
	ctx := context.Background()
	cmd, _ := commands.NewUpdateHousekeepingStatusCommand(4, housekeeping.StatusCompleted, "all good")

	var stamped *time.Time
	schedules := new(MockHousekeepingRepository)
	schedules.On("UpdateStatus", ctx, int64(4), housekeeping.StatusCompleted,
		mock.AnythingOfType("*time.Time"), "all good").
		Run(func(args mock.Arguments) {
			stamped = args.Get(3).(*time.Time)
		}).
		Return(mustRestoreSchedule(4, housekeeping.StatusCompleted, nil, "all good"), nil).Once()

	h := commands.NewUpdateHousekeepingStatusCommandHandler(schedules)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, housekeeping.StatusCompleted, updated.Status())

	// Moving to completed stamps the current time.
	require.NotNil(t, stamped)
	assert.WithinDuration(t, time.Now().UTC(), *stamped, time.Minute)
	schedules.AssertExpectations(t)
}

func TestUpdateHousekeepingStatusCommandHandler_Handle_NonTerminalClearsTimestamp(t *testing.T) {
	ctx := context.Background()

	for _, status := range []housekeeping.Status{
		housekeeping.StatusScheduled,
		housekeeping.StatusInProgress,
		housekeeping.StatusSkipped,
	} {
		t.Run(string(status), func(t *testing.T) {
			cmd, _ := commands.NewUpdateHousekeepingStatusCommand(4, status, "")

			schedules := new(MockHousekeepingRepository)
			schedules.On("UpdateStatus", ctx, int64(4), status, (*time.Time)(nil), "").
				Return(mustRestoreSchedule(4, status, nil, ""), nil).Once()

			h := commands.NewUpdateHousekeepingStatusCommandHandler(schedules)
			updated, err := h.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Nil(t, updated.CompletedAt())
			schedules.AssertExpectations(t)
		})
	}
}

func TestUpdateHousekeepingStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	var cmd commands.UpdateHousekeepingStatusCommand // not constructed properly

	h := commands.NewUpdateHousekeepingStatusCommandHandler(new(MockHousekeepingRepository))
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
}
