package commands_test

import (
	"testing"

	"concierge/internal/core/application/usecases/commands"
	"concierge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	items := []commands.ItemRequest{{ItemID: 3, Quantity: 2, Notes: "extra sauce"}}

	t.Run("constructs a valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(12, 305, items, "knock twice")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, int64(12), cmd.BookingID())
		assert.Equal(t, 305, cmd.RoomID())
		assert.Equal(t, items, cmd.Items())
		assert.Equal(t, "knock twice", cmd.SpecialInstructions())
	})

	t.Run("rejects a non-positive booking id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(0, 305, items, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects a non-positive room id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(12, -1, items, "")

		require.Error(t, err)
	})

	t.Run("rejects an empty item list", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(12, 305, nil, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects a non-positive quantity", func(t *testing.T) {
		bad := []commands.ItemRequest{{ItemID: 3, Quantity: 0}}

		_, err := commands.NewCreateOrderCommand(12, 305, bad, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.Error(t, cmd.Validate())
	})
}
