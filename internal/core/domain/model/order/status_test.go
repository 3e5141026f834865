package order_test

import (
	"fmt"
	"testing"

	"concierge/internal/core/domain/model/order"
	"concierge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("accepts every status in the enum", func(t *testing.T) {
		validStatuses := []order.Status{
			order.StatusPending,
			order.StatusPreparing,
			order.StatusDelivered,
			order.StatusCancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("accepts %s", status), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("rejects values outside the enum", func(t *testing.T) {
		for _, status := range []order.Status{"", "shipped", "Pending", "done"} {
			err := status.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInvalidStatus)
		}
	})

	t.Run("rejects completed, which belongs to the room-level path", func(t *testing.T) {
		err := order.StatusCompleted.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
	})

	t.Run("rejection names the allowed set", func(t *testing.T) {
		err := order.Status("shipped").Validate()

		require.Error(t, err)

		var invalidStatus *errs.InvalidStatusError
		require.ErrorAs(t, err, &invalidStatus)
		assert.Equal(t, "order", invalidStatus.EntityKind)
		assert.Equal(t, "shipped", invalidStatus.Value)
		assert.Equal(t, []string{"pending", "preparing", "delivered", "cancelled"}, invalidStatus.Allowed)
	})
}

func TestAllowedStatuses(t *testing.T) {
	assert.Equal(t, []string{"pending", "preparing", "delivered", "cancelled"}, order.AllowedStatuses())
}
