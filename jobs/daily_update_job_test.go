package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"motohub-api/models"
)

func TestNextAvailability(t *testing.T) {
	t.Run("AvailableDropsToLimitedStock", func(t *testing.T) {
		next, changed := nextAvailability(models.AvailabilityAvailable, 0.01)

		assert.True(t, changed)
		assert.Equal(t, models.AvailabilityLimitedStock, next)
	})

	t.Run("AvailableUsuallyStays", func(t *testing.T) {
		_, changed := nextAvailability(models.AvailabilityAvailable, 0.5)

		assert.False(t, changed)
	})

	t.Run("LimitedStockCanSellOut", func(t *testing.T) {
		next, changed := nextAvailability(models.AvailabilityLimitedStock, 0.02)

		assert.True(t, changed)
		assert.Equal(t, models.AvailabilityOutOfStock, next)
	})

	t.Run("LimitedStockCanRecover", func(t *testing.T) {
		next, changed := nextAvailability(models.AvailabilityLimitedStock, 0.05)

		assert.True(t, changed)
		assert.Equal(t, models.AvailabilityAvailable, next)
	})

	t.Run("OutOfStockCanRestock", func(t *testing.T) {
		next, changed := nextAvailability(models.AvailabilityOutOfStock, 0.05)

		assert.True(t, changed)
		assert.Equal(t, models.AvailabilityAvailable, next)
	})

	t.Run("TerminalStatesNeverRotate", func(t *testing.T) {
		for _, state := range []string{
			models.AvailabilityDiscontinued,
			models.AvailabilityNotAvailable,
			models.AvailabilityCollector,
		} {
			_, changed := nextAvailability(state, 0.0)
			assert.False(t, changed, state)
		}
	})
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 10.46, roundCents(10.456))
	assert.Equal(t, 10.45, roundCents(10.454))
	assert.Equal(t, 0.0, roundCents(0))
	assert.Equal(t, 9999.99, roundCents(9999.994))
}
