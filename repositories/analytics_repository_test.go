package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motohub-api/models"
)

func TestCountClicks(t *testing.T) {
	logs := []models.SearchLog{
		{Query: "sport", ClickedResults: models.StringSlice{"m1", "m2"}},
		{Query: "cruiser", ClickedResults: models.StringSlice{"m2", "m3"}},
		{Query: "sport", ClickedResults: models.StringSlice{"m2"}},
		{Query: "adventure", ClickedResults: models.StringSlice{"m1"}},
	}

	t.Run("OrdersByClickCount", func(t *testing.T) {
		results := CountClicks(logs, 10)

		require.Len(t, results, 3)
		assert.Equal(t, "m2", results[0].MotorcycleID)
		assert.Equal(t, int64(3), results[0].Clicks)
		assert.Equal(t, "m1", results[1].MotorcycleID)
		assert.Equal(t, int64(2), results[1].Clicks)
		assert.Equal(t, "m3", results[2].MotorcycleID)
		assert.Equal(t, int64(1), results[2].Clicks)
	})

	t.Run("TiesKeepFirstSeenOrder", func(t *testing.T) {
		tied := []models.SearchLog{
			{ClickedResults: models.StringSlice{"b", "a"}},
			{ClickedResults: models.StringSlice{"c"}},
		}

		results := CountClicks(tied, 10)

		require.Len(t, results, 3)
		assert.Equal(t, "b", results[0].MotorcycleID)
		assert.Equal(t, "a", results[1].MotorcycleID)
		assert.Equal(t, "c", results[2].MotorcycleID)
	})

	t.Run("LimitTruncates", func(t *testing.T) {
		results := CountClicks(logs, 2)

		require.Len(t, results, 2)
		assert.Equal(t, "m2", results[0].MotorcycleID)
	})

	t.Run("NoLogs", func(t *testing.T) {
		assert.Empty(t, CountClicks(nil, 10))
	})
}
