package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"motohub-api/models"
)

func TestResolveSort(t *testing.T) {
	t.Run("DefaultIsTwoKeyOrder", func(t *testing.T) {
		assert.Equal(t, "year DESC, price_usd ASC", ResolveSort("", ""))
	})

	t.Run("UnknownKeyFallsBack", func(t *testing.T) {
		assert.Equal(t, "year DESC, price_usd ASC", ResolveSort("owner_name", "asc"))
		assert.Equal(t, "year DESC, price_usd ASC", ResolveSort("latest", ""))
	})

	t.Run("ExplicitKeys", func(t *testing.T) {
		assert.Equal(t, "price_usd ASC", ResolveSort("price", ""))
		assert.Equal(t, "price_usd DESC", ResolveSort("price", "desc"))
		assert.Equal(t, "engine_displacement ASC", ResolveSort("displacement", "asc"))
		assert.Equal(t, "rating_average DESC", ResolveSort("rating", "DESC"))
	})

	t.Run("KeyIsCaseInsensitive", func(t *testing.T) {
		assert.Equal(t, "horsepower DESC", ResolveSort("Horsepower", "desc"))
	})

	t.Run("BadOrderDefaultsToAscending", func(t *testing.T) {
		assert.Equal(t, "year ASC", ResolveSort("year", "sideways"))
	})
}

func TestDedupeFeatured(t *testing.T) {
	pool := []models.Motorcycle{
		{ID: "a1", Manufacturer: "Yamaha", Model: "MT-09", Year: 2024, PriceUSD: 10500, InterestScore: 95},
		{ID: "a2", Manufacturer: "Yamaha", Model: "MT-09", Year: 2022, PriceUSD: 9800, InterestScore: 90},
		{ID: "b1", Manufacturer: "Honda", Model: "CB350", Year: 2024, PriceUSD: 2600, InterestScore: 85},
		{ID: "a3", Manufacturer: "Yamaha", Model: "MT-09", Year: 2021, PriceUSD: 9500, InterestScore: 80},
		{ID: "c1", Manufacturer: "KTM", Model: "390 Duke", Year: 2023, PriceUSD: 5400, InterestScore: 75},
		{ID: "d1", Manufacturer: "Suzuki", Model: "V-Strom 650", Year: 2023, PriceUSD: 8800, InterestScore: 70},
	}

	t.Run("CollapsesDuplicateModelWithMinPrice", func(t *testing.T) {
		featured := DedupeFeatured(pool, 3)

		assert.Len(t, featured, 3)
		assert.Equal(t, "a1", featured[0].ID)
		assert.Equal(t, 2024, featured[0].Year)
		// Lowest price across every pooled year of the pair, even ones
		// past the cutoff
		assert.Equal(t, 9500.0, featured[0].PriceUSD)
		assert.Equal(t, "b1", featured[1].ID)
		assert.Equal(t, "c1", featured[2].ID)
	})

	t.Run("FewerEntriesThanLimit", func(t *testing.T) {
		featured := DedupeFeatured(pool[:2], 3)

		assert.Len(t, featured, 1)
		assert.Equal(t, "a1", featured[0].ID)
	})

	t.Run("EmptyPool", func(t *testing.T) {
		assert.Empty(t, DedupeFeatured(nil, 3))
	})
}
