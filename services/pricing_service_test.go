package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motohub-api/models"
)

func TestVendorPrices(t *testing.T) {
	service := NewPricingService()
	motorcycle := &models.Motorcycle{ID: "moto-123", PriceUSD: 10000}

	t.Run("RepeatedCallsAreIdentical", func(t *testing.T) {
		first := service.VendorPrices(motorcycle, "US")
		second := service.VendorPrices(motorcycle, "US")

		assert.Equal(t, first, second)
	})

	t.Run("OneOfferPerVendor", func(t *testing.T) {
		offers := service.VendorPrices(motorcycle, "US")

		require.Len(t, offers, 4)
		names := make([]string, 0, len(offers))
		for _, o := range offers {
			names = append(names, o.VendorName)
		}
		assert.Equal(t, []string{"MotoDirect", "RideHouse", "TwoWheels Outlet", "Apex Motors"}, names)
	})

	t.Run("PricesStayNearBase", func(t *testing.T) {
		offers := service.VendorPrices(motorcycle, "US")

		for _, o := range offers {
			// Vendor markup spans -3% to +5%, variance adds at most 2%
			assert.GreaterOrEqual(t, o.Price, 10000*0.95)
			assert.LessOrEqual(t, o.Price, 10000*1.07)
			assert.Equal(t, "USD", o.Currency)
		}
	})

	t.Run("RegionCurrencyConversion", func(t *testing.T) {
		offers := service.VendorPrices(motorcycle, "IN")

		for _, o := range offers {
			assert.Equal(t, "INR", o.Currency)
			assert.Greater(t, o.Price, 10000*83.2*0.90)
		}
	})

	t.Run("RegionIsCaseInsensitive", func(t *testing.T) {
		lower := service.VendorPrices(motorcycle, "gb")
		upper := service.VendorPrices(motorcycle, "GB")

		assert.Equal(t, upper, lower)
		assert.Equal(t, "GBP", lower[0].Currency)
	})

	t.Run("UnmappedRegionFallsBackToUSD", func(t *testing.T) {
		offers := service.VendorPrices(motorcycle, "ZZ")
		base := service.VendorPrices(motorcycle, "US")

		assert.Equal(t, base, offers)
	})

	t.Run("DifferentMotorcyclesGetDifferentVariance", func(t *testing.T) {
		other := &models.Motorcycle{ID: "moto-456", PriceUSD: 10000}

		a := service.VendorPrices(motorcycle, "US")
		b := service.VendorPrices(other, "US")

		assert.NotEqual(t, a, b)
	})
}

func TestRegionManufacturers(t *testing.T) {
	service := NewPricingService()

	t.Run("IndiaAllowList", func(t *testing.T) {
		allowed := service.Manufacturers("IN")

		assert.Contains(t, allowed, "Hero")
		assert.Contains(t, allowed, "Royal Enfield")
		assert.NotContains(t, allowed, "Harley-Davidson")
	})

	t.Run("UnmappedRegionImposesNoConstraint", func(t *testing.T) {
		assert.Nil(t, service.Manufacturers("ZZ"))
	})
}
