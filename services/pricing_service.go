package services

import (
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"motohub-api/models"
)

// RegionCatalog resolves region codes to currencies and manufacturer
// allow-lists. The current implementation is a fixed table; a real
// regional availability relation can replace it behind this interface.
type RegionCatalog interface {
	Currency(region string) (code string, multiplier float64)
	Manufacturers(region string) []string
}

// PricingService synthesizes vendor offers from a stored base price and
// a region code. It is a deterministic formula over static tables; no
// network call is made.
type PricingService struct {
	regions RegionCatalog
}

func NewPricingService() *PricingService {
	return &PricingService{regions: staticRegionCatalog{}}
}

// Manufacturers returns the region's manufacturer allow-list, or nil
// when the region code imposes no constraint
func (s *PricingService) Manufacturers(region string) []string {
	return s.regions.Manufacturers(region)
}

type vendor struct {
	name        string
	markup      float64 // relative to base price
	rating      float64
	reviewBase  int
	delivery    string
	websiteSlug string
}

var vendors = []vendor{
	{"MotoDirect", -0.03, 4.6, 1200, "5-7 business days", "motodirect"},
	{"RideHouse", 0.00, 4.4, 860, "7-10 business days", "ridehouse"},
	{"TwoWheels Outlet", 0.025, 4.2, 540, "10-14 business days", "twowheels-outlet"},
	{"Apex Motors", 0.05, 4.8, 2100, "3-5 business days", "apexmotors"},
}

var vendorAvailability = []string{
	"In Stock",
	"In Stock",
	"Ships in 2 weeks",
	"Pre-order",
}

// VendorPrices fabricates vendor offers for the motorcycle in the given
// region. The per-vendor variance is seeded from the motorcycle id so
// repeated calls return identical offers.
func (s *PricingService) VendorPrices(m *models.Motorcycle, region string) []models.VendorPrice {
	currency, multiplier := s.regions.Currency(region)
	base := m.PriceUSD * multiplier
	seed := hashString(m.ID)

	offers := make([]models.VendorPrice, 0, len(vendors))
	for i, v := range vendors {
		// Deterministic variance within ±2% on top of the vendor markup
		variance := float64((seed+uint32(i)*2654435761)%400)/10000.0 - 0.02
		price := base * (1 + v.markup + variance)

		offers = append(offers, models.VendorPrice{
			VendorName:       v.name,
			Price:            math.Round(price*100) / 100,
			Currency:         currency,
			Availability:     vendorAvailability[(int(seed)+i)%len(vendorAvailability)],
			Rating:           v.rating,
			ReviewCount:      v.reviewBase + int(seed%97),
			DeliveryEstimate: v.delivery,
			Website:          fmt.Sprintf("https://www.%s.example.com", v.websiteSlug),
		})
	}
	return offers
}

func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// staticRegionCatalog is the fixed region table. Unmapped region codes
// are silently permissive: USD at parity, no manufacturer constraint.
type staticRegionCatalog struct{}

type regionInfo struct {
	currency   string
	multiplier float64
}

var regionCurrencies = map[string]regionInfo{
	"US": {"USD", 1.0},
	"IN": {"INR", 83.2},
	"GB": {"GBP", 0.79},
	"EU": {"EUR", 0.92},
	"JP": {"JPY", 149.5},
	"AU": {"AUD", 1.53},
	"BR": {"BRL", 4.97},
}

var regionManufacturers = map[string][]string{
	"IN": {"Hero", "Bajaj", "TVS", "Royal Enfield", "Honda", "Yamaha", "Suzuki", "KTM"},
	"US": {"Harley-Davidson", "Indian", "Honda", "Yamaha", "Suzuki", "Kawasaki", "BMW", "Ducati", "Triumph", "KTM"},
	"EU": {"BMW", "Ducati", "KTM", "Triumph", "Aprilia", "Honda", "Yamaha", "Suzuki", "Kawasaki"},
	"JP": {"Honda", "Yamaha", "Suzuki", "Kawasaki"},
}

func (staticRegionCatalog) Currency(region string) (string, float64) {
	info, ok := regionCurrencies[strings.ToUpper(region)]
	if !ok {
		return "USD", 1.0
	}
	return info.currency, info.multiplier
}

func (staticRegionCatalog) Manufacturers(region string) []string {
	return regionManufacturers[strings.ToUpper(region)]
}
