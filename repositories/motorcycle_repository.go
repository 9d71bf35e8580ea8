package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"motohub-api/models"
)

// MotorcycleFilters is the flat set of optional listing filters. A zero
// value imposes no constraint; all active filters are AND-composed.
type MotorcycleFilters struct {
	Search          string
	Manufacturer    string
	Category        string
	Specialisations []string
	HideUnavailable bool

	TransmissionType string
	EngineType       string
	BrakingSystem    string
	SuspensionType   string
	TyreType         string
	HeadlightType    string
	FuelType         string
	ABSAvailable     *bool

	YearMin            *int
	YearMax            *int
	PriceMin           *float64
	PriceMax           *float64
	DisplacementMin    *float64
	DisplacementMax    *float64
	HorsepowerMin      *float64
	HorsepowerMax      *float64
	MileageMin         *float64
	MileageMax         *float64
	GroundClearanceMin *float64
	GroundClearanceMax *float64
	SeatHeightMin      *float64
	SeatHeightMax      *float64

	// Region allow-list of manufacturers, resolved by the caller from a
	// region code. Empty means no constraint.
	Manufacturers []string
}

// ListOptions controls sorting and pagination of a listing query
type ListOptions struct {
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// FeaturedMotorcycle is a compact entry in a category summary
type FeaturedMotorcycle struct {
	ID            string  `json:"id"`
	Manufacturer  string  `json:"manufacturer"`
	Model         string  `json:"model"`
	Year          int     `json:"year"`
	PriceUSD      float64 `json:"price_usd"`
	ImageURL      string  `json:"image_url"`
	InterestScore float64 `json:"interest_score"`
}

// CategorySummary is the per-category rollup returned by the summary
// endpoint. Categories with zero matches are omitted entirely.
type CategorySummary struct {
	Category string               `json:"category"`
	Count    int64                `json:"count"`
	Featured []FeaturedMotorcycle `json:"featured"`
}

type MotorcycleRepository interface {
	List(filters MotorcycleFilters, opts ListOptions) ([]models.Motorcycle, int64, error)
	Count(filters MotorcycleFilters) (int64, error)
	GetByID(id string) (*models.Motorcycle, error)
	GetByIDs(ids []string) ([]models.Motorcycle, error)
	CategorySummaries(filters MotorcycleFilters) ([]CategorySummary, error)
	Manufacturers() ([]string, error)
}

type motorcycleRepository struct {
	db *gorm.DB
}

func NewMotorcycleRepository(db *gorm.DB) MotorcycleRepository {
	return &motorcycleRepository{db: db}
}

// sortColumns whitelists the listing sort keys. Anything else falls back
// to the default two-key order.
var sortColumns = map[string]string{
	"price":        "price_usd",
	"year":         "year",
	"horsepower":   "horsepower",
	"displacement": "engine_displacement",
	"mileage":      "mileage",
	"rating":       "rating_average",
	"interest":     "interest_score",
	"name":         "manufacturer",
	"created_at":   "created_at",
}

// ResolveSort maps a sort key and order flag to an ORDER BY clause. The
// default (and the legacy "latest" alias) is a fixed two-key order: year
// descending, then price ascending within the same year. Explicit keys
// get no secondary tiebreak.
func ResolveSort(sortBy, sortOrder string) string {
	column, ok := sortColumns[strings.ToLower(sortBy)]
	if !ok {
		return "year DESC, price_usd ASC"
	}

	direction := "ASC"
	if strings.EqualFold(sortOrder, "desc") {
		direction = "DESC"
	}
	return column + " " + direction
}

// applyFilters chains every active filter onto the query with AND
// semantics. Substring matches rely on the column collation being
// case-insensitive.
func (r *motorcycleRepository) applyFilters(f MotorcycleFilters) *gorm.DB {
	query := r.db.Model(&models.Motorcycle{})

	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("manufacturer LIKE ? OR model LIKE ? OR description LIKE ?", like, like, like)
	}
	if f.Manufacturer != "" {
		query = query.Where("manufacturer LIKE ?", "%"+f.Manufacturer+"%")
	}
	if f.Category != "" {
		query = query.Where("category LIKE ?", "%"+f.Category+"%")
	}
	if f.TransmissionType != "" {
		query = query.Where("transmission_type LIKE ?", "%"+f.TransmissionType+"%")
	}
	if f.EngineType != "" {
		query = query.Where("engine_type LIKE ?", "%"+f.EngineType+"%")
	}
	if f.BrakingSystem != "" {
		query = query.Where("braking_system LIKE ?", "%"+f.BrakingSystem+"%")
	}
	if f.SuspensionType != "" {
		query = query.Where("suspension_type LIKE ?", "%"+f.SuspensionType+"%")
	}
	if f.TyreType != "" {
		query = query.Where("tyre_type LIKE ?", "%"+f.TyreType+"%")
	}
	if f.HeadlightType != "" {
		query = query.Where("headlight_type LIKE ?", "%"+f.HeadlightType+"%")
	}
	if f.FuelType != "" {
		query = query.Where("fuel_type LIKE ?", "%"+f.FuelType+"%")
	}
	if f.ABSAvailable != nil {
		query = query.Where("abs_available = ?", *f.ABSAvailable)
	}

	if f.YearMin != nil {
		query = query.Where("year >= ?", *f.YearMin)
	}
	if f.YearMax != nil {
		query = query.Where("year <= ?", *f.YearMax)
	}
	if f.PriceMin != nil {
		query = query.Where("price_usd >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		query = query.Where("price_usd <= ?", *f.PriceMax)
	}
	if f.DisplacementMin != nil {
		query = query.Where("engine_displacement >= ?", *f.DisplacementMin)
	}
	if f.DisplacementMax != nil {
		query = query.Where("engine_displacement <= ?", *f.DisplacementMax)
	}
	if f.HorsepowerMin != nil {
		query = query.Where("horsepower >= ?", *f.HorsepowerMin)
	}
	if f.HorsepowerMax != nil {
		query = query.Where("horsepower <= ?", *f.HorsepowerMax)
	}
	if f.MileageMin != nil {
		query = query.Where("mileage >= ?", *f.MileageMin)
	}
	if f.MileageMax != nil {
		query = query.Where("mileage <= ?", *f.MileageMax)
	}
	if f.GroundClearanceMin != nil {
		query = query.Where("ground_clearance >= ?", *f.GroundClearanceMin)
	}
	if f.GroundClearanceMax != nil {
		query = query.Where("ground_clearance <= ?", *f.GroundClearanceMax)
	}
	if f.SeatHeightMin != nil {
		query = query.Where("seat_height >= ?", *f.SeatHeightMin)
	}
	if f.SeatHeightMax != nil {
		query = query.Where("seat_height <= ?", *f.SeatHeightMax)
	}

	// At least one requested specialisation tag must appear in the
	// motorcycle's JSON list
	if len(f.Specialisations) > 0 {
		clauses := make([]string, 0, len(f.Specialisations))
		args := make([]interface{}, 0, len(f.Specialisations))
		for _, tag := range f.Specialisations {
			clauses = append(clauses, "specialisations LIKE ?")
			args = append(args, `%"`+tag+`"%`)
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	if f.HideUnavailable {
		query = query.Where("availability NOT IN ?", models.UnavailableStates)
	}

	if len(f.Manufacturers) > 0 {
		query = query.Where("manufacturer IN ?", f.Manufacturers)
	}

	return query
}

// List runs the filtered, sorted, paginated query plus an independent
// count query over the same predicate. Pages beyond the end return an
// empty slice with the real total.
func (r *motorcycleRepository) List(f MotorcycleFilters, opts ListOptions) ([]models.Motorcycle, int64, error) {
	var total int64
	if err := r.applyFilters(f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (opts.Page - 1) * opts.Limit

	motorcycles := []models.Motorcycle{}
	err := r.applyFilters(f).
		Order(ResolveSort(opts.SortBy, opts.SortOrder)).
		Offset(offset).
		Limit(opts.Limit).
		Find(&motorcycles).Error
	if err != nil {
		return nil, 0, err
	}

	return motorcycles, total, nil
}

func (r *motorcycleRepository) Count(f MotorcycleFilters) (int64, error) {
	var total int64
	err := r.applyFilters(f).Count(&total).Error
	return total, err
}

func (r *motorcycleRepository) GetByID(id string) (*models.Motorcycle, error) {
	var motorcycle models.Motorcycle
	if err := r.db.First(&motorcycle, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &motorcycle, nil
}

func (r *motorcycleRepository) GetByIDs(ids []string) ([]models.Motorcycle, error) {
	motorcycles := []models.Motorcycle{}
	if err := r.db.Where("id IN ?", ids).Find(&motorcycles).Error; err != nil {
		return nil, err
	}
	return motorcycles, nil
}

// featuredPoolSize is how many top rows per category are fetched before
// deduplication by (manufacturer, model)
const featuredPoolSize = 25

// CategorySummaries computes the per-category rollup under the same
// predicate as the listing. Count, featured list and listing all share
// applyFilters, so the three totals come from one predicate builder.
func (r *motorcycleRepository) CategorySummaries(f MotorcycleFilters) ([]CategorySummary, error) {
	summaries := []CategorySummary{}

	for _, category := range models.Categories {
		scoped := f
		scoped.Category = category

		count, err := r.Count(scoped)
		if err != nil {
			return nil, err
		}
		if count == 0 {
			continue
		}

		var top []models.Motorcycle
		err = r.applyFilters(scoped).
			Order("interest_score DESC").
			Limit(featuredPoolSize).
			Find(&top).Error
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, CategorySummary{
			Category: category,
			Count:    count,
			Featured: DedupeFeatured(top, 3),
		})
	}

	return summaries, nil
}

// DedupeFeatured collapses motorcycles sharing a (manufacturer, model)
// pair, keeping the first-seen (highest interest) entry priced at the
// lowest price observed for that pair, and returns at most n entries.
func DedupeFeatured(motorcycles []models.Motorcycle, n int) []FeaturedMotorcycle {
	type slot struct {
		entry FeaturedMotorcycle
	}

	seen := map[string]*slot{}
	order := []*slot{}

	for _, m := range motorcycles {
		key := m.Manufacturer + "|" + m.Model
		if s, ok := seen[key]; ok {
			if m.PriceUSD < s.entry.PriceUSD {
				s.entry.PriceUSD = m.PriceUSD
			}
			continue
		}

		s := &slot{
			entry: FeaturedMotorcycle{
				ID:            m.ID,
				Manufacturer:  m.Manufacturer,
				Model:         m.Model,
				Year:          m.Year,
				PriceUSD:      m.PriceUSD,
				ImageURL:      m.ImageURL,
				InterestScore: m.InterestScore,
			},
		}
		seen[key] = s
		order = append(order, s)
	}

	if len(order) > n {
		order = order[:n]
	}

	featured := make([]FeaturedMotorcycle, 0, len(order))
	for _, s := range order {
		featured = append(featured, s.entry)
	}
	return featured
}

// Manufacturers lists the distinct manufacturer names in the catalog
func (r *motorcycleRepository) Manufacturers() ([]string, error) {
	manufacturers := []string{}
	err := r.db.Model(&models.Motorcycle{}).
		Distinct("manufacturer").
		Order("manufacturer ASC").
		Pluck("manufacturer", &manufacturers).Error
	return manufacturers, err
}

// IsNotFound reports whether the error is a gorm record-not-found
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
