package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"motohub-api/models"
	"motohub-api/repositories"
	"motohub-api/services"
	"motohub-api/utils"
)

// fakeMotorcycleRepo serves a fixed catalog slice, recording the last
// filters and options it was queried with
type fakeMotorcycleRepo struct {
	catalog     []models.Motorcycle
	lastFilters repositories.MotorcycleFilters
	lastOpts    repositories.ListOptions
}

func (f *fakeMotorcycleRepo) List(filters repositories.MotorcycleFilters, opts repositories.ListOptions) ([]models.Motorcycle, int64, error) {
	f.lastFilters = filters
	f.lastOpts = opts

	total := int64(len(f.catalog))
	start := (opts.Page - 1) * opts.Limit
	if start >= len(f.catalog) {
		return []models.Motorcycle{}, total, nil
	}
	end := start + opts.Limit
	if end > len(f.catalog) {
		end = len(f.catalog)
	}
	return f.catalog[start:end], total, nil
}

func (f *fakeMotorcycleRepo) Count(filters repositories.MotorcycleFilters) (int64, error) {
	return int64(len(f.catalog)), nil
}

func (f *fakeMotorcycleRepo) GetByID(id string) (*models.Motorcycle, error) {
	for i := range f.catalog {
		if f.catalog[i].ID == id {
			return &f.catalog[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMotorcycleRepo) GetByIDs(ids []string) ([]models.Motorcycle, error) {
	found := []models.Motorcycle{}
	for _, id := range ids {
		for i := range f.catalog {
			if f.catalog[i].ID == id {
				found = append(found, f.catalog[i])
			}
		}
	}
	return found, nil
}

func (f *fakeMotorcycleRepo) CategorySummaries(filters repositories.MotorcycleFilters) ([]repositories.CategorySummary, error) {
	return []repositories.CategorySummary{}, nil
}

func (f *fakeMotorcycleRepo) Manufacturers() ([]string, error) {
	seen := map[string]bool{}
	names := []string{}
	for _, m := range f.catalog {
		if !seen[m.Manufacturer] {
			seen[m.Manufacturer] = true
			names = append(names, m.Manufacturer)
		}
	}
	return names, nil
}

func testCatalog(n int) []models.Motorcycle {
	catalog := make([]models.Motorcycle, 0, n)
	for i := 0; i < n; i++ {
		catalog = append(catalog, models.Motorcycle{
			ID:           "m" + string(rune('a'+i)),
			Manufacturer: "Yamaha",
			Model:        "MT-09",
			Year:         2020 + i%5,
			PriceUSD:     9000 + float64(i)*100,
		})
	}
	return catalog
}

func newListRouter(repo repositories.MotorcycleRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewMotorcycleController(repo, services.NewPricingService(), services.NewCacheService("", time.Minute))

	r := gin.New()
	r.GET("/motorcycles", controller.List)
	r.GET("/motorcycles/:id", controller.Detail)
	r.POST("/motorcycles/compare", controller.Compare)
	r.GET("/motorcycles-manufacturers", controller.Manufacturers)
	return r
}

type listResponse struct {
	Motorcycles []models.Motorcycle `json:"motorcycles"`
	Pagination  utils.Pagination    `json:"pagination"`
}

func TestMotorcycleList(t *testing.T) {
	t.Run("DefaultPagination", func(t *testing.T) {
		repo := &fakeMotorcycleRepo{catalog: testCatalog(25)}
		r := newListRouter(repo)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/motorcycles", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Motorcycles, 20)
		assert.Equal(t, 1, resp.Pagination.Page)
		assert.Equal(t, int64(25), resp.Pagination.TotalCount)
		assert.Equal(t, 2, resp.Pagination.TotalPages)
		assert.True(t, resp.Pagination.HasNext)
		assert.False(t, resp.Pagination.HasPrevious)
	})

	t.Run("PageBeyondEndIsEmptyWithRealTotal", func(t *testing.T) {
		repo := &fakeMotorcycleRepo{catalog: testCatalog(25)}
		r := newListRouter(repo)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/motorcycles?page=9", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp listResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.Motorcycles)
		assert.Equal(t, int64(25), resp.Pagination.TotalCount)
	})

	t.Run("ZeroLimitRejected", func(t *testing.T) {
		repo := &fakeMotorcycleRepo{catalog: testCatalog(5)}
		r := newListRouter(repo)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/motorcycles?limit=0", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("OversizedLimitClamped", func(t *testing.T) {
		repo := &fakeMotorcycleRepo{catalog: testCatalog(5)}
		r := newListRouter(repo)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/motorcycles?limit=1000", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, utils.MaxPageSize, repo.lastOpts.Limit)
	})

	t.Run("FiltersReachRepository", func(t *testing.T) {
		repo := &fakeMotorcycleRepo{catalog: testCatalog(5)}
		r := newListRouter(repo)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/motorcycles?category=Sport&price_min=5000&specialisations=track,touring&hide_unavailable=true", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Sport", repo.lastFilters.Category)
		require.NotNil(t, repo.lastFilters.PriceMin)
		assert.Equal(t, 5000.0, *repo.lastFilters.PriceMin)
		assert.Equal(t, []string{"track", "touring"}, repo.lastFilters.Specialisations)
		assert.True(t, repo.lastFilters.HideUnavailable)
	})

	t.Run("RegionResolvesManufacturerAllowList", func(t *testing.T) {
		repo := &fakeMotorcycleRepo{catalog: testCatalog(5)}
		r := newListRouter(repo)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/motorcycles?region=JP", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"Honda", "Yamaha", "Suzuki", "Kawasaki"}, repo.lastFilters.Manufacturers)
	})
}

func compareBody(t *testing.T, ids []string) *bytes.Buffer {
	t.Helper()
	raw, err := json.Marshal(gin.H{"ids": ids})
	require.NoError(t, err)
	return bytes.NewBuffer(raw)
}

func TestMotorcycleCompare(t *testing.T) {
	repo := &fakeMotorcycleRepo{catalog: testCatalog(5)}
	r := newListRouter(repo)

	t.Run("DuplicatesCollapse", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/motorcycles/compare", compareBody(t, []string{"ma", "mb", "ma", "mb"}))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Motorcycles []models.Motorcycle `json:"motorcycles"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Motorcycles, 2)
	})

	t.Run("MoreThanThreeDistinctRejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/motorcycles/compare", compareBody(t, []string{"ma", "mb", "mc", "md"}))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UnknownIDIsNotFound", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/motorcycles/compare", compareBody(t, []string{"ma", "nope"}))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "nope")
	})

	t.Run("EmptyBodyRejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/motorcycles/compare", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMotorcycleDetail(t *testing.T) {
	repo := &fakeMotorcycleRepo{catalog: testCatalog(3)}
	r := newListRouter(repo)

	t.Run("AttachesVendorPrices", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/motorcycles/ma", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Motorcycle   models.Motorcycle    `json:"motorcycle"`
			VendorPrices []models.VendorPrice `json:"vendor_prices"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ma", resp.Motorcycle.ID)
		assert.Len(t, resp.VendorPrices, 4)
		assert.Equal(t, "USD", resp.VendorPrices[0].Currency)
	})

	t.Run("RegionChangesCurrency", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/motorcycles/ma?region=IN", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"currency":"INR"`)
	})

	t.Run("UnknownID", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/motorcycles/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
