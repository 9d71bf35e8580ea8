package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"motohub-api/models"
	"motohub-api/repositories"
)

// fakeRatingRepo keeps ratings keyed by user and motorcycle in memory
type fakeRatingRepo struct {
	ratings map[string]*models.Rating
}

func newFakeRatingRepo() *fakeRatingRepo {
	return &fakeRatingRepo{ratings: map[string]*models.Rating{}}
}

func ratingKey(userID, motorcycleID string) string {
	return userID + "|" + motorcycleID
}

func (f *fakeRatingRepo) Upsert(userID, motorcycleID string, score int, review string) (*models.Rating, error) {
	key := ratingKey(userID, motorcycleID)
	if existing, ok := f.ratings[key]; ok {
		existing.Score = score
		existing.Review = review
		return existing, nil
	}
	rating := &models.Rating{ID: key, UserID: userID, MotorcycleID: motorcycleID, Score: score, Review: review}
	f.ratings[key] = rating
	return rating, nil
}

func (f *fakeRatingRepo) Delete(userID, motorcycleID string) error {
	key := ratingKey(userID, motorcycleID)
	if _, ok := f.ratings[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.ratings, key)
	return nil
}

func (f *fakeRatingRepo) GetByMotorcycle(motorcycleID string, page, limit int) ([]models.Rating, int64, error) {
	out := []models.Rating{}
	for _, r := range f.ratings {
		if r.MotorcycleID == motorcycleID {
			out = append(out, *r)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRatingRepo) GetByUser(userID string) ([]models.Rating, error) {
	out := []models.Rating{}
	for _, r := range f.ratings {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRatingRepo) Distribution(motorcycleID string) (repositories.RatingDistribution, error) {
	distribution := repositories.RatingDistribution{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, r := range f.ratings {
		if r.MotorcycleID == motorcycleID {
			distribution[r.Score]++
		}
	}
	return distribution, nil
}

func (f *fakeRatingRepo) RecomputeRollup(motorcycleID string) (float64, int64, error) {
	return 0, 0, nil
}

func newRatingRouter(ratings repositories.RatingRepository, motorcycles repositories.MotorcycleRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewRatingController(ratings, motorcycles)

	r := gin.New()
	authed := func(c *gin.Context) {
		c.Set("user_id", "u1")
		c.Next()
	}
	r.POST("/ratings/:id", authed, controller.Rate)
	r.DELETE("/ratings/:id", authed, controller.Delete)
	r.GET("/motorcycles/:id/ratings", controller.List)
	return r
}

func rateBody(t *testing.T, score int, review string) *bytes.Buffer {
	t.Helper()
	raw, err := json.Marshal(gin.H{"score": score, "review": review})
	require.NoError(t, err)
	return bytes.NewBuffer(raw)
}

func TestRatingRate(t *testing.T) {
	t.Run("CreatesRating", func(t *testing.T) {
		ratings := newFakeRatingRepo()
		r := newRatingRouter(ratings, &fakeMotorcycleRepo{catalog: testCatalog(3)})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/ratings/ma", rateBody(t, 4, "solid commuter"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, ratings.ratings, 1)
		assert.Equal(t, 4, ratings.ratings[ratingKey("u1", "ma")].Score)
	})

	t.Run("ReRatingUpdatesInPlace", func(t *testing.T) {
		ratings := newFakeRatingRepo()
		r := newRatingRouter(ratings, &fakeMotorcycleRepo{catalog: testCatalog(3)})

		for _, score := range []int{2, 5} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/ratings/ma", rateBody(t, score, ""))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			require.Equal(t, http.StatusOK, w.Code)
		}

		require.Len(t, ratings.ratings, 1)
		assert.Equal(t, 5, ratings.ratings[ratingKey("u1", "ma")].Score)
	})

	t.Run("ScoreOutOfRangeRejected", func(t *testing.T) {
		ratings := newFakeRatingRepo()
		r := newRatingRouter(ratings, &fakeMotorcycleRepo{catalog: testCatalog(3)})

		for _, score := range []int{0, 6} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/ratings/ma", rateBody(t, score, ""))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
		assert.Empty(t, ratings.ratings)
	})

	t.Run("UnknownMotorcycle", func(t *testing.T) {
		ratings := newFakeRatingRepo()
		r := newRatingRouter(ratings, &fakeMotorcycleRepo{catalog: testCatalog(3)})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/ratings/nope", rateBody(t, 3, ""))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRatingDelete(t *testing.T) {
	ratings := newFakeRatingRepo()
	r := newRatingRouter(ratings, &fakeMotorcycleRepo{catalog: testCatalog(3)})

	_, err := ratings.Upsert("u1", "ma", 4, "")
	require.NoError(t, err)

	t.Run("DeletesOwnRating", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("DELETE", "/ratings/ma", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, ratings.ratings)
	})

	t.Run("MissingRatingIsNotFound", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("DELETE", "/ratings/ma", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRatingList(t *testing.T) {
	ratings := newFakeRatingRepo()
	r := newRatingRouter(ratings, &fakeMotorcycleRepo{catalog: testCatalog(3)})

	_, err := ratings.Upsert("u1", "ma", 5, "love it")
	require.NoError(t, err)
	_, err = ratings.Upsert("u2", "ma", 3, "")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/motorcycles/ma/ratings", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Ratings      []models.Rating `json:"ratings"`
		Distribution map[string]int64 `json:"distribution"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Ratings, 2)
	assert.Equal(t, int64(1), resp.Distribution["5"])
	assert.Equal(t, int64(1), resp.Distribution["3"])
	assert.Equal(t, int64(0), resp.Distribution["1"])
}
