package catalog

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/priyankdesai/smartshop/internal/db"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	d, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	store := NewStore(d)
	if err := store.Seed(context.Background(), nil); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	return store
}

func TestGetCandidatesByCategory(t *testing.T) {
	store := setupStore(t)

	products, err := store.GetCandidates(context.Background(), "gaming laptops", 0)
	if err != nil {
		t.Fatalf("GetCandidates() error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("got %d gaming laptops, want 3", len(products))
	}
	for _, p := range products {
		if p.Category != "gaming laptops" {
			t.Errorf("product %s category = %q", p.ID, p.Category)
		}
		if p.Price == nil || p.Reviews == nil {
			t.Fatalf("product %s missing enrichment", p.ID)
		}
		if len(p.Price.History) == 0 {
			t.Errorf("product %s has no price history", p.ID)
		}
		if p.Reviews.OverallRating <= 0 {
			t.Errorf("product %s has no rating", p.ID)
		}
	}
}

func TestGetCandidatesBudgetCeiling(t *testing.T) {
	store := setupStore(t)

	products, err := store.GetCandidates(context.Background(), "gaming laptops", 56000)
	if err != nil {
		t.Fatalf("GetCandidates() error: %v", err)
	}
	for _, p := range products {
		if p.Price.CurrentPrice > 56000 {
			t.Errorf("product %s priced %d over ceiling", p.ID, p.Price.CurrentPrice)
		}
	}
	// The Lenovo at 58999 must be filtered out.
	for _, p := range products {
		if p.ID == "laptop_3" {
			t.Errorf("laptop_3 returned despite 56000 ceiling")
		}
	}
}

func TestGetCandidatesUnknownCategory(t *testing.T) {
	store := setupStore(t)

	products, err := store.GetCandidates(context.Background(), "televisions", 0)
	if err != nil {
		t.Fatalf("GetCandidates() error: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("got %d products for unknown category, want 0", len(products))
	}
}

func TestPriceInfoDerivation(t *testing.T) {
	store := setupStore(t)

	products, err := store.GetCandidates(context.Background(), "smartwatches", 0)
	if err != nil {
		t.Fatalf("GetCandidates() error: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("got %d smartwatches, want 3", len(products))
	}

	for _, p := range products {
		info := p.Price
		if info.OriginalPrice <= info.CurrentPrice {
			t.Errorf("%s: original %d not above current %d", p.ID, info.OriginalPrice, info.CurrentPrice)
		}
		if info.DiscountPercentage <= 0 || info.DiscountPercentage >= 100 {
			t.Errorf("%s: discount = %.2f", p.ID, info.DiscountPercentage)
		}
		if info.LowestEver > info.HighestEver {
			t.Errorf("%s: lowest %d above highest %d", p.ID, info.LowestEver, info.HighestEver)
		}
		if info.Trend != "stable" && info.Trend != "decreasing" {
			t.Errorf("%s: trend = %q", p.ID, info.Trend)
		}
		if len(info.PriceDropAlerts) == 0 {
			t.Errorf("%s: no price drop alerts despite discount", p.ID)
		}
	}
}

func TestPlatformJitterBounds(t *testing.T) {
	offers := jitterPlatforms(50000)

	if offers["Amazon"].Price != 50000 {
		t.Errorf("Amazon price = %d, want base 50000", offers["Amazon"].Price)
	}
	if p := offers["Flipkart"].Price; p < 49000 || p > 51500 {
		t.Errorf("Flipkart price %d outside [49000, 51500]", p)
	}
	if p := offers["Croma"].Price; p < 51000 || p > 54000 {
		t.Errorf("Croma price %d outside [51000, 54000]", p)
	}
	for platform, offer := range offers {
		if offer.Availability == "" {
			t.Errorf("%s: empty availability", platform)
		}
		if len(offer.Offers) == 0 {
			t.Errorf("%s: no offers", platform)
		}
	}
}

func TestCatalogRoute(t *testing.T) {
	store := setupStore(t)

	r := chi.NewRouter()
	RegisterRoutes(r, store)

	req := httptest.NewRequest("GET", "/api/catalog?category=smartphones", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var products []Product
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("got %d smartphones, want 2", len(products))
	}
}
