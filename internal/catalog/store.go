package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/priyankdesai/smartshop/internal/db"
)

// Store is the sqlite-backed Provider implementation.
type Store struct {
	db *db.DB
}

// NewStore creates a catalog store over an opened database.
func NewStore(d *db.DB) *Store {
	return &Store{db: d}
}

// GetCandidates returns enriched products in the category whose current
// price fits under budgetCeiling (0 disables the ceiling). Platform
// prices and availability are re-jittered per call, mimicking live
// marketplace quotes.
func (s *Store) GetCandidates(ctx context.Context, category string, budgetCeiling int) ([]Product, error) {
	query := `SELECT id, name, category, brand, model, key_features, specs, base_price,
	                 overall_rating, total_reviews, category_ratings, pros, cons
	          FROM products`
	args := []any{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var result []Product
	for rows.Next() {
		var (
			p                               Product
			basePrice                       int
			featuresJSON, specsJSON         string
			ratingsJSON, prosJSON, consJSON string
			overallRating                   float64
			totalReviews                    int
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Brand, &p.Model,
			&featuresJSON, &specsJSON, &basePrice,
			&overallRating, &totalReviews, &ratingsJSON, &prosJSON, &consJSON); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		p.Reviews = &ReviewSummary{
			OverallRating: overallRating,
			TotalReviews:  totalReviews,
		}
		if err := json.Unmarshal([]byte(featuresJSON), &p.KeyFeatures); err != nil {
			return nil, fmt.Errorf("decoding features for %s: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(specsJSON), &p.Specs); err != nil {
			return nil, fmt.Errorf("decoding specs for %s: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(ratingsJSON), &p.Reviews.CategoryRatings); err != nil {
			return nil, fmt.Errorf("decoding category ratings for %s: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(prosJSON), &p.Reviews.Pros); err != nil {
			return nil, fmt.Errorf("decoding pros for %s: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(consJSON), &p.Reviews.Cons); err != nil {
			return nil, fmt.Errorf("decoding cons for %s: %w", p.ID, err)
		}

		history, err := s.priceHistory(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.Price = buildPriceInfo(basePrice, history)
		p.PlatformPrices = jitterPlatforms(p.Price.CurrentPrice)
		p.StockStatus = make(map[string]string, len(p.PlatformPrices))
		for platform, offer := range p.PlatformPrices {
			p.StockStatus[platform] = offer.Availability
		}
		if p.Price.IsGoodDeal {
			p.UrgencyScore = 7
		} else {
			p.UrgencyScore = 4
		}

		if budgetCeiling > 0 && p.Price.CurrentPrice > budgetCeiling {
			continue
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (s *Store) priceHistory(ctx context.Context, productID string) ([]PricePoint, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT recorded_at, price, platform FROM price_points
		 WHERE product_id = ? ORDER BY recorded_at`, productID)
	if err != nil {
		return nil, fmt.Errorf("querying price history: %w", err)
	}
	defer rows.Close()

	var history []PricePoint
	for rows.Next() {
		var pt PricePoint
		if err := rows.Scan(&pt.Date, &pt.Price, &pt.Platform); err != nil {
			return nil, fmt.Errorf("scanning price point: %w", err)
		}
		history = append(history, pt)
	}
	return history, rows.Err()
}

// buildPriceInfo derives the price summary from the base price and the
// recorded history. The "original" price is the pre-discount list price.
func buildPriceInfo(basePrice int, history []PricePoint) *PriceInfo {
	info := &PriceInfo{
		CurrentPrice:  basePrice,
		OriginalPrice: int(float64(basePrice) * 1.1),
		History:       history,
	}

	for _, pt := range history {
		if info.LowestEver == 0 || pt.Price < info.LowestEver {
			info.LowestEver = pt.Price
		}
		if pt.Price > info.HighestEver {
			info.HighestEver = pt.Price
		}
	}
	if info.LowestEver == 0 {
		info.LowestEver = basePrice
		info.HighestEver = basePrice
	}

	info.DiscountPercentage = float64(info.OriginalPrice-info.CurrentPrice) / float64(info.OriginalPrice) * 100
	info.IsGoodDeal = float64(info.CurrentPrice) <= float64(info.LowestEver)*1.05

	// Trend compares the current price against the recent average.
	info.Trend = "stable"
	if n := len(history); n >= 4 {
		recent := 0
		for _, pt := range history[n-4:] {
			recent += pt.Price
		}
		if float64(info.CurrentPrice) < float64(recent)/4 {
			info.Trend = "decreasing"
		}
	}

	if info.CurrentPrice < info.OriginalPrice {
		info.PriceDropAlerts = []string{
			fmt.Sprintf("Price dropped ₹%s in last month!", groupINR(info.OriginalPrice-info.CurrentPrice)),
			fmt.Sprintf("Currently at %.0f%% discount from original price", info.DiscountPercentage),
		}
	}
	return info
}

// jitterPlatforms quotes per-marketplace prices around the Amazon base
// price, with small random spreads and occasional stock pressure.
func jitterPlatforms(basePrice int) map[string]PlatformOffer {
	flipkartAvail := "In Stock"
	if rand.Float64() <= 0.2 {
		flipkartAvail = "Limited Stock"
	}
	cromaAvail := "Available"
	if rand.Float64() <= 0.3 {
		cromaAvail = "Check availability"
	}

	return map[string]PlatformOffer{
		"Amazon": {
			Price:        basePrice,
			Availability: "In Stock",
			Offers:       []string{"5% cashback with Amazon Pay", "No-cost EMI available"},
			Delivery:     "Free delivery by tomorrow",
		},
		"Flipkart": {
			Price:        int(float64(basePrice) * (0.98 + rand.Float64()*0.05)),
			Availability: flipkartAvail,
			Offers:       []string{"10% instant discount with Axis Bank cards", "Exchange offer available"},
			Delivery:     "Free delivery in 2-3 days",
		},
		"Croma": {
			Price:        int(float64(basePrice) * (1.02 + rand.Float64()*0.06)),
			Availability: cromaAvail,
			Offers:       []string{"Store pickup available", "Extended warranty options"},
			Delivery:     "Delivery in 3-5 days",
		},
	}
}

// groupINR renders an amount with comma grouping ("5,600").
func groupINR(amount int) string {
	s := strconv.Itoa(amount)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
