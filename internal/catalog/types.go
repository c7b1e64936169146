// Package catalog is the product data boundary: a sqlite-backed store of
// products with price history, review breakdowns, and per-platform
// offers. All randomness (platform price jitter, stock variation) lives
// here so the layers above stay deterministic.
package catalog

import "context"

// PricePoint is one historical price observation.
type PricePoint struct {
	Date     string `json:"date"`
	Price    int    `json:"price"`
	Platform string `json:"platform"`
}

// PriceInfo summarizes a product's price history.
type PriceInfo struct {
	CurrentPrice       int          `json:"current_price"`
	OriginalPrice      int          `json:"original_price"`
	History            []PricePoint `json:"price_history"`
	LowestEver         int          `json:"lowest_price_ever"`
	HighestEver        int          `json:"highest_price_ever"`
	Trend              string       `json:"price_trend"`
	DiscountPercentage float64      `json:"discount_percentage"`
	IsGoodDeal         bool         `json:"is_good_deal"`
	PriceDropAlerts    []string     `json:"price_drop_alerts"`
}

// ReviewSummary aggregates review data for a product.
type ReviewSummary struct {
	OverallRating   float64            `json:"overall_rating"`
	TotalReviews    int                `json:"total_reviews"`
	CategoryRatings map[string]float64 `json:"category_ratings"`
	Pros            []string           `json:"pros"`
	Cons            []string           `json:"cons"`
}

// PlatformOffer is one marketplace's live offer for a product.
type PlatformOffer struct {
	Price        int      `json:"price"`
	Availability string   `json:"availability"`
	Offers       []string `json:"offers"`
	Delivery     string   `json:"delivery"`
}

// Product is a fully enriched catalog entry.
type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Brand       string            `json:"brand"`
	Model       string            `json:"model"`
	KeyFeatures []string          `json:"key_features"`
	Specs       map[string]string `json:"specifications"`

	Price          *PriceInfo               `json:"price_info"`
	Reviews        *ReviewSummary           `json:"review_analysis"`
	PlatformPrices map[string]PlatformOffer `json:"platform_prices"`
	StockStatus    map[string]string        `json:"stock_status"`
	UrgencyScore   int                      `json:"urgency_score"`
}

// Provider supplies enriched candidate products for a category within an
// optional budget ceiling (0 means no ceiling). An empty category
// matches everything.
type Provider interface {
	GetCandidates(ctx context.Context, category string, budgetCeiling int) ([]Product, error)
}
