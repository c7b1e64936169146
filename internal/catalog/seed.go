package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"
)

// seedProduct is the static part of a demo catalog entry; price history
// is generated at seed time.
type seedProduct struct {
	ID              string
	Name            string
	Category        string
	Brand           string
	Model           string
	KeyFeatures     []string
	Specs           map[string]string
	BasePrice       int
	OverallRating   float64
	TotalReviews    int
	CategoryRatings map[string]float64
	Pros            []string
	Cons            []string
}

// SeedCount is the number of demo products Seed writes.
var SeedCount = len(demoProducts)

// Seed populates the catalog with the demo product set and six months of
// weekly price history per product. Existing rows with the same ids are
// replaced. onProduct, when non-nil, is called once per product written.
func (s *Store) Seed(ctx context.Context, onProduct func(name string)) error {
	for _, sp := range demoProducts {
		if err := s.insertSeedProduct(ctx, sp); err != nil {
			return err
		}
		if onProduct != nil {
			onProduct(sp.Name)
		}
	}
	return nil
}

func (s *Store) insertSeedProduct(ctx context.Context, sp seedProduct) error {
	featuresJSON, _ := json.Marshal(sp.KeyFeatures)
	specsJSON, _ := json.Marshal(sp.Specs)
	ratingsJSON, _ := json.Marshal(sp.CategoryRatings)
	prosJSON, _ := json.Marshal(sp.Pros)
	consJSON, _ := json.Marshal(sp.Cons)

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO products
		 (id, name, category, brand, model, key_features, specs, base_price,
		  overall_rating, total_reviews, category_ratings, pros, cons)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sp.ID, sp.Name, sp.Category, sp.Brand, sp.Model,
		string(featuresJSON), string(specsJSON), sp.BasePrice,
		sp.OverallRating, sp.TotalReviews, string(ratingsJSON),
		string(prosJSON), string(consJSON))
	if err != nil {
		return fmt.Errorf("inserting product %s: %w", sp.ID, err)
	}

	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM price_points WHERE product_id = ?`, sp.ID); err != nil {
		return fmt.Errorf("clearing price history for %s: %w", sp.ID, err)
	}

	// Weekly observations over the last six months, varying around the
	// base price.
	platforms := []string{"Amazon", "Flipkart", "Croma"}
	now := time.Now().UTC()
	for daysAgo := 180; daysAgo > 0; daysAgo -= 7 {
		recordedAt := now.AddDate(0, 0, -daysAgo)
		price := int(float64(sp.BasePrice) * (0.9 + rand.Float64()*0.25))
		platform := platforms[rand.Intn(len(platforms))]

		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO price_points (product_id, recorded_at, price, platform)
			 VALUES (?, ?, ?, ?)`,
			sp.ID, recordedAt.Format(time.RFC3339), price, platform); err != nil {
			return fmt.Errorf("inserting price point for %s: %w", sp.ID, err)
		}
	}
	return nil
}

var demoProducts = []seedProduct{
	{
		ID: "laptop_1", Name: "ASUS TUF Gaming F15", Category: "gaming laptops",
		Brand: "ASUS", Model: "FX506LH-HN258W",
		KeyFeatures: []string{
			"Intel Core i5-10300H Processor",
			"NVIDIA GeForce GTX 1650 4GB",
			"8GB DDR4 3200MHz RAM",
			"512GB PCIe SSD",
			"15.6\" FHD 144Hz Display",
			"RGB Backlit Keyboard",
		},
		Specs: map[string]string{
			"processor": "Intel Core i5-10300H",
			"graphics":  "NVIDIA GTX 1650 4GB",
			"ram":       "8GB DDR4",
			"storage":   "512GB SSD",
			"display":   "15.6\" FHD 144Hz",
			"weight":    "2.3 kg",
			"battery":   "48WHrs",
			"os":        "Windows 11",
		},
		BasePrice: 55999, OverallRating: 4.3, TotalReviews: 1250,
		CategoryRatings: map[string]float64{
			"performance": 4.5, "build_quality": 4.2, "battery_life": 3.8,
			"display": 4.4, "keyboard": 4.1, "value_for_money": 4.6,
		},
		Pros: []string{
			"Excellent gaming performance for the price",
			"Solid build quality with military-grade certification",
			"Good thermal management",
			"Beautiful RGB keyboard",
		},
		Cons: []string{
			"Battery life could be better for non-gaming tasks",
			"Can get loud under heavy load",
			"Limited port selection",
		},
	},
	{
		ID: "laptop_2", Name: "HP Pavilion Gaming 15", Category: "gaming laptops",
		Brand: "HP", Model: "15-dk2018TX",
		KeyFeatures: []string{
			"Intel Core i5-11300H Processor",
			"NVIDIA GeForce GTX 1650 4GB",
			"8GB DDR4 RAM",
			"1TB HDD + 256GB SSD",
			"15.6\" FHD IPS Display",
			"B&O Audio",
		},
		Specs: map[string]string{
			"processor": "Intel Core i5-11300H",
			"graphics":  "NVIDIA GTX 1650 4GB",
			"ram":       "8GB DDR4",
			"storage":   "1TB HDD + 256GB SSD",
			"display":   "15.6\" FHD IPS",
			"weight":    "2.25 kg",
			"battery":   "52.5WHrs",
			"os":        "Windows 11",
		},
		BasePrice: 52999, OverallRating: 4.1, TotalReviews: 890,
		CategoryRatings: map[string]float64{
			"performance": 4.3, "build_quality": 4.0, "battery_life": 4.2,
			"display": 4.1, "keyboard": 3.9, "value_for_money": 4.4,
		},
		Pros: []string{
			"Good battery life for a gaming laptop",
			"Decent performance for casual gaming",
			"B&O audio sounds great",
			"Dual storage setup is convenient",
		},
		Cons: []string{
			"Build quality feels plasticky",
			"Keyboard could be better",
			"Display colors are okay but not vibrant",
		},
	},
	{
		ID: "laptop_3", Name: "Lenovo IdeaPad Gaming 3", Category: "gaming laptops",
		Brand: "Lenovo", Model: "15ACH6",
		KeyFeatures: []string{
			"AMD Ryzen 5 5600H Processor",
			"NVIDIA GeForce RTX 3050 4GB",
			"8GB DDR4 RAM",
			"512GB SSD",
			"15.6\" FHD 120Hz Display",
			"Legion TrueStrike Keyboard",
		},
		Specs: map[string]string{
			"processor": "AMD Ryzen 5 5600H",
			"graphics":  "NVIDIA RTX 3050 4GB",
			"ram":       "8GB DDR4",
			"storage":   "512GB SSD",
			"display":   "15.6\" FHD 120Hz",
			"weight":    "2.25 kg",
			"battery":   "45WHrs",
			"os":        "Windows 11",
		},
		BasePrice: 58999, OverallRating: 4.2, TotalReviews: 756,
		CategoryRatings: map[string]float64{
			"performance": 4.6, "build_quality": 4.1, "battery_life": 3.7,
			"display": 4.3, "keyboard": 4.4, "value_for_money": 4.5,
		},
		Pros: []string{
			"RTX 3050 provides excellent 1080p gaming",
			"AMD Ryzen processor is very efficient",
			"120Hz display makes gaming smooth",
			"Excellent keyboard for typing and gaming",
		},
		Cons: []string{
			"Battery drains quickly while gaming",
			"Limited upgrade options",
			"Can throttle under sustained load",
		},
	},
	{
		ID: "smartwatch_1", Name: "Amazfit GTS 2 Mini", Category: "smartwatches",
		Brand: "Amazfit", Model: "GTS 2 Mini",
		KeyFeatures: []string{
			"1.55\" AMOLED Display",
			"14-day Battery Life",
			"70+ Sports Modes",
			"Sleep & Stress Monitoring",
			"GPS Built-in",
			"5ATM Water Resistance",
		},
		Specs: map[string]string{
			"display":          "1.55\" AMOLED",
			"battery":          "14 days",
			"sensors":          "Heart Rate, SpO2, Sleep",
			"connectivity":     "Bluetooth 5.0",
			"water_resistance": "5ATM",
			"weight":           "19.5g",
			"os":               "Zepp OS",
		},
		BasePrice: 4999, OverallRating: 4.2, TotalReviews: 890,
		CategoryRatings: map[string]float64{
			"battery_life": 4.6, "build_quality": 4.1, "display": 4.3,
			"fitness_tracking": 4.4, "connectivity": 4.0, "value_for_money": 4.5,
		},
		Pros: []string{
			"Excellent battery life - lasts 2 weeks",
			"Beautiful AMOLED display",
			"Accurate fitness tracking",
			"Great value for money",
		},
		Cons: []string{
			"Limited app ecosystem",
			"GPS can be slow to connect",
			"No Google Pay support",
		},
	},
	{
		ID: "smartwatch_2", Name: "Realme Watch S Pro", Category: "smartwatches",
		Brand: "Realme", Model: "Watch S Pro",
		KeyFeatures: []string{
			"1.39\" AMOLED Display",
			"14-day Battery Life",
			"15 Sports Modes",
			"Heart Rate Monitoring",
			"GPS + GLONASS",
			"IP68 Water Resistance",
		},
		Specs: map[string]string{
			"display":          "1.39\" AMOLED",
			"battery":          "14 days",
			"sensors":          "Heart Rate, SpO2",
			"connectivity":     "Bluetooth 5.0",
			"water_resistance": "IP68",
			"weight":           "63g",
			"os":               "Realme UI",
		},
		BasePrice: 5999, OverallRating: 4.0, TotalReviews: 650,
		CategoryRatings: map[string]float64{
			"battery_life": 4.2, "build_quality": 3.9, "display": 4.1,
			"fitness_tracking": 4.3, "connectivity": 3.8, "value_for_money": 4.2,
		},
		Pros: []string{
			"Good battery life",
			"Solid fitness features",
			"Responsive touch screen",
			"Decent build quality",
		},
		Cons: []string{
			"Software can be buggy",
			"Limited customization",
			"Average app support",
		},
	},
	{
		ID: "smartwatch_3", Name: "Fire-Boltt Phoenix Pro", Category: "smartwatches",
		Brand: "Fire-Boltt", Model: "Phoenix Pro",
		KeyFeatures: []string{
			"1.39\" HD Display",
			"7-day Battery Life",
			"120+ Sports Modes",
			"Bluetooth Calling",
			"Health Monitoring",
			"IP67 Water Resistance",
		},
		Specs: map[string]string{
			"display":          "1.39\" HD",
			"battery":          "7 days",
			"sensors":          "Heart Rate, SpO2, Sleep",
			"connectivity":     "Bluetooth Calling",
			"water_resistance": "IP67",
			"weight":           "52g",
			"os":               "Fire-Boltt OS",
		},
		BasePrice: 3999, OverallRating: 3.8, TotalReviews: 420,
		CategoryRatings: map[string]float64{
			"battery_life": 3.5, "build_quality": 3.6, "display": 4.0,
			"fitness_tracking": 4.1, "connectivity": 4.2, "value_for_money": 4.3,
		},
		Pros: []string{
			"Bluetooth calling feature",
			"Many sports modes",
			"Good value for price",
			"Decent display quality",
		},
		Cons: []string{
			"Battery life could be better",
			"Build feels plasticky",
			"Limited smartwatch features",
		},
	},
	{
		ID: "smartphone_1", Name: "Samsung Galaxy M34 5G", Category: "smartphones",
		Brand: "Samsung", Model: "SM-M346B",
		KeyFeatures: []string{
			"Exynos 1280 Processor",
			"6000mAh Battery",
			"50MP OIS Triple Camera",
			"6.5\" Super AMOLED 120Hz",
			"6GB RAM, 128GB Storage",
			"5G Connectivity",
		},
		Specs: map[string]string{
			"processor": "Exynos 1280",
			"ram":       "6GB",
			"storage":   "128GB",
			"display":   "6.5\" Super AMOLED 120Hz",
			"battery":   "6000mAh",
			"camera":    "50MP + 8MP + 2MP",
			"os":        "Android 13",
		},
		BasePrice: 18999, OverallRating: 4.2, TotalReviews: 2100,
		CategoryRatings: map[string]float64{
			"performance": 4.0, "battery_life": 4.7, "camera": 4.2,
			"display": 4.4, "build_quality": 4.0, "value_for_money": 4.3,
		},
		Pros: []string{
			"Massive two-day battery life",
			"Vibrant AMOLED display",
			"Stable OIS camera",
			"Clean software experience",
		},
		Cons: []string{
			"Slow 25W charging",
			"Average low-light camera",
			"Plastic back picks up smudges",
		},
	},
	{
		ID: "smartphone_2", Name: "Redmi Note 13 5G", Category: "smartphones",
		Brand: "Xiaomi", Model: "Note 13 5G",
		KeyFeatures: []string{
			"MediaTek Dimensity 6080",
			"108MP Main Camera",
			"6.67\" AMOLED 120Hz",
			"8GB RAM, 128GB Storage",
			"33W Fast Charging",
			"5000mAh Battery",
		},
		Specs: map[string]string{
			"processor": "MediaTek Dimensity 6080",
			"ram":       "8GB",
			"storage":   "128GB",
			"display":   "6.67\" AMOLED 120Hz",
			"battery":   "5000mAh",
			"camera":    "108MP + 8MP + 2MP",
			"os":        "Android 13",
		},
		BasePrice: 17999, OverallRating: 4.1, TotalReviews: 1680,
		CategoryRatings: map[string]float64{
			"performance": 4.1, "battery_life": 4.3, "camera": 4.0,
			"display": 4.5, "build_quality": 3.9, "value_for_money": 4.4,
		},
		Pros: []string{
			"Sharp 120Hz AMOLED panel",
			"Detailed 108MP daylight shots",
			"Fast 33W charging",
			"Good value for the segment",
		},
		Cons: []string{
			"Preinstalled bloatware",
			"Average gaming performance",
			"No stereo speakers",
		},
	},
}
