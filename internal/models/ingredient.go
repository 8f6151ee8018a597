package models

import (
	"fmt"
	"time"

	"github.com/jduncan017/pourcost/internal/calc"
	"github.com/jduncan017/pourcost/internal/units"
)

// IngredientCategory is the closed set of ingredient types. Values
// arriving from config, library files or the database are parsed at the
// boundary; there is no free-form category.
type IngredientCategory string

const (
	CategorySpirit   IngredientCategory = "spirit"
	CategoryLiqueur  IngredientCategory = "liqueur"
	CategoryWine     IngredientCategory = "wine"
	CategoryBeer     IngredientCategory = "beer"
	CategoryMixer    IngredientCategory = "mixer"
	CategoryJuice    IngredientCategory = "juice"
	CategorySyrup    IngredientCategory = "syrup"
	CategoryBitters  IngredientCategory = "bitters"
	CategoryGarnish  IngredientCategory = "garnish"
	CategoryOtherIng IngredientCategory = "other"
)

var ingredientCategories = map[IngredientCategory]bool{
	CategorySpirit:   true,
	CategoryLiqueur:  true,
	CategoryWine:     true,
	CategoryBeer:     true,
	CategoryMixer:    true,
	CategoryJuice:    true,
	CategorySyrup:    true,
	CategoryBitters:  true,
	CategoryGarnish:  true,
	CategoryOtherIng: true,
}

// ParseIngredientCategory validates a raw category string.
func ParseIngredientCategory(s string) (IngredientCategory, error) {
	c := IngredientCategory(s)
	if !ingredientCategories[c] {
		return "", fmt.Errorf("unknown ingredient category: %q", s)
	}
	return c, nil
}

// Ingredient is a priced bottle in the bar's library.
type Ingredient struct {
	ID           string                  `json:"id"`
	Name         string                  `json:"name"`
	Category     IngredientCategory      `json:"category"`
	BottleSizeMl float64                 `json:"bottle_size_ml"`
	BottlePrice  float64                 `json:"bottle_price"`
	PourSizeOz   float64                 `json:"pour_size_oz"`
	RetailPrice  float64                 `json:"retail_price"`
	System       units.MeasurementSystem `json:"measurement_system"`
	Description  string                  `json:"description"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

// IngredientPricing holds the derived pricing fields stores cache
// alongside a persisted ingredient. Always recomputed on write, never
// carried forward stale.
type IngredientPricing struct {
	CostPerOz      float64               `json:"cost_per_oz"`
	PourCost       float64               `json:"pour_cost"`
	PourCostPct    float64               `json:"pour_cost_pct"`
	SuggestedPrice float64               `json:"suggested_price"`
	ProfitMargin   float64               `json:"profit_margin"`
	Level          calc.PerformanceLevel `json:"performance_level"`
}

// Pricing derives the full pricing view of the ingredient at the given
// target pour-cost percentage.
func (in *Ingredient) Pricing(targetPct float64) (IngredientPricing, error) {
	costPerOz, err := calc.CostPerOunce(in.BottlePrice, in.BottleSizeMl)
	if err != nil {
		return IngredientPricing{}, fmt.Errorf("ingredient %q: %w", in.Name, err)
	}
	pourCost, err := calc.PourCost(costPerOz, in.PourSizeOz)
	if err != nil {
		return IngredientPricing{}, fmt.Errorf("ingredient %q: %w", in.Name, err)
	}
	pct, err := calc.PourCostPercentage(pourCost, in.RetailPrice)
	if err != nil {
		return IngredientPricing{}, fmt.Errorf("ingredient %q: %w", in.Name, err)
	}
	suggested, err := calc.SuggestedPrice(pourCost, targetPct)
	if err != nil {
		return IngredientPricing{}, fmt.Errorf("ingredient %q: %w", in.Name, err)
	}
	margin, err := calc.ProfitMargin(in.RetailPrice, pourCost)
	if err != nil {
		return IngredientPricing{}, fmt.Errorf("ingredient %q: %w", in.Name, err)
	}

	return IngredientPricing{
		CostPerOz:      costPerOz,
		PourCost:       pourCost,
		PourCostPct:    pct,
		SuggestedPrice: suggested,
		ProfitMargin:   margin,
		Level:          calc.LevelForPercentage(pct),
	}, nil
}
