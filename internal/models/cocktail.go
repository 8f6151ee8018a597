package models

import (
	"fmt"
	"time"

	"github.com/jduncan017/pourcost/internal/calc"
)

// CocktailCategory is the closed set of cocktail groupings.
type CocktailCategory string

const (
	CocktailClassic   CocktailCategory = "classic"
	CocktailModern    CocktailCategory = "modern"
	CocktailTiki      CocktailCategory = "tiki"
	CocktailSour      CocktailCategory = "sour"
	CocktailHighball  CocktailCategory = "highball"
	CocktailMartini   CocktailCategory = "martini"
	CocktailShot      CocktailCategory = "shot"
	CocktailMocktail  CocktailCategory = "mocktail"
	CocktailSignature CocktailCategory = "signature"
)

var cocktailCategories = map[CocktailCategory]bool{
	CocktailClassic:   true,
	CocktailModern:    true,
	CocktailTiki:      true,
	CocktailSour:      true,
	CocktailHighball:  true,
	CocktailMartini:   true,
	CocktailShot:      true,
	CocktailMocktail:  true,
	CocktailSignature: true,
}

// ParseCocktailCategory validates a raw category string.
func ParseCocktailCategory(s string) (CocktailCategory, error) {
	c := CocktailCategory(s)
	if !cocktailCategories[c] {
		return "", fmt.Errorf("unknown cocktail category: %q", s)
	}
	return c, nil
}

// CocktailIngredient is one recipe line: a named pour and its cost
// contribution, precomputed from the ingredient library at edit time.
type CocktailIngredient struct {
	IngredientID string  `json:"ingredient_id,omitempty"`
	Name         string  `json:"name"`
	AmountOz     float64 `json:"amount_oz"`
	Cost         float64 `json:"cost"`
}

// Cocktail is a recipe with a retail price.
type Cocktail struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Category    CocktailCategory     `json:"category"`
	Description string               `json:"description"`
	Notes       string               `json:"notes"`
	RetailPrice float64              `json:"retail_price"`
	Ingredients []CocktailIngredient `json:"ingredients"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// Lines converts the recipe into the calc package's line shape.
func (c *Cocktail) Lines() []calc.CocktailIngredientLine {
	lines := make([]calc.CocktailIngredientLine, len(c.Ingredients))
	for i, ing := range c.Ingredients {
		lines[i] = calc.CocktailIngredientLine{
			Name:     ing.Name,
			AmountOz: ing.AmountOz,
			Cost:     ing.Cost,
		}
	}
	return lines
}

// CocktailPricing holds the derived pricing fields for a cocktail.
type CocktailPricing struct {
	TotalCost      float64               `json:"total_cost"`
	PourCostPct    float64               `json:"pour_cost_pct"`
	SuggestedPrice float64               `json:"suggested_price"`
	ProfitMargin   float64               `json:"profit_margin"`
	Level          calc.PerformanceLevel `json:"performance_level"`
}

// Pricing derives the cocktail's pricing view at the given target
// pour-cost percentage.
func (c *Cocktail) Pricing(targetPct float64) (CocktailPricing, error) {
	total, err := calc.CocktailTotalCost(c.Lines())
	if err != nil {
		return CocktailPricing{}, fmt.Errorf("cocktail %q: %w", c.Name, err)
	}
	pct, err := calc.PourCostPercentage(total, c.RetailPrice)
	if err != nil {
		return CocktailPricing{}, fmt.Errorf("cocktail %q: %w", c.Name, err)
	}
	suggested, err := calc.SuggestedPrice(total, targetPct)
	if err != nil {
		return CocktailPricing{}, fmt.Errorf("cocktail %q: %w", c.Name, err)
	}
	margin, err := calc.ProfitMargin(c.RetailPrice, total)
	if err != nil {
		return CocktailPricing{}, fmt.Errorf("cocktail %q: %w", c.Name, err)
	}

	return CocktailPricing{
		TotalCost:      total,
		PourCostPct:    pct,
		SuggestedPrice: suggested,
		ProfitMargin:   margin,
		Level:          calc.LevelForPercentage(pct),
	}, nil
}
