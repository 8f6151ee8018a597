// Package calc implements the PourCost pricing arithmetic: cost per
// ounce, pour cost, suggested pricing, margins and the pour-cost
// performance classification. Every function is pure and deterministic.
//
// Invalid inputs fail fast with an error wrapping ErrInvalidArgument
// rather than returning NaN or clamping; callers are expected to have
// screened user input through the validation package first, so hitting
// one of these errors indicates a caller bug.
package calc

import (
	"errors"
	"fmt"
	"math"

	"github.com/jduncan017/pourcost/internal/units"
)

// ErrInvalidArgument marks a programming-contract violation (zero bottle
// size, negative price, target percentage out of range). Distinct from
// validation findings, which are data, not errors.
var ErrInvalidArgument = errors.New("invalid argument")

// DefaultTargetPourCostPct is the industry-standard pour cost target
// used when the caller does not supply one.
const DefaultTargetPourCostPct = 20.0

// StandardPourOz is the standard spirit pour used for ingredient-level
// profitability checks.
const StandardPourOz = 1.5

// PerformanceLevel buckets a pour-cost percentage into a qualitative
// rating. Ties break toward the cheaper bucket: exactly 15 is still
// Excellent, exactly 20 still Good, exactly 25 still Warning.
type PerformanceLevel string

const (
	LevelExcellent PerformanceLevel = "excellent"
	LevelGood      PerformanceLevel = "good"
	LevelWarning   PerformanceLevel = "warning"
	LevelPoor      PerformanceLevel = "poor"
)

const (
	excellentMaxPct = 15.0
	goodMaxPct      = 20.0
	warningMaxPct   = 25.0
)

// CocktailIngredientLine carries the per-line inputs needed to total a
// cocktail: the poured amount and that line's precomputed cost.
type CocktailIngredientLine struct {
	Name     string
	AmountOz float64
	Cost     float64
}

// PricingRecommendation is the result of OptimalPricing: the current
// performance level plus the price that would hit the target pour cost.
type PricingRecommendation struct {
	Level            PerformanceLevel
	RecommendedPrice float64
	PotentialProfit  float64
	Message          string
}

// CostPerOunce returns the ingredient cost of one fluid ounce given a
// bottle's price and size.
func CostPerOunce(bottlePrice, bottleSizeMl float64) (float64, error) {
	if bottleSizeMl <= 0 {
		return 0, fmt.Errorf("%w: bottle size must be positive, got %v mL", ErrInvalidArgument, bottleSizeMl)
	}
	if bottlePrice < 0 {
		return 0, fmt.Errorf("%w: bottle price must not be negative, got %v", ErrInvalidArgument, bottlePrice)
	}
	return bottlePrice / (bottleSizeMl / units.MlPerOunce), nil
}

// PourCost returns the ingredient cost of a single pour.
func PourCost(costPerOz, pourSizeOz float64) (float64, error) {
	if costPerOz < 0 {
		return 0, fmt.Errorf("%w: cost per ounce must not be negative, got %v", ErrInvalidArgument, costPerOz)
	}
	if pourSizeOz <= 0 {
		return 0, fmt.Errorf("%w: pour size must be positive, got %v oz", ErrInvalidArgument, pourSizeOz)
	}
	return costPerOz * pourSizeOz, nil
}

// SuggestedPrice returns the retail price required to hit the target
// pour-cost percentage for the given pour cost. targetPct must be in
// (0, 100].
func SuggestedPrice(pourCost, targetPct float64) (float64, error) {
	if pourCost < 0 {
		return 0, fmt.Errorf("%w: pour cost must not be negative, got %v", ErrInvalidArgument, pourCost)
	}
	if targetPct <= 0 || targetPct > 100 {
		return 0, fmt.Errorf("%w: target percentage must be in (0,100], got %v", ErrInvalidArgument, targetPct)
	}
	return pourCost / (targetPct / 100), nil
}

// PourCostPercentage returns the share of the retail price consumed by
// ingredient cost, as a percentage.
func PourCostPercentage(pourCost, retailPrice float64) (float64, error) {
	if pourCost < 0 {
		return 0, fmt.Errorf("%w: pour cost must not be negative, got %v", ErrInvalidArgument, pourCost)
	}
	if retailPrice <= 0 {
		return 0, fmt.Errorf("%w: retail price must be positive, got %v", ErrInvalidArgument, retailPrice)
	}
	return (pourCost / retailPrice) * 100, nil
}

// ProfitMargin returns retail price minus pour cost, in currency units.
func ProfitMargin(retailPrice, pourCost float64) (float64, error) {
	if retailPrice < 0 {
		return 0, fmt.Errorf("%w: retail price must not be negative, got %v", ErrInvalidArgument, retailPrice)
	}
	if pourCost < 0 {
		return 0, fmt.Errorf("%w: pour cost must not be negative, got %v", ErrInvalidArgument, pourCost)
	}
	return retailPrice - pourCost, nil
}

// CocktailTotalCost sums the precomputed cost of each ingredient line.
// An empty recipe costs zero.
func CocktailTotalCost(lines []CocktailIngredientLine) (float64, error) {
	total := 0.0
	for i, line := range lines {
		if line.Cost < 0 {
			return 0, fmt.Errorf("%w: ingredient %d has negative cost %v", ErrInvalidArgument, i+1, line.Cost)
		}
		total += line.Cost
	}
	return total, nil
}

// LevelForPercentage classifies a pour-cost percentage.
func LevelForPercentage(pct float64) PerformanceLevel {
	switch {
	case pct <= excellentMaxPct:
		return LevelExcellent
	case pct <= goodMaxPct:
		return LevelGood
	case pct <= warningMaxPct:
		return LevelWarning
	default:
		return LevelPoor
	}
}

// OptimalPricing composes the pricing functions into a single
// recommendation for a drink with a known cost and current price. The
// message reflects the performance of the current price, not the
// recommended one.
func OptimalPricing(cost, price, targetPct float64) (PricingRecommendation, error) {
	pct, err := PourCostPercentage(cost, price)
	if err != nil {
		return PricingRecommendation{}, err
	}
	recommended, err := SuggestedPrice(cost, targetPct)
	if err != nil {
		return PricingRecommendation{}, err
	}
	profit, err := ProfitMargin(price, cost)
	if err != nil {
		return PricingRecommendation{}, err
	}

	level := LevelForPercentage(pct)
	var message string
	switch level {
	case LevelExcellent:
		message = fmt.Sprintf("Excellent pour cost of %.1f%%. This price point maximises profit.", pct)
	case LevelGood:
		message = fmt.Sprintf("Good pour cost of %.1f%%. Pricing is on target.", pct)
	case LevelWarning:
		message = fmt.Sprintf("Pour cost of %.1f%% is running high. Consider raising the price toward %.2f.", pct, recommended)
	default:
		message = fmt.Sprintf("Pour cost of %.1f%% is eating your margin. Reprice toward %.2f or cut ingredient cost.", pct, recommended)
	}

	return PricingRecommendation{
		Level:            level,
		RecommendedPrice: recommended,
		PotentialProfit:  profit,
		Message:          message,
	}, nil
}

// Round2 rounds to two decimal places for display. Internal calculation
// paths never round; only report and CLI output should call this.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
