package validation

import (
	"fmt"

	"github.com/jduncan017/pourcost/internal/calc"
	"github.com/jduncan017/pourcost/internal/models"
)

// BusinessResult extends Result with the stricter profitability checks
// run before publishing a menu: critical errors that should stop a save
// outright, business warnings, and concrete recommended actions.
type BusinessResult struct {
	Result
	CriticalErrors     []string `json:"critical_errors"`
	BusinessWarnings   []string `json:"business_warnings"`
	RecommendedActions []string `json:"recommended_actions"`
}

func newBusinessResult(base Result) *BusinessResult {
	return &BusinessResult{
		Result:             base,
		CriticalErrors:     []string{},
		BusinessWarnings:   []string{},
		RecommendedActions: []string{},
	}
}

func (r *BusinessResult) addCritical(msg string) {
	r.CriticalErrors = append(r.CriticalErrors, msg)
	r.Result.Errors = append(r.Result.Errors, msg)
	r.Result.IsValid = false
}

func (r *BusinessResult) addBusinessWarning(msg string) {
	r.BusinessWarnings = append(r.BusinessWarnings, msg)
	r.Result.Warnings = append(r.Result.Warnings, msg)
}

func (r *BusinessResult) addAction(msg string) {
	r.RecommendedActions = append(r.RecommendedActions, msg)
}

const (
	criticalCostPerOz  = 100.0
	criticalPricePerMl = 10.0

	unprofitablePct      = 50.0
	underpricedPct       = 10.0
	ingredientTargetMult = 1.5

	criticalCocktailCost = 50.0
	criticalCocktailPct  = 40.0
	cocktailTargetMult   = 1.3
	dominantLineShare    = 0.70
)

// ValidateIngredientBusiness layers profitability rules on top of
// ValidateIngredient. targetPct is the bar's target pour-cost
// percentage.
func ValidateIngredientBusiness(in *models.Ingredient, targetPct float64) BusinessResult {
	r := newBusinessResult(ValidateIngredient(in))

	costPerOz, err := calc.CostPerOunce(in.BottlePrice, in.BottleSizeMl)
	if err != nil {
		return *r
	}

	if costPerOz > criticalCostPerOz {
		r.addCritical(fmt.Sprintf("Cost per ounce of %.2f is implausibly high - this usually means the bottle size or price was entered in the wrong unit", costPerOz))
	}
	if in.BottleSizeMl > 0 && in.BottlePrice/in.BottleSizeMl > criticalPricePerMl {
		r.addCritical(fmt.Sprintf("Price per milliliter of %.2f is implausibly high - this usually means the bottle size or price was entered in the wrong unit", in.BottlePrice/in.BottleSizeMl))
	}

	if in.RetailPrice <= 0 || in.PourSizeOz <= 0 {
		return *r
	}

	pourCost, err := calc.PourCost(costPerOz, in.PourSizeOz)
	if err != nil {
		return *r
	}
	pct, err := calc.PourCostPercentage(pourCost, in.RetailPrice)
	if err != nil {
		return *r
	}

	if pct > unprofitablePct {
		r.addBusinessWarning(fmt.Sprintf("Pour cost of %.1f%% leaves almost no profit", pct))
		r.addAction(fmt.Sprintf("Raise the retail price or use a cheaper bottle to bring pour cost under %.0f%%", targetPct))
	} else if pct > targetPct*ingredientTargetMult {
		r.addBusinessWarning(fmt.Sprintf("Pour cost of %.1f%% is well above the %.0f%% target", pct, targetPct))
		r.addAction("Review the retail price for this pour")
	}

	if pct < underpricedPct {
		r.addSuggestion(fmt.Sprintf("Pour cost of %.1f%% suggests room to reprice - guests may pay more", pct))
	}

	return *r
}

// ValidateCocktailBusiness layers profitability rules on top of
// ValidateCocktail.
func ValidateCocktailBusiness(ck *models.Cocktail, targetPct float64) BusinessResult {
	r := newBusinessResult(ValidateCocktail(ck))

	totalCost, err := calc.CocktailTotalCost(ck.Lines())
	if err != nil {
		return *r
	}

	if totalCost > criticalCocktailCost {
		r.addCritical(fmt.Sprintf("Total ingredient cost of %.2f is implausibly high for a single cocktail", totalCost))
	}

	if totalCost > 0 {
		for _, line := range ck.Ingredients {
			if line.Cost/totalCost > dominantLineShare {
				r.addBusinessWarning(fmt.Sprintf("Ingredient %q accounts for more than %.0f%% of the cocktail's cost", line.Name, dominantLineShare*100))
				break
			}
		}
	}

	if ck.RetailPrice <= 0 {
		return *r
	}

	margin, err := calc.ProfitMargin(ck.RetailPrice, totalCost)
	if err != nil {
		return *r
	}
	pct, err := calc.PourCostPercentage(totalCost, ck.RetailPrice)
	if err != nil {
		return *r
	}

	if margin < 0 {
		r.addCritical(fmt.Sprintf("Selling at %.2f loses %.2f per drink", ck.RetailPrice, -margin))
	}
	if pct > criticalCocktailPct {
		r.addCritical(fmt.Sprintf("Pour cost of %.1f%% is far beyond a sustainable range", pct))
	} else if pct > targetPct*cocktailTargetMult {
		r.addBusinessWarning(fmt.Sprintf("Pour cost of %.1f%% is above the %.0f%% target", pct, targetPct))
	}

	if ck.RetailPrice > 25 {
		r.addBusinessWarning(fmt.Sprintf("A %.2f price point positions this as a premium cocktail; make sure the presentation supports it", ck.RetailPrice))
	} else if ck.RetailPrice < 5 {
		r.addSuggestion("This cocktail may be undervalued at its current price")
	}
	if margin > 15 {
		r.addSuggestion(fmt.Sprintf("A %.2f margin per drink makes this a strong signature-cocktail candidate", margin))
	}

	return *r
}
