package validation

import (
	"strings"
	"testing"

	"github.com/jduncan017/pourcost/internal/calc"
	"github.com/stretchr/testify/require"
)

func containsMatch(msgs []string, substr string) bool {
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

func TestValidateIngredientBusinessClean(t *testing.T) {
	res := ValidateIngredientBusiness(validIngredient(), calc.DefaultTargetPourCostPct)
	require.True(t, res.IsValid)
	require.Empty(t, res.CriticalErrors)
	require.Empty(t, res.BusinessWarnings)
}

func TestValidateIngredientBusinessImplausibleCost(t *testing.T) {
	in := validIngredient()
	in.BottlePrice = 8000 // ~315 per ounce, ~10.7 per mL
	in.RetailPrice = 600
	res := ValidateIngredientBusiness(in, calc.DefaultTargetPourCostPct)
	require.False(t, res.IsValid)
	require.True(t, containsMatch(res.CriticalErrors, "implausibly high"))
	// Criticals feed the embedded error list too.
	require.True(t, containsMatch(res.Errors, "implausibly high"))
}

func TestValidateIngredientBusinessUnprofitablePour(t *testing.T) {
	// Pour cost 1.4787 against a $2 retail is ~74%.
	in := validIngredient()
	in.RetailPrice = 2
	res := ValidateIngredientBusiness(in, calc.DefaultTargetPourCostPct)
	require.True(t, res.IsValid)
	require.True(t, containsMatch(res.BusinessWarnings, "leaves almost no profit"))
	require.NotEmpty(t, res.RecommendedActions)
}

func TestValidateIngredientBusinessAboveTarget(t *testing.T) {
	// Pour cost 1.4787 against $4 retail is ~37%: above 1.5x the 20%
	// target but below the 50% unprofitable line.
	in := validIngredient()
	in.RetailPrice = 4
	res := ValidateIngredientBusiness(in, calc.DefaultTargetPourCostPct)
	require.True(t, containsMatch(res.BusinessWarnings, "above the 20% target"))
	require.False(t, containsMatch(res.BusinessWarnings, "leaves almost no profit"))
}

func TestValidateIngredientBusinessUnderpriced(t *testing.T) {
	// Pour cost 1.4787 against $30 retail is ~4.9%.
	in := validIngredient()
	in.RetailPrice = 30
	res := ValidateIngredientBusiness(in, calc.DefaultTargetPourCostPct)
	require.True(t, res.IsValid)
	require.True(t, containsMatch(res.Suggestions, "room to reprice"))
}

func TestValidateCocktailBusinessClean(t *testing.T) {
	res := ValidateCocktailBusiness(validCocktail(), calc.DefaultTargetPourCostPct)
	require.True(t, res.IsValid)
	require.Empty(t, res.CriticalErrors)
}

func TestValidateCocktailBusinessLosesMoney(t *testing.T) {
	ck := validCocktail()
	ck.RetailPrice = 2 // total cost 2.45
	res := ValidateCocktailBusiness(ck, calc.DefaultTargetPourCostPct)
	require.False(t, res.IsValid)
	require.True(t, containsMatch(res.CriticalErrors, "loses"))
	// 122.5% pour cost also trips the critical threshold.
	require.True(t, containsMatch(res.CriticalErrors, "sustainable range"))
}

func TestValidateCocktailBusinessAboveTarget(t *testing.T) {
	// 2.45 cost at $7 retail is 35%: above 1.3x the 20% target but
	// under the 40% critical line.
	ck := validCocktail()
	ck.RetailPrice = 7
	res := ValidateCocktailBusiness(ck, calc.DefaultTargetPourCostPct)
	require.True(t, res.IsValid)
	require.True(t, containsMatch(res.BusinessWarnings, "above the 20% target"))
}

func TestValidateCocktailBusinessDominantLine(t *testing.T) {
	ck := validCocktail()
	ck.Ingredients[0].Cost = 20 // 20 of 20.85 total
	ck.RetailPrice = 110
	res := ValidateCocktailBusiness(ck, calc.DefaultTargetPourCostPct)
	require.True(t, containsMatch(res.BusinessWarnings, `"Aged Rum"`))
	// $110 retail also flags premium positioning.
	require.True(t, containsMatch(res.BusinessWarnings, "premium"))
}

func TestValidateCocktailBusinessSignatureCandidate(t *testing.T) {
	// $20 retail on a 2.45 cost leaves a 17.55 margin.
	ck := validCocktail()
	ck.RetailPrice = 20
	res := ValidateCocktailBusiness(ck, calc.DefaultTargetPourCostPct)
	require.True(t, res.IsValid)
	require.True(t, containsMatch(res.Suggestions, "signature"))
}

func TestValidateCocktailBusinessUndervalued(t *testing.T) {
	ck := validCocktail()
	ck.Ingredients = ck.Ingredients[1:2] // lime juice only, cost 0.15
	ck.RetailPrice = 3
	res := ValidateCocktailBusiness(ck, calc.DefaultTargetPourCostPct)
	require.True(t, containsMatch(res.Suggestions, "undervalued"))
}

func TestValidateCocktailBusinessCriticalTotalCost(t *testing.T) {
	ck := validCocktail()
	ck.Ingredients[0].Cost = 60
	ck.RetailPrice = 200
	res := ValidateCocktailBusiness(ck, calc.DefaultTargetPourCostPct)
	require.False(t, res.IsValid)
	require.True(t, containsMatch(res.CriticalErrors, "implausibly high"))
}
