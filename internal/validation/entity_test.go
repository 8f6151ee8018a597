package validation

import (
	"strings"
	"testing"

	"github.com/jduncan017/pourcost/internal/models"
	"github.com/stretchr/testify/require"
)

func validIngredient() *models.Ingredient {
	return &models.Ingredient{
		Name:         "Vodka",
		Category:     models.CategorySpirit,
		BottleSizeMl: 750,
		BottlePrice:  25,
		PourSizeOz:   1.5,
		RetailPrice:  8,
	}
}

func validCocktail() *models.Cocktail {
	return &models.Cocktail{
		Name:        "Mai Tai",
		Category:    models.CocktailTiki,
		RetailPrice: 12,
		Ingredients: []models.CocktailIngredient{
			{Name: "Aged Rum", AmountOz: 2, Cost: 1.60},
			{Name: "Lime Juice", AmountOz: 1, Cost: 0.15},
			{Name: "Orange Curacao", AmountOz: 0.5, Cost: 0.70},
		},
	}
}

func TestValidateIngredientValid(t *testing.T) {
	res := ValidateIngredient(validIngredient())
	require.True(t, res.IsValid)
	require.Empty(t, res.Errors)
}

func TestValidateIngredientMissingName(t *testing.T) {
	in := validIngredient()
	in.Name = ""
	res := ValidateIngredient(in)
	require.False(t, res.IsValid)
	require.Len(t, res.Errors, 1)
	require.Contains(t, res.Errors[0], "name is required")
}

func TestValidateIngredientInvalidResultShape(t *testing.T) {
	in := validIngredient()
	in.Name = ""
	in.BottleSizeMl = 0
	res := ValidateIngredient(in)
	require.False(t, res.IsValid)
	require.Equal(t, res.IsValid, len(res.Errors) == 0)
	require.Len(t, res.Errors, 2)
}

func TestValidateIngredientLoseMoney(t *testing.T) {
	in := validIngredient()
	in.BottlePrice = 500
	in.RetailPrice = 0.01
	res := ValidateIngredient(in)
	require.False(t, res.IsValid)

	found := false
	for _, msg := range res.Errors {
		if strings.Contains(msg, "lose money") {
			found = true
		}
	}
	require.True(t, found, "expected a lose money error, got %v", res.Errors)
}

func TestValidateIngredientRetailAboveCostPasses(t *testing.T) {
	// $1 bottle over 750 mL: a 1.5 oz pour costs well under a cent more
	// than nothing, so even a tiny retail price clears it.
	in := validIngredient()
	in.BottlePrice = 1
	in.RetailPrice = 0.10
	res := ValidateIngredient(in)
	require.True(t, res.IsValid, "errors: %v", res.Errors)
}

func TestValidateIngredientCostPerOunceWarnings(t *testing.T) {
	in := validIngredient()
	in.BottlePrice = 2000 // ~78.9 per ounce
	in.RetailPrice = 200
	res := ValidateIngredient(in)
	require.True(t, res.IsValid)
	require.NotEmpty(t, res.Warnings)

	in = validIngredient()
	in.BottlePrice = 0.05 // ~0.002 per ounce
	res = ValidateIngredient(in)
	found := false
	for _, msg := range res.Warnings {
		if strings.Contains(msg, "unusually low") {
			found = true
		}
	}
	require.True(t, found, "warnings: %v", res.Warnings)
}

func TestValidateCocktailValid(t *testing.T) {
	res := ValidateCocktail(validCocktail())
	require.True(t, res.IsValid)
	require.Empty(t, res.Errors)
	require.Empty(t, res.Warnings)
}

func TestValidateCocktailNoIngredients(t *testing.T) {
	ck := &models.Cocktail{Name: "Test"}
	res := ValidateCocktail(ck)
	require.False(t, res.IsValid)

	found := false
	for _, msg := range res.Errors {
		if strings.Contains(msg, "at least one ingredient") {
			found = true
		}
	}
	require.True(t, found, "errors: %v", res.Errors)
}

func TestValidateCocktailLineErrorsArePrefixed(t *testing.T) {
	ck := validCocktail()
	ck.Ingredients[1].Name = ""
	ck.Ingredients[2].AmountOz = 0
	res := ValidateCocktail(ck)
	require.False(t, res.IsValid)
	require.Contains(t, res.Errors, "Ingredient 2: name is required")
	require.Contains(t, res.Errors, "Ingredient 3: amount must be greater than zero")
}

func TestValidateCocktailDuplicateIngredients(t *testing.T) {
	ck := validCocktail()
	ck.Ingredients = append(ck.Ingredients, models.CocktailIngredient{
		Name: "aged rum", AmountOz: 0.5, Cost: 0.40,
	})
	res := ValidateCocktail(ck)
	require.True(t, res.IsValid)

	found := false
	for _, msg := range res.Warnings {
		if strings.Contains(msg, "more than once") {
			found = true
		}
	}
	require.True(t, found, "warnings: %v", res.Warnings)
}

func TestValidateCocktailTooManyLines(t *testing.T) {
	ck := validCocktail()
	for i := 0; i < 21; i++ {
		ck.Ingredients = append(ck.Ingredients, models.CocktailIngredient{
			Name: strings.Repeat("x", i+2), AmountOz: 0.25, Cost: 0.05,
		})
	}
	res := ValidateCocktail(ck)
	require.True(t, res.IsValid)
	require.NotEmpty(t, res.Warnings)
}

func TestValidateCocktailTextLimits(t *testing.T) {
	ck := validCocktail()
	ck.Description = strings.Repeat("d", 501)
	res := ValidateCocktail(ck)
	require.False(t, res.IsValid)

	ck = validCocktail()
	ck.Notes = strings.Repeat("n", 1001)
	res = ValidateCocktail(ck)
	require.False(t, res.IsValid)

	ck = validCocktail()
	ck.Description = strings.Repeat("d", 500)
	ck.Notes = strings.Repeat("n", 1000)
	res = ValidateCocktail(ck)
	require.True(t, res.IsValid)
}

func TestValidateCocktailNegativeLineCost(t *testing.T) {
	ck := validCocktail()
	ck.Ingredients[0].Cost = -0.5
	res := ValidateCocktail(ck)
	require.False(t, res.IsValid)
	require.Contains(t, res.Errors, "Ingredient 1: cost cannot be negative")
}
