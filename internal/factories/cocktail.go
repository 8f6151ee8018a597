package factories

import (
	"math/rand"
	"time"

	"github.com/jduncan017/pourcost/internal/calc"
	"github.com/jduncan017/pourcost/internal/models"
	"github.com/jduncan017/pourcost/internal/units"
	"github.com/lucsky/cuid"
)

type CocktailFactory struct{}

var cocktailNames = []string{
	"Old Fashioned", "Negroni", "Margarita", "Daiquiri", "Whiskey Sour",
	"Mai Tai", "Paloma", "Gimlet", "Manhattan", "Mojito", "Corpse Reviver",
	"Penicillin", "Last Word", "Paper Plane", "Jungle Bird",
}

var factoryCocktailCategories = []models.CocktailCategory{
	models.CocktailClassic,
	models.CocktailModern,
	models.CocktailTiki,
	models.CocktailSour,
	models.CocktailHighball,
	models.CocktailSignature,
}

// CreateCocktail builds a recipe of 2 to 6 lines drawn from the given
// ingredient pool, with per-line costs derived from each ingredient's
// actual cost per ounce and a retail price near a 20% pour cost.
func (f *CocktailFactory) CreateCocktail(pool []*models.Ingredient) models.Cocktail {
	lineCount := rand.Intn(5) + 2
	if lineCount > len(pool) {
		lineCount = len(pool)
	}

	perm := rand.Perm(len(pool))
	lines := make([]models.CocktailIngredient, 0, lineCount)
	total := 0.0
	for _, idx := range perm[:lineCount] {
		ing := pool[idx]
		amount := fake.Float64(2, 1, 8) / 4 // 0.25 to 2.0 oz in quarter steps
		costPerOz := ing.BottlePrice / (ing.BottleSizeMl / units.MlPerOunce)
		cost := costPerOz * amount
		total += cost
		lines = append(lines, models.CocktailIngredient{
			IngredientID: ing.ID,
			Name:         ing.Name,
			AmountOz:     amount,
			Cost:         cost,
		})
	}

	now := time.Now()
	return models.Cocktail{
		ID:          cuid.New(),
		Name:        cocktailNames[rand.Intn(len(cocktailNames))],
		Category:    factoryCocktailCategories[rand.Intn(len(factoryCocktailCategories))],
		Description: fake.Lorem().Sentence(10),
		RetailPrice: total / (calc.DefaultTargetPourCostPct / 100),
		Ingredients: lines,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CreateCocktails builds n cocktails from the same ingredient pool.
func (f *CocktailFactory) CreateCocktails(n int, pool []*models.Ingredient) []*models.Cocktail {
	out := make([]*models.Cocktail, n)
	for i := range out {
		ck := f.CreateCocktail(pool)
		out[i] = &ck
	}
	return out
}
