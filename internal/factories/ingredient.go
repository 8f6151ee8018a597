package factories

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jaswdr/faker"
	"github.com/jduncan017/pourcost/internal/models"
	"github.com/jduncan017/pourcost/internal/units"
	"github.com/lucsky/cuid"
)

var fake = faker.New()

type IngredientFactory struct{}

var spiritNames = map[models.IngredientCategory][]string{
	models.CategorySpirit:  {"Vodka", "London Dry Gin", "Blanco Tequila", "Bourbon", "Rye Whiskey", "White Rum", "Aged Rum", "Cognac", "Mezcal", "Irish Whiskey"},
	models.CategoryLiqueur: {"Triple Sec", "Coffee Liqueur", "Amaretto", "Elderflower Liqueur", "Maraschino", "Orange Curacao", "Green Chartreuse", "Campari"},
	models.CategoryWine:    {"Dry Vermouth", "Sweet Vermouth", "Prosecco", "Fino Sherry", "Ruby Port"},
	models.CategoryMixer:   {"Tonic Water", "Club Soda", "Ginger Beer", "Cola"},
	models.CategoryJuice:   {"Lime Juice", "Lemon Juice", "Orange Juice", "Pineapple Juice", "Cranberry Juice"},
	models.CategorySyrup:   {"Simple Syrup", "Demerara Syrup", "Orgeat", "Grenadine", "Honey Syrup"},
	models.CategoryBitters: {"Aromatic Bitters", "Orange Bitters", "Peychaud's Bitters"},
}

var factoryCategories = []models.IngredientCategory{
	models.CategorySpirit,
	models.CategoryLiqueur,
	models.CategoryWine,
	models.CategoryMixer,
	models.CategoryJuice,
	models.CategorySyrup,
	models.CategoryBitters,
}

// CreateIngredient builds a plausible priced bottle: a standard trade
// size, a cost in line with its category, and a retail price that lands
// in a realistic pour-cost range.
func (f *IngredientFactory) CreateIngredient() models.Ingredient {
	category := factoryCategories[rand.Intn(len(factoryCategories))]
	names := spiritNames[category]
	name := fmt.Sprintf("%s %s", fake.Company().Name(), names[rand.Intn(len(names))])

	sizes := []float64{375, 500, 700, 750, 1000, 1750}
	bottleSize := sizes[rand.Intn(len(sizes))]
	bottlePrice := fake.Float64(2, 8, 80)
	pourSize := 1.5

	// Aim retail near a 15-30% pour cost so generated libraries look sane.
	costPerOz := bottlePrice / (bottleSize / units.MlPerOunce)
	pourCost := costPerOz * pourSize
	targetPct := fake.Float64(2, 15, 30)
	retail := pourCost / (targetPct / 100)

	now := time.Now()
	return models.Ingredient{
		ID:           cuid.New(),
		Name:         name,
		Category:     category,
		BottleSizeMl: bottleSize,
		BottlePrice:  bottlePrice,
		PourSizeOz:   pourSize,
		RetailPrice:  retail,
		System:       units.US,
		Description:  fake.Lorem().Sentence(8),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// CreateIngredients builds n independent ingredients.
func (f *IngredientFactory) CreateIngredients(n int) []*models.Ingredient {
	out := make([]*models.Ingredient, n)
	for i := range out {
		ing := f.CreateIngredient()
		out[i] = &ing
	}
	return out
}
