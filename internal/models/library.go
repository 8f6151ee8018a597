package models

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jduncan017/pourcost/internal/units"
)

// Library is a bar's full ingredient and cocktail collection as stored
// in a library file.
type Library struct {
	Ingredients []Ingredient `json:"ingredients"`
	Cocktails   []Cocktail   `json:"cocktails"`
}

type rawIngredient struct {
	Ingredient
	Category string `json:"category"`
	System   string `json:"measurement_system"`
}

type rawCocktail struct {
	Cocktail
	Category string `json:"category"`
}

type rawLibrary struct {
	Ingredients []rawIngredient `json:"ingredients"`
	Cocktails   []rawCocktail   `json:"cocktails"`
}

// LoadLibrary reads a JSON library file, parsing category and
// measurement-system strings into their closed types. Unknown values
// are rejected here rather than carried through the application.
func LoadLibrary(filePath string) (*Library, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read library file: %w", err)
	}

	var raw rawLibrary
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse library file: %w", err)
	}

	lib := &Library{
		Ingredients: make([]Ingredient, 0, len(raw.Ingredients)),
		Cocktails:   make([]Cocktail, 0, len(raw.Cocktails)),
	}

	for i, ri := range raw.Ingredients {
		ing := ri.Ingredient
		if ri.Category != "" {
			cat, err := ParseIngredientCategory(ri.Category)
			if err != nil {
				return nil, fmt.Errorf("ingredient %d (%q): %w", i+1, ri.Name, err)
			}
			ing.Category = cat
		}
		if ri.System != "" {
			sys, err := units.ParseMeasurementSystem(ri.System)
			if err != nil {
				return nil, fmt.Errorf("ingredient %d (%q): %w", i+1, ri.Name, err)
			}
			ing.System = sys
		}
		lib.Ingredients = append(lib.Ingredients, ing)
	}

	for i, rc := range raw.Cocktails {
		ck := rc.Cocktail
		if rc.Category != "" {
			cat, err := ParseCocktailCategory(rc.Category)
			if err != nil {
				return nil, fmt.Errorf("cocktail %d (%q): %w", i+1, rc.Name, err)
			}
			ck.Category = cat
		}
		lib.Cocktails = append(lib.Cocktails, ck)
	}

	return lib, nil
}
