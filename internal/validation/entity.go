package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jduncan017/pourcost/internal/calc"
	"github.com/jduncan017/pourcost/internal/models"
	"github.com/jduncan017/pourcost/internal/units"
)

// Result aggregates field and cross-field findings for one entity.
// IsValid holds exactly when Errors is empty.
type Result struct {
	IsValid     bool     `json:"is_valid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

func newResult() *Result {
	return &Result{
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}
}

func (r *Result) addError(msg string)      { r.Errors = append(r.Errors, msg) }
func (r *Result) addWarning(msg string)    { r.Warnings = append(r.Warnings, msg) }
func (r *Result) addSuggestion(msg string) { r.Suggestions = append(r.Suggestions, msg) }

func (r *Result) absorb(fr FieldResult) {
	if !fr.IsValid {
		r.addError(fr.Message)
		return
	}
	switch fr.Severity {
	case SeverityWarning:
		r.addWarning(fr.Message)
	case SeverityInfo:
		r.addSuggestion(fr.Message)
	}
}

func (r *Result) finalize() Result {
	r.IsValid = len(r.Errors) == 0
	return *r
}

const (
	maxDescriptionLen = 500
	maxNotesLen       = 1000
	maxCocktailLines  = 20

	costPerOzHighWarn = 50.0
	costPerOzLowWarn  = 0.01
)

// ValidateIngredient runs the field validators over an ingredient and
// the cross-field pricing sanity checks. It never returns a Go error;
// an ingredient too malformed to price simply collects field errors.
func ValidateIngredient(in *models.Ingredient) Result {
	r := newResult()

	r.absorb(ValidateName(in.Name, "Ingredient"))
	r.absorb(ValidateBottleSize(in.BottleSizeMl))
	r.absorb(ValidateBottlePrice(in.BottlePrice))

	costPerOz, err := calc.CostPerOunce(in.BottlePrice, in.BottleSizeMl)
	if err != nil {
		// Field errors above already cover invalid size/price inputs.
		return r.finalize()
	}

	if costPerOz > costPerOzHighWarn {
		r.addWarning(fmt.Sprintf("Cost per ounce of %.2f is unusually high; double-check bottle size and price", costPerOz))
	} else if costPerOz > 0 && costPerOz < costPerOzLowWarn {
		r.addWarning(fmt.Sprintf("Cost per ounce of %.4f is unusually low; double-check bottle size and price", costPerOz))
	}

	if in.RetailPrice > 0 {
		standardPourCost := costPerOz * calc.StandardPourOz
		if in.RetailPrice < standardPourCost {
			r.addError(fmt.Sprintf("Retail price %.2f is below the %.2f cost of a standard pour - you would lose money on every sale", in.RetailPrice, standardPourCost))
		}
	}

	return r.finalize()
}

// ValidateCocktail checks a cocktail's name, recipe lines and free-text
// fields. Per-line findings carry a 1-based "Ingredient N:" prefix so
// the UI can point at the offending row.
func ValidateCocktail(ck *models.Cocktail) Result {
	r := newResult()

	r.absorb(ValidateName(ck.Name, "Cocktail"))

	if len(ck.Ingredients) == 0 {
		r.addError("Cocktail must have at least one ingredient")
	} else if len(ck.Ingredients) > maxCocktailLines {
		r.addWarning(fmt.Sprintf("Cocktail has %d ingredients; recipes with more than %d are hard to cost accurately", len(ck.Ingredients), maxCocktailLines))
	}

	seen := make(map[string]bool, len(ck.Ingredients))
	for i, line := range ck.Ingredients {
		prefix := fmt.Sprintf("Ingredient %d: ", i+1)

		if strings.TrimSpace(line.Name) == "" {
			r.addError(prefix + "name is required")
		} else {
			key := strings.ToLower(strings.TrimSpace(line.Name))
			if seen[key] {
				r.addWarning(fmt.Sprintf("Ingredient %q appears more than once", line.Name))
			}
			seen[key] = true
		}

		ml, err := units.OuncesToMilliliters(line.AmountOz)
		if err != nil || line.AmountOz <= 0 {
			r.addError(prefix + "amount must be greater than zero")
		} else {
			fr := ValidatePourAmount(ml, ContextCocktail)
			if fr.Message != "" {
				fr.Message = prefix + fr.Message
			}
			r.absorb(fr)
		}

		if line.Cost < 0 {
			r.addError(prefix + "cost cannot be negative")
		}
	}

	if utf8.RuneCountInString(ck.Description) > maxDescriptionLen {
		r.addError(fmt.Sprintf("Description must be %d characters or fewer", maxDescriptionLen))
	}
	if utf8.RuneCountInString(ck.Notes) > maxNotesLen {
		r.addError(fmt.Sprintf("Notes must be %d characters or fewer", maxNotesLen))
	}

	return r.finalize()
}
