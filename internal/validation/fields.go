// Package validation implements field, entity and business-rule checks
// for ingredients and cocktails. Validators never fail as Go errors:
// findings come back as data, graded by severity, and it is the caller's
// job to block saves on errors, confirm on warnings and merely surface
// suggestions.
package validation

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/jduncan017/pourcost/internal/units"
)

// Severity grades a single finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// FieldResult is the outcome of validating a single field value.
type FieldResult struct {
	IsValid  bool     `json:"is_valid"`
	Message  string   `json:"message,omitempty"`
	Severity Severity `json:"severity,omitempty"`
}

func valid() FieldResult {
	return FieldResult{IsValid: true}
}

func invalid(msg string) FieldResult {
	return FieldResult{IsValid: false, Message: msg, Severity: SeverityError}
}

func warning(msg string) FieldResult {
	return FieldResult{IsValid: true, Message: msg, Severity: SeverityWarning}
}

func info(msg string) FieldResult {
	return FieldResult{IsValid: true, Message: msg, Severity: SeverityInfo}
}

// PourContext selects which pour-amount rules apply.
type PourContext string

const (
	ContextTasting  PourContext = "tasting"
	ContextCocktail PourContext = "cocktail"
	ContextBatch    PourContext = "batch"
)

const (
	nameMinLen     = 2
	nameMaxLen     = 100
	nameLongLen    = 50
	maxBottleMl    = 10000.0
	smallBottleMl  = 50.0
	largeBottleMl  = 5000.0
	maxBottlePrice = 10000.0
	maxPourMl      = 1000.0
)

// StandardBottleSizesMl lists the common trade bottle formats used for
// the near-standard-size suggestion.
var StandardBottleSizesMl = []float64{50, 200, 375, 500, 700, 750, 1000, 1750}

var forbiddenNameChars = []string{"<", ">", `"`, "'", "&"}

// ValidateName checks an ingredient or cocktail name. label names the
// entity in messages ("Ingredient", "Cocktail").
func ValidateName(name, label string) FieldResult {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return invalid(fmt.Sprintf("%s name is required", label))
	}
	length := utf8.RuneCountInString(trimmed)
	if length < nameMinLen {
		return invalid(fmt.Sprintf("%s name must be at least %d characters", label, nameMinLen))
	}
	if length > nameMaxLen {
		return invalid(fmt.Sprintf("%s name must be %d characters or fewer", label, nameMaxLen))
	}
	for _, ch := range forbiddenNameChars {
		if strings.Contains(trimmed, ch) {
			return invalid(fmt.Sprintf("%s name contains invalid characters", label))
		}
	}
	if length > nameLongLen {
		return warning(fmt.Sprintf("%s name is quite long and may be truncated in lists", label))
	}
	return valid()
}

// ValidateBottleSize checks a bottle size in milliliters.
func ValidateBottleSize(ml float64) FieldResult {
	if ml <= 0 {
		return invalid("Bottle size must be greater than zero")
	}
	if ml > maxBottleMl {
		return invalid(fmt.Sprintf("Bottle size cannot exceed %.0f mL", maxBottleMl))
	}
	if ml < smallBottleMl {
		return warning("Bottle size is unusually small")
	}
	if ml > largeBottleMl {
		return warning("Bottle size is unusually large")
	}
	if std, ok := nearStandardSize(ml); ok {
		return info(fmt.Sprintf("Did you mean the standard %.0f mL bottle?", std))
	}
	return valid()
}

// nearStandardSize reports the closest standard bottle size within 10%
// relative difference. A size that already is standard never yields a
// suggestion, even when another standard size sits within 10% of it
// (750 is within 10% of 700).
func nearStandardSize(ml float64) (float64, bool) {
	var best float64
	found := false
	for _, std := range StandardBottleSizesMl {
		if ml == std {
			return 0, false
		}
		if math.Abs(ml-std)/std <= 0.10 {
			if !found || math.Abs(ml-std) < math.Abs(ml-best) {
				best = std
				found = true
			}
		}
	}
	return best, found
}

// ValidateBottlePrice checks a bottle price.
func ValidateBottlePrice(price float64) FieldResult {
	if price < 0 {
		return invalid("Bottle price cannot be negative")
	}
	if price > maxBottlePrice {
		return invalid(fmt.Sprintf("Bottle price cannot exceed %.0f", maxBottlePrice))
	}
	if price == 0 {
		return warning("Bottle price is zero; cost calculations will show no cost")
	}
	if price < 1 {
		return warning("Bottle price is unusually low")
	}
	if price > 1000 {
		return warning("Bottle price is unusually high")
	}
	return valid()
}

// ValidatePourAmount checks a pour amount in milliliters for the given
// context. Amounts over 1000 mL are rejected in every context.
func ValidatePourAmount(ml float64, ctx PourContext) FieldResult {
	if ml <= 0 {
		return invalid("Pour amount must be greater than zero")
	}
	if ml > maxPourMl {
		return invalid(fmt.Sprintf("Pour amount cannot exceed %.0f mL", maxPourMl))
	}
	switch ctx {
	case ContextTasting:
		if ml > 30 {
			return warning("Tasting pours are normally 30 mL or less")
		}
	case ContextCocktail:
		if ml > 120 {
			return warning(fmt.Sprintf("A %s pour is very large for a single cocktail ingredient", units.FormatVolume(ml, units.Metric)))
		}
		if ml < 1 {
			return info("Very small pour; consider dashes or drops instead")
		}
	case ContextBatch:
		if ml < 50 {
			return info("Small amount for a batch recipe; check the unit")
		}
	}
	return valid()
}
