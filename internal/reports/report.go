// Package reports turns an ingredient/cocktail library into pricing
// snapshot rows and fans them out to the configured destination
// (console, JSON, CSV, parquet locally or on S3, or Kafka).
package reports

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jduncan017/pourcost/internal/calc"
	"github.com/jduncan017/pourcost/internal/models"
)

// Exporter writes pricing reports for a library to one destination.
type Exporter struct {
	dest      OutputDestination
	targetPct float64
	now       func() time.Time
}

func NewExporter(dest OutputDestination, targetPct float64) *Exporter {
	return &Exporter{dest: dest, targetPct: targetPct, now: time.Now}
}

// BuildIngredientReport derives a snapshot row for one ingredient.
func BuildIngredientReport(in *models.Ingredient, targetPct float64, now time.Time) (IngredientReport, error) {
	pricing, err := in.Pricing(targetPct)
	if err != nil {
		return IngredientReport{}, err
	}

	return IngredientReport{
		Timestamp:        reportTimestamp(now),
		IngredientID:     in.ID,
		Name:             in.Name,
		Category:         string(in.Category),
		BottleSizeMl:     in.BottleSizeMl,
		BottlePrice:      calc.Round2(in.BottlePrice),
		PourSizeOz:       in.PourSizeOz,
		RetailPrice:      calc.Round2(in.RetailPrice),
		CostPerOz:        calc.Round2(pricing.CostPerOz),
		PourCost:         calc.Round2(pricing.PourCost),
		PourCostPct:      calc.Round2(pricing.PourCostPct),
		SuggestedPrice:   calc.Round2(pricing.SuggestedPrice),
		ProfitMargin:     calc.Round2(pricing.ProfitMargin),
		PerformanceLevel: string(pricing.Level),
	}, nil
}

// BuildCocktailReport derives a snapshot row for one cocktail.
func BuildCocktailReport(ck *models.Cocktail, targetPct float64, now time.Time) (CocktailReport, error) {
	pricing, err := ck.Pricing(targetPct)
	if err != nil {
		return CocktailReport{}, err
	}

	return CocktailReport{
		Timestamp:        reportTimestamp(now),
		CocktailID:       ck.ID,
		Name:             ck.Name,
		Category:         string(ck.Category),
		IngredientCount:  int32(len(ck.Ingredients)),
		RetailPrice:      calc.Round2(ck.RetailPrice),
		TotalCost:        calc.Round2(pricing.TotalCost),
		PourCostPct:      calc.Round2(pricing.PourCostPct),
		SuggestedPrice:   calc.Round2(pricing.SuggestedPrice),
		ProfitMargin:     calc.Round2(pricing.ProfitMargin),
		PerformanceLevel: string(pricing.Level),
	}, nil
}

// Export writes one report row per library entry. Entries that cannot
// be priced abort the export; a library should have been validated
// before it is exported.
func (e *Exporter) Export(lib *models.Library) error {
	now := e.now()

	for i := range lib.Ingredients {
		report, err := BuildIngredientReport(&lib.Ingredients[i], e.targetPct, now)
		if err != nil {
			return fmt.Errorf("failed to build ingredient report: %w", err)
		}
		if err := e.write(TopicIngredientReports, report); err != nil {
			return err
		}
	}

	for i := range lib.Cocktails {
		report, err := BuildCocktailReport(&lib.Cocktails[i], e.targetPct, now)
		if err != nil {
			return fmt.Errorf("failed to build cocktail report: %w", err)
		}
		if err := e.write(TopicCocktailReports, report); err != nil {
			return err
		}
	}

	return nil
}

// Close flushes and closes the underlying destination.
func (e *Exporter) Close() error {
	return e.dest.Close()
}

func (e *Exporter) write(topic string, report interface{}) error {
	msg, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := e.dest.WriteMessage(topic, msg); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", topic, err)
	}
	return nil
}
