package reports

import (
	"fmt"
	"time"

	"github.com/xitongsys/parquet-go/schema"
)

const (
	TopicIngredientReports = "ingredient_pricing_reports"
	TopicCocktailReports   = "cocktail_pricing_reports"
)

// IngredientReport is one pricing snapshot row for an ingredient.
// Monetary fields are rounded to two decimals for display; the raw
// unrounded values live only inside the calc package.
type IngredientReport struct {
	Timestamp        int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	IngredientID     string  `json:"ingredientId" parquet:"name=ingredientId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Name             string  `json:"name" parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	Category         string  `json:"category" parquet:"name=category,type=BYTE_ARRAY,convertedtype=UTF8"`
	BottleSizeMl     float64 `json:"bottleSizeMl" parquet:"name=bottleSizeMl,type=DOUBLE"`
	BottlePrice      float64 `json:"bottlePrice" parquet:"name=bottlePrice,type=DOUBLE"`
	PourSizeOz       float64 `json:"pourSizeOz" parquet:"name=pourSizeOz,type=DOUBLE"`
	RetailPrice      float64 `json:"retailPrice" parquet:"name=retailPrice,type=DOUBLE"`
	CostPerOz        float64 `json:"costPerOz" parquet:"name=costPerOz,type=DOUBLE"`
	PourCost         float64 `json:"pourCost" parquet:"name=pourCost,type=DOUBLE"`
	PourCostPct      float64 `json:"pourCostPct" parquet:"name=pourCostPct,type=DOUBLE"`
	SuggestedPrice   float64 `json:"suggestedPrice" parquet:"name=suggestedPrice,type=DOUBLE"`
	ProfitMargin     float64 `json:"profitMargin" parquet:"name=profitMargin,type=DOUBLE"`
	PerformanceLevel string  `json:"performanceLevel" parquet:"name=performanceLevel,type=BYTE_ARRAY,convertedtype=UTF8"`
}

// CocktailReport is one pricing snapshot row for a cocktail.
type CocktailReport struct {
	Timestamp        int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
	CocktailID       string  `json:"cocktailId" parquet:"name=cocktailId,type=BYTE_ARRAY,convertedtype=UTF8"`
	Name             string  `json:"name" parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	Category         string  `json:"category" parquet:"name=category,type=BYTE_ARRAY,convertedtype=UTF8"`
	IngredientCount  int32   `json:"ingredientCount" parquet:"name=ingredientCount,type=INT32"`
	RetailPrice      float64 `json:"retailPrice" parquet:"name=retailPrice,type=DOUBLE"`
	TotalCost        float64 `json:"totalCost" parquet:"name=totalCost,type=DOUBLE"`
	PourCostPct      float64 `json:"pourCostPct" parquet:"name=pourCostPct,type=DOUBLE"`
	SuggestedPrice   float64 `json:"suggestedPrice" parquet:"name=suggestedPrice,type=DOUBLE"`
	ProfitMargin     float64 `json:"profitMargin" parquet:"name=profitMargin,type=DOUBLE"`
	PerformanceLevel string  `json:"performanceLevel" parquet:"name=performanceLevel,type=BYTE_ARRAY,convertedtype=UTF8"`
}

// GetSchema returns the parquet schema handler for a report topic.
func GetSchema(topic string) (*schema.SchemaHandler, error) {
	var sh *schema.SchemaHandler
	var err error

	switch topic {
	case TopicIngredientReports:
		sh, err = schema.NewSchemaHandlerFromStruct(new(IngredientReport))
	case TopicCocktailReports:
		sh, err = schema.NewSchemaHandlerFromStruct(new(CocktailReport))
	default:
		return nil, fmt.Errorf("unknown report topic: %s", topic)
	}

	if err != nil {
		return nil, fmt.Errorf("error creating schema for %s: %w", topic, err)
	}

	return sh, nil
}

func reportTimestamp(now time.Time) int64 {
	return now.Unix()
}
