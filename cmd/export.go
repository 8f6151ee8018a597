package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jduncan017/pourcost/internal/models"
	"github.com/jduncan017/pourcost/internal/reports"
	"github.com/jduncan017/pourcost/internal/repositories/postgres"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export pricing reports for a library",
	Long:  `export builds a pricing snapshot row for every ingredient and cocktail in the library (from a library file or the postgres store) and writes the rows to the configured destination: console, json, csv, parquet (local or S3) or Kafka.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		lib, err := loadExportLibrary(cfg)
		if err != nil {
			log.Fatalf("Failed to load library: %v", err)
		}

		dest, err := reports.NewDestination(cfg)
		if err != nil {
			log.Fatalf("Failed to create output destination: %v", err)
		}

		exporter := reports.NewExporter(dest, cfg.TargetPourCostPct)
		if err := exporter.Export(lib); err != nil {
			exporter.Close()
			log.Fatalf("Export failed: %v", err)
		}
		if err := exporter.Close(); err != nil {
			log.Fatalf("Failed to close output destination: %v", err)
		}

		log.Printf("Exported reports for %d ingredients and %d cocktails", len(lib.Ingredients), len(lib.Cocktails))
	},
}

// loadExportLibrary prefers a library file when configured, falling
// back to the postgres store.
func loadExportLibrary(cfg *models.Config) (*models.Library, error) {
	if cfg.LibraryFile != "" {
		return models.LoadLibrary(cfg.LibraryFile)
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("export requires a library file or a database url")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer pool.Close()

	ingredientRepo := postgres.NewIngredientRepository(pool, cfg.TargetPourCostPct)
	cocktailRepo := postgres.NewCocktailRepository(pool, cfg.TargetPourCostPct)

	ingredients, err := ingredientRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ingredients: %w", err)
	}
	cocktails, err := cocktailRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cocktails: %w", err)
	}

	lib := &models.Library{}
	for _, in := range ingredients {
		lib.Ingredients = append(lib.Ingredients, *in)
	}
	for _, ck := range cocktails {
		lib.Cocktails = append(lib.Cocktails, *ck)
	}
	return lib, nil
}

func init() {
	exportCmd.Flags().String("library-file", "", "Path to a JSON library file")
	exportCmd.Flags().String("output-format", "json", "Report format: json, csv or parquet")
	exportCmd.Flags().String("output-path", "", "Base directory for report files (console output if empty)")
	exportCmd.Flags().String("output-folder", "pourcost_reports", "Folder name under the output path")
	exportCmd.Flags().Bool("kafka-enabled", false, "Publish reports to Kafka instead of files")
	exportCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")

	viper.BindPFlag("library_file", exportCmd.Flags().Lookup("library-file"))
	viper.BindPFlag("output_format", exportCmd.Flags().Lookup("output-format"))
	viper.BindPFlag("output_path", exportCmd.Flags().Lookup("output-path"))
	viper.BindPFlag("output_folder", exportCmd.Flags().Lookup("output-folder"))
	viper.BindPFlag("kafka_enabled", exportCmd.Flags().Lookup("kafka-enabled"))
	viper.BindPFlag("kafka_broker_list", exportCmd.Flags().Lookup("kafka-broker-list"))

	rootCmd.AddCommand(exportCmd)
}
