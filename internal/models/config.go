package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	BucketName string `mapstructure:"bucket_name"`
	Region     string `mapstructure:"region"`
}

type Config struct {
	TargetPourCostPct float64 `mapstructure:"target_pour_cost_pct"`
	MeasurementSystem string  `mapstructure:"measurement_system"`
	DefaultPourSizeOz float64 `mapstructure:"default_pour_size_oz"`

	DatabaseURL string `mapstructure:"database_url"`

	SeedIngredients int `mapstructure:"seed_ingredients"`
	SeedCocktails   int `mapstructure:"seed_cocktails"`

	LibraryFile string `mapstructure:"library_file"`

	OutputFormat      string             `mapstructure:"output_format"`
	OutputPath        string             `mapstructure:"output_path"`
	OutputFolder      string             `mapstructure:"output_folder"`
	OutputDestination string             `mapstructure:"output_destination"`
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`
	KafkaTopic      string `mapstructure:"kafka_topic"`
}

// LoadConfig initializes and reads the configuration using Viper
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("target_pour_cost_pct", 20.0)
	viper.SetDefault("measurement_system", "us")
	viper.SetDefault("default_pour_size_oz", 1.5)
	viper.SetDefault("output_destination", "local")
	viper.SetDefault("kafka_topic", "pricing_reports")

	if err := viper.ReadInConfig(); err != nil {
		// A missing default config is fine; flags and env still apply.
		if cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	if config.TargetPourCostPct <= 0 || config.TargetPourCostPct > 100 {
		return nil, fmt.Errorf("target_pour_cost_pct must be in (0,100], got %v", config.TargetPourCostPct)
	}

	return &config, nil
}
