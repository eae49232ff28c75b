package config

import "github.com/spf13/viper"

type Config struct {
	Log     LogConfig
	Catalog CatalogConfig
	Search  SearchConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type CatalogConfig struct {
	SeedFile string
}

type SearchConfig struct {
	AltShiftDays int
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")
	viper.SetDefault("ROOMS_FILE", "rooms.yaml")
	viper.SetDefault("ALT_SEARCH_SHIFT_DAYS", 7)

	cfg := &Config{
		Log: LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		},
		Catalog: CatalogConfig{
			SeedFile: viper.GetString("ROOMS_FILE"),
		},
		Search: SearchConfig{
			AltShiftDays: viper.GetInt("ALT_SEARCH_SHIFT_DAYS"),
		},
	}

	return cfg, nil
}
