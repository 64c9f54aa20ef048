// Package config provides configuration management for the librunner CLI.
package config

// Config represents the complete application configuration
type Config struct {
	App    AppConfig    `mapstructure:"app" validate:"required"`
	Race   RaceConfig   `mapstructure:"race" validate:"required"`
	Splits SplitsConfig `mapstructure:"splits" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// RaceConfig represents the race defaults used when flags leave them unset
type RaceConfig struct {
	UnitSystem      string `mapstructure:"unit_system" validate:"required,unitsystem"`
	DefaultDistance int64  `mapstructure:"default_distance" validate:"required,gt=0"`
}

// SplitsConfig represents split planning configuration
type SplitsConfig struct {
	// DegreeSeconds is the pace variation applied by negative and positive
	// split plans, in seconds around the average pace.
	DegreeSeconds int `mapstructure:"degree_seconds" validate:"gte=0,lte=60"`
}
