package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	ServerPort             string `mapstructure:"SERVER_PORT"`
	DatabaseURL            string `mapstructure:"DATABASE_URL"`
	APIToken               string `mapstructure:"API_TOKEN"`
	ReminderSchedule       string `mapstructure:"REMINDER_SCHEDULE"`
	ReminderWindowDays     int    `mapstructure:"REMINDER_WINDOW_DAYS"`
	DefaultProjectionYears int    `mapstructure:"DEFAULT_PROJECTION_YEARS"`
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (config Config, err error) {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_URL", "host=localhost port=5432 user=postgres password=postgres dbname=lendtrack sslmode=disable")
	viper.SetDefault("API_TOKEN", "dev-token")
	viper.SetDefault("REMINDER_SCHEDULE", "0 8 * * *")
	viper.SetDefault("REMINDER_WINDOW_DAYS", 7)
	viper.SetDefault("DEFAULT_PROJECTION_YEARS", 5)
	viper.AutomaticEnv()

	// Bind environment variables explicitly so they appear in Unmarshal
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("DATABASE_URL")
	_ = viper.BindEnv("API_TOKEN")
	_ = viper.BindEnv("REMINDER_SCHEDULE")
	_ = viper.BindEnv("REMINDER_WINDOW_DAYS")
	_ = viper.BindEnv("DEFAULT_PROJECTION_YEARS")

	err = viper.Unmarshal(&config)
	return
}
