package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	TwoFA    TwoFAConfig
	Reminder ReminderConfig
	Metrics  MetricsConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type TwoFAConfig struct {
	CodeExpiry time.Duration
}

type ReminderConfig struct {
	// Cron spec for the daily appointment reminder job
	Schedule string
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	twoFAExpiry, err := time.ParseDuration(viper.GetString("TWOFA_CODE_EXPIRY"))
	if err != nil {
		twoFAExpiry = 5 * time.Minute
	}

	reminderSchedule := viper.GetString("REMINDER_SCHEDULE")
	if reminderSchedule == "" {
		reminderSchedule = "0 8 * * *"
	}

	metricsPath := viper.GetString("METRICS_PATH")
	if metricsPath == "" {
		metricsPath = "/metrics"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		TwoFA: TwoFAConfig{
			CodeExpiry: twoFAExpiry,
		},
		Reminder: ReminderConfig{
			Schedule: reminderSchedule,
		},
		Metrics: MetricsConfig{
			Enabled: viper.GetBool("METRICS_ENABLED"),
			Path:    metricsPath,
		},
	}

	return config, nil
}
