package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type AuthConfig struct {
	AccessSecret  string
	TokenTTLHours int
}

// AlertsConfig carries the dashboard alert thresholds. The values are
// heuristics, kept configurable on purpose.
type AlertsConfig struct {
	MaintenanceDueDays    int
	InspectionExpiryDays  int
	InsuranceExpiryDays   int
	HighConsumptionFactor float64
}

type StatisticsConfig struct {
	TrendDays        int
	MonthlyMonths    int
	PredictionMonths int
	TopVehicles      int
	RecentMovements  int
}

// SMTPConfig is read for report-mailing integrations; the service itself
// does not send mail.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Auth        AuthConfig
	Alerts      AlertsConfig
	Statistics  StatisticsConfig
	SMTP        SMTPConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")

	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Auth: AuthConfig{
			AccessSecret:  v.GetString("JWT_ACCESS_SECRET"),
			TokenTTLHours: v.GetInt("JWT_TOKEN_TTL_HOURS"),
		},
		Alerts: AlertsConfig{
			MaintenanceDueDays:    v.GetInt("ALERTS_MAINTENANCE_DUE_DAYS"),
			InspectionExpiryDays:  v.GetInt("ALERTS_INSPECTION_EXPIRY_DAYS"),
			InsuranceExpiryDays:   v.GetInt("ALERTS_INSURANCE_EXPIRY_DAYS"),
			HighConsumptionFactor: v.GetFloat64("ALERTS_HIGH_CONSUMPTION_FACTOR"),
		},
		Statistics: StatisticsConfig{
			TrendDays:        v.GetInt("STATS_TREND_DAYS"),
			MonthlyMonths:    v.GetInt("STATS_MONTHLY_MONTHS"),
			PredictionMonths: v.GetInt("STATS_PREDICTION_MONTHS"),
			TopVehicles:      v.GetInt("STATS_TOP_VEHICLES"),
			RecentMovements:  v.GetInt("STATS_RECENT_MOVEMENTS"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
		},
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Auth.TokenTTLHours <= 0 {
		cfg.Auth.TokenTTLHours = 12
	}
	if cfg.Alerts.MaintenanceDueDays <= 0 {
		cfg.Alerts.MaintenanceDueDays = 30
	}
	if cfg.Alerts.InspectionExpiryDays <= 0 {
		cfg.Alerts.InspectionExpiryDays = 60
	}
	if cfg.Alerts.InsuranceExpiryDays <= 0 {
		cfg.Alerts.InsuranceExpiryDays = 30
	}
	if cfg.Alerts.HighConsumptionFactor <= 0 {
		cfg.Alerts.HighConsumptionFactor = 1.3
	}
	if cfg.Statistics.TrendDays <= 0 {
		cfg.Statistics.TrendDays = 30
	}
	if cfg.Statistics.MonthlyMonths <= 0 {
		cfg.Statistics.MonthlyMonths = 12
	}
	if cfg.Statistics.PredictionMonths <= 0 {
		cfg.Statistics.PredictionMonths = 3
	}
	if cfg.Statistics.TopVehicles <= 0 {
		cfg.Statistics.TopVehicles = 5
	}
	if cfg.Statistics.RecentMovements <= 0 {
		cfg.Statistics.RecentMovements = 10
	}
}

func validate(cfg *Config) error {
	if cfg.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	return nil
}
