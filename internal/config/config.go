package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/repasseautors/lead-service/internal/domain"
)

// Config is the static service configuration loaded from config.toml.
// Secrets never live here; see Credentials.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Pricing  PricingConfig  `toml:"pricing"`
	Calendar CalendarConfig `toml:"calendar"`
	Fipe     FipeConfig     `toml:"fipe"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	Environment     string `toml:"environment"`
	AllowedOrigin   string `toml:"allowed_origin"`
}

// IsDevelopment reports whether error details may be exposed in responses
func (s ServerConfig) IsDevelopment() bool {
	return s.Environment == "development"
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ScheduleConfig drives slot generation. BlockedDates are civil dates
// (YYYY-MM-DD) in the service timezone; updating them means redeploying.
type ScheduleConfig struct {
	MorningStartHour     int      `toml:"morning_start_hour"`
	MorningEndHour       int      `toml:"morning_end_hour"`
	AfternoonStartHour   int      `toml:"afternoon_start_hour"`
	AfternoonEndHour     int      `toml:"afternoon_end_hour"`
	VisitDurationMinutes int      `toml:"visit_duration_minutes"`
	BufferMinutes        int      `toml:"buffer_minutes"`
	MaxSlotsPerWindow    int      `toml:"max_slots_per_window"`
	HorizonDays          int      `toml:"horizon_days"`
	FallbackHorizonDays  int      `toml:"fallback_horizon_days"`
	BlockedDates         []string `toml:"blocked_dates"`
}

// WorkHours converts the section into the immutable domain configuration
func (s ScheduleConfig) WorkHours() domain.WorkHoursConfig {
	return domain.WorkHoursConfig{
		Morning:              domain.HourWindow{StartHour: s.MorningStartHour, EndHour: s.MorningEndHour},
		Afternoon:            domain.HourWindow{StartHour: s.AfternoonStartHour, EndHour: s.AfternoonEndHour},
		VisitDurationMinutes: s.VisitDurationMinutes,
		BufferMinutes:        s.BufferMinutes,
		MaxSlotsPerWindow:    s.MaxSlotsPerWindow,
	}
}

// BlockedDateSet parses the configured holiday dates
func (s ScheduleConfig) BlockedDateSet() (domain.BlockedDateSet, error) {
	return domain.NewBlockedDateSet(s.BlockedDates)
}

type PricingConfig struct {
	DiscountRate float64 `toml:"discount_rate"`
}

type CalendarConfig struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
}

type FipeConfig struct {
	URL            string `toml:"url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Load reads and validates the TOML configuration file
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
			Environment:     "production",
			AllowedOrigin:   "*",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			ServiceName: "lead-service",
			Path:        "/metrics",
		},
		Schedule: ScheduleConfig{
			MorningStartHour:     domain.DefaultMorningStartHour,
			MorningEndHour:       domain.DefaultMorningEndHour,
			AfternoonStartHour:   domain.DefaultAfternoonStartHour,
			AfternoonEndHour:     domain.DefaultAfternoonEndHour,
			VisitDurationMinutes: domain.DefaultVisitDurationMinutes,
			BufferMinutes:        domain.DefaultBufferMinutes,
			MaxSlotsPerWindow:    domain.DefaultMaxSlotsPerWindow,
			HorizonDays:          domain.DefaultHorizonDays,
			FallbackHorizonDays:  domain.DefaultFallbackHorizonDays,
		},
		Pricing: PricingConfig{
			DiscountRate: domain.DefaultDiscountRate,
		},
		Calendar: CalendarConfig{
			TimeoutSeconds: 15,
		},
		Fipe: FipeConfig{
			URL:            "https://placas.fipeapi.com.br",
			TimeoutSeconds: 10,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port out of range: %d", c.Server.HTTPPort)
	}
	if err := c.Schedule.WorkHours().Validate(); err != nil {
		return fmt.Errorf("schedule: %v", err)
	}
	if _, err := c.Schedule.BlockedDateSet(); err != nil {
		return fmt.Errorf("schedule: %v", err)
	}
	if c.Schedule.HorizonDays <= 0 || c.Schedule.FallbackHorizonDays <= 0 {
		return fmt.Errorf("schedule horizons must be positive")
	}
	if c.Pricing.DiscountRate < 0 || c.Pricing.DiscountRate >= 1 {
		return fmt.Errorf("pricing.discount_rate out of range: %f", c.Pricing.DiscountRate)
	}
	return nil
}
