package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/espacohub/StudioBookingService/internal/domain"
)

// Config is the service configuration loaded from config.toml.
type Config struct {
	Server       ServerConfig  `toml:"server"`
	Logs         LogsConfig    `toml:"logs"`
	Metrics      MetricsConfig `toml:"metrics"`
	Studio       StudioConfig  `toml:"studio"`
	SeedBookings []SeedBooking `toml:"seed_bookings"`
}

// ServerConfig holds the HTTP server settings. Timeouts are seconds.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig holds the logging settings
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig holds the prometheus settings
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// StudioConfig holds the scheduling business rules for the studio.
type StudioConfig struct {
	HalfHourRate     float64  `toml:"half_hour_rate"`
	MinLeadTimeHours int      `toml:"min_lead_time_hours"`
	BlackoutWeekdays []string `toml:"blackout_weekdays"`
	OpenTime         string   `toml:"open_time"`
	CloseTime        string   `toml:"close_time"`
	SlotStepMinutes  int      `toml:"slot_step_minutes"`
	PaymentPath      string   `toml:"payment_path"`
}

// SeedBooking is an operator-provided booking loaded at startup.
// Start and End are local wall-clock timestamps (2006-01-02T15:04).
type SeedBooking struct {
	Title string `toml:"title"`
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// Load reads and validates the configuration file, filling defaults for
// absent keys.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "studio-booking-service",
			Path:        "/metrics",
		},
		Studio: StudioConfig{
			HalfHourRate:     domain.DefaultHalfHourRate,
			MinLeadTimeHours: domain.DefaultMinLeadTimeHours,
			BlackoutWeekdays: []string{"sunday"},
			OpenTime:         domain.DefaultOpenTime,
			CloseTime:        domain.DefaultCloseTime,
			SlotStepMinutes:  domain.DefaultSlotStepMinutes,
			PaymentPath:      "/payment",
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}
	if c.Studio.HalfHourRate < 0 {
		return fmt.Errorf("config: half_hour_rate must not be negative")
	}
	if c.Studio.MinLeadTimeHours < 0 {
		return fmt.Errorf("config: min_lead_time_hours must not be negative")
	}
	if c.Studio.SlotStepMinutes <= 0 {
		return fmt.Errorf("config: slot_step_minutes must be positive")
	}
	if _, err := c.BlackoutWeekdays(); err != nil {
		return err
	}
	if _, err := c.Seeds(); err != nil {
		return err
	}
	return nil
}

// BlackoutWeekdays parses the configured blackout weekday names.
func (c *Config) BlackoutWeekdays() ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(c.Studio.BlackoutWeekdays))
	for _, name := range c.Studio.BlackoutWeekdays {
		day, err := domain.ParseWeekday(name)
		if err != nil {
			return nil, fmt.Errorf("config: blackout_weekdays: %w", err)
		}
		days = append(days, day)
	}
	return days, nil
}

// MinLeadTime returns the configured lead time as a duration.
func (c *Config) MinLeadTime() time.Duration {
	return time.Duration(c.Studio.MinLeadTimeHours) * time.Hour
}

// ParsedSeed is a seed booking with parsed timestamps.
type ParsedSeed struct {
	Title    string
	Interval domain.Interval
}

// Seeds parses the seed booking timestamps into local time.
func (c *Config) Seeds() ([]ParsedSeed, error) {
	seeds := make([]ParsedSeed, 0, len(c.SeedBookings))
	for i, sb := range c.SeedBookings {
		start, err := time.ParseInLocation(domain.DateTimeFormat, sb.Start, time.Local)
		if err != nil {
			return nil, fmt.Errorf("config: seed_bookings[%d].start: %w", i, err)
		}
		end, err := time.ParseInLocation(domain.DateTimeFormat, sb.End, time.Local)
		if err != nil {
			return nil, fmt.Errorf("config: seed_bookings[%d].end: %w", i, err)
		}
		seeds = append(seeds, ParsedSeed{
			Title:    sb.Title,
			Interval: domain.Interval{Start: start, End: end},
		})
	}
	return seeds, nil
}
