package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"seances/internal/weekly"
)

// Example env config:
// SEANCES_PORT=8080
// SEANCES_LOG_LEVEL=info
// SEANCES_WEEK_START=wednesday
// SEANCES_TIMEZONE=Europe/Paris
// SEANCES_MAX_SHOWTIMES=2000
// SEANCES_AUTH_REQUIRED=false
// APP_SECRET=change-me
// API_TOKEN_HASH=$2a$10$...
// SEANCES_TOKEN_TTL_MINUTES=60
type Config struct {
	Port         string
	LogLevel     string
	WeekStart    time.Weekday
	Timezone     string
	Location     *time.Location
	AppSecret    string
	APITokenHash string
	AuthRequired bool
	TokenTTL     time.Duration
	MaxShowtimes int
}

func Default() Config {
	return Config{
		Port:         "8080",
		LogLevel:     "info",
		WeekStart:    weekly.DefaultWeek.Start,
		Timezone:     "Europe/Paris",
		TokenTTL:     time.Hour,
		MaxShowtimes: 2000,
	}
}

func LoadFromEnv() (Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(os.Getenv("SEANCES_PORT")); v != "" {
		cfg.Port = v
	} else if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		cfg.Port = v
	}
	if v := strings.TrimSpace(os.Getenv("SEANCES_LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("SEANCES_WEEK_START"); v != "" {
		day, err := ParseWeekday(v)
		if err != nil {
			return cfg, err
		}
		cfg.WeekStart = day
	}
	if v := strings.TrimSpace(os.Getenv("SEANCES_TIMEZONE")); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("SEANCES_AUTH_REQUIRED"); v != "" {
		cfg.AuthRequired = parseBool(v, cfg.AuthRequired)
	}
	cfg.AppSecret = os.Getenv("APP_SECRET")
	cfg.APITokenHash = strings.TrimSpace(os.Getenv("API_TOKEN_HASH"))
	if v := os.Getenv("SEANCES_TOKEN_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			cfg.TokenTTL = time.Duration(n) * time.Minute
		}
	}
	if v := os.Getenv("SEANCES_MAX_SHOWTIMES"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			cfg.MaxShowtimes = n
		}
	}

	return cfg.normalize()
}

func (c Config) normalize() (Config, error) {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = time.Hour
	}
	if c.MaxShowtimes <= 0 {
		c.MaxShowtimes = 2000
	}
	if c.Timezone == "" {
		c.Timezone = "UTC"
	}
	if c.AuthRequired && c.AppSecret == "" && c.APITokenHash == "" {
		return c, fmt.Errorf("SEANCES_AUTH_REQUIRED needs APP_SECRET or API_TOKEN_HASH")
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return c, fmt.Errorf("SEANCES_TIMEZONE: %w", err)
	}
	c.Location = loc
	return c, nil
}

// Compactor builds the weekly compactor for the configured exhibition week.
func (c Config) Compactor() *weekly.Compactor {
	return weekly.New(weekly.WithWeek(weekly.Week{Start: c.WeekStart}))
}

var weekdayNames = map[string]time.Weekday{
	"monday": time.Monday, "lundi": time.Monday, "lun": time.Monday,
	"tuesday": time.Tuesday, "mardi": time.Tuesday, "mar": time.Tuesday,
	"wednesday": time.Wednesday, "mercredi": time.Wednesday, "mer": time.Wednesday,
	"thursday": time.Thursday, "jeudi": time.Thursday, "jeu": time.Thursday,
	"friday": time.Friday, "vendredi": time.Friday, "ven": time.Friday,
	"saturday": time.Saturday, "samedi": time.Saturday, "sam": time.Saturday,
	"sunday": time.Sunday, "dimanche": time.Sunday, "dim": time.Sunday,
}

// ParseWeekday accepts English or French names and their short forms.
func ParseWeekday(raw string) (time.Weekday, error) {
	day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return 0, fmt.Errorf("invalid weekday %q", raw)
	}
	return day, nil
}

func parseBool(raw string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y", "on", "oui":
		return true
	case "0", "false", "no", "n", "off", "non":
		return false
	default:
		return def
	}
}
