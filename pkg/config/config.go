package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Log      LogConfig
	CORS     CORSConfig
	Records  RecordsConfig
	Schedule ScheduleConfig
	Metrics  MetricsConfig
	Seed     SeedConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// RecordsConfig holds the two grade scales. The prerequisite threshold and the
// GPA divisor are configured separately and never derived from each other.
type RecordsConfig struct {
	PrereqPassThreshold int
	GPAScaleDivisor     float64
}

// ScheduleConfig defines the time bucket boundaries as "HH:MM" in 24h form.
type ScheduleConfig struct {
	AfternoonStart string
	EveningStart   string
}

// MetricsConfig toggles Prometheus instrumentation.
type MetricsConfig struct {
	Enabled bool
}

// SeedConfig controls loading of the demo session at startup.
type SeedConfig struct {
	Demo bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	threshold := v.GetInt("PREREQ_PASS_THRESHOLD")
	divisor := v.GetFloat64("GPA_SCALE_DIVISOR")
	if divisor <= 0 {
		divisor = 25
	}
	cfg.Records = RecordsConfig{
		PrereqPassThreshold: threshold,
		GPAScaleDivisor:     divisor,
	}

	cfg.Schedule = ScheduleConfig{
		AfternoonStart: v.GetString("SCHEDULE_AFTERNOON_START"),
		EveningStart:   v.GetString("SCHEDULE_EVENING_START"),
	}

	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("ENABLE_METRICS"),
	}

	cfg.Seed = SeedConfig{
		Demo: v.GetBool("SEED_DEMO"),
	}

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ALLOWED_ORIGINS", "")

	v.SetDefault("PREREQ_PASS_THRESHOLD", 5)
	v.SetDefault("GPA_SCALE_DIVISOR", 25)

	v.SetDefault("SCHEDULE_AFTERNOON_START", "12:00")
	v.SetDefault("SCHEDULE_EVENING_START", "17:00")

	v.SetDefault("ENABLE_METRICS", true)
	v.SetDefault("SEED_DEMO", false)
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
