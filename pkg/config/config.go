package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Config struct {
	Env  string `validate:"required,oneof=development production test"`
	Port int    `validate:"min=1,max=65535"`

	Database DatabaseConfig
	CORS     CORSConfig
	Log      LogConfig
	Metrics  MetricsConfig
}

type DatabaseConfig struct {
	Driver       string `validate:"required,oneof=mysql postgres"`
	Host         string `validate:"required"`
	Port         int    `validate:"min=1,max=65535"`
	User         string `validate:"required"`
	Password     string
	Name         string `validate:"required"`
	Table        string `validate:"required"`
	SSLMode      string
	MaxOpenConns int `validate:"min=0"`
	MaxIdleConns int `validate:"min=0"`
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string `validate:"omitempty,oneof=json console"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
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

	cfg := &Config{}

	cfg.Env = cleanValue(v.GetString("ENV"))
	cfg.Port = v.GetInt("PORT")

	driver := strings.ToLower(cleanValue(v.GetString("DB_DRIVER")))
	password := cleanValue(v.GetString("DB_PASSWORD"))
	if password == "" {
		password = cleanValue(v.GetString("DB_PASS"))
	}
	cfg.Database = DatabaseConfig{
		Driver:       driver,
		Host:         cleanValue(v.GetString("DB_HOST")),
		Port:         v.GetInt("DB_PORT"),
		User:         cleanValue(v.GetString("DB_USER")),
		Password:     password,
		Name:         cleanValue(v.GetString("DB_NAME")),
		Table:        cleanValue(v.GetString("DB_TABLE")),
		SSLMode:      cleanValue(v.GetString("DB_SSL_MODE")),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = defaultPort(driver)
	}

	origins := splitAndTrim(cleanValue(v.GetString("ALLOWED_ORIGINS")))
	if len(origins) == 0 {
		origins = splitAndTrim(cleanValue(v.GetString("FRONTEND_URL")))
	}
	cfg.CORS = CORSConfig{AllowedOrigins: origins}

	cfg.Log = LogConfig{
		Level:  cleanValue(v.GetString("LOG_LEVEL")),
		Format: cleanValue(v.GetString("LOG_FORMAT")),
	}

	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("METRICS_ENABLED"),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded configuration against its struct constraints.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 3001)

	v.SetDefault("DB_DRIVER", DriverMySQL)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 0)
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_NAME", "student_performance")
	v.SetDefault("DB_TABLE", "student_data")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("FRONTEND_URL", "http://localhost:5173")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("METRICS_ENABLED", true)
}

func defaultPort(driver string) int {
	if driver == DriverPostgres {
		return 5432
	}
	return 3306
}

// cleanValue strips one pair of surrounding quotes left behind by hand-written .env files.
func cleanValue(raw string) string {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 2 {
		first, last := raw[0], raw[len(raw)-1]
		if (first == '"' || first == '\'') && first == last {
			return raw[1 : len(raw)-1]
		}
	}
	return raw
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
