package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the full application configuration.
//
// Tags:
// - mapstructure: env variable / config key read by viper
// - default: value applied when the key is missing
// - required: "true" makes Load fail when the key is missing
type AppConfig struct {
	// Environment is the runtime environment (development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// AppHost and AppPort form the listen address.
	AppHost string `mapstructure:"APP_HOST" default:"0.0.0.0"`
	AppPort int    `mapstructure:"APP_PORT" default:"8080"`
	// FrontendURL is the allowed CORS origin of the web client.
	FrontendURL string `mapstructure:"FRONTEND_URL" default:"http://localhost:4200"`

	// JWTSecret signs access tokens (HS256). Tokens expire after JWTExpiryHours.
	JWTSecret      string `mapstructure:"JWT_SECRET" required:"true"`
	JWTExpiryHours int    `mapstructure:"JWT_EXPIRY_HOURS" default:"24"`

	// BcryptCost is the work factor used when hashing passwords.
	BcryptCost int `mapstructure:"BCRYPT_COST" default:"10"`

	Database DatabaseConfig `mapstructure:",squash"`
}

// DatabaseConfig holds PostgreSQL connection details.
type DatabaseConfig struct {
	Host     string `mapstructure:"DB_HOST" default:"localhost"`
	Port     int    `mapstructure:"DB_PORT" default:"5432"`
	Name     string `mapstructure:"DB_DATABASE" default:"courier"`
	User     string `mapstructure:"DB_USERNAME" default:"postgres"`
	Password string `mapstructure:"DB_PASSWORD"`
	SSLMode  string `mapstructure:"DB_SSLMODE" default:"disable"`
}

// DSN builds the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// Load reads configuration from a .env file (if present) and the process
// environment, applies defaults and enforces required keys.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg AppConfig
	bindTags(v, reflect.TypeOf(cfg))

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := checkRequired(reflect.ValueOf(cfg)); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindTags walks the config struct and registers env bindings and defaults.
func bindTags(v *viper.Viper, t reflect.Type) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Type.Kind() == reflect.Struct {
			bindTags(v, field.Type)
			continue
		}
		key := field.Tag.Get("mapstructure")
		if key == "" || key == ",squash" {
			continue
		}
		v.BindEnv(key)
		if def := field.Tag.Get("default"); def != "" {
			v.SetDefault(key, def)
		}
	}
}

// checkRequired fails when a field tagged required:"true" is left at its
// zero value.
func checkRequired(val reflect.Value) error {
	t := val.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Type.Kind() == reflect.Struct {
			if err := checkRequired(val.Field(i)); err != nil {
				return err
			}
			continue
		}
		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
