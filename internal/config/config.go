package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	configName = ".crewboard"
	envPrefix  = "CREWBOARD"
)

// Config holds the dashboard settings after defaults, config file, .env and
// environment have been merged. Command-line flags are applied on top by the
// CLI.
type Config struct {
	Roster      string  `mapstructure:"roster" validate:"excluded_with=DB"`
	DB          string  `mapstructure:"db"`
	Period      string  `mapstructure:"period" validate:"oneof=daily weekly monthly"`
	Weeks       int     `mapstructure:"weeks" validate:"gte=0,lte=104"`
	DaysBefore  int     `mapstructure:"days_before" validate:"gte=0,lte=90"`
	DaysAfter   int     `mapstructure:"days_after" validate:"gte=0,lte=180"`
	MinWidthPct float64 `mapstructure:"min_width_pct" validate:"gt=0,lte=100"`
	RecentTasks int     `mapstructure:"recent_tasks" validate:"gte=0,lte=50"`
	LogCalls    bool    `mapstructure:"log_calls"`
	Watch       bool    `mapstructure:"watch"`
	SVGStyle    string  `mapstructure:"svg_style"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// MinWidth returns the bar floor as a fraction of the track.
func (c *Config) MinWidth() float64 {
	return c.MinWidthPct / 100
}

// DefaultConfig returns the built-in settings: weekly view, a 7+14 day
// window, a 2% bar floor and two recent tasks per card.
func DefaultConfig() Config {
	return Config{
		Period:      "weekly",
		Weeks:       0,
		DaysBefore:  7,
		DaysAfter:   14,
		MinWidthPct: 2,
		RecentTasks: 2,
	}
}

// Options controls where Load looks.
type Options struct {
	// ConfigFile, when set, must exist; otherwise .crewboard.{yaml,json,toml}
	// is searched for in SearchPaths.
	ConfigFile  string
	SearchPaths []string
	// EnvFile is read if present. Defaults to ".env".
	EnvFile string
}

var validate = validator.New()

// Load merges defaults, the config file, the .env file and CREWBOARD_*
// environment variables, in increasing order of precedence, and validates
// the result.
func Load(fs afero.Fs, opts Options) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)

	defaults := DefaultConfig()
	v.SetDefault("roster", defaults.Roster)
	v.SetDefault("db", defaults.DB)
	v.SetDefault("period", defaults.Period)
	v.SetDefault("weeks", defaults.Weeks)
	v.SetDefault("days_before", defaults.DaysBefore)
	v.SetDefault("days_after", defaults.DaysAfter)
	v.SetDefault("min_width_pct", defaults.MinWidthPct)
	v.SetDefault("recent_tasks", defaults.RecentTasks)
	v.SetDefault("log_calls", defaults.LogCalls)
	v.SetDefault("watch", defaults.Watch)
	v.SetDefault("svg_style", defaults.SVGStyle)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, opts); err != nil {
		return nil, err
	}
	if err := applyDotEnv(v, fs, opts.EnvFile); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, opts Options) error {
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", opts.ConfigFile, err)
		}
		return nil
	}

	paths := opts.SearchPaths
	if len(paths) == 0 {
		paths = []string{"."}
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, home)
		}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName(configName)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", v.ConfigFileUsed(), err)
	}
	return nil
}

// applyDotEnv loads CREWBOARD_* keys from the .env file. Real environment
// variables win over the file, matching godotenv.Load.
func applyDotEnv(v *viper.Viper, fs afero.Fs, path string) error {
	if path == "" {
		path = ".env"
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	values, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	for name, value := range values {
		key, ok := strings.CutPrefix(name, envPrefix+"_")
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(name); set {
			continue
		}
		v.Set(strings.ToLower(key), value)
	}
	return nil
}

// Validate checks field ranges and cross-field rules.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	key := configKey(fe.StructField())
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", key, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", key, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", key, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", key, fe.Param())
	case "excluded_with":
		return "roster and db cannot both be set"
	default:
		return fmt.Sprintf("%s failed validation: %s", key, fe.Tag())
	}
}

var configKeys = map[string]string{
	"Roster":      "roster",
	"DB":          "db",
	"Period":      "period",
	"Weeks":       "weeks",
	"DaysBefore":  "days_before",
	"DaysAfter":   "days_after",
	"MinWidthPct": "min_width_pct",
	"RecentTasks": "recent_tasks",
}

func configKey(field string) string {
	if k, ok := configKeys[field]; ok {
		return k
	}
	return strings.ToLower(field)
}
