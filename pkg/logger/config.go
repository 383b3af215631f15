package logger

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is a placeholder capture service; real deployments
// override it with their own collector URL.
const DefaultEndpoint = "https://loghawk.free.beeceptor.com/logs"

var validate = validator.New()

// Config is owned by a Logger instance. There is no process-wide state;
// parallel loggers with different settings are fine.
type Config struct {
	Endpoint string   `json:"endpoint" yaml:"endpoint" validate:"required,url"`
	Mode     Mode     `json:"mode" yaml:"mode" validate:"required,oneof=development production"`
	Platform Platform `json:"platform" yaml:"platform" validate:"required,oneof=web mobile"`

	// AppID and SecretKey are sent as request headers when both are set.
	// A partial pair is treated as absent.
	AppID     string `json:"app_id" yaml:"app_id"`
	SecretKey string `json:"secret_key" yaml:"secret_key"`

	// LogDir enables local outcome files when non-empty. The directory is
	// created at construction; success_log.txt and failed_log.txt live in it.
	LogDir string `json:"log_dir" yaml:"log_dir"`

	// HTTPTimeout bounds each transmission. The wire behavior is otherwise
	// a single blocking POST per call.
	HTTPTimeout time.Duration `json:"http_timeout" yaml:"http_timeout"`

	Retry RetryConfig `json:"retry" yaml:"retry"`
}

// RetryConfig re-sends failed transmissions with exponential backoff.
// Disabled by default: the stock contract is one POST per Log call.
type RetryConfig struct {
	Enabled             bool          `json:"enabled" yaml:"enabled"`
	InitialInterval     time.Duration `json:"initial_interval" yaml:"initial_interval"`
	MaxInterval         time.Duration `json:"max_interval" yaml:"max_interval"`
	MaxElapsedTime      time.Duration `json:"max_elapsed_time" yaml:"max_elapsed_time"`
	Multiplier          float64       `json:"multiplier" yaml:"multiplier"`
	RandomizationFactor float64       `json:"randomization_factor" yaml:"randomization_factor"`
	MaxRetries          int           `json:"max_retries" yaml:"max_retries"`
}

func DefaultConfig() Config {
	return Config{
		Endpoint:    DefaultEndpoint,
		Mode:        ModeDevelopment,
		Platform:    PlatformWeb,
		HTTPTimeout: 10 * time.Second,
		Retry: RetryConfig{
			InitialInterval:     1 * time.Second,
			MaxInterval:         30 * time.Second,
			MaxElapsedTime:      5 * time.Minute,
			Multiplier:          2.0,
			RandomizationFactor: 0.1,
			MaxRetries:          3,
		},
	}
}

// Validate fills unset fields with defaults and checks the rest. It is the
// only place configuration errors are produced at construction time.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Mode == "" {
		c.Mode = ModeDevelopment
	}
	if c.Platform == "" {
		c.Platform = PlatformWeb
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = 10 * time.Second
	}
	if c.Retry.InitialInterval <= 0 {
		c.Retry.InitialInterval = 1 * time.Second
	}
	if c.Retry.MaxInterval <= 0 {
		c.Retry.MaxInterval = 30 * time.Second
	}
	if c.Retry.Multiplier <= 1 {
		c.Retry.Multiplier = 2.0
	}

	// Both or neither.
	if c.AppID == "" || c.SecretKey == "" {
		c.AppID = ""
		c.SecretKey = ""
	}

	if err := validate.Struct(c); err != nil {
		return ErrInvalidConfig(err.Error())
	}
	return nil
}

// HasCredentials reports whether the credential pair is complete.
func (c *Config) HasCredentials() bool {
	return c.AppID != "" && c.SecretKey != ""
}

// LoadFile reads a YAML config file and validates it.
func LoadFile(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, ErrInvalidConfig("failed to read config file: " + err.Error())
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, ErrInvalidConfig("failed to parse config file: " + err.Error())
	}
	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Load resolves configuration from LOGHAWK_CONFIG or well-known paths,
// falling back to defaults when no file exists.
func Load() (Config, error) {
	path := os.Getenv("LOGHAWK_CONFIG")
	if path == "" {
		candidates := []string{
			"./loghawk.yaml",
			"./loghawk.yml",
			filepath.Join(os.Getenv("HOME"), ".loghawk", "config.yaml"),
		}
		for _, candidate := range candidates {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}

	if path == "" {
		config := DefaultConfig()
		return config, config.Validate()
	}
	return LoadFile(path)
}
