package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/filehub/filehubctl/pkg/retention"
	"github.com/filehub/filehubctl/pkg/utils"
)

// Config holds everything the console needs to talk to the transfer
// bucket and drive the retention policy.
type Config struct {
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`

	ActiveTTL       time.Duration `mapstructure:"active_ttl"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	DisplayHorizon  time.Duration `mapstructure:"display_horizon"`
	WatchInterval   time.Duration `mapstructure:"watch_interval"`
}

// Load reads the configuration from an optional YAML file plus
// FILEHUB_-prefixed environment variables. Bucket and credentials fall
// back to the conventional S3_BUCKET_NAME / AWS_* variables; AWS
// credentials left empty are resolved by the SDK default chain.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Register every key so AutomaticEnv overrides survive Unmarshal
	v.SetDefault("bucket", "")
	v.SetDefault("access_key", "")
	v.SetDefault("secret_key", "")
	v.SetDefault("region", utils.GetDefaultRegion())
	v.SetDefault("active_ttl", retention.ActiveTTL)
	v.SetDefault("refresh_interval", retention.RefreshInterval)
	v.SetDefault("display_horizon", retention.DisplayHorizon)
	v.SetDefault("watch_interval", 5*time.Second)

	v.SetEnvPrefix("FILEHUB")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Bucket = os.ExpandEnv(cfg.Bucket)
	cfg.Region = os.ExpandEnv(cfg.Region)
	cfg.AccessKey = os.ExpandEnv(cfg.AccessKey)
	cfg.SecretKey = os.ExpandEnv(cfg.SecretKey)

	if cfg.Bucket == "" {
		cfg.Bucket = os.Getenv("S3_BUCKET_NAME")
	}
	if r := os.Getenv("S3_REGION"); cfg.Region == "" && r != "" {
		cfg.Region = r
	}
	if cfg.AccessKey == "" {
		cfg.AccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	}

	return &cfg, nil
}

// Validate rejects configurations the console cannot start with. It is
// called before any store interaction.
func (c *Config) Validate() error {
	if c.Bucket == "" {
		return fmt.Errorf("bucket name is required (set bucket in the config file or S3_BUCKET_NAME)")
	}
	if !utils.IsValidRegion(c.Region) {
		return fmt.Errorf("invalid region %q", c.Region)
	}
	if c.ActiveTTL <= 0 {
		return fmt.Errorf("active_ttl must be positive, got %s", c.ActiveTTL)
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval must be positive, got %s", c.RefreshInterval)
	}
	if c.DisplayHorizon < c.ActiveTTL {
		return fmt.Errorf("display_horizon %s must not be shorter than active_ttl %s", c.DisplayHorizon, c.ActiveTTL)
	}
	if c.WatchInterval <= 0 {
		return fmt.Errorf("watch_interval must be positive, got %s", c.WatchInterval)
	}
	return nil
}
