package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	S3        S3Config        `mapstructure:"s3"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Mode    string `mapstructure:"mode"` // gin mode: debug, release, test
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	JSON     bool   `mapstructure:"json"`
	File     string `mapstructure:"file"` // empty means stdout only
	ToStdout bool   `mapstructure:"to_stdout"`
}

// DashboardConfig controls how day buckets are computed and cached.
type DashboardConfig struct {
	// Timezone is an IANA name; day boundaries are midnight-to-midnight in it.
	Timezone    string        `mapstructure:"timezone"`
	CacheSizeMB int           `mapstructure:"cache_size_mb"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
}

// MetricsConfig names the exported Prometheus series.
type MetricsConfig struct {
	Namespace string `mapstructure:"namespace"`
	Subsystem string `mapstructure:"subsystem"`
}

// Location resolves Timezone, falling back to the server's local zone.
func (d DashboardConfig) Location() (*time.Location, error) {
	if d.Timezone == "" || strings.EqualFold(d.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load dashboard timezone %q: %w", d.Timezone, err)
	}
	return loc, nil
}

// LoadConfig reads configuration from file or environment variables.
// A .env file in path, if present, is loaded into the environment first.
func LoadConfig(path string) (config Config, err error) {
	// Missing .env is fine, real environment variables still apply
	_ = godotenv.Load(strings.TrimSuffix(path, "/") + "/.env")

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS, jwt.expiration -> JWT_EXPIRATION
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "workout_tracker")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", "720h")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.json", false)
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.to_stdout", true)
	v.SetDefault("dashboard.timezone", "Local")
	v.SetDefault("dashboard.cache_size_mb", 16)
	v.SetDefault("dashboard.cache_ttl", "1m")
	v.SetDefault("metrics.namespace", "workout_tracker")
	v.SetDefault("metrics.subsystem", "server")
	// Defaults for S3 keys make AutomaticEnv pick them up during Unmarshal
	for _, key := range []string{"endpoint", "region", "access_key_id", "secret_access_key", "bucket_name"} {
		v.SetDefault("s3."+key, "")
	}

	err = v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
