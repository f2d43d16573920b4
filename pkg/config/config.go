package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config captures service level configuration loaded from config.yaml.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	CORS     CORSConfig     `yaml:"cors"`
	Upload   UploadConfig   `yaml:"upload"`
	Storage  StorageConfig  `yaml:"storage"`
}

// CORSConfig defines CORS middleware settings.
type CORSConfig struct {
	AllowOrigin      string `yaml:"allow_origin"`
	AllowMethods     string `yaml:"allow_methods"`
	AllowHeaders     string `yaml:"allow_headers"`
	AllowCredentials bool   `yaml:"allow_credentials"`
}

// UploadConfig defines file upload constraints.
type UploadConfig struct {
	MaxSize      int64    `yaml:"max_size"`
	AllowedTypes []string `yaml:"allowed_types"`
}

// ServerConfig defines HTTP server options.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// StorageConfig defines both storage platforms and the resolver signals.
type StorageConfig struct {
	// CloudRuntime forces the cloud platform regardless of persisted
	// settings. It is normally set through the MEDIABRIDGE_CLOUD_RUNTIME
	// environment variable rather than the config file.
	CloudRuntime bool `yaml:"cloud_runtime"`
	// DeployTarget is the fallback deployment heuristic signal
	// ("serverless", "container", "bare"). Overridden by DEPLOY_TARGET.
	DeployTarget string      `yaml:"deploy_target"`
	Local        LocalConfig `yaml:"local"`
	S3           S3Config    `yaml:"s3"`
}

// LocalConfig contains local filesystem storage settings.
type LocalConfig struct {
	// MediaDir is the root directory for stored files.
	MediaDir string `yaml:"media_dir"`
	// PublicPrefix is the URL path prefix served by the HTTP layer.
	PublicPrefix string `yaml:"public_prefix"`
}

// S3Config contains S3-compatible object storage settings.
type S3Config struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	PathStyle bool   `yaml:"path_style"` // Use path-style URLs (required for MinIO)
	// PublicBaseURL is the absolute URL prefix of publicly readable
	// objects, e.g. "https://media.example.com".
	PublicBaseURL string `yaml:"public_base_url"`
}

// DatabaseConfig defines the database backend configuration.
type DatabaseConfig struct {
	Driver   string         `yaml:"driver"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	MySQL    MySQLConfig    `yaml:"mysql"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// SQLiteConfig contains SQLite specific settings.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// MySQLConfig contains MySQL specific connection details.
type MySQLConfig struct {
	DSN string `yaml:"dsn"`
}

// PostgresConfig contains PostgreSQL specific connection details.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// Load reads a YAML configuration file from the provided path.
// It searches in the current working directory first, then next to the
// binary executable. Environment variables override the storage resolver
// signals and the S3 credentials after the file is parsed.
func Load(name string) (*Config, error) {
	cfg := defaultConfig()

	configPath := findConfigFile(name)
	if configPath == "" {
		log.Printf("Warning: config file %q not found, using defaults", name)
		applyEnvOverrides(cfg)
		return cfg, nil
	}

	log.Printf("Loading config from: %s", configPath)
	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()

	var parsed Config
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	applyDefaults(&parsed)
	applyEnvOverrides(&parsed)
	return &parsed, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address: ":8080",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			SQLite: SQLiteConfig{
				Path: "data/mediabridge.db",
			},
		},
		CORS: CORSConfig{
			AllowOrigin:      "*",
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "*",
			AllowCredentials: false,
		},
		Storage: StorageConfig{
			DeployTarget: "bare",
			Local: LocalConfig{
				MediaDir:     "data/media",
				PublicPrefix: "/media",
			},
			S3: S3Config{
				Region: "us-east-1",
			},
		},
		Upload: UploadConfig{
			MaxSize: 10 * 1024 * 1024, // 10MB
			AllowedTypes: []string{
				"image/jpeg",
				"image/png",
				"image/gif",
				"image/webp",
				"image/svg+xml",
				"image/bmp",
				"image/x-ms-bmp",
				"image/tiff",
				"image/x-icon",
				"image/vnd.microsoft.icon",
				"image/avif",
			},
		},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.SQLite.Path == "" {
		cfg.Database.SQLite.Path = "data/mediabridge.db"
	}
	if cfg.Storage.Local.MediaDir == "" {
		cfg.Storage.Local.MediaDir = "data/media"
	}
	if cfg.Storage.Local.PublicPrefix == "" {
		cfg.Storage.Local.PublicPrefix = "/media"
	}
	if cfg.Storage.DeployTarget == "" {
		cfg.Storage.DeployTarget = "bare"
	}
	if cfg.Storage.S3.Region == "" {
		cfg.Storage.S3.Region = "us-east-1"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MEDIABRIDGE_CLOUD_RUNTIME"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Storage.CloudRuntime = b
		}
	}
	if v := os.Getenv("DEPLOY_TARGET"); v != "" {
		cfg.Storage.DeployTarget = v
	}
	if v := os.Getenv("S3_ENDPOINT"); v != "" {
		cfg.Storage.S3.Endpoint = v
	}
	if v := os.Getenv("S3_REGION"); v != "" {
		cfg.Storage.S3.Region = v
	}
	if v := os.Getenv("S3_BUCKET"); v != "" {
		cfg.Storage.S3.Bucket = v
	}
	if v := os.Getenv("S3_ACCESS_KEY"); v != "" {
		cfg.Storage.S3.AccessKey = v
	}
	if v := os.Getenv("S3_SECRET_KEY"); v != "" {
		cfg.Storage.S3.SecretKey = v
	}
	if v := os.Getenv("S3_PUBLIC_BASE_URL"); v != "" {
		cfg.Storage.S3.PublicBaseURL = v
	}
}

// findConfigFile searches for a config file in the current directory first,
// then next to the binary executable. Returns the full path or empty string.
func findConfigFile(name string) string {
	// 1. Current working directory
	if _, err := os.Stat(name); err == nil {
		abs, _ := filepath.Abs(name)
		return abs
	}

	// 2. Next to the binary executable
	exe, err := os.Executable()
	if err == nil {
		exeDir := filepath.Dir(exe)
		candidate := filepath.Join(exeDir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}
