package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Gemini  GeminiConfig  `mapstructure:"gemini"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// StorageConfig selects and configures the session storage backend.
// Backend is one of "file", "s3" or "mongo".
type StorageConfig struct {
	Backend string      `mapstructure:"backend"`
	File    FileConfig  `mapstructure:"file"`
	S3      S3Config    `mapstructure:"s3"`
	Mongo   MongoConfig `mapstructure:"mongo"`
}

type FileConfig struct {
	Path string `mapstructure:"path"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	ObjectKey       string `mapstructure:"object_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

type MongoConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
	Key  string `mapstructure:"key"`
}

// GeminiConfig configures the text-generation provider. APIKey is mandatory;
// the server refuses to start without it.
type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// JWTConfig defines session token configuration.
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validation errors surfaced at startup.
var (
	ErrMissingGeminiKey = errors.New("gemini api key is not configured")
	ErrMissingJWTSecret = errors.New("jwt secret is not configured")
	ErrUnknownBackend   = errors.New("unknown storage backend")
)

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// --- Environment Variable Handling ---
	// Nested keys map to underscored env vars, e.g. gemini.api_key -> GEMINI_API_KEY.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// Unmarshal only sees keys known from a file or a default, so keys that
	// may arrive via environment alone must be bound explicitly.
	for _, key := range []string{
		"gemini.api_key",
		"jwt.secret",
		"storage.s3.endpoint",
		"storage.s3.region",
		"storage.s3.access_key_id",
		"storage.s3.secret_access_key",
		"storage.s3.bucket_name",
	} {
		if err = viper.BindEnv(key); err != nil {
			return
		}
	}

	// --- Set default values ---
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("storage.backend", "file")
	viper.SetDefault("storage.file.path", "data/session.json")
	viper.SetDefault("storage.s3.use_ssl", true)
	viper.SetDefault("storage.s3.object_key", "session.json")
	viper.SetDefault("storage.mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("storage.mongo.name", "fitness_coach")
	viper.SetDefault("storage.mongo.key", "user")
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("jwt.expiration", "24h")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	// --- Read Config File ---
	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// Config file not found; rely on defaults and env vars.
		err = nil
	} else if err != nil {
		return
	}

	// --- Unmarshal Config ---
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}

// Validate checks the configuration the server cannot run without. A missing
// Gemini key makes generation unusable and is fatal before any request.
func (c Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return ErrMissingGeminiKey
	}
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	switch c.Storage.Backend {
	case "file", "s3", "mongo":
	default:
		return ErrUnknownBackend
	}
	return nil
}
