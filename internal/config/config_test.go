package config_test

import (
	"errors"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"fitvibe/fitness-coach/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Server:  config.ServerConfig{Address: ":8080"},
		Storage: config.StorageConfig{Backend: "file", File: config.FileConfig{Path: "data/session.json"}},
		Gemini:  config.GeminiConfig{APIKey: "test-key", Model: "gemini-1.5-flash"},
		JWT:     config.JWTConfig{Secret: "secret", Expiration: time.Hour},
	}
}

func TestValidate_OK(t *testing.T) {
	c := qt.New(t)
	c.Assert(validConfig().Validate(), qt.IsNil)
}

func TestValidate_MissingGeminiKeyIsFatal(t *testing.T) {
	c := qt.New(t)
	cfg := validConfig()
	cfg.Gemini.APIKey = ""
	c.Assert(errors.Is(cfg.Validate(), config.ErrMissingGeminiKey), qt.IsTrue)
}

func TestValidate_MissingJWTSecret(t *testing.T) {
	c := qt.New(t)
	cfg := validConfig()
	cfg.JWT.Secret = ""
	c.Assert(errors.Is(cfg.Validate(), config.ErrMissingJWTSecret), qt.IsTrue)
}

func TestValidate_Backends(t *testing.T) {
	c := qt.New(t)

	for _, backend := range []string{"file", "s3", "mongo"} {
		cfg := validConfig()
		cfg.Storage.Backend = backend
		c.Assert(cfg.Validate(), qt.IsNil, qt.Commentf("backend %q", backend))
	}

	cfg := validConfig()
	cfg.Storage.Backend = "redis"
	c.Assert(errors.Is(cfg.Validate(), config.ErrUnknownBackend), qt.IsTrue)
}

func TestLoadConfig_Defaults(t *testing.T) {
	c := qt.New(t)

	// No config file in the temp dir: defaults and env vars apply.
	cfg, err := config.LoadConfig(t.TempDir())
	c.Assert(err, qt.IsNil)

	c.Assert(cfg.Server.Address, qt.Equals, ":8080")
	c.Assert(cfg.Storage.Backend, qt.Equals, "file")
	c.Assert(cfg.Gemini.Model, qt.Equals, "gemini-1.5-flash")
	c.Assert(cfg.JWT.Expiration, qt.Equals, 24*time.Hour)
	c.Assert(cfg.Storage.Mongo.Key, qt.Equals, "user")
}

func TestLoadConfig_EnvOnlyKeys(t *testing.T) {
	c := qt.New(t)

	// These keys have no default, so they must reach Unmarshal from the
	// environment alone.
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("STORAGE_S3_BUCKET_NAME", "sessions")

	cfg, err := config.LoadConfig(t.TempDir())
	c.Assert(err, qt.IsNil)

	c.Assert(cfg.Gemini.APIKey, qt.Equals, "env-key")
	c.Assert(cfg.JWT.Secret, qt.Equals, "env-secret")
	c.Assert(cfg.Storage.S3.BucketName, qt.Equals, "sessions")
	c.Assert(cfg.Validate(), qt.IsNil)
}
