package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("FOODLENS_SERVER_PORT")
		os.Unsetenv("FOODLENS_SERVER_ENVIRONMENT")
		os.Unsetenv("FOODLENS_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("FOODLENS_MONGO_URI")
		os.Unsetenv("FOODLENS_MONGO_DATABASE")
		os.Unsetenv("FOODLENS_MONGO_COLLECTION")
		os.Unsetenv("FOODLENS_RATELIMIT_PER_IP")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Mongo.URI != "mongodb://localhost:27017" {
			t.Errorf("Mongo.URI = %s, want mongodb://localhost:27017", cfg.Mongo.URI)
		}
		if cfg.Mongo.Database != "foodfacts" {
			t.Errorf("Mongo.Database = %s, want foodfacts", cfg.Mongo.Database)
		}
		if cfg.Mongo.Collection != "products" {
			t.Errorf("Mongo.Collection = %s, want products", cfg.Mongo.Collection)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("FOODLENS_SERVER_PORT", "9090")
		os.Setenv("FOODLENS_SERVER_ENVIRONMENT", "production")
		os.Setenv("FOODLENS_MONGO_URI", "mongodb://store.internal:27017")
		os.Setenv("FOODLENS_MONGO_DATABASE", "off")
		os.Setenv("FOODLENS_MONGO_COLLECTION", "catalog")
		os.Setenv("FOODLENS_RATELIMIT_PER_IP", "25")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Mongo.URI != "mongodb://store.internal:27017" {
			t.Errorf("Mongo.URI = %s, want mongodb://store.internal:27017", cfg.Mongo.URI)
		}
		if cfg.Mongo.Database != "off" {
			t.Errorf("Mongo.Database = %s, want off", cfg.Mongo.Database)
		}
		if cfg.Mongo.Collection != "catalog" {
			t.Errorf("Mongo.Collection = %s, want catalog", cfg.Mongo.Collection)
		}
		if cfg.RateLimit.PerIP != 25 {
			t.Errorf("RateLimit.PerIP = %d, want 25", cfg.RateLimit.PerIP)
		}
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "8080"},
			Mongo: MongoConfig{
				URI:        "mongodb://localhost:27017",
				Database:   "foodfacts",
				Collection: "products",
			},
		}
	}

	t.Run("accepts a complete configuration", func(t *testing.T) {
		if err := validate(base()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("rejects missing port", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() = nil, want error for missing port")
		}
	})

	t.Run("rejects missing store URI", func(t *testing.T) {
		cfg := base()
		cfg.Mongo.URI = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() = nil, want error for missing store URI")
		}
	})

	t.Run("rejects missing database or collection", func(t *testing.T) {
		cfg := base()
		cfg.Mongo.Collection = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() = nil, want error for missing collection")
		}
	})
}
