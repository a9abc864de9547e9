package config

import (
	"fmt"
	"os"

	"github.com/camco-mfg/gauge/pkg/middleware"
	"github.com/camco-mfg/gauge/pkg/openapi"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "GAUGE_CORS_ENABLED",
	Origins:          "GAUGE_CORS_ORIGINS",
	AllowedMethods:   "GAUGE_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "GAUGE_CORS_ALLOWED_HEADERS",
	AllowCredentials: "GAUGE_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "GAUGE_CORS_MAX_AGE",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "GAUGE_OPENAPI_TITLE",
	Description: "GAUGE_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, CORS, and OpenAPI settings.
type APIConfig struct {
	BasePath string                `toml:"base_path"`
	CORS     middleware.CORSConfig `toml:"cors"`
	OpenAPI  openapi.Config        `toml:"openapi"`
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and OpenAPI configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}

	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("GAUGE_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
}
