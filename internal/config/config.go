// Package config reads the server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	imagepkg "github.com/youruser/posterapp/internal/image"
)

// Config holds the runtime settings.
type Config struct {
	Port        string
	CornerImage string // resolved against the working directory on each request
	MaxUploadMB int64
	MaxPixels   int64 // decoded pixel budget per source image
	// AllowPrivateURLs lets image_url reach loopback and private networks.
	AllowPrivateURLs bool
	LogFile          string
	Debug            bool
}

// Default returns the settings used when no environment overrides are set.
func Default() Config {
	return Config{
		Port:        "8080",
		CornerImage: imagepkg.CornerImageName,
		MaxUploadMB: 20,
		MaxPixels:   imagepkg.DefaultMaxPixels,
	}
}

// Load applies the environment overrides (PORT, CORNER_IMAGE, MAX_UPLOAD_MB,
// MAX_PIXELS, ALLOW_PRIVATE_URLS, LOG_FILE, DEBUG) on top of Default.
func Load() (Config, error) {
	c := Default()
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("CORNER_IMAGE"); v != "" {
		c.CornerImage = v
	}
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return c, fmt.Errorf("invalid MAX_UPLOAD_MB %q", v)
		}
		c.MaxUploadMB = n
	}
	if v := os.Getenv("MAX_PIXELS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return c, fmt.Errorf("invalid MAX_PIXELS %q", v)
		}
		c.MaxPixels = n
	}
	if v := os.Getenv("ALLOW_PRIVATE_URLS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("invalid ALLOW_PRIVATE_URLS %q: %w", v, err)
		}
		c.AllowPrivateURLs = b
	}
	c.LogFile = os.Getenv("LOG_FILE")
	if v := os.Getenv("DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c, fmt.Errorf("invalid DEBUG %q: %w", v, err)
		}
		c.Debug = b
	}
	return c, nil
}

// MaxUploadBytes is the upload limit in bytes.
func (c Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}
