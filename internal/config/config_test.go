package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "CORNER_IMAGE", "MAX_UPLOAD_MB", "MAX_PIXELS", "ALLOW_PRIVATE_URLS", "LOG_FILE", "DEBUG"} {
		t.Setenv(k, "")
	}
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, "corner_image.png", c.CornerImage)
	assert.Equal(t, int64(20<<20), c.MaxUploadBytes())
	assert.Equal(t, int64(50_000_000), c.MaxPixels)
	assert.False(t, c.AllowPrivateURLs)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORNER_IMAGE", "/srv/assets/badge.png")
	t.Setenv("MAX_UPLOAD_MB", "5")
	t.Setenv("MAX_PIXELS", "1000000")
	t.Setenv("ALLOW_PRIVATE_URLS", "1")
	t.Setenv("LOG_FILE", "/tmp/poster.log")
	t.Setenv("DEBUG", "true")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "/srv/assets/badge.png", c.CornerImage)
	assert.Equal(t, int64(5), c.MaxUploadMB)
	assert.Equal(t, int64(1000000), c.MaxPixels)
	assert.True(t, c.AllowPrivateURLs)
	assert.Equal(t, "/tmp/poster.log", c.LogFile)
	assert.True(t, c.Debug)
}

func TestLoadInvalid(t *testing.T) {
	t.Run("upload", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		t.Setenv("MAX_UPLOAD_MB", "lots")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("negative upload", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		t.Setenv("MAX_UPLOAD_MB", "-1")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("pixels", func(t *testing.T) {
		t.Setenv("MAX_UPLOAD_MB", "")
		t.Setenv("DEBUG", "")
		t.Setenv("MAX_PIXELS", "0")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("private urls", func(t *testing.T) {
		t.Setenv("MAX_UPLOAD_MB", "")
		t.Setenv("DEBUG", "")
		t.Setenv("ALLOW_PRIVATE_URLS", "sometimes")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("debug", func(t *testing.T) {
		t.Setenv("MAX_UPLOAD_MB", "")
		t.Setenv("DEBUG", "maybe")
		_, err := Load()
		assert.Error(t, err)
	})
}
