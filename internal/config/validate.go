package config

import (
	"fmt"

	"golang.org/x/text/language"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if _, err := language.Parse(c.Snippet.DefaultLanguage); err != nil {
		return fmt.Errorf("snippet.default_language %q: %w", c.Snippet.DefaultLanguage, err)
	}
	if c.Snippet.MaxProfiles <= 0 {
		return fmt.Errorf("snippet.max_profiles must be > 0 (got %d)", c.Snippet.MaxProfiles)
	}

	if c.Impex.ChunkSize <= 0 {
		return fmt.Errorf("impex.chunk_size must be > 0 (got %d)", c.Impex.ChunkSize)
	}
	if c.Impex.ChunkSize > 1000 {
		return fmt.Errorf("impex.chunk_size must be <= 1000 (got %d)", c.Impex.ChunkSize)
	}

	if c.Cache.Enabled && c.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be > 0 when the cache is enabled (got %d)", c.Cache.Size)
	}

	return nil
}
