package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be > 0 (got %v)", c.API.Timeout)
	}

	if err := c.Reader.validate(); err != nil {
		return fmt.Errorf("reader: %w", err)
	}

	if c.Keyboard.PopupDelay < 0 {
		return fmt.Errorf("keyboard.popup_delay must be >= 0 (got %v)", c.Keyboard.PopupDelay)
	}

	return nil
}

func (r *ReaderConfig) validate() error {
	if r.TranslationDelims == "" {
		return fmt.Errorf("translation_delims must not be empty")
	}
	if !strings.Contains(r.TranslationDelims, "/") {
		return fmt.Errorf("translation_delims must contain '/' (got %q)", r.TranslationDelims)
	}
	if r.EditURL == "" {
		return fmt.Errorf("edit_url must not be empty")
	}
	if r.MaxSelectionLen <= 0 {
		return fmt.Errorf("max_selection_len must be > 0 (got %d)", r.MaxSelectionLen)
	}
	if r.AudioOffset < 0 {
		return fmt.Errorf("audio_offset must be >= 0 (got %d)", r.AudioOffset)
	}
	return nil
}
