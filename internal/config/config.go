package config

import "time"

// Config is the root application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	API      APIConfig      `yaml:"api"`
	Reader   ReaderConfig   `yaml:"reader"`
	Keyboard KeyboardConfig `yaml:"keyboard"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// APIConfig holds settings for the term API every word action reports to.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"API_BASE_URL" env-required:"true"`
	Timeout time.Duration `yaml:"timeout"  env:"API_TIMEOUT"  env-default:"10s"`
}

// ReaderConfig holds reading-surface settings.
type ReaderConfig struct {
	// TranslationDelims are the characters separating alternative
	// translations of one term. The set must contain "/": merged
	// annotations are joined with " / " and have to re-split on it.
	TranslationDelims string `yaml:"translation_delims" env:"READER_TRANSLATION_DELIMS" env-default:",;/|"`

	// TranslatorURL is the external lookup page. An lwt_term placeholder
	// in it is replaced with the looked-up term; a "*" prefix or an
	// lwt_popup flag opens the page in a popup instead of navigating.
	TranslatorURL string `yaml:"translator_url" env:"READER_TRANSLATOR_URL"`

	// EditURL is the expression edit page used as navigation fallback when
	// no edit workflow is attached.
	EditURL string `yaml:"edit_url" env:"READER_EDIT_URL" env-default:"/edit_mword"`

	// Language is handed to the speech synthesizer.
	Language string `yaml:"language" env:"READER_LANGUAGE" env-default:"en"`

	// ShowAll renders every expression as a constituent-count placeholder
	// so the covered words stay readable.
	ShowAll bool `yaml:"show_all" env:"READER_SHOW_ALL" env-default:"false"`

	// MaxSelectionLen caps reconstructed expression text, in runes.
	MaxSelectionLen int `yaml:"max_selection_len" env:"READER_MAX_SELECTION_LEN" env-default:"250"`

	// AudioOffset is the number of leading display characters excluded
	// from audio seek offsets.
	AudioOffset int `yaml:"audio_offset" env:"READER_AUDIO_OFFSET" env-default:"5"`
}

// KeyboardConfig holds keyboard navigation settings.
type KeyboardConfig struct {
	// ReviewMode enables the up/down status increment keys.
	ReviewMode bool `yaml:"review_mode" env:"KEYBOARD_REVIEW_MODE" env-default:"false"`

	// PopupDelay is how long the edit-with-translation key waits before
	// opening the translator on top of the edit surface.
	PopupDelay time.Duration `yaml:"popup_delay" env:"KEYBOARD_POPUP_DELAY" env-default:"10ms"`
}
