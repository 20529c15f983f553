package validator

import "time"

// EnvPrefix is the prefix for validator settings read from the environment.
const EnvPrefix = "VALIDATOR_"

// Config holds session-wide coercion settings. Load it with config.Load and
// EnvPrefix, or start from DefaultConfig.
type Config struct {
	// DateTimeLayout is used for DATETIME fields when neither the session's
	// "format" value nor the field spec names a layout.
	DateTimeLayout string `env:"DATETIME_LAYOUT" envDefault:"2006-01-02T15:04:05Z07:00"`
	// DateLayout is the DATE counterpart of DateTimeLayout.
	DateLayout string `env:"DATE_LAYOUT" envDefault:"2006-01-02"`
	// MaxTextLength caps text that is JSON-decoded or date-parsed.
	MaxTextLength int `env:"MAX_TEXT_LENGTH" envDefault:"1048576"`
}

func DefaultConfig() Config {
	return Config{
		DateTimeLayout: time.RFC3339,
		DateLayout:     time.DateOnly,
		MaxTextLength:  1 << 20,
	}
}

// withDefaults fills zero fields so a partially set Config stays usable.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.DateTimeLayout == "" {
		c.DateTimeLayout = d.DateTimeLayout
	}
	if c.DateLayout == "" {
		c.DateLayout = d.DateLayout
	}
	if c.MaxTextLength <= 0 {
		c.MaxTextLength = d.MaxTextLength
	}
	return c
}
