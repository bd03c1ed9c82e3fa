package am

import "github.com/teranos/innkeep/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Log.Verbosity < 0 {
		return errors.Newf("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	// Empty strategy falls back to counter
	switch c.Editor.IDStrategy {
	case "", IDStrategyCounter, IDStrategyUUID:
	default:
		return errors.WithHintf(
			errors.Newf("editor.id_strategy %q is not supported", c.Editor.IDStrategy),
			"use %q or %q", IDStrategyCounter, IDStrategyUUID)
	}

	// Warning delay: nil = default, 0 would hide the warning before it is read
	if c.Room.DuplicateWarningSeconds != nil && *c.Room.DuplicateWarningSeconds <= 0 {
		return errors.Newf("room.duplicate_warning_seconds must be > 0, got %d (omit for default)", *c.Room.DuplicateWarningSeconds)
	}

	return nil
}
