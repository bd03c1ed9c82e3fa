package am

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)

	// Editor defaults
	v.SetDefault("editor.id_strategy", IDStrategyCounter)
	v.SetDefault("editor.prompt", DefaultPrompt)

	// Room defaults
	v.SetDefault("room.duplicate_warning_seconds", DefaultDuplicateWarningSeconds)
}

// BindEnvVars binds the settings most often overridden per invocation
func BindEnvVars(v *viper.Viper) {
	v.BindEnv("room.catalog", "INNKEEP_ROOM_CATALOG")
	v.BindEnv("log.json", "INNKEEP_LOG_JSON")
}

// GetIDStrategy returns the editor id strategy (default: counter)
func (c *Config) GetIDStrategy() string {
	if c.Editor.IDStrategy == "" {
		return IDStrategyCounter
	}
	return c.Editor.IDStrategy
}

// GetPrompt returns the REPL prompt
func (c *Config) GetPrompt() string {
	if c.Editor.Prompt == "" {
		return DefaultPrompt
	}
	return c.Editor.Prompt
}

// GetDuplicateWarningDelay returns how long a duplicate room warning stays active
func (c *Config) GetDuplicateWarningDelay() time.Duration {
	if c.Room.DuplicateWarningSeconds == nil {
		return DefaultDuplicateWarningSeconds * time.Second
	}
	return time.Duration(*c.Room.DuplicateWarningSeconds) * time.Second
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Log: {JSON: %t, Verbosity: %d}, Editor: {IDStrategy: %s}, Room: {Catalog: %s}}",
		c.Log.JSON, c.Log.Verbosity, c.GetIDStrategy(), c.Room.Catalog)
}
