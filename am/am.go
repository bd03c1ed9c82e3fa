package am

// Config represents the innkeep configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
	Editor EditorConfig `mapstructure:"editor" toml:"editor" json:"editor" yaml:"editor"`
	Room   RoomConfig   `mapstructure:"room" toml:"room" json:"room" yaml:"room"`
}

// LogConfig configures the global logger
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`                     // JSON log lines instead of console output
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity" json:"verbosity" yaml:"verbosity"` // Baseline verbosity, added to -v flags (default: 0)
}

// EditorConfig configures bed editing sessions
type EditorConfig struct {
	IDStrategy string `mapstructure:"id_strategy" toml:"id_strategy" json:"id_strategy" yaml:"id_strategy"` // counter or uuid (default: counter)
	Prompt     string `mapstructure:"prompt" toml:"prompt" json:"prompt" yaml:"prompt"`                     // REPL prompt for bed edit and room edit
}

// RoomConfig configures the room form
type RoomConfig struct {
	Catalog                 string `mapstructure:"catalog" toml:"catalog" json:"catalog" yaml:"catalog"`                                                                         // Room catalog file (.yaml, .toml or .json)
	DuplicateWarningSeconds *int   `mapstructure:"duplicate_warning_seconds" toml:"duplicate_warning_seconds" json:"duplicate_warning_seconds" yaml:"duplicate_warning_seconds"` // nil = default 5, 0 is invalid
}

// ID strategies accepted by editor.id_strategy
const (
	IDStrategyCounter = "counter"
	IDStrategyUUID    = "uuid"
)

// Defaults
const (
	DefaultPrompt                  = "⊞ > "
	DefaultDuplicateWarningSeconds = 5
)

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)
