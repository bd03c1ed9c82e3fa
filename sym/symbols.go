// Package sym defines canonical glyphs shared by the CLI, the bed editor view and logs.
// These glyphs are stable across UI, CLI, and documentation.
package sym

// Subsystem glyphs
const (
	Bed   = "⊞" // bed configuration editor
	Room  = "⌂" // room records and the room form
	AM    = "≡" // am: configuration and system settings
	Lock  = "⊘" // read-only (system-synced) marker
	Cover = "★" // cover photo marker
	Warn  = "⚠" // advisory warning
)

// Connector words as they appear in bed descriptions and the editor
const (
	Or  = "或" // alternative bed combinations
	And = "及" // beds combined within one alternative

	OrLabel  = "或 (OR)"
	AndLabel = "及"
)

// Unit characters used by the bed description format
const (
	UnitBed   = "张" // count unit
	UnitMeter = "米" // width unit
	UnitArea  = "㎡" // room area unit
	UnitGuest = "人" // occupancy unit
)

// commands maps CLI command names to their glyphs. The CLI accepts each glyph as an alias.
var commands = map[string]string{
	"bed":  Bed,
	"room": Room,
	"am":   AM,
}

// CommandToSymbol returns the glyph for a CLI command
func CommandToSymbol(command string) (string, bool) {
	g, ok := commands[command]
	return g, ok
}
