package bed

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator hands out opaque ids for groups and items created during a session.
// Ids must be unique within the session and never reuse positional parse ids.
type IDGenerator interface {
	NewID() string
}

// CounterIDs generates "<prefix><n>" with a monotonically increasing n
type CounterIDs struct {
	prefix string
	next   int
}

// NewCounterIDs returns a counter generator; an empty prefix defaults to "n"
func NewCounterIDs(prefix string) *CounterIDs {
	if prefix == "" {
		prefix = "n"
	}
	return &CounterIDs{prefix: prefix}
}

func (c *CounterIDs) NewID() string {
	c.next++
	return c.prefix + strconv.Itoa(c.next)
}

// UUIDIDs generates random UUIDv4 ids
type UUIDIDs struct{}

func (UUIDIDs) NewID() string {
	return uuid.NewString()
}

// IDStrategy names a generator in configuration (editor.id_strategy)
type IDStrategy string

const (
	IDStrategyCounter IDStrategy = "counter"
	IDStrategyUUID    IDStrategy = "uuid"
)

// NewIDGenerator builds the generator for a strategy; unknown strategies fall back to counter
func NewIDGenerator(strategy IDStrategy) IDGenerator {
	if strategy == IDStrategyUUID {
		return UUIDIDs{}
	}
	return NewCounterIDs("")
}
