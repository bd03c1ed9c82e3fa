package logger

import (
	"github.com/teranos/innkeep/sym"
	"go.uber.org/zap"
)

// Symbol-aware logging helpers.
// The glyph goes into a structured field, not the message, so logs stay queryable:
//
//	logger.BedDebugw(log, "Item updated", logger.FieldItemID, id)

// BedDebugw logs a debug message tagged with the bed glyph
func BedDebugw(l *zap.SugaredLogger, msg string, keysAndValues ...interface{}) {
	if l != nil {
		fields := append([]interface{}{FieldSymbol, sym.Bed}, keysAndValues...)
		l.Debugw(msg, fields...)
	}
}

// RoomInfow logs an info message tagged with the room glyph
func RoomInfow(l *zap.SugaredLogger, msg string, keysAndValues ...interface{}) {
	if l != nil {
		fields := append([]interface{}{FieldSymbol, sym.Room}, keysAndValues...)
		l.Infow(msg, fields...)
	}
}

// RoomWarnw logs a warning tagged with the room glyph
func RoomWarnw(l *zap.SugaredLogger, msg string, keysAndValues ...interface{}) {
	if l != nil {
		fields := append([]interface{}{FieldSymbol, sym.Room}, keysAndValues...)
		l.Warnw(msg, fields...)
	}
}
