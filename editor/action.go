package editor

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/teranos/innkeep/bed"
	"github.com/teranos/innkeep/errors"
)

// ActionKind names a user interaction with the editor
type ActionKind string

const (
	ActionShow        ActionKind = "show"
	ActionText        ActionKind = "text"
	ActionAddGroup    ActionKind = "add-group"
	ActionRemoveGroup ActionKind = "rm-group"
	ActionAddItem     ActionKind = "add-item"
	ActionRemoveItem  ActionKind = "rm-item"
	ActionUpdateItem  ActionKind = "set"
)

// Mutates reports whether the action changes the configuration
func (k ActionKind) Mutates() bool {
	switch k {
	case ActionAddGroup, ActionRemoveGroup, ActionAddItem, ActionRemoveItem, ActionUpdateItem:
		return true
	}
	return false
}

// Action is one user interaction. Group and Item hold references: an id or a 1-based position.
type Action struct {
	Kind  ActionKind
	Group string
	Item  string
	Field bed.Field
	Value string
}

// Usage lists the command grammar accepted by ParseAction
const Usage = `Commands:
  show                      render the editor
  text                      print the bed description
  add-group                 add an alternative (或)
  rm-group G                remove alternative G
  add-item G                add a bed (及) to alternative G
  rm-item G I               remove bed I from alternative G
  set G I FIELD VALUE       set type, width or count of bed I
  quit                      end the session
G and I are ids or 1-based positions.`

// arity is the number of arguments each command takes after its name
var arity = map[ActionKind]int{
	ActionShow:        0,
	ActionText:        0,
	ActionAddGroup:    0,
	ActionRemoveGroup: 1,
	ActionAddItem:     1,
	ActionRemoveItem:  2,
	ActionUpdateItem:  4,
}

// ParseAction builds an Action from command words, e.g. ["set", "1", "2", "width", "1.2"].
// An empty VALUE ("") clears the field.
func ParseAction(args []string) (Action, error) {
	if len(args) == 0 {
		return Action{}, errors.NewInvalidRequestError("empty command")
	}

	kind := ActionKind(strings.ToLower(args[0]))
	want, ok := arity[kind]
	if !ok {
		return Action{}, errors.WithHint(
			errors.NewInvalidRequestError("unknown command %q", args[0]),
			"type help to list commands")
	}
	if got := len(args) - 1; got != want {
		return Action{}, errors.NewInvalidRequestError("%s takes %d argument(s), got %d", kind, want, got)
	}

	a := Action{Kind: kind}
	switch kind {
	case ActionRemoveGroup, ActionAddItem:
		a.Group = args[1]
	case ActionRemoveItem:
		a.Group, a.Item = args[1], args[2]
	case ActionUpdateItem:
		a.Group, a.Item = args[1], args[2]
		a.Field = bed.Field(strings.ToLower(args[3]))
		a.Value = args[4]
		if !a.Field.Valid() {
			return Action{}, errors.WithHintf(
				errors.NewInvalidRequestError("unknown field %q", args[3]),
				"fields are %s, %s and %s", bed.FieldType, bed.FieldWidth, bed.FieldCount)
		}
	}
	return a, nil
}

// ParseLine splits a REPL line with shell quoting rules and parses it
func ParseLine(line string) (Action, error) {
	args, err := shellquote.Split(line)
	if err != nil {
		return Action{}, errors.Wrap(errors.NewInvalidRequestError("%s", err.Error()), "bad quoting")
	}
	return ParseAction(args)
}
