// Package bed models a room's bed configuration as alternatives ("或", OR) of
// bed combinations ("及", AND), and converts it to and from the free-text
// description stored on the room record.
//
// The text format is best-effort on the way in (Parse never fails) and
// canonical on the way out (Serialize is deterministic). Store owns a
// Configuration for one editing session and re-serializes after every mutation.
package bed

// Field names an editable property of an Item
type Field string

const (
	FieldCount Field = "count"
	FieldWidth Field = "width"
	FieldType  Field = "type"
)

// Fields lists the editable item fields in display order
var Fields = []Field{FieldType, FieldWidth, FieldCount}

// Valid reports whether f names an Item field
func (f Field) Valid() bool {
	switch f {
	case FieldCount, FieldWidth, FieldType:
		return true
	}
	return false
}

// DefaultCount is the count given to new and fallback-parsed items
const DefaultCount = "1"

// Item is one physical bed specification within a combination.
// All fields are kept as entered; Count is not coerced to a number.
type Item struct {
	ID    string `json:"id"`
	Count string `json:"count"`
	Width string `json:"width"` // meters, free text, may be empty
	Type  string `json:"type"`  // e.g. 大床, 双床, 单人床
}

// Empty reports whether the item contributes nothing to the serialized text
func (i Item) Empty() bool {
	return i.Type == "" && i.Width == ""
}

// Get returns the value of field f, or "" for an unknown field
func (i Item) Get(f Field) string {
	switch f {
	case FieldCount:
		return i.Count
	case FieldWidth:
		return i.Width
	case FieldType:
		return i.Type
	}
	return ""
}

// set assigns value to field f and reports whether f was known
func (i *Item) set(f Field, value string) bool {
	switch f {
	case FieldCount:
		i.Count = value
	case FieldWidth:
		i.Width = value
	case FieldType:
		i.Type = value
	default:
		return false
	}
	return true
}

// Group is one alternative bed combination. It always holds at least one item.
type Group struct {
	ID    string `json:"id"`
	Items []Item `json:"items"`
}

// Configuration is the full editable model. It always holds at least one group.
type Configuration struct {
	Groups []Group `json:"groups"`
}

// Clone returns a deep copy of the configuration
func (c *Configuration) Clone() Configuration {
	out := Configuration{Groups: make([]Group, len(c.Groups))}
	for gi, g := range c.Groups {
		items := make([]Item, len(g.Items))
		copy(items, g.Items)
		out.Groups[gi] = Group{ID: g.ID, Items: items}
	}
	return out
}

// ItemCount returns the total number of items across all groups
func (c *Configuration) ItemCount() int {
	n := 0
	for _, g := range c.Groups {
		n += len(g.Items)
	}
	return n
}

func (c *Configuration) groupIndex(groupID string) int {
	for i := range c.Groups {
		if c.Groups[i].ID == groupID {
			return i
		}
	}
	return -1
}

func (g *Group) itemIndex(itemID string) int {
	for i := range g.Items {
		if g.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}

func emptyItem(id string) Item {
	return Item{ID: id, Count: DefaultCount}
}
