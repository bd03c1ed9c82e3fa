package bed

import (
	"strings"

	"github.com/teranos/innkeep/sym"
)

const (
	itemJoiner  = " " + sym.And + " "
	groupJoiner = " " + sym.Or + " "
)

// Fragment renders one item as "<count>张<width>米<type>".
// The width part is dropped when empty; an item without type and width renders as "".
func (i Item) Fragment() string {
	if i.Empty() {
		return ""
	}
	var b strings.Builder
	b.WriteString(i.Count)
	b.WriteString(sym.UnitBed)
	if i.Width != "" {
		b.WriteString(i.Width)
		b.WriteString(sym.UnitMeter)
	}
	b.WriteString(i.Type)
	return b.String()
}

// String joins the group's non-empty item fragments with " 及 "
func (g Group) String() string {
	fragments := make([]string, 0, len(g.Items))
	for _, item := range g.Items {
		if f := item.Fragment(); f != "" {
			fragments = append(fragments, f)
		}
	}
	return strings.Join(fragments, itemJoiner)
}

// Serialize renders the canonical bed description: non-empty groups joined with " 或 "
func Serialize(cfg *Configuration) string {
	if cfg == nil {
		return ""
	}
	parts := make([]string, 0, len(cfg.Groups))
	for _, g := range cfg.Groups {
		if s := g.String(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, groupJoiner)
}

// Normalize re-renders free text in canonical form
func Normalize(text string) string {
	return Serialize(Parse(text))
}
