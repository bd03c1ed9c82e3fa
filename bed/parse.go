package bed

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// groupSeparator splits alternatives: " 或 " or " or "
	groupSeparator = regexp.MustCompile(`(?i) 或 | or `)

	// itemSeparator splits beds within an alternative: " 及 ", " and " or " + "
	itemSeparator = regexp.MustCompile(`(?i) 及 | and | \+ `)

	// itemPattern extracts count, width and type from e.g. "1张1.8米大床".
	// Unanchored: digits inside a type name can be picked up as count/width.
	// Gaps also accept Unicode spaces such as U+3000 and U+00A0.
	itemPattern = regexp.MustCompile(`(\d+)[张个]?[\s\p{Zs}]*([\d.]+)[米m]?[\s\p{Zs}]*(.+)`)
)

// Parse turns a free-text bed description into a Configuration.
// It never fails: empty input yields one group with one empty item, and item
// text that does not look like "<count>张<width>米<type>" becomes a bare type.
func Parse(text string) *Configuration {
	if text == "" {
		return &Configuration{Groups: []Group{{
			ID:    groupID(0),
			Items: []Item{emptyItem(itemID(0, 0))},
		}}}
	}

	groupTexts := groupSeparator.Split(text, -1)
	cfg := &Configuration{Groups: make([]Group, 0, len(groupTexts))}

	for gi, groupText := range groupTexts {
		itemTexts := itemSeparator.Split(groupText, -1)
		group := Group{ID: groupID(gi), Items: make([]Item, 0, len(itemTexts))}
		for ii, itemText := range itemTexts {
			group.Items = append(group.Items, parseItem(itemID(gi, ii), itemText))
		}
		cfg.Groups = append(cfg.Groups, group)
	}

	return cfg
}

// parseItem extracts one bed spec, falling back to the trimmed text as its type
func parseItem(id, text string) Item {
	if m := itemPattern.FindStringSubmatch(text); m != nil {
		return Item{
			ID:    id,
			Count: m[1],
			Width: m[2],
			Type:  strings.TrimSpace(m[3]),
		}
	}
	return Item{
		ID:    id,
		Count: DefaultCount,
		Type:  strings.TrimSpace(text),
	}
}

// Positional ids for parsed content. Generated ids (see IDGenerator) never take this shape.
func groupID(gi int) string {
	return fmt.Sprintf("g-%d", gi)
}

func itemID(gi, ii int) string {
	return fmt.Sprintf("%d-%d", gi, ii)
}
