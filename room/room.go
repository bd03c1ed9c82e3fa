// Package room holds room records and the room form that edits them: source-type
// gating, area and occupancy fields, feature tags, photos, and the advisory
// duplicate physical-room-type check. The bed field is edited through package bed.
package room

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/teranos/innkeep/bed"
	"github.com/teranos/innkeep/sym"
)

// SourceType classifies where a record comes from
type SourceType string

const (
	SourceDirectAPI SourceType = "L2" // direct API sync
	SourceOTA       SourceType = "L3" // OTA connector sync
	SourceBusiness  SourceType = "L4" // business-department entry
)

// IsSystem reports whether the record is system-synced and therefore read-only here
func (s SourceType) IsSystem() bool {
	return s != SourceBusiness
}

// Label is the form's source caption
func (s SourceType) Label() string {
	if s.IsSystem() {
		return fmt.Sprintf("系统同步 (%s)", s)
	}
	return "业务录入"
}

// Room is a room type record
type Room struct {
	ID             int        `json:"id" yaml:"id" toml:"id"`
	Name           string     `json:"name" yaml:"name" toml:"name"`
	Area           string     `json:"area" yaml:"area" toml:"area"`
	Bed            string     `json:"bed" yaml:"bed" toml:"bed"`
	BedCount       int        `json:"bedCount" yaml:"bedCount" toml:"bedCount"`
	Occupancy      string     `json:"occupancy" yaml:"occupancy" toml:"occupancy"`
	Adults         int        `json:"adults,omitempty" yaml:"adults,omitempty" toml:"adults,omitempty"`
	Children       int        `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
	Window         string     `json:"window" yaml:"window" toml:"window"`
	Floor          string     `json:"floor" yaml:"floor" toml:"floor"`
	Plans          int        `json:"plans" yaml:"plans" toml:"plans"`
	Source         SourceType `json:"source" yaml:"source" toml:"source"`
	SyncWithSystem bool       `json:"syncWithSystem,omitempty" yaml:"syncWithSystem,omitempty" toml:"syncWithSystem,omitempty"`
	SmokingPolicy  string     `json:"smokingPolicy,omitempty" yaml:"smokingPolicy,omitempty" toml:"smokingPolicy,omitempty"`
	ExtraBedPolicy string     `json:"extraBedPolicy,omitempty" yaml:"extraBedPolicy,omitempty" toml:"extraBedPolicy,omitempty"`
	Features       []string   `json:"features,omitempty" yaml:"features,omitempty" toml:"features,omitempty"`
	View           string     `json:"view,omitempty" yaml:"view,omitempty" toml:"view,omitempty"`
	Images         []Image    `json:"images,omitempty" yaml:"images,omitempty" toml:"images,omitempty"`
}

// WindowOptions are the accepted window descriptions
var WindowOptions = []string{"有窗", "部分有窗", "无窗", "内窗", "天窗", "江景", "全景窗"}

// StandardTags are the selectable room feature tags
var StandardTags = []string{
	"独立卫浴",
	"空气净化器/新风系统",
	"带浴缸",
	"景观房",
	"智能卫浴",
	"榻榻米房",
	"无障碍房",
}

// ToggleFeature adds tag when absent and removes it when present. The input is not modified.
func ToggleFeature(features []string, tag string) []string {
	if i := slices.Index(features, tag); i >= 0 {
		return slices.Delete(slices.Clone(features), i, i+1)
	}
	return append(slices.Clone(features), tag)
}

// AreaKind distinguishes a fixed area from a min-max range
type AreaKind string

const (
	AreaFixed AreaKind = "fixed"
	AreaRange AreaKind = "range"
)

// Area is the structured form of a room's area field
type Area struct {
	Kind AreaKind
	Min  string
	Max  string
}

// ParseArea reads "25㎡" as fixed and "20-30㎡" as a range
func ParseArea(s string) Area {
	raw := strings.Replace(s, sym.UnitArea, "", 1)
	if strings.Contains(raw, "-") {
		lo, hi, _ := strings.Cut(raw, "-")
		return Area{Kind: AreaRange, Min: lo, Max: hi}
	}
	return Area{Kind: AreaFixed, Min: raw}
}

// String renders the area field. A range needs both ends; anything incomplete renders as "".
func (a Area) String() string {
	if a.Kind == AreaRange {
		if a.Min != "" && a.Max != "" {
			return a.Min + "-" + a.Max + sym.UnitArea
		}
		return ""
	}
	if a.Min != "" {
		return a.Min + sym.UnitArea
	}
	return ""
}

// ParseOccupancy reads the guest-count input; anything non-numeric counts as 0
func ParseOccupancy(val string) int {
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return 0
	}
	return n
}

// FormatOccupancy renders the displayed occupancy, e.g. "2人"
func FormatOccupancy(n int) string {
	return strconv.Itoa(n) + sym.UnitGuest
}

// PhysicalKey is the tuple that identifies a physical room type
type PhysicalKey struct {
	Area   string
	Bed    string
	Window string
	Floor  string
}

// Key returns the room's physical key. The bed is compared in canonical form.
func (r Room) Key() PhysicalKey {
	return PhysicalKey{Area: r.Area, Bed: bed.Normalize(r.Bed), Window: r.Window, Floor: r.Floor}
}

// FindDuplicate returns the first other room in catalog sharing candidate's physical key
func FindDuplicate(catalog []Room, candidate Room) (Room, bool) {
	key := candidate.Key()
	for _, r := range catalog {
		if r.ID != candidate.ID && r.Key() == key {
			return r, true
		}
	}
	return Room{}, false
}
