package bed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemFragment(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{"count width type", item("1", "1.8", "大床"), "1张1.8米大床"},
		{"no width", item("2", "", "双床"), "2张双床"},
		{"width only", item("1", "1.5", ""), "1张1.5米"},
		{"empty type and width", item("3", "", ""), ""},
		{"count kept verbatim", item("two", "", "大床"), "two张大床"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.Fragment())
		})
	}
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		name   string
		groups [][]Item
		want   string
	}{
		{
			name: "alternatives and combinations",
			groups: [][]Item{
				{item("1", "1.8", "大床"), item("1", "1.2", "单人床")},
				{item("2", "1.5", "双床")},
			},
			want: "1张1.8米大床 及 1张1.2米单人床 或 2张1.5米双床",
		},
		{
			name:   "empty items are dropped inside a group",
			groups: [][]Item{{item("1", "", ""), item("1", "", "大床"), item("1", "", "")}},
			want:   "1张大床",
		},
		{
			name: "empty groups are dropped",
			groups: [][]Item{
				{item("1", "", "")},
				{item("2", "1.5", "双床")},
				{item("1", "", "")},
			},
			want: "2张1.5米双床",
		},
		{
			name:   "all empty",
			groups: [][]Item{{item("1", "", "")}},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Configuration{}
			for _, items := range tt.groups {
				cfg.Groups = append(cfg.Groups, Group{Items: items})
			}
			assert.Equal(t, tt.want, Serialize(cfg))
		})
	}
}

func TestSerialize_Nil(t *testing.T) {
	assert.Equal(t, "", Serialize(nil))
}

func TestRoundTrip(t *testing.T) {
	const text = "1张1.8米大床 及 1张1.2米单人床 或 2张1.5米双床"
	assert.Equal(t, text, Serialize(Parse(text)))
	assert.Equal(t, text, Normalize(text))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"大床", "1张大床"},
		{"1个1.5m圆床 + 上下铺", "1张1.5米圆床 及 1张上下铺"},
		{"1张2米特大床 OR 2张1.2米双床", "1张2米特大床 或 2张1.2米双床"},
		{"", ""},
		// The width-less canonical form does not survive a second pass
		{"1张大床", "1张1张大床"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}
