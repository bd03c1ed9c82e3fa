package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceType(t *testing.T) {
	tests := []struct {
		source SourceType
		system bool
		label  string
	}{
		{SourceDirectAPI, true, "系统同步 (L2)"},
		{SourceOTA, true, "系统同步 (L3)"},
		{SourceBusiness, false, "业务录入"},
		{"Elong", true, "系统同步 (Elong)"},
	}
	for _, tt := range tests {
		t.Run(string(tt.source), func(t *testing.T) {
			assert.Equal(t, tt.system, tt.source.IsSystem())
			assert.Equal(t, tt.label, tt.source.Label())
		})
	}
}

func TestArea(t *testing.T) {
	tests := []struct {
		in   string
		want Area
		out  string
	}{
		{"25㎡", Area{Kind: AreaFixed, Min: "25"}, "25㎡"},
		{"20-30㎡", Area{Kind: AreaRange, Min: "20", Max: "30"}, "20-30㎡"},
		{"20-㎡", Area{Kind: AreaRange, Min: "20"}, ""},
		{"", Area{Kind: AreaFixed}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseArea(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.out, got.String())
		})
	}
}

func TestOccupancy(t *testing.T) {
	assert.Equal(t, 3, ParseOccupancy("3"))
	assert.Equal(t, 3, ParseOccupancy(" 3 "))
	assert.Equal(t, 0, ParseOccupancy("three"))
	assert.Equal(t, 0, ParseOccupancy(""))
	assert.Equal(t, "3人", FormatOccupancy(3))
}

func TestToggleFeature(t *testing.T) {
	base := []string{"独立卫浴"}

	added := ToggleFeature(base, "带浴缸")
	assert.Equal(t, []string{"独立卫浴", "带浴缸"}, added)
	assert.Equal(t, []string{"独立卫浴"}, base)

	removed := ToggleFeature(added, "独立卫浴")
	assert.Equal(t, []string{"带浴缸"}, removed)
	assert.Equal(t, []string{"独立卫浴", "带浴缸"}, added)
}

func TestFindDuplicate(t *testing.T) {
	catalog := []Room{
		{ID: 1, Name: "大床房", Area: "30㎡", Bed: "1张1.8米大床", Window: "有窗", Floor: "3层"},
		{ID: 2, Name: "双床房", Area: "30㎡", Bed: "2张1.2米单人床", Window: "有窗", Floor: "3层"},
	}

	dup, ok := FindDuplicate(catalog, Room{Area: "30㎡", Bed: "1张1.8米大床", Window: "有窗", Floor: "3层"})
	assert.True(t, ok)
	assert.Equal(t, 1, dup.ID)

	// A room never duplicates itself
	_, ok = FindDuplicate(catalog, catalog[0])
	assert.False(t, ok)

	_, ok = FindDuplicate(catalog, Room{Area: "30㎡", Bed: "1张1.8米大床", Window: "无窗", Floor: "3层"})
	assert.False(t, ok)
}

func TestFindDuplicate_ComparesCanonicalBeds(t *testing.T) {
	catalog := []Room{
		{ID: 1, Name: "家庭房", Area: "40㎡", Bed: "1张1.8米大床 + 1张1.2米单人床 or 2张1.5米双床", Window: "有窗", Floor: "3层"},
	}

	dup, ok := FindDuplicate(catalog, Room{Area: "40㎡", Bed: "1张1.8米大床 及 1张1.2米单人床 或 2张1.5米双床", Window: "有窗", Floor: "3层"})
	require.True(t, ok)
	assert.Equal(t, 1, dup.ID)

	assert.Equal(t, "1张1.8米大床 及 1张1.2米单人床 或 2张1.5米双床", catalog[0].Key().Bed)
}
