package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/innkeep/bed"
	"github.com/teranos/innkeep/editor"
	"github.com/teranos/innkeep/errors"
)

var testCatalog = []Room{
	{ID: 1, Name: "费尔蒙大床房", Area: "45㎡", Bed: "1张2米特大床", Window: "有窗", Floor: "5-8层", Source: SourceOTA},
	{ID: 3, Name: "标准双床房", Area: "35㎡", Bed: "2张1.2米单人床", Window: "有窗", Floor: "2-10层", Source: SourceBusiness},
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestOpenForm_NewRoomDefaults(t *testing.T) {
	f := OpenForm(nil)

	assert.True(t, f.IsNew())
	assert.False(t, f.ReadOnly())
	r := f.Room()
	assert.Equal(t, "2人", r.Occupancy)
	assert.Equal(t, 2, r.Adults)
	assert.Equal(t, SourceBusiness, r.Source)
	assert.Equal(t, "", r.Bed)
	assert.Equal(t, 1, f.Beds().Len())
}

func TestOpenForm_ExistingRoom(t *testing.T) {
	src := Room{ID: 7, Name: "大床房", Area: "20-30㎡", Bed: "大床", Children: 1, Features: []string{"带浴缸"}}
	f := OpenForm(&src)

	assert.False(t, f.IsNew())
	assert.Equal(t, Area{Kind: AreaRange, Min: "20", Max: "30"}, f.Area())

	r := f.Room()
	assert.Equal(t, SourceBusiness, r.Source)
	assert.Equal(t, 2, r.Adults)
	assert.Equal(t, 0, r.Children)
	// The bed field is normalized as soon as the form opens
	assert.Equal(t, "1张大床", r.Bed)

	require.NoError(t, f.ToggleFeature("独立卫浴"))
	assert.Equal(t, []string{"带浴缸"}, src.Features, "source room must not change")
}

func TestForm_BedFieldFollowsStore(t *testing.T) {
	f := OpenForm(nil)
	v := f.BedView()

	_, err := v.Dispatch(editor.Action{Kind: editor.ActionUpdateItem, Group: "1", Item: "1", Field: bed.FieldType, Value: "大床"})
	require.NoError(t, err)
	_, err = v.Dispatch(editor.Action{Kind: editor.ActionUpdateItem, Group: "1", Item: "1", Field: bed.FieldWidth, Value: "1.8"})
	require.NoError(t, err)

	assert.Equal(t, "1张1.8米大床", f.Room().Bed)
}

func TestForm_Mutators(t *testing.T) {
	f := OpenForm(nil, WithImages(sampleImages()))

	require.NoError(t, f.SetName("高级大床房"))
	require.NoError(t, f.SetWindow("江景"))
	require.NoError(t, f.SetFloor("3-5层"))
	require.NoError(t, f.SetArea(Area{Min: "28"}))
	require.NoError(t, f.SetOccupancy("3"))
	require.NoError(t, f.ToggleFeature("景观房"))
	require.NoError(t, f.SetSyncWithSystem(true))
	require.NoError(t, f.SetCover(2))
	require.NoError(t, f.MoveImage(1, 0))

	r := f.Room()
	assert.Equal(t, "高级大床房", r.Name)
	assert.Equal(t, "江景", r.Window)
	assert.Equal(t, "3-5层", r.Floor)
	assert.Equal(t, "28㎡", r.Area)
	assert.Equal(t, "3人", r.Occupancy)
	assert.Equal(t, 3, r.Adults)
	assert.Equal(t, []string{"景观房"}, r.Features)
	assert.True(t, r.SyncWithSystem)

	images := f.Images()
	assert.Equal(t, []int{2, 1, 3}, ids(images))
	assert.True(t, images[0].Cover)

	require.NoError(t, f.SetOccupancy("many"))
	assert.Equal(t, "0人", f.Room().Occupancy)
}

func TestOpenForm_SeedsImagesFromRoom(t *testing.T) {
	src := Room{ID: 3, Source: SourceBusiness, Images: sampleImages()}
	f := OpenForm(&src)

	require.NoError(t, f.SetCover(3))
	require.NoError(t, f.MoveImage(2, 0))

	r := f.Room()
	assert.Equal(t, []int{3, 1, 2}, ids(r.Images))
	assert.True(t, r.Images[0].Cover)
	// The opened room is not modified
	assert.True(t, src.Images[0].Cover)
	assert.Equal(t, []int{1, 2, 3}, ids(src.Images))

	f = OpenForm(&src, WithImages([]Image{{ID: 9, URL: "z.jpg"}}))
	assert.Equal(t, []int{9}, ids(f.Images()))
}

func TestForm_SystemRoomIsReadOnly(t *testing.T) {
	f := OpenForm(&testCatalog[0], WithImages(sampleImages()))
	require.True(t, f.ReadOnly())

	for name, mutate := range map[string]func() error{
		"name":      func() error { return f.SetName("x") },
		"window":    func() error { return f.SetWindow("无窗") },
		"floor":     func() error { return f.SetFloor("1层") },
		"area":      func() error { return f.SetArea(Area{Min: "10"}) },
		"occupancy": func() error { return f.SetOccupancy("1") },
		"feature":   func() error { return f.ToggleFeature("带浴缸") },
		"sync":      func() error { return f.SetSyncWithSystem(true) },
		"cover":     func() error { return f.SetCover(3) },
		"move":      func() error { return f.MoveImage(0, 2) },
	} {
		err := mutate()
		require.Error(t, err, name)
		assert.True(t, errors.IsReadOnlyError(err), name)
	}

	_, err := f.Save()
	assert.True(t, errors.IsReadOnlyError(err))
	assert.Equal(t, "费尔蒙大床房", f.Room().Name)
	assert.Equal(t, []int{1, 2, 3}, ids(f.Images()))

	_, err = f.BedView().Dispatch(editor.Action{Kind: editor.ActionAddGroup})
	assert.True(t, errors.IsReadOnlyError(err))
}

func TestForm_SaveDuplicateRaisesWarning(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)}
	f := OpenForm(nil, WithCatalog(testCatalog), WithClock(clock.Now), WithWarningDelay(5*time.Second))

	require.NoError(t, f.SetName("双床房"))
	require.NoError(t, f.SetArea(Area{Kind: AreaFixed, Min: "35"}))
	require.NoError(t, f.SetWindow("有窗"))
	require.NoError(t, f.SetFloor("2-10层"))
	v := f.BedView()
	for _, a := range []editor.Action{
		{Kind: editor.ActionUpdateItem, Group: "1", Item: "1", Field: bed.FieldCount, Value: "2"},
		{Kind: editor.ActionUpdateItem, Group: "1", Item: "1", Field: bed.FieldWidth, Value: "1.2"},
		{Kind: editor.ActionUpdateItem, Group: "1", Item: "1", Field: bed.FieldType, Value: "单人床"},
	} {
		_, err := v.Dispatch(a)
		require.NoError(t, err)
	}

	_, ok := f.ActiveWarning()
	assert.False(t, ok)

	_, err := f.Save()
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	var dup *DuplicateError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, 3, dup.Existing.ID)

	w, ok := f.ActiveWarning()
	require.True(t, ok)
	assert.Equal(t, "存在相似物理房型[标准双床房]，建议复用", w.Message)

	clock.Advance(4 * time.Second)
	_, ok = f.ActiveWarning()
	assert.True(t, ok)

	clock.Advance(time.Second)
	_, ok = f.ActiveWarning()
	assert.False(t, ok)

	// Editing continues after the warning
	require.NoError(t, f.SetFloor("11层"))
	saved, err := f.Save()
	require.NoError(t, err)
	assert.Equal(t, "2张1.2米单人床", saved.Bed)
	assert.Equal(t, "35㎡", saved.Area)
}

func TestForm_SaveExistingRoomIgnoresItself(t *testing.T) {
	f := OpenForm(&testCatalog[1], WithCatalog(testCatalog))

	saved, err := f.Save()
	require.NoError(t, err)
	assert.Equal(t, testCatalog[1].Key(), saved.Key())
}
