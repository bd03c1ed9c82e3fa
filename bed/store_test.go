package bed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const sampleText = "1张1.8米大床 及 1张1.2米单人床 或 2张1.5米双床"

// recorder collects texts emitted through OnChange
type recorder struct {
	texts []string
}

func (r *recorder) record(text string) {
	r.texts = append(r.texts, text)
}

func newRecordedStore(text string) (*Store, *recorder) {
	s := NewStore(text)
	r := &recorder{}
	s.OnChange(r.record)
	return s, r
}

func TestNewStore(t *testing.T) {
	s := NewStore(sampleText)

	assert.Equal(t, sampleText, s.Text())
	assert.Equal(t, 2, s.Len())

	g, ok := s.Group("g-0")
	require.True(t, ok)
	assert.Len(t, g.Items, 2)

	_, ok = s.Group("missing")
	assert.False(t, ok)
}

func TestNewEmptyStore(t *testing.T) {
	s := NewEmptyStore(WithIDGenerator(NewCounterIDs("t")))

	snap := s.Snapshot()
	require.Len(t, snap.Groups, 1)
	require.Len(t, snap.Groups[0].Items, 1)
	assert.Equal(t, "t1", snap.Groups[0].ID)
	assert.Equal(t, Item{ID: "t2", Count: "1"}, snap.Groups[0].Items[0])
	assert.Equal(t, "", s.Text())
}

func TestStore_AddGroup(t *testing.T) {
	s, r := newRecordedStore("1张1.8米大床")

	text := s.AddGroup()

	// The new empty group contributes no " 或 " segment until it has content
	assert.Equal(t, "1张1.8米大床", text)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"1张1.8米大床"}, r.texts)

	snap := s.Snapshot()
	added := snap.Groups[1]
	require.Len(t, added.Items, 1)
	assert.True(t, added.Items[0].Empty())
	assert.Equal(t, DefaultCount, added.Items[0].Count)

	text = s.UpdateItem(added.ID, added.Items[0].ID, FieldType, "双床")
	assert.Equal(t, "1张1.8米大床 或 1张双床", text)
}

func TestStore_RemoveGroup(t *testing.T) {
	s, r := newRecordedStore(sampleText)

	assert.Equal(t, "2张1.5米双床", s.RemoveGroup("g-0"))
	assert.Equal(t, 1, s.Len())

	// The last group cannot be removed
	assert.Equal(t, "2张1.5米双床", s.RemoveGroup("g-1"))
	assert.Equal(t, 1, s.Len())

	// Unknown ids are ignored
	assert.Equal(t, "2张1.5米双床", s.RemoveGroup("nope"))

	assert.Equal(t, []string{"2张1.5米双床"}, r.texts)
}

func TestStore_RemoveGroup_LastIsNoOp(t *testing.T) {
	s, r := newRecordedStore("1张1.8米大床")
	before := s.Snapshot()

	s.RemoveGroup("g-0")

	assert.Equal(t, before, s.Snapshot())
	assert.Empty(t, r.texts)
}

func TestStore_AddItem(t *testing.T) {
	s, r := newRecordedStore("2张1.5米双床")

	s.AddItem("g-0")
	g, _ := s.Group("g-0")
	require.Len(t, g.Items, 2)
	newID := g.Items[1].ID
	assert.NotEqual(t, "0-0", newID)

	s.UpdateItem("g-0", newID, FieldWidth, "1.2")
	text := s.UpdateItem("g-0", newID, FieldType, "单人床")
	assert.Equal(t, "2张1.5米双床 及 1张1.2米单人床", text)

	// Unknown group: no-op, no emission
	emitted := len(r.texts)
	s.AddItem("g-9")
	assert.Len(t, r.texts, emitted)
}

func TestStore_RemoveItem(t *testing.T) {
	s, r := newRecordedStore(sampleText)

	assert.Equal(t, "1张1.2米单人床 或 2张1.5米双床", s.RemoveItem("g-0", "0-0"))

	// Last item of a group stays
	before := s.Snapshot()
	s.RemoveItem("g-0", "0-1")
	s.RemoveItem("g-1", "1-0")
	assert.Equal(t, before, s.Snapshot())

	// Unknown ids
	s.RemoveItem("g-0", "zz")
	s.RemoveItem("zz", "0-1")
	assert.Equal(t, before, s.Snapshot())

	assert.Len(t, r.texts, 1)
}

func TestStore_UpdateItem(t *testing.T) {
	s, _ := newRecordedStore(sampleText)

	assert.Equal(t, "3张1.8米大床 及 1张1.2米单人床 或 2张1.5米双床", s.UpdateItem("g-0", "0-0", FieldCount, "3"))

	// Count is stored verbatim, no coercion
	assert.Equal(t, "x张1.8米大床 及 1张1.2米单人床 或 2张1.5米双床", s.UpdateItem("g-0", "0-0", FieldCount, "x"))

	// Unknown field is ignored
	before := s.Text()
	assert.Equal(t, before, s.UpdateItem("g-0", "0-0", Field("colour"), "red"))
}

func TestStore_ClearingSoleItemYieldsEmptyText(t *testing.T) {
	s, r := newRecordedStore("1张1.8米大床")

	s.UpdateItem("g-0", "0-0", FieldType, "")
	text := s.UpdateItem("g-0", "0-0", FieldWidth, "")

	assert.Equal(t, "", text)
	assert.Equal(t, "", s.Text())
	assert.Equal(t, []string{"1张1.8米", ""}, r.texts)

	// The item stays in the model
	g, _ := s.Group("g-0")
	assert.Len(t, g.Items, 1)
}

func TestStore_SerializeIsIdempotent(t *testing.T) {
	s := NewEmptyStore()
	g := s.Snapshot().Groups[0]
	s.UpdateItem(g.ID, g.Items[0].ID, FieldType, "大床")
	s.UpdateItem(g.ID, g.Items[0].ID, FieldWidth, "1.8")
	s.AddGroup()

	first := s.Text()
	snap := s.Snapshot()
	assert.Equal(t, first, Serialize(&snap))
	assert.Equal(t, first, Serialize(&snap))
	assert.Equal(t, "1张1.8米大床", first)
}

func TestStore_SnapshotIsDetached(t *testing.T) {
	s := NewStore(sampleText)
	snap := s.Snapshot()
	snap.Groups[0].Items[0].Type = "changed"
	snap.Groups = snap.Groups[:1]

	assert.Equal(t, sampleText, s.Text())
	assert.Equal(t, 2, s.Len())
	g, _ := s.Group("g-0")
	assert.Equal(t, "大床", g.Items[0].Type)
}

func TestStore_GeneratedIDsAreUnique(t *testing.T) {
	s := NewStore(sampleText)
	for i := 0; i < 5; i++ {
		s.AddGroup()
		s.AddItem("g-0")
	}

	seen := map[string]bool{}
	snap := s.Snapshot()
	for _, g := range snap.Groups {
		assert.False(t, seen[g.ID], "duplicate id %s", g.ID)
		seen[g.ID] = true
		for _, it := range g.Items {
			assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
			seen[it.ID] = true
		}
	}
}

func TestStore_LogsMutations(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewStore("大床", WithLogger(zap.New(core).Sugar()))

	s.AddItem("g-0")
	s.RemoveGroup("g-0")

	changed := logs.FilterMessage("Bed configuration changed").All()
	require.Len(t, changed, 1)
	assert.Equal(t, "add_item", changed[0].ContextMap()["operation"])

	ignored := logs.FilterMessage("Bed mutation ignored").All()
	require.Len(t, ignored, 1)
	assert.Equal(t, "remove_group", ignored[0].ContextMap()["operation"])
}
