package bed

import (
	"github.com/teranos/innkeep/logger"
	"go.uber.org/zap"
)

// Store owns the Configuration of one editing session.
//
// Every mutation returns the freshly serialized text, and every mutation that
// applies notifies OnChange subscribers with it. Mutations referencing unknown
// ids, and removals that would leave a group or the configuration empty, are
// no-ops. Store is not safe for concurrent use; a session has a single owner.
type Store struct {
	cfg       *Configuration
	text      string
	ids       IDGenerator
	logger    *zap.SugaredLogger
	listeners []func(text string)
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator sets the generator used for groups and items added during the session
func WithIDGenerator(ids IDGenerator) Option {
	return func(s *Store) {
		if ids != nil {
			s.ids = ids
		}
	}
}

// WithLogger sets the store's logger
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore opens a session on an existing room's bed description
func NewStore(text string, opts ...Option) *Store {
	s := newStore(opts)
	s.cfg = Parse(text)
	s.text = Serialize(s.cfg)
	logger.BedDebugw(s.logger, "Bed configuration parsed",
		logger.FieldGroups, len(s.cfg.Groups),
		logger.FieldItems, s.cfg.ItemCount(),
		logger.FieldText, s.text)
	return s
}

// NewEmptyStore opens a session for a new room: one group holding one empty item
func NewEmptyStore(opts ...Option) *Store {
	s := newStore(opts)
	s.cfg = &Configuration{Groups: []Group{s.newGroup()}}
	s.text = Serialize(s.cfg)
	return s
}

func newStore(opts []Option) *Store {
	s := &Store{
		ids:    NewCounterIDs(""),
		logger: logger.ComponentLogger("bed.store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange subscribes fn to the serialized text emitted after every applied mutation
func (s *Store) OnChange(fn func(text string)) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

// Text returns the current serialized description
func (s *Store) Text() string {
	return s.text
}

// Snapshot returns a deep copy of the current configuration
func (s *Store) Snapshot() Configuration {
	return s.cfg.Clone()
}

// Len returns the number of groups
func (s *Store) Len() int {
	return len(s.cfg.Groups)
}

// Group returns a copy of the group with the given id
func (s *Store) Group(groupID string) (Group, bool) {
	gi := s.cfg.groupIndex(groupID)
	if gi < 0 {
		return Group{}, false
	}
	g := s.cfg.Groups[gi]
	items := make([]Item, len(g.Items))
	copy(items, g.Items)
	return Group{ID: g.ID, Items: items}, true
}

// AddGroup appends a new alternative holding one empty item
func (s *Store) AddGroup() string {
	g := s.newGroup()
	s.cfg.Groups = append(s.cfg.Groups, g)
	return s.commit("add_group", logger.FieldGroupID, g.ID)
}

// RemoveGroup removes a group unless it is the last one
func (s *Store) RemoveGroup(groupID string) string {
	gi := s.cfg.groupIndex(groupID)
	if gi < 0 || len(s.cfg.Groups) == 1 {
		return s.skip("remove_group", logger.FieldGroupID, groupID)
	}
	s.cfg.Groups = append(s.cfg.Groups[:gi], s.cfg.Groups[gi+1:]...)
	return s.commit("remove_group", logger.FieldGroupID, groupID)
}

// AddItem appends an empty item to a group
func (s *Store) AddItem(groupID string) string {
	gi := s.cfg.groupIndex(groupID)
	if gi < 0 {
		return s.skip("add_item", logger.FieldGroupID, groupID)
	}
	item := emptyItem(s.ids.NewID())
	s.cfg.Groups[gi].Items = append(s.cfg.Groups[gi].Items, item)
	return s.commit("add_item", logger.FieldGroupID, groupID, logger.FieldItemID, item.ID)
}

// RemoveItem removes an item unless it is the group's last one
func (s *Store) RemoveItem(groupID, itemID string) string {
	gi := s.cfg.groupIndex(groupID)
	if gi < 0 {
		return s.skip("remove_item", logger.FieldGroupID, groupID, logger.FieldItemID, itemID)
	}
	g := &s.cfg.Groups[gi]
	ii := g.itemIndex(itemID)
	if ii < 0 || len(g.Items) == 1 {
		return s.skip("remove_item", logger.FieldGroupID, groupID, logger.FieldItemID, itemID)
	}
	g.Items = append(g.Items[:ii], g.Items[ii+1:]...)
	return s.commit("remove_item", logger.FieldGroupID, groupID, logger.FieldItemID, itemID)
}

// UpdateItem sets one field of an item verbatim. Validation belongs to the caller.
func (s *Store) UpdateItem(groupID, itemID string, field Field, value string) string {
	gi := s.cfg.groupIndex(groupID)
	if gi < 0 {
		return s.skip("update_item", logger.FieldGroupID, groupID, logger.FieldItemID, itemID)
	}
	g := &s.cfg.Groups[gi]
	ii := g.itemIndex(itemID)
	if ii < 0 || !g.Items[ii].set(field, value) {
		return s.skip("update_item", logger.FieldGroupID, groupID, logger.FieldItemID, itemID, logger.FieldField, field)
	}
	return s.commit("update_item",
		logger.FieldGroupID, groupID,
		logger.FieldItemID, itemID,
		logger.FieldField, field,
		logger.FieldValue, value)
}

func (s *Store) newGroup() Group {
	return Group{
		ID:    s.ids.NewID(),
		Items: []Item{emptyItem(s.ids.NewID())},
	}
}

// commit re-serializes and notifies subscribers
func (s *Store) commit(op string, keysAndValues ...interface{}) string {
	s.text = Serialize(s.cfg)
	fields := append([]interface{}{logger.FieldOperation, op, logger.FieldText, s.text}, keysAndValues...)
	logger.BedDebugw(s.logger, "Bed configuration changed", fields...)
	for _, fn := range s.listeners {
		fn(s.text)
	}
	return s.text
}

func (s *Store) skip(op string, keysAndValues ...interface{}) string {
	fields := append([]interface{}{logger.FieldOperation, op}, keysAndValues...)
	logger.BedDebugw(s.logger, "Bed mutation ignored", fields...)
	return s.text
}
