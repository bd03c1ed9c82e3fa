// Package editor renders a bed configuration as nested editable rows and turns
// user actions into bed.Store mutations.
package editor

import (
	"strconv"

	"github.com/teranos/innkeep/bed"
	"github.com/teranos/innkeep/errors"
	"github.com/teranos/innkeep/logger"
	"go.uber.org/zap"
)

// RowKind identifies one line of the editor layout
type RowKind int

const (
	RowOrDivider     RowKind = iota // "或 (OR)" between alternatives
	RowGroupHeader                  // "方案 N", only when there are several alternatives
	RowAndConnector                 // "及" between beds of one alternative
	RowItem                         // one editable bed
	RowAddItem                      // add a bed to this alternative
	RowAddGroup                     // add an alternative
)

func (k RowKind) String() string {
	switch k {
	case RowOrDivider:
		return "or"
	case RowGroupHeader:
		return "group"
	case RowAndConnector:
		return "and"
	case RowItem:
		return "item"
	case RowAddItem:
		return "add-item"
	case RowAddGroup:
		return "add-group"
	}
	return "unknown"
}

// Row is one line of the layout. GroupIndex and ItemIndex are 0-based.
type Row struct {
	Kind       RowKind
	GroupID    string
	GroupIndex int
	ItemID     string
	ItemIndex  int
	Item       bed.Item
	Removable  bool // a remove affordance is shown
}

// View is the bed configuration editor for one session
type View struct {
	store    *bed.Store
	readOnly bool
	logger   *zap.SugaredLogger
}

// New creates a view over store. A read-only view renders the same structure
// without add/remove affordances and rejects every mutating action.
func New(store *bed.Store, readOnly bool) *View {
	return &View{
		store:    store,
		readOnly: readOnly,
		logger:   logger.ComponentLogger("editor"),
	}
}

// ReadOnly reports whether the view accepts edits
func (v *View) ReadOnly() bool {
	return v.readOnly
}

// Text returns the store's current serialized description
func (v *View) Text() string {
	return v.store.Text()
}

// Rows lays out the current configuration
func (v *View) Rows() []Row {
	snap := v.store.Snapshot()
	multiGroup := len(snap.Groups) > 1
	editable := !v.readOnly

	var rows []Row
	for gi, g := range snap.Groups {
		if gi > 0 {
			rows = append(rows, Row{Kind: RowOrDivider, GroupID: g.ID, GroupIndex: gi})
		}
		if multiGroup {
			rows = append(rows, Row{Kind: RowGroupHeader, GroupID: g.ID, GroupIndex: gi, Removable: editable})
		}
		for ii, it := range g.Items {
			if ii > 0 {
				rows = append(rows, Row{Kind: RowAndConnector, GroupID: g.ID, GroupIndex: gi, ItemIndex: ii})
			}
			rows = append(rows, Row{
				Kind:       RowItem,
				GroupID:    g.ID,
				GroupIndex: gi,
				ItemID:     it.ID,
				ItemIndex:  ii,
				Item:       it,
				Removable:  editable && len(g.Items) > 1,
			})
		}
		if editable {
			rows = append(rows, Row{Kind: RowAddItem, GroupID: g.ID, GroupIndex: gi})
		}
	}
	if editable {
		rows = append(rows, Row{Kind: RowAddGroup})
	}
	return rows
}

// Dispatch applies an action and returns the new serialized text
func (v *View) Dispatch(a Action) (string, error) {
	if a.Kind.Mutates() && v.readOnly {
		return v.store.Text(), errors.WithHint(
			errors.Wrapf(errors.ErrReadOnly, "cannot %s", a.Kind),
			"system-synced rooms are edited at their source")
	}

	groupID := v.resolveGroup(a.Group)

	switch a.Kind {
	case ActionShow, ActionText:
		return v.store.Text(), nil
	case ActionAddGroup:
		return v.store.AddGroup(), nil
	case ActionRemoveGroup:
		return v.store.RemoveGroup(groupID), nil
	case ActionAddItem:
		return v.store.AddItem(groupID), nil
	case ActionRemoveItem:
		return v.store.RemoveItem(groupID, v.resolveItem(groupID, a.Item)), nil
	case ActionUpdateItem:
		if !a.Field.Valid() {
			return v.store.Text(), errors.NewInvalidRequestError("unknown field %q", a.Field)
		}
		return v.store.UpdateItem(groupID, v.resolveItem(groupID, a.Item), a.Field, a.Value), nil
	}

	return v.store.Text(), errors.NewInvalidRequestError("unknown action %q", a.Kind)
}

// resolveGroup maps a group reference to an id. A reference is either an id
// currently in the store or a 1-based position. Anything else passes through
// unchanged so the store treats it as unknown.
func (v *View) resolveGroup(ref string) string {
	if ref == "" {
		return ""
	}
	if _, ok := v.store.Group(ref); ok {
		return ref
	}
	if pos, err := strconv.Atoi(ref); err == nil {
		snap := v.store.Snapshot()
		if pos >= 1 && pos <= len(snap.Groups) {
			return snap.Groups[pos-1].ID
		}
	}
	v.logger.Debugw("Unresolved group reference", logger.FieldGroupID, ref)
	return ref
}

// resolveItem maps an item reference within a group to an id, like resolveGroup
func (v *View) resolveItem(groupID, ref string) string {
	g, ok := v.store.Group(groupID)
	if !ok {
		return ref
	}
	for _, it := range g.Items {
		if it.ID == ref {
			return ref
		}
	}
	if pos, err := strconv.Atoi(ref); err == nil {
		if pos >= 1 && pos <= len(g.Items) {
			return g.Items[pos-1].ID
		}
	}
	v.logger.Debugw("Unresolved item reference", logger.FieldGroupID, groupID, logger.FieldItemID, ref)
	return ref
}
