package room

import (
	"fmt"
	"time"

	"github.com/teranos/innkeep/bed"
	"github.com/teranos/innkeep/editor"
	"github.com/teranos/innkeep/errors"
	"github.com/teranos/innkeep/logger"
	"go.uber.org/zap"
)

// DefaultWarningDelay is how long a duplicate warning stays active
const DefaultWarningDelay = 5 * time.Second

// Warning is an advisory, non-blocking message that dismisses itself at ExpiresAt
type Warning struct {
	Message   string
	ExpiresAt time.Time
}

// DuplicateError reports that a save matched an existing physical room type
type DuplicateError struct {
	Existing Room
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("存在相似物理房型[%s]，建议复用", e.Existing.Name)
}

// Unwrap lets errors.Is(err, errors.ErrConflict) match
func (e *DuplicateError) Unwrap() error {
	return errors.ErrConflict
}

// Form edits one room record. The bed field is owned by a bed.Store and kept in
// sync with it on every bed mutation; every other mutator is rejected with
// errors.ErrReadOnly when the room is system-synced.
type Form struct {
	draft   Room
	isNew   bool
	area    Area
	beds    *bed.Store
	images  []Image
	catalog []Room

	warnDelay time.Duration
	now       func() time.Time
	warning   *Warning
	bedOpts   []bed.Option
	logger    *zap.SugaredLogger
}

// FormOption configures a Form
type FormOption func(*Form)

// WithCatalog sets the rooms a save is checked against for duplicates
func WithCatalog(catalog []Room) FormOption {
	return func(f *Form) { f.catalog = catalog }
}

// WithImages sets the room's photos, replacing those on the opened room
func WithImages(images []Image) FormOption {
	return func(f *Form) { f.images = append([]Image(nil), images...) }
}

// WithWarningDelay sets how long duplicate warnings stay active
func WithWarningDelay(d time.Duration) FormOption {
	return func(f *Form) {
		if d > 0 {
			f.warnDelay = d
		}
	}
}

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) FormOption {
	return func(f *Form) {
		if now != nil {
			f.now = now
		}
	}
}

// WithBedOptions passes options to the form's bed.Store
func WithBedOptions(opts ...bed.Option) FormOption {
	return func(f *Form) { f.bedOpts = append(f.bedOpts, opts...) }
}

// OpenForm opens r for editing, or a blank business-entry room when r is nil
func OpenForm(r *Room, opts ...FormOption) *Form {
	f := &Form{
		warnDelay: DefaultWarningDelay,
		now:       time.Now,
		logger:    logger.ComponentLogger("room.form"),
	}
	for _, opt := range opts {
		opt(f)
	}

	if r == nil {
		f.isNew = true
		f.draft = Room{
			Occupancy: FormatOccupancy(2),
			Adults:    2,
			Source:    SourceBusiness,
		}
		f.area = Area{Kind: AreaFixed}
		f.beds = bed.NewEmptyStore(f.bedOpts...)
	} else {
		f.draft = *r
		f.draft.Features = append([]string(nil), r.Features...)
		if f.images == nil {
			f.images = append([]Image(nil), r.Images...)
		}
		f.draft.Children = 0
		if f.draft.Adults == 0 {
			f.draft.Adults = 2
		}
		if f.draft.Source == "" {
			f.draft.Source = SourceBusiness
		}
		f.area = ParseArea(r.Area)
		f.beds = bed.NewStore(r.Bed, f.bedOpts...)
	}

	f.draft.Bed = f.beds.Text()
	f.beds.OnChange(func(text string) { f.draft.Bed = text })

	f.logger = logger.ChildLogger(f.logger, logger.FieldRoomID, f.draft.ID)
	logger.RoomInfow(f.logger, "Room form opened",
		logger.FieldSource, f.draft.Source,
		"new", f.isNew)
	return f
}

// IsNew reports whether the form creates a room
func (f *Form) IsNew() bool {
	return f.isNew
}

// ReadOnly reports whether the room is system-synced
func (f *Form) ReadOnly() bool {
	return f.draft.Source.IsSystem()
}

// Room returns the current draft with the area field rendered
func (f *Form) Room() Room {
	r := f.draft
	r.Area = f.area.String()
	r.Features = append([]string(nil), f.draft.Features...)
	r.Images = f.Images()
	return r
}

// Area returns the structured area
func (f *Form) Area() Area {
	return f.area
}

// Beds returns the bed configuration store backing the bed field
func (f *Form) Beds() *bed.Store {
	return f.beds
}

// BedView returns an editor over the bed field, read-only for system-synced rooms
func (f *Form) BedView() *editor.View {
	return editor.New(f.beds, f.ReadOnly())
}

// Images returns a copy of the room's photos in display order
func (f *Form) Images() []Image {
	return append([]Image(nil), f.images...)
}

func (f *Form) guard(op string) error {
	if f.ReadOnly() {
		return errors.WithHint(
			errors.Wrapf(errors.ErrReadOnly, "cannot %s on %s room", op, f.draft.Source),
			"system-synced rooms are edited at their source")
	}
	return nil
}

// SetName sets the room type name
func (f *Form) SetName(name string) error {
	if err := f.guard("set name"); err != nil {
		return err
	}
	f.draft.Name = name
	return nil
}

// SetWindow sets the window description
func (f *Form) SetWindow(window string) error {
	if err := f.guard("set window"); err != nil {
		return err
	}
	f.draft.Window = window
	return nil
}

// SetFloor sets the floor text, e.g. "3-5"
func (f *Form) SetFloor(floor string) error {
	if err := f.guard("set floor"); err != nil {
		return err
	}
	f.draft.Floor = floor
	return nil
}

// SetArea replaces the structured area
func (f *Form) SetArea(a Area) error {
	if err := f.guard("set area"); err != nil {
		return err
	}
	if a.Kind == "" {
		a.Kind = AreaFixed
	}
	f.area = a
	return nil
}

// SetOccupancy applies the guest-count input. Children are not tracked separately.
func (f *Form) SetOccupancy(val string) error {
	if err := f.guard("set occupancy"); err != nil {
		return err
	}
	n := ParseOccupancy(val)
	f.draft.Adults = n
	f.draft.Children = 0
	f.draft.Occupancy = FormatOccupancy(n)
	return nil
}

// ToggleFeature flips one feature tag
func (f *Form) ToggleFeature(tag string) error {
	if err := f.guard("toggle feature"); err != nil {
		return err
	}
	f.draft.Features = ToggleFeature(f.draft.Features, tag)
	return nil
}

// SetSyncWithSystem controls whether system updates overwrite business-entered data
func (f *Form) SetSyncWithSystem(on bool) error {
	if err := f.guard("change sync"); err != nil {
		return err
	}
	f.draft.SyncWithSystem = on
	return nil
}

// SetCover makes the image with the given id the cover photo
func (f *Form) SetCover(id int) error {
	if err := f.guard("set cover"); err != nil {
		return err
	}
	f.images = SetCover(f.images, id)
	return nil
}

// MoveImage reorders photos
func (f *Form) MoveImage(from, to int) error {
	if err := f.guard("reorder photos"); err != nil {
		return err
	}
	f.images = MoveImage(f.images, from, to)
	return nil
}

// Save finalizes the draft. A room sharing area, bed, window and floor with
// another catalog room is not saved: Save returns a *DuplicateError and raises
// an advisory warning; editing can continue.
func (f *Form) Save() (Room, error) {
	if err := f.guard("save"); err != nil {
		return Room{}, err
	}

	final := f.Room()
	if dup, ok := FindDuplicate(f.catalog, final); ok {
		err := &DuplicateError{Existing: dup}
		f.warning = &Warning{
			Message:   err.Error(),
			ExpiresAt: f.now().Add(f.warnDelay),
		}
		logger.RoomWarnw(f.logger, "Similar physical room type exists",
			"existing_id", dup.ID,
			"existing_name", dup.Name)
		return Room{}, err
	}

	logger.RoomInfow(f.logger, "Room saved",
		logger.FieldText, final.Bed)
	return final, nil
}

// ActiveWarning returns the current advisory warning until it expires
func (f *Form) ActiveWarning() (Warning, bool) {
	if f.warning == nil {
		return Warning{}, false
	}
	if !f.now().Before(f.warning.ExpiresAt) {
		f.warning = nil
		return Warning{}, false
	}
	return *f.warning, true
}
