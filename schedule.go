package travel

// Default values of a newly added schedule item.
const (
	DefaultStart = "09:00"
	DefaultEnd   = "10:00"
)

// ScheduleItem is a timed, located activity within a day.
//
// Start and End are zero-padded "HH:MM" strings, so comparing them as strings
// compares them chronologically. Until the day is committed an item may end
// before it starts.
type ScheduleItem struct {
	ID       string   `json:"id"`
	Start    string   `json:"startTime"`
	End      string   `json:"endTime"`
	Location string   `json:"location"`
	MapLink  string   `json:"mapLink"`
	Active   Category `json:"activeCategory"`
	Notes    Notes    `json:"notes"`
	Expanded bool     `json:"isExpanded"`
}

// NewScheduleItem returns an expanded 09:00-10:00 item showing its transport notes.
func NewScheduleItem(id string) ScheduleItem {
	return ScheduleItem{
		ID:       id,
		Start:    DefaultStart,
		End:      DefaultEnd,
		Active:   Transport,
		Expanded: true,
	}
}

// Select switches the note slot being shown and edited. Other notes are kept.
func (it *ScheduleItem) Select(c Category) { it.Active = c }

// Note returns the note of the selected category.
func (it ScheduleItem) Note() string { return it.Notes.Get(it.Active) }

// SetNote replaces the note of the selected category.
func (it *ScheduleItem) SetNote(text string) { it.Notes.Set(it.Active, text) }

// Toggle expands or collapses the item notes.
func (it *ScheduleItem) Toggle() { it.Expanded = !it.Expanded }

// IsInstant reports whether the item starts and ends at the same time.
func (it ScheduleItem) IsInstant() bool { return it.Start == it.End }

// ItemEdit is a partial update of a schedule item. Nil fields are left unchanged.
type ItemEdit struct {
	Start    *string `validate:"omitempty,clock"`
	End      *string `validate:"omitempty,clock"`
	Location *string
	MapLink  *string
}

// Apply validates the edit and applies it to it. Nothing is changed on error.
//
// Each time is checked on its own: a start after the end is accepted here and
// repaired when the day is committed.
func (e ItemEdit) Apply(it *ScheduleItem) error {
	if err := validate.Struct(e); err != nil {
		return validationError(err)
	}
	if e.Start != nil {
		it.Start = *e.Start
	}
	if e.End != nil {
		it.End = *e.End
	}
	if e.Location != nil {
		it.Location = *e.Location
	}
	if e.MapLink != nil {
		it.MapLink = *e.MapLink
	}
	return nil
}
