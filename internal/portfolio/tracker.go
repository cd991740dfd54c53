package portfolio

const (
	// ScrollThreshold is the offset, in pixels, past which the page counts as scrolled.
	ScrollThreshold = 50
	// MarkerOffset is added to the scroll offset before matching so a section becomes active
	// slightly before its top edge reaches the top of the viewport.
	MarkerOffset = 100
)

// Bounds is the rendered geometry of a section, in pixels from the top of the page.
type Bounds struct {
	Top    int
	Height int
}

// Contains reports whether y falls within [Top, Top+Height).
func (b Bounds) Contains(y int) bool {
	return y >= b.Top && y < b.Top+b.Height
}

// Layout exposes the current geometry of each section. A section without geometry, for
// example one that has not been rendered, reports false.
type Layout interface {
	Bounds(section Section) (Bounds, bool)
}

// StaticLayout is a fixed Layout.
type StaticLayout map[Section]Bounds

func (l StaticLayout) Bounds(section Section) (Bounds, bool) {
	bounds, found := l[section]

	return bounds, found
}

// ScrollState is the state derived from the scroll position.
type ScrollState struct {
	Active   Section
	Scrolled bool
}

// Observer receives the new state whenever it changes.
type Observer func(state ScrollState)

type TrackerOpt func(t *Tracker)

// WithThreshold overrides ScrollThreshold.
func WithThreshold(threshold int) TrackerOpt {
	return func(t *Tracker) {
		t.threshold = threshold
	}
}

// WithMarkerOffset overrides MarkerOffset.
func WithMarkerOffset(offset int) TrackerOpt {
	return func(t *Tracker) {
		t.markerOffset = offset
	}
}

// Tracker derives the active section and the scrolled flag from scroll offsets.
// It is not safe for concurrent use; it is driven from a single event loop.
type Tracker struct {
	layout       Layout
	state        ScrollState
	threshold    int
	markerOffset int
	observers    map[int]Observer
	nextID       int
}

func NewTracker(layout Layout, opts ...TrackerOpt) *Tracker {
	tracker := &Tracker{
		layout:       layout,
		state:        ScrollState{Active: SectionHome},
		threshold:    ScrollThreshold,
		markerOffset: MarkerOffset,
		observers:    map[int]Observer{},
	}

	for _, opt := range opts {
		opt(tracker)
	}

	return tracker
}

// State returns the current derived state.
func (t *Tracker) State() ScrollState {
	return t.state
}

// Active returns the active section.
func (t *Tracker) Active() Section {
	return t.state.Active
}

// Scrolled reports whether the last offset was past the threshold.
func (t *Tracker) Scrolled() bool {
	return t.state.Scrolled
}

// OnScroll recomputes the state for scrollY and notifies observers when anything changed.
// When no section contains the marker the previous active section is kept.
func (t *Tracker) OnScroll(scrollY int) ScrollState {
	next := ScrollState{
		Active:   t.state.Active,
		Scrolled: scrollY > t.threshold,
	}

	marker := scrollY + t.markerOffset
	for _, section := range Sections {
		bounds, found := t.layout.Bounds(section)
		if !found {
			continue
		}

		if bounds.Contains(marker) {
			next.Active = section

			break
		}
	}

	if next == t.state {
		return t.state
	}

	t.state = next
	for id := range t.nextID {
		if observer, found := t.observers[id]; found {
			observer(next)
		}
	}

	return t.state
}

// Observe registers fn to be called on every state change. The returned func removes it.
func (t *Tracker) Observe(fn Observer) func() {
	observerID := t.nextID
	t.nextID++
	t.observers[observerID] = fn

	return func() {
		delete(t.observers, observerID)
	}
}

// Attach subscribes the tracker to src. Callers must invoke the returned release func when the
// view is torn down, after which offsets emitted by src no longer affect the tracker.
func (t *Tracker) Attach(src Source) func() {
	return src.Subscribe(func(scrollY int) {
		t.OnScroll(scrollY)
	})
}
