package portfolio

// State is a snapshot of all mutable page state.
type State struct {
	Active   Section
	Scrolled bool
	MenuOpen bool
}

// Controller owns the page state: the scroll tracker and the navigation menu. Renderers read
// from it, they never write the derived values directly.
type Controller struct {
	tracker *Tracker
	menu    Menu
}

func NewController(layout Layout, opts ...TrackerOpt) *Controller {
	return &Controller{tracker: NewTracker(layout, opts...)}
}

func (c *Controller) Tracker() *Tracker {
	return c.tracker
}

// Mount attaches the tracker to src. The returned func must be called on teardown.
func (c *Controller) Mount(src Source) func() {
	return c.tracker.Attach(src)
}

func (c *Controller) ToggleMenu() bool {
	return c.menu.Toggle()
}

func (c *Controller) MenuOpen() bool {
	return c.menu.Open()
}

func (c *Controller) Active() Section {
	return c.tracker.Active()
}

func (c *Controller) Scrolled() bool {
	return c.tracker.Scrolled()
}

func (c *Controller) State() State {
	scroll := c.tracker.State()

	return State{
		Active:   scroll.Active,
		Scrolled: scroll.Scrolled,
		MenuOpen: c.menu.Open(),
	}
}
