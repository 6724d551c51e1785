package graph

import (
	"io"
	"log"
	"time"
)

// Clock supplies the current time. It drives key repeat and nothing else.
type Clock func() time.Time

// Result describes how one event was resolved.
type Result struct {
	Box     int // consuming box id, -1 when no box consumed the event
	Action  Action
	Created bool
	Deleted bool
	Edge    EdgeKey
	Change  EdgeChange
}

// Option configures a Controller.
type Option func(*controllerOptions)

type controllerOptions struct {
	logger *log.Logger
	clock  Clock
}

// WithLogger routes controller diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(o *controllerOptions) { o.logger = l }
}

// WithClock overrides time.Now for key repeat.
func WithClock(c Clock) Option {
	return func(o *controllerOptions) { o.clock = c }
}

// Controller resolves input events against the store. It is not safe for
// concurrent use; one goroutine feeds it every event in order.
type Controller struct {
	store    *Store
	link     Link
	cursor   Point
	viewport Size
	quit     bool
	log      *log.Logger
}

// NewController returns a controller over an empty canvas.
func NewController(metrics Metrics, measure TextMeasurer, opts ...Option) *Controller {
	o := controllerOptions{
		logger: log.New(io.Discard, "", 0),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller{
		store: NewStore(metrics, measure, o.clock),
		log:   o.logger,
	}
}

func (c *Controller) Store() *Store { return c.store }
func (c *Controller) Link() Link { return c.link }
func (c *Controller) Cursor() Point { return c.cursor }
func (c *Controller) Viewport() Size { return c.viewport }
func (c *Controller) Quitting() bool { return c.quit }
func (c *Controller) Metrics() Metrics { return c.store.metrics }

// Handle fully resolves one event: box dispatch, mutation, then the link
// transition.
func (c *Controller) Handle(ev Event) Result {
	res := Result{Box: -1}

	switch e := ev.(type) {
	case Resized:
		c.viewport = e.Size
		return res
	case QuitRequested:
		c.quit = true
		return res
	}

	if p, ok := pointerPos(ev); ok {
		c.cursor = p
	}

	if press, ok := ev.(PointerPressed); ok && press.Button == ButtonPrimary &&
		c.store.metrics.SpawnZone.Contains(c.cursor) {
		b := c.store.NewBox(KindA, c.cursor)
		b.StartDrag(c.cursor)
		c.log.Printf("spawned A box %d at (%.0f,%.0f)", b.ID, c.cursor.X, c.cursor.Y)
		return Result{Box: b.ID, Action: ActionDrag, Created: true}
	}

	boxes := c.store.Boxes()
	for i := len(boxes) - 1; i >= 0; i-- {
		b := boxes[i]
		action := b.HandleEvent(ev, c.cursor)
		if action == ActionNone {
			continue
		}
		res.Box, res.Action = b.ID, action

		if action == ActionDelete {
			dropped, _ := c.store.Remove(b.ID)
			if c.link.refersTo(b.ID) {
				c.link.clear()
			}
			res.Deleted = true
			c.log.Printf("deleted box %d and %d connection(s)", b.ID, dropped)
		} else {
			c.store.Raise(b.ID)
		}

		c.transition(action, b.ID, &res)
		return res
	}

	switch e := ev.(type) {
	case PointerPressed:
		if e.Button == ButtonPrimary {
			b := c.store.NewBox(KindQ, c.cursor)
			res.Box, res.Created = b.ID, true
			c.log.Printf("created Q box %d at (%.0f,%.0f)", b.ID, c.cursor.X, c.cursor.Y)
		}
	case PointerReleased:
		if e.Button == ButtonPrimary {
			c.link.clear()
		}
	}
	return res
}

// SetRepeatDelay changes the key repeat delay of existing and future boxes.
// Non-positive delays are ignored.
func (c *Controller) SetRepeatDelay(d time.Duration) {
	if d <= 0 {
		return
	}
	c.store.metrics.RepeatDelay = d
	for _, b := range c.store.boxes {
		b.metrics.RepeatDelay = d
	}
}

// Tick forwards the frame time to every box for key repeat.
func (c *Controller) Tick(now time.Time) {
	for _, b := range c.store.boxes {
		b.Tick(now)
	}
}

func (c *Controller) transition(action Action, id int, res *Result) {
	var (
		key   EdgeKey
		bound bool
	)
	switch action {
	case ActionStartTop:
		c.link.startParent(id)
		return
	case ActionStartBottom:
		c.link.startChild(id)
		return
	case ActionEndTop:
		key, bound = c.link.bindParent(id)
	case ActionEndBottom:
		key, bound = c.link.bindChild(id)
	case ActionHoverDrop:
		c.link.clear()
		return
	default:
		return
	}
	if !bound {
		return
	}
	res.Edge = key
	res.Change = c.store.Toggle(key)
	if res.Change != EdgeUnchanged {
		c.log.Printf("connection %d->%d %s", key.Parent, key.Child, res.Change)
	}
}
