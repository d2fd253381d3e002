// Package timer implements wl's countdown: a single-slot state machine that runs at
// most one timer at a time, keyed by the id of the entry it counts down for.
package timer

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

// DefaultInterval is the tick period of a real-time controller.
const DefaultInterval = time.Second

// State is the controller's state.
type State int

const (
	// Idle means no timer is running.
	Idle State = iota
	// Running means a countdown is in progress.
	Running
	// Expired is held only while the completion signal is delivered, then the
	// controller returns to Idle.
	Expired
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Expired:
		return "expired"
	default:
		return "idle"
	}
}

// Session describes the current countdown. ActiveID is empty when idle, in which case
// Remaining is 0.
type Session struct {
	ActiveID  string
	Remaining int
}

// Active reports whether the session belongs to an entry.
func (s Session) Active() bool {
	return s.ActiveID != ""
}

// Event is delivered to subscribers after every state change and every tick.
type Event struct {
	State   State
	Session Session
}

// Option configures a Controller.
type Option func(*Controller)

// WithInterval sets the tick period.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithSignal sets the completion callback. It receives the id of the expired entry
// and is called exactly once per completed countdown.
func WithSignal(fn func(id string)) Option {
	return func(c *Controller) {
		c.signal = fn
	}
}

// WithManualTicks disables the internal ticker. The caller drives the countdown by
// calling Tick.
func WithManualTicks() Option {
	return func(c *Controller) {
		c.manual = true
	}
}

// WithLogger sets the logger used for start and stop events.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// BellSignal returns a completion callback that writes the terminal bell to w.
func BellSignal(w io.Writer) func(id string) {
	return func(string) {
		_, _ = io.WriteString(w, "\a")
	}
}

// Controller owns the single timer session.
//
// Every run has a generation number. Starting or stopping a run bumps the
// generation, and a tick carrying an older generation is dropped, so a tick that was
// already in flight when a run was cancelled can never touch the next one.
type Controller struct {
	mu       sync.Mutex
	interval time.Duration
	manual   bool
	signal   func(id string)
	log      *slog.Logger

	state   State
	session Session
	gen     uint64
	stop    chan struct{}
	closed  bool

	subMu   sync.Mutex
	nextSub int
	subs    map[int]func(Event)
}

// New creates an idle controller.
func New(opts ...Option) *Controller {
	c := &Controller{
		interval: DefaultInterval,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins a countdown of seconds for id, cancelling whatever was running before,
// including an earlier run for the same id. Negative durations count as 0, which
// expires on the next tick.
func (c *Controller) Start(id string, seconds int) {
	if seconds < 0 {
		seconds = 0
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.cancelLocked()
	c.state = Running
	c.session = Session{ActiveID: id, Remaining: seconds}
	if !c.manual {
		c.stop = make(chan struct{})
		go c.run(c.gen, c.stop)
	}
	ev := c.eventLocked()
	c.mu.Unlock()

	c.log.Debug("timer started", "entry", id, "seconds", seconds)
	c.publish(ev)
}

// Stop cancels the countdown if id is the running entry. It reports whether anything
// was stopped.
func (c *Controller) Stop(id string) bool {
	c.mu.Lock()
	if c.state != Running || c.session.ActiveID != id {
		c.mu.Unlock()
		return false
	}
	c.cancelLocked()
	ev := c.eventLocked()
	c.mu.Unlock()

	c.log.Debug("timer stopped", "entry", id)
	c.publish(ev)
	return true
}

// Toggle stops the countdown when id is the running entry and otherwise starts a
// fresh one of seconds. It reports whether a countdown is running afterwards.
func (c *Controller) Toggle(id string, seconds int) bool {
	if c.Stop(id) {
		return false
	}
	c.Start(id, seconds)
	return c.State() == Running
}

// Tick advances the current run by one step. It is a no-op when idle. Controllers
// built with WithManualTicks are driven solely through Tick.
func (c *Controller) Tick() {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()
	c.tick(gen)
}

// Session returns the current session.
func (c *Controller) Session() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn for every Event. Callbacks run on the goroutine that caused
// the change, which for ticks is the controller's ticker goroutine.
func (c *Controller) Subscribe(fn func(Event)) (cancel func()) {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	if c.subs == nil {
		c.subs = make(map[int]func(Event))
	}
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	return func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		delete(c.subs, id)
	}
}

// Close stops any countdown. Later calls to Start are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	wasRunning := c.state == Running
	c.cancelLocked()
	c.closed = true
	ev := c.eventLocked()
	c.mu.Unlock()

	if wasRunning {
		c.publish(ev)
	}
}

func (c *Controller) run(gen uint64, stop <-chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.tick(gen)
		}
	}
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if c.state != Running || gen != c.gen {
		c.mu.Unlock()
		return
	}

	c.session.Remaining--
	if c.session.Remaining > 0 {
		ev := c.eventLocked()
		c.mu.Unlock()
		c.publish(ev)
		return
	}

	id := c.session.ActiveID
	c.session.Remaining = 0
	c.state = Expired
	c.stopTickerLocked()
	c.gen++
	expiredGen := c.gen
	ev := c.eventLocked()
	c.mu.Unlock()

	c.publish(ev)
	if c.signal != nil {
		c.signal(id)
	}

	c.mu.Lock()
	// the signal callback may have started a new run
	if c.gen != expiredGen || c.state != Expired {
		c.mu.Unlock()
		return
	}
	c.state = Idle
	c.session = Session{}
	ev = c.eventLocked()
	c.mu.Unlock()

	c.publish(ev)
}

// cancelLocked ends the current run and returns to Idle. Callers hold c.mu.
func (c *Controller) cancelLocked() {
	c.stopTickerLocked()
	c.gen++
	c.state = Idle
	c.session = Session{}
}

func (c *Controller) stopTickerLocked() {
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

func (c *Controller) eventLocked() Event {
	return Event{State: c.state, Session: c.session}
}

func (c *Controller) publish(ev Event) {
	c.subMu.Lock()
	fns := make([]func(Event), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
