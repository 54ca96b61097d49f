package sim

import "sync"

// TickEvent drives a TickingComponent's Tick method.
type TickEvent struct {
	EventBase
}

// MakeTickEvent creates a TickEvent.
func MakeTickEvent(handler Handler, time VTimeInSec) TickEvent {
	evt := TickEvent{}
	evt.ID = GetIDGenerator().Generate()
	evt.handler = handler
	evt.time = time

	return evt
}

// A Ticker updates its state once per tick, reporting whether it did
// anything useful.
type Ticker interface {
	Tick() bool
}

// TickScheduler schedules TickEvents for a Ticker, coalescing redundant
// requests into the next unscheduled tick.
type TickScheduler struct {
	lock      sync.Mutex
	handler   Handler
	Freq      Freq
	Engine    Engine
	secondary bool

	nextTickTime VTimeInSec
}

// NewTickScheduler creates a scheduler for primary tick events.
func NewTickScheduler(handler Handler, engine Engine, freq Freq) *TickScheduler {
	return &TickScheduler{
		handler:      handler,
		Engine:       engine,
		Freq:         freq,
		nextTickTime: -1,
	}
}

// NewSecondaryTickScheduler creates a scheduler that always schedules
// secondary tick events, which run after all primary events at the same
// time.
func NewSecondaryTickScheduler(handler Handler, engine Engine, freq Freq) *TickScheduler {
	t := NewTickScheduler(handler, engine, freq)
	t.secondary = true

	return t
}

// TickNow schedules a tick at the current cycle, if one is not already
// pending.
func (t *TickScheduler) TickNow() {
	t.lock.Lock()
	defer t.lock.Unlock()

	now := t.CurrentTime()
	if t.nextTickTime >= now {
		return
	}

	t.nextTickTime = t.Freq.ThisTick(now)
	t.schedule()
}

// TickLater schedules a tick at the cycle after the current one, if one is
// not already pending.
func (t *TickScheduler) TickLater() {
	t.lock.Lock()
	defer t.lock.Unlock()

	next := t.Freq.NextTick(t.CurrentTime())
	if t.nextTickTime >= next {
		return
	}

	t.nextTickTime = next
	t.schedule()
}

func (t *TickScheduler) schedule() {
	tick := MakeTickEvent(t.handler, t.nextTickTime)
	tick.secondary = t.secondary
	t.Engine.Schedule(tick)
}

// CurrentTime returns the engine's current time.
func (t *TickScheduler) CurrentTime() VTimeInSec {
	return t.Engine.CurrentTime()
}

// TickingComponent is a Component that advances state cycle by cycle. A
// caller only needs to provide the Ticker's Tick method.
type TickingComponent struct {
	*ComponentBase
	*TickScheduler

	ticker Ticker
}

// NewTickingComponent creates a TickingComponent driven by primary tick
// events.
func NewTickingComponent(
	name string,
	engine Engine,
	freq Freq,
	ticker Ticker,
) *TickingComponent {
	tc := new(TickingComponent)
	tc.ComponentBase = NewComponentBase(name)
	tc.TickScheduler = NewTickScheduler(tc, engine, freq)
	tc.ticker = ticker

	return tc
}

// NewSecondaryTickingComponent creates a TickingComponent driven by
// secondary tick events, for components (like connections) that must
// settle after every other component has ticked at the same time.
func NewSecondaryTickingComponent(
	name string,
	engine Engine,
	freq Freq,
	ticker Ticker,
) *TickingComponent {
	tc := new(TickingComponent)
	tc.ComponentBase = NewComponentBase(name)
	tc.TickScheduler = NewSecondaryTickScheduler(tc, engine, freq)
	tc.ticker = ticker

	return tc
}

// NotifyPortFree schedules another tick so the component can retry work
// that was blocked on port capacity.
func (c *TickingComponent) NotifyPortFree(_ Port) {
	c.TickLater()
}

// NotifyRecv schedules another tick so the component can process the
// newly arrived message.
func (c *TickingComponent) NotifyRecv(_ Port) {
	c.TickLater()
}

// Handle runs the component's Tick and reschedules itself if progress was
// made.
func (c *TickingComponent) Handle(e Event) error {
	madeProgress := c.ticker.Tick()
	if madeProgress {
		c.TickLater()
	}

	return nil
}
