package sim

import (
	"log"
	"math"
	"reflect"
	"runtime"
	"sync"
)

// ParallelEngine is an Engine that runs same-time events concurrently, one
// goroutine per event, joining before moving to the next time step.
type ParallelEngine struct {
	*HookableBase

	pauseLock              sync.Mutex
	nowLock                sync.RWMutex
	now                    VTimeInSec
	runningSecondaryEvents bool

	waitGroup sync.WaitGroup

	queues             []EventQueue
	queueChan          chan EventQueue
	secondaryQueues    []EventQueue
	secondaryQueueChan chan EventQueue

	simulationEndHandlers []SimulationEndHandler
}

// NewParallelEngine creates a ParallelEngine sized to GOMAXPROCS queues.
func NewParallelEngine() *ParallelEngine {
	e := new(ParallelEngine)
	e.HookableBase = NewHookableBase()

	numQueues := runtime.GOMAXPROCS(0)

	e.queues = make([]EventQueue, 0, numQueues)
	e.queueChan = make(chan EventQueue, numQueues)
	e.secondaryQueues = make([]EventQueue, 0, numQueues)
	e.secondaryQueueChan = make(chan EventQueue, numQueues)

	for i := 0; i < numQueues; i++ {
		queue := NewEventQueue()
		e.queueChan <- queue
		e.queues = append(e.queues, queue)

		secondaryQueue := NewEventQueue()
		e.secondaryQueueChan <- secondaryQueue
		e.secondaryQueues = append(e.secondaryQueues, secondaryQueue)
	}

	return e
}

func (e *ParallelEngine) readNow() VTimeInSec {
	e.nowLock.RLock()
	now := e.now
	e.nowLock.RUnlock()

	return now
}

func (e *ParallelEngine) writeNow(t VTimeInSec) {
	e.nowLock.Lock()
	e.now = t
	e.nowLock.Unlock()
}

// Schedule registers an event to happen in the future, placing it in
// whichever of the per-queue worker's queues is free.
func (e *ParallelEngine) Schedule(evt Event) {
	now := e.readNow()
	if evt.Time() < now {
		log.Panicf(
			"cannot schedule event in the past, evt %s @ %.10f, now %.10f",
			reflect.TypeOf(evt), evt.Time(), now)
	}

	if evt.IsSecondary() {
		queue := <-e.secondaryQueueChan
		queue.Push(evt)
		e.secondaryQueueChan <- queue

		return
	}

	queue := <-e.queueChan
	queue.Push(evt)
	e.queueChan <- queue
}

// Run processes every event scheduled on the ParallelEngine.
func (e *ParallelEngine) Run() error {
	for {
		if !e.hasMoreEvents() {
			return nil
		}

		e.pauseLock.Lock()
		e.determineWhatToRun()
		e.runRound()
		e.pauseLock.Unlock()
	}
}

func (e *ParallelEngine) determineWhatToRun() {
	primaryTime := e.earliestTimeInQueueGroup(e.queues)
	secondaryTime := e.earliestTimeInQueueGroup(e.secondaryQueues)

	if primaryTime <= secondaryTime {
		e.runningSecondaryEvents = false
		e.writeNow(primaryTime)

		return
	}

	e.runningSecondaryEvents = true
	e.writeNow(secondaryTime)
}

func (e *ParallelEngine) earliestTimeInQueueGroup(queues []EventQueue) VTimeInSec {
	earliestTime := VTimeInSec(math.MaxFloat64)

	for _, q := range queues {
		if q.Len() == 0 {
			continue
		}

		if t := q.Peek().Time(); t < earliestTime {
			earliestTime = t
		}
	}

	return earliestTime
}

func (e *ParallelEngine) runRound() {
	queues := e.queues
	queueChan := e.queueChan

	if e.runningSecondaryEvents {
		queues = e.secondaryQueues
		queueChan = e.secondaryQueueChan
	}

	e.emptyQueueChan(queues, queueChan)
	e.runEventsUntilConflict(queues, queueChan)
	e.waitGroup.Wait()
}

func (e *ParallelEngine) emptyQueueChan(queues []EventQueue, queueChan chan EventQueue) {
	for range queues {
		<-queueChan
	}
}

func (e *ParallelEngine) hasMoreEvents() bool {
	return e.hasMorePrimaryEvents() || e.hasMoreSecondaryEvents()
}

func (e *ParallelEngine) hasMorePrimaryEvents() bool {
	for _, q := range e.queues {
		if q.Len() > 0 {
			return true
		}
	}

	return false
}

func (e *ParallelEngine) hasMoreSecondaryEvents() bool {
	for _, q := range e.secondaryQueues {
		if q.Len() > 0 {
			return true
		}
	}

	return false
}

func (e *ParallelEngine) runEventsUntilConflict(queues []EventQueue, queueChan chan EventQueue) {
	now := e.readNow()

	for _, queue := range queues {
		for queue.Len() > 0 {
			evt := queue.Peek()

			if evt.Time() > now {
				break
			}

			if evt.Time() < now {
				log.Panicf(
					"cannot run event in the past, evt %s @ %.10f, now %.10f",
					reflect.TypeOf(evt), evt.Time(), now)
			}

			queue.Pop()
			e.runEventWithTempWorker(evt)
		}

		queueChan <- queue
	}
}

func (e *ParallelEngine) runEventWithTempWorker(evt Event) {
	e.waitGroup.Add(1)
	go e.tempWorkerRun(evt)
}

func (e *ParallelEngine) tempWorkerRun(evt Event) {
	defer e.waitGroup.Done()

	now := e.readNow()
	if evt.Time() < now {
		log.Panic("running event in the past")
	}

	hookCtx := HookCtx{Domain: e, Pos: HookPosBeforeEvent, Item: evt}
	e.InvokeHook(hookCtx)

	handler := evt.Handler()
	_ = handler.Handle(evt)

	hookCtx.Pos = HookPosAfterEvent
	e.InvokeHook(hookCtx)
}

// Pause blocks the engine from starting the next round. Events already
// dispatched for the current time step may still finish.
func (e *ParallelEngine) Pause() {
	e.pauseLock.Lock()
}

// Continue allows the engine to start the next round.
func (e *ParallelEngine) Continue() {
	e.pauseLock.Unlock()
}

// CurrentTime returns the time of the round currently executing.
func (e *ParallelEngine) CurrentTime() VTimeInSec {
	return e.readNow()
}

// RegisterSimulationEndHandler registers a handler to run when the
// simulation finishes.
func (e *ParallelEngine) RegisterSimulationEndHandler(h SimulationEndHandler) {
	e.simulationEndHandlers = append(e.simulationEndHandlers, h)
}

// Finished calls every registered SimulationEndHandler.
func (e *ParallelEngine) Finished() {
	now := e.readNow()
	for _, h := range e.simulationEndHandlers {
		h.Handle(now)
	}
}
