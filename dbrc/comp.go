package dbrc

import (
	"log"

	"github.com/blockcache/dbrc/btlb"
	"github.com/blockcache/dbrc/dba"
	"github.com/blockcache/dbrc/insert"
	memproto "github.com/blockcache/dbrc/mem/mem"
	"github.com/blockcache/dbrc/sim"
	"github.com/blockcache/dbrc/victim"
	"github.com/blockcache/dbrc/walker"
)

// phase tracks the cache's position in the blocking request pipeline.
// idle and the two busy phases together implement spec.md's
// Idle/Blocked state machine; a Comp is Blocked whenever phase != idle.
type phase int

const (
	phaseIdle phase = iota
	phaseDelaying
	phaseWaitingFetch
)

// Comp is the DBRC cache proper: a ticking component that accepts at
// most one outstanding request at a time, walks the BTH hierarchy to
// satisfy it, and falls back to the backing store on miss.
type Comp struct {
	*sim.TickingComponent

	TopPort    sim.Port
	BottomPort sim.Port

	// BottomPortDst names the backing store's port. It is set once after
	// construction, when the component is wired to its neighbor.
	BottomPortDst sim.RemotePort

	store       *dba.Store
	tlb         *btlb.Cache
	tlbCapacity int
	sel         *victim.Selector

	Latency int

	Stats Stats

	ph             phase
	delayRemaining int
	waitingReq     AccessReq
	origPacket     AccessReq
	pendingFetchID string
	missTime       sim.VTimeInSec

	topOutbox    []sim.Msg
	bottomOutbox []sim.Msg
}

// Config bundles the hierarchy parameters a Comp is constructed with.
// Builder computes these from the coarser knobs spec.md §6 enumerates.
type Config struct {
	BlockSize   uint64
	Fanout      uint64
	Levels      int
	NumL0TSlots uint64
	Capacity    uint32
	TLBSize     int
	MNA         int
	Latency     int
}

// NewComp creates a Comp wired with its own translation hierarchy,
// ready to be plugged into a CPU-side and a backing-store-side port.
func NewComp(name string, engine sim.Engine, freq sim.Freq, cfg Config) *Comp {
	c := new(Comp)
	c.TickingComponent = sim.NewTickingComponent(name, engine, freq, c)

	c.store = dba.NewStore(cfg.BlockSize, cfg.Fanout, cfg.Levels, cfg.NumL0TSlots, cfg.Capacity)
	c.tlbCapacity = cfg.TLBSize
	c.tlb = btlb.New(cfg.TLBSize)
	c.sel = victim.New(cfg.MNA)
	c.Latency = cfg.Latency

	c.TopPort = sim.NewPort(c, 8, 8, name+".TopPort")
	c.BottomPort = sim.NewPort(c, 8, 8, name+".BottomPort")
	c.AddPort("TopPort", c.TopPort)
	c.AddPort("BottomPort", c.BottomPort)

	return c
}

// Tick advances the pipeline by one cycle.
func (c *Comp) Tick() bool {
	madeProgress := false

	madeProgress = c.drainTopOutbox() || madeProgress
	madeProgress = c.drainBottomOutbox() || madeProgress
	madeProgress = c.handleBackingResponse() || madeProgress
	madeProgress = c.advanceDelay() || madeProgress
	madeProgress = c.acceptTopRequest() || madeProgress

	return madeProgress
}

func (c *Comp) drainTopOutbox() bool {
	if len(c.topOutbox) == 0 {
		return false
	}

	if err := c.TopPort.Send(c.topOutbox[0]); err != nil {
		return false
	}

	c.topOutbox = c.topOutbox[1:]

	return true
}

func (c *Comp) drainBottomOutbox() bool {
	if len(c.bottomOutbox) == 0 {
		return false
	}

	if err := c.BottomPort.Send(c.bottomOutbox[0]); err != nil {
		return false
	}

	c.bottomOutbox = c.bottomOutbox[1:]

	return true
}

// acceptTopRequest pulls one new packet off the CPU-side port, but only
// while Idle; a packet arriving while Blocked simply stays queued in the
// port's incoming buffer until the pipeline frees up, and the port's own
// backpressure (a full incoming buffer) is what tells the sender to
// retry.
func (c *Comp) acceptTopRequest() bool {
	if c.ph != phaseIdle {
		return false
	}

	msg := c.TopPort.PeekIncoming()
	if msg == nil {
		return false
	}

	switch req := msg.(type) {
	case *FlushReq:
		c.TopPort.RetrieveIncoming()
		c.runFlush(req)
		return true
	case AccessReq:
		c.validateAddr(req.GetAddress())
		c.TopPort.RetrieveIncoming()
		c.waitingReq = req
		c.ph = phaseDelaying
		c.delayRemaining = c.Latency
		return true
	default:
		log.Panicf("dbrc: unsupported packet type %T on TopPort", msg)
	}

	return true
}

// validateAddr panics with a diagnostic naming the configured range
// instead of letting an out-of-range address fall through to an
// unexplained out-of-bounds panic deep in the walker or insertion engine.
func (c *Comp) validateAddr(addr uint64) {
	rng := c.GetAddrRanges()[0]
	if addr < rng.Low || addr >= rng.High {
		log.Panicf("dbrc: address %#x outside configured range [%#x, %#x)", addr, rng.Low, rng.High)
	}
}

func (c *Comp) advanceDelay() bool {
	if c.ph != phaseDelaying {
		return false
	}

	if c.delayRemaining > 0 {
		c.delayRemaining--
		return true
	}

	return c.fireAccessEvent()
}

// fireAccessEvent performs access(pkt) once the configured latency has
// elapsed: on hit it responds immediately; on miss it issues a
// block-sized fetch to the backing store, upgrading a sub-block request
// and stashing it as orig_packet if necessary.
func (c *Comp) fireAccessEvent() bool {
	pkt := c.waitingReq

	idx, hit := c.access(pkt)
	if hit {
		c.Stats.recordHit()
		c.topOutbox = append(c.topOutbox, c.buildResponse(pkt, idx))
		c.finishRequest()

		return true
	}

	c.Stats.Misses++
	c.missTime = c.CurrentTime()

	blockAddr := c.store.BlockAddr(pkt.GetAddress())
	aligned := pkt.GetAddress() == blockAddr && pkt.GetByteSize() == c.store.B

	if !aligned {
		c.origPacket = pkt
	}

	fetch := memproto.ReadReqBuilder{}.
		WithSrc(c.BottomPort.AsRemote()).
		WithDst(c.BottomPortDst).
		WithAddress(blockAddr).
		WithByteSize(c.store.B).
		Build()

	c.pendingFetchID = fetch.ID
	c.bottomOutbox = append(c.bottomOutbox, fetch)
	c.ph = phaseWaitingFetch

	return true
}

func (c *Comp) handleBackingResponse() bool {
	msg := c.BottomPort.PeekIncoming()
	if msg == nil {
		return false
	}

	switch rsp := msg.(type) {
	case *memproto.WriteDoneRsp:
		c.BottomPort.RetrieveIncoming()
		return true
	case *memproto.DataReadyRsp:
		if rsp.RespondTo != c.pendingFetchID {
			log.Panicf("dbrc: backing-store response %s does not match the in-flight fetch %s", rsp.RespondTo, c.pendingFetchID)
		}

		c.BottomPort.RetrieveIncoming()
		c.completeFetch(rsp.Data)

		return true
	default:
		log.Panicf("dbrc: unsupported packet type %T on BottomPort", msg)
	}

	return true
}

func (c *Comp) completeFetch(data []byte) {
	addr := c.waitingReq.GetAddress()

	_, hit, lastBTH, lastBTHValid := walker.Lookup(c.store, c.tlb, addr)
	if hit {
		log.Panicf("dbrc: invariant violation: %#x resolved before its own insertion", addr)
	}

	leafIdx := insert.Insert(c.store, c.tlb, c.sel, c.writeback, addr, data, lastBTH, lastBTHValid)
	c.Stats.recordMissLatency(c.CurrentTime() - c.missTime)

	pkt := c.waitingReq
	if c.origPacket != nil {
		pkt = c.origPacket
	}

	_, hit = c.access(pkt)
	if !hit {
		log.Panicf("dbrc: invariant violation: access after insert must hit for %#x", pkt.GetAddress())
	}

	c.topOutbox = append(c.topOutbox, c.buildResponse(pkt, leafIdx))
	c.origPacket = nil
	c.pendingFetchID = ""
	c.finishRequest()
}

func (c *Comp) finishRequest() {
	c.waitingReq = nil
	c.ph = phaseIdle
}

func (c *Comp) writeback(blockAddr uint64, data []byte) {
	req := memproto.WriteReqBuilder{}.
		WithSrc(c.BottomPort.AsRemote()).
		WithDst(c.BottomPortDst).
		WithAddress(blockAddr).
		WithData(data).
		Build()

	c.bottomOutbox = append(c.bottomOutbox, req)
}

// access performs a read or write against the resident leaf for pkt,
// reporting a miss without any other state change if the translation
// walk does not resolve.
func (c *Comp) access(pkt AccessReq) (idx uint32, hit bool) {
	idx, hit, _, _ = walker.Lookup(c.store, c.tlb, pkt.GetAddress())
	if !hit {
		return 0, false
	}

	leaf := &c.store.Blocks[idx]
	offset := pkt.GetAddress() % c.store.B

	switch req := pkt.(type) {
	case *WriteReq:
		copy(leaf.Data[offset:], req.Data)
		leaf.DUT.D = true
	case *ReadReq:
		// nothing to mutate; data is copied out when the response is built.
	default:
		log.Panicf("dbrc: unsupported access packet type %T", pkt)
	}

	return idx, true
}

func (c *Comp) buildResponse(pkt AccessReq, idx uint32) sim.Msg {
	switch req := pkt.(type) {
	case *ReadReq:
		leaf := &c.store.Blocks[idx]
		offset := req.Address % c.store.B
		data := make([]byte, req.ByteSize)
		copy(data, leaf.Data[offset:offset+req.ByteSize])

		return DataReadyRspBuilder{}.
			WithSrc(c.TopPort.AsRemote()).
			WithDst(req.Meta().Src).
			WithRspTo(req.Meta().ID).
			WithData(data).
			Build()
	case *WriteReq:
		return WriteDoneRspBuilder{}.
			WithSrc(c.TopPort.AsRemote()).
			WithDst(req.Meta().Src).
			WithRspTo(req.Meta().ID).
			Build()
	default:
		log.Panicf("dbrc: unsupported access packet type %T", pkt)
	}

	return nil
}

// runFlush drains the (already idle) pipeline's translation state: every
// DUT entry is invalidated, the B-TLB is cleared, and VBIR resets to 0.
func (c *Comp) runFlush(req *FlushReq) {
	for i := range c.store.Blocks {
		c.store.Blocks[i].DUT = dba.DUT{}
	}

	for i := range c.store.L0T {
		c.store.L0T[i] = dba.BTHEntry{}
	}

	c.tlb = btlb.New(c.tlbCapacity)
	c.sel.VBIR = 0

	rsp := FlushRspBuilder{}.
		WithSrc(c.TopPort.AsRemote()).
		WithDst(req.Meta().Src).
		WithRspTo(req.Meta().ID).
		Build()

	c.topOutbox = append(c.topOutbox, rsp)
}

// AccessFunctional performs a synchronous read or write against the
// resident leaf, bypassing the Idle/Blocked pipeline entirely. It does
// not drive a miss: callers seeding a fixture must install data through
// the insertion engine first, or accept that a functional miss is
// simply a no-op report.
func (c *Comp) AccessFunctional(addr uint64, write bool, data []byte) (hit bool) {
	c.validateAddr(addr)

	idx, hit, _, _ := walker.Lookup(c.store, c.tlb, addr)
	if !hit {
		return false
	}

	leaf := &c.store.Blocks[idx]
	offset := addr % c.store.B

	if write {
		copy(leaf.Data[offset:], data)
		leaf.DUT.D = true
	} else {
		copy(data, leaf.Data[offset:offset+uint64(len(data))])
	}

	return true
}

// CurrentStats returns a snapshot of the cache's counters, including the
// victim selector's cumulative scan attempts.
func (c *Comp) CurrentStats() Stats {
	snapshot := c.Stats
	snapshot.VictimScanAttempts = c.sel.Attempts

	return snapshot
}

// AddrRange describes a half-open byte address span.
type AddrRange struct {
	Low, High uint64
}

// GetAddrRanges reports the span covered by the configured L0T, as the
// memory side of the cache would delegate for a range-change query.
func (c *Comp) GetAddrRanges() []AddrRange {
	return []AddrRange{{
		Low:  0,
		High: c.store.L0TOffset * uint64(len(c.store.L0T)),
	}}
}
