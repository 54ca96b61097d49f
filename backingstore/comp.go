// Package backingstore implements the byte-addressable memory that DBRC
// fetches missing blocks from and writes dirty evictions back to.
package backingstore

import (
	"log"

	memproto "github.com/blockcache/dbrc/mem/mem"
	"github.com/blockcache/dbrc/sim"
)

// Comp is a fixed-latency backing store. It answers block-sized ReadReqs
// with a DataReadyRsp and WriteReqs with a WriteDoneRsp, both delivered
// after Latency ticks, mirroring how a ticking memory controller services
// requests one queue slot at a time.
type Comp struct {
	*sim.TickingComponent

	TopPort sim.Port
	Storage *Storage

	Latency     int
	inFlight    []*pendingAccess
	maxInFlight int
}

type pendingAccess struct {
	remaining int
	rsp       sim.Msg
}

// NewComp creates a backing store of the given byte capacity.
func NewComp(
	name string,
	engine sim.Engine,
	freq sim.Freq,
	capacity uint64,
	latency int,
) *Comp {
	c := new(Comp)
	c.TickingComponent = sim.NewTickingComponent(name, engine, freq, c)
	c.Storage = NewStorage(capacity)
	c.Latency = latency
	c.maxInFlight = 16

	c.TopPort = sim.NewPort(c, 8, 8, name+".TopPort")
	c.AddPort("TopPort", c.TopPort)

	return c
}

// Tick advances the backing store by one cycle: accept a new request if
// there is room, age every in-flight access, and try to deliver whatever
// has finished.
func (c *Comp) Tick() bool {
	madeProgress := false

	if c.trySend() {
		madeProgress = true
	}

	if c.ageInFlight() {
		madeProgress = true
	}

	if c.acceptRequest() {
		madeProgress = true
	}

	return madeProgress
}

func (c *Comp) acceptRequest() bool {
	if len(c.inFlight) >= c.maxInFlight {
		return false
	}

	msg := c.TopPort.PeekIncoming()
	if msg == nil {
		return false
	}

	c.TopPort.RetrieveIncoming()

	pending := &pendingAccess{remaining: c.Latency}

	switch req := msg.(type) {
	case *memproto.ReadReq:
		data := c.Storage.Read(req.Address, req.AccessByteSize)
		pending.rsp = memproto.DataReadyRspBuilder{}.
			WithSrc(c.TopPort.AsRemote()).
			WithDst(req.Meta().Src).
			WithRspTo(req.Meta().ID).
			WithData(data).
			Build()
	case *memproto.WriteReq:
		c.Storage.Write(req.Address, req.Data)
		pending.rsp = memproto.WriteDoneRspBuilder{}.
			WithSrc(c.TopPort.AsRemote()).
			WithDst(req.Meta().Src).
			WithRspTo(req.Meta().ID).
			Build()
	default:
		log.Panicf("backing store received unsupported message %T", msg)
	}

	c.inFlight = append(c.inFlight, pending)

	return true
}

func (c *Comp) ageInFlight() bool {
	madeProgress := false

	for _, p := range c.inFlight {
		if p.remaining > 0 {
			p.remaining--
			madeProgress = true
		}
	}

	return madeProgress
}

func (c *Comp) trySend() bool {
	if len(c.inFlight) == 0 {
		return false
	}

	head := c.inFlight[0]
	if head.remaining > 0 {
		return false
	}

	err := c.TopPort.Send(head.rsp)
	if err != nil {
		return false
	}

	c.inFlight = c.inFlight[1:]

	return true
}

// ReadByte performs a synchronous, non-timing read directly against the
// underlying storage, for functional/debug access.
func (c *Comp) ReadByte(address, length uint64) []byte {
	return c.Storage.Read(address, length)
}

// WriteByte performs a synchronous, non-timing write directly against the
// underlying storage, for functional/debug access.
func (c *Comp) WriteByte(address uint64, data []byte) {
	c.Storage.Write(address, data)
}
