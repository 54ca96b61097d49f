package sim

// DirectConnection connects any number of ports with zero latency: a
// message sent in one tick is visible to its destination's incoming
// buffer in the same tick, once every port has had a chance to send.
type DirectConnection struct {
	*TickingComponent

	ports       []Port
	portsByName map[RemotePort]Port
}

// NewDirectConnection creates a DirectConnection. It runs as a secondary
// ticking component so it forwards messages only after every component
// that might have sent one this cycle has ticked.
func NewDirectConnection(name string, engine Engine, freq Freq) *DirectConnection {
	c := new(DirectConnection)
	c.TickingComponent = NewSecondaryTickingComponent(name, engine, freq, c)
	c.portsByName = make(map[RemotePort]Port)

	return c
}

// PlugIn registers a port with this connection.
func (c *DirectConnection) PlugIn(port Port) {
	c.Lock()
	defer c.Unlock()

	c.ports = append(c.ports, port)
	c.portsByName[port.AsRemote()] = port

	port.SetConnection(c)
}

// Unplug removes a port from this connection.
func (c *DirectConnection) Unplug(port Port) {
	c.Lock()
	defer c.Unlock()

	delete(c.portsByName, port.AsRemote())

	for i, p := range c.ports {
		if p == port {
			c.ports = append(c.ports[:i], c.ports[i+1:]...)
			break
		}
	}
}

// NotifyAvailable is called by a port once it has room again, so a
// previously rejected delivery can be retried.
func (c *DirectConnection) NotifyAvailable(_ Port) {
	c.TickNow()
}

// NotifySend is called by a port once it has a message ready to forward.
func (c *DirectConnection) NotifySend() {
	c.TickNow()
}

// Tick forwards one message from each plugged-in port's outgoing buffer
// to the named destination port, if that destination can accept it.
func (c *DirectConnection) Tick() bool {
	madeProgress := false

	for _, port := range c.ports {
		if c.forward(port) {
			madeProgress = true
		}
	}

	return madeProgress
}

func (c *DirectConnection) forward(port Port) bool {
	msg := port.PeekOutgoing()
	if msg == nil {
		return false
	}

	dst, connected := c.portsByName[msg.Meta().Dst]
	if !connected {
		panic("message destination is not connected to this connection")
	}

	if err := dst.Deliver(msg); err != nil {
		return false
	}

	port.RetrieveOutgoing()

	return true
}
