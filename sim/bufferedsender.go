package sim

import "log"

// BufferedSender delegates the sending process for a port.
//
// A common pattern inside a Component is that several internal stages
// produce messages for the same port in the same cycle, but a port can
// only take one Send per cycle's worth of capacity. Producers push into a
// BufferedSender and a single Tick call per cycle drains it one message
// at a time onto the port.
type BufferedSender interface {
	// CanSend reports whether the buffer has room for `count` more
	// messages.
	CanSend(count int) bool

	// Send enqueues a message; it is handed to the port later by Tick.
	Send(msg Msg)

	// Clear drops every queued message.
	Clear()

	// Tick attempts to hand one message to the port. It returns true if a
	// message was sent.
	Tick() bool
}

// NewBufferedSender creates a BufferedSender that drains into the given
// port, using buffer for its internal queue.
func NewBufferedSender(port Port, buffer Buffer) BufferedSender {
	return &bufferedSenderImpl{port: port, buffer: buffer}
}

type bufferedSenderImpl struct {
	port   Port
	buffer Buffer
}

func (s *bufferedSenderImpl) CanSend(count int) bool {
	if count > s.buffer.Capacity() {
		log.Panic("trying to send a number of messages exceeding capacity")
	}

	return count+s.buffer.Size() <= s.buffer.Capacity()
}

func (s *bufferedSenderImpl) Send(msg Msg) {
	s.buffer.Push(msg)
}

func (s *bufferedSenderImpl) Clear() {
	s.buffer.Clear()
}

func (s *bufferedSenderImpl) Tick() bool {
	item := s.buffer.Peek()
	if item == nil {
		return false
	}

	msg := item.(Msg)
	if err := s.port.Send(msg); err != nil {
		return false
	}

	s.buffer.Pop()

	return true
}
