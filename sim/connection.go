package sim

// SendError marks a failed send or deliver.
type SendError struct{}

// NewSendError creates a SendError.
func NewSendError() *SendError {
	return new(SendError)
}

// Error satisfies the error interface so a SendError can be returned and
// wrapped anywhere an error is expected.
func (e *SendError) Error() string {
	return "send failed: destination buffer is full"
}

// A Connection is responsible for moving messages between the ports
// plugged into it.
type Connection interface {
	Named
	Hookable

	PlugIn(port Port)
	Unplug(port Port)

	// NotifyAvailable is called by a port to report that its incoming
	// buffer has room again, so a previously rejected delivery can be
	// retried.
	NotifyAvailable(port Port)

	// NotifySend is called by a port to report that it has a new outgoing
	// message ready to be forwarded.
	NotifySend()
}

// HookPosConnStartSend marks a connection accepting a message to send.
var HookPosConnStartSend = &HookPos{Name: "Conn Start Send"}

// HookPosConnDeliver marks a connection delivering a message.
var HookPosConnDeliver = &HookPos{Name: "Conn Deliver"}
