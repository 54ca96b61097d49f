package sim

import (
	"log"
	"reflect"
)

// PortMsgLogger is a hook that logs messages as they cross a Port.
type PortMsgLogger struct {
	LogHookBase
}

// NewPortMsgLogger creates a PortMsgLogger writing to logger.
func NewPortMsgLogger(logger *log.Logger) *PortMsgLogger {
	h := new(PortMsgLogger)
	h.Logger = logger

	return h
}

// Func writes the message crossing the port into the logger.
func (h *PortMsgLogger) Func(ctx HookCtx) {
	msg, ok := ctx.Item.(Msg)
	if !ok {
		return
	}

	port, ok := ctx.Domain.(Port)
	if !ok {
		return
	}

	h.Logger.Printf("%s,%s,%s,%s,%s,%s\n",
		port.Name(),
		ctx.Pos.Name,
		msg.Meta().Src,
		msg.Meta().Dst,
		reflect.TypeOf(msg),
		msg.Meta().ID)
}
