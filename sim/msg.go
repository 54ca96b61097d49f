package sim

import "reflect"

// A Msg is a piece of information transferred between components.
type Msg interface {
	Meta() *MsgMeta
	Clone() Msg
}

// MsgMeta holds the metadata attached to every message.
type MsgMeta struct {
	ID           string
	Src, Dst     RemotePort
	TrafficClass string
	TrafficBytes int
}

// Rsp is a message that indicates the completion of a request.
type Rsp interface {
	Msg
	GetRspTo() string
}

// Request is a message that can produce its own response.
type Request interface {
	Msg
	GenerateRsp() Rsp
}

// GeneralRsp is a bare response used when no richer response type is
// needed.
type GeneralRsp struct {
	MsgMeta

	OriginalReq Msg
}

// Meta returns the metadata of the message.
func (r *GeneralRsp) Meta() *MsgMeta {
	return &r.MsgMeta
}

// Clone returns a copy of the GeneralRsp with a fresh ID.
func (r *GeneralRsp) Clone() Msg {
	cloneMsg := *r
	cloneMsg.ID = GetIDGenerator().Generate()

	return &cloneMsg
}

// GetRspTo returns the ID of the request this response answers.
func (r *GeneralRsp) GetRspTo() string {
	return r.OriginalReq.Meta().ID
}

// GeneralRspBuilder builds GeneralRsp messages.
type GeneralRspBuilder struct {
	Src, Dst     RemotePort
	TrafficBytes int
	OriginalReq  Msg
}

// WithSrc sets the source port.
func (b GeneralRspBuilder) WithSrc(src RemotePort) GeneralRspBuilder {
	b.Src = src
	return b
}

// WithDst sets the destination port.
func (b GeneralRspBuilder) WithDst(dst RemotePort) GeneralRspBuilder {
	b.Dst = dst
	return b
}

// WithTrafficBytes sets the traffic byte count.
func (b GeneralRspBuilder) WithTrafficBytes(n int) GeneralRspBuilder {
	b.TrafficBytes = n
	return b
}

// WithOriginalReq sets the request being answered.
func (b GeneralRspBuilder) WithOriginalReq(req Msg) GeneralRspBuilder {
	b.OriginalReq = req
	return b
}

// Build creates a new GeneralRsp.
func (b GeneralRspBuilder) Build() *GeneralRsp {
	return &GeneralRsp{
		MsgMeta: MsgMeta{
			Src:          b.Src,
			Dst:          b.Dst,
			TrafficClass: reflect.TypeOf(GeneralRsp{}).String(),
			TrafficBytes: b.TrafficBytes,
			ID:           GetIDGenerator().Generate(),
		},
		OriginalReq: b.OriginalReq,
	}
}
