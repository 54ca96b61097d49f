package sim

import (
	"fmt"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("DirectConnection", func() {
	var (
		mockCtrl   *gomock.Controller
		port1      *MockPort
		port2      *MockPort
		engine     *MockEngine
		connection *DirectConnection
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		port1 = NewMockPort(mockCtrl)
		port2 = NewMockPort(mockCtrl)
		engine = NewMockEngine(mockCtrl)
		connection = NewDirectConnection("Direct", engine, 1)

		port1.EXPECT().AsRemote().Return(RemotePort("Port1")).AnyTimes()
		port1.EXPECT().SetConnection(connection)
		connection.PlugIn(port1)

		port2.EXPECT().AsRemote().Return(RemotePort("Port2")).AnyTimes()
		port2.EXPECT().SetConnection(connection)
		connection.PlugIn(port2)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should forward a message from one port's outgoing buffer to the other's incoming buffer", func() {
		msg := &sampleMsg{}
		msg.Src = "Port1"
		msg.Dst = "Port2"

		port1.EXPECT().PeekOutgoing().Return(Msg(msg))
		port2.EXPECT().PeekOutgoing().Return(nil)
		port2.EXPECT().Deliver(msg).Return(nil)
		port1.EXPECT().RetrieveOutgoing().Return(Msg(msg))

		madeProgress := connection.Tick()

		Expect(madeProgress).To(BeTrue())
	})

	It("should make no progress if neither port has outgoing traffic", func() {
		port1.EXPECT().PeekOutgoing().Return(nil)
		port2.EXPECT().PeekOutgoing().Return(nil)

		madeProgress := connection.Tick()

		Expect(madeProgress).To(BeFalse())
	})

	It("should not retrieve the message if delivery fails", func() {
		msg := &sampleMsg{}
		msg.Src = "Port1"
		msg.Dst = "Port2"

		port1.EXPECT().PeekOutgoing().Return(Msg(msg))
		port2.EXPECT().PeekOutgoing().Return(nil)
		port2.EXPECT().Deliver(msg).Return(NewSendError())

		madeProgress := connection.Tick()

		Expect(madeProgress).To(BeFalse())
	})

	It("should schedule a tick when notified of new outgoing traffic", func() {
		engine.EXPECT().CurrentTime().Return(VTimeInSec(10)).AnyTimes()
		engine.EXPECT().Schedule(gomock.Any()).Do(func(e TickEvent) {
			Expect(e.Time()).To(Equal(VTimeInSec(10)))
			Expect(e.IsSecondary()).To(BeTrue())
		})

		connection.NotifySend()
	})

	It("should panic when a message targets an unplugged destination", func() {
		msg := &sampleMsg{}
		msg.Src = "Port1"
		msg.Dst = "Unknown"

		port1.EXPECT().PeekOutgoing().Return(Msg(msg))

		Expect(func() { connection.Tick() }).To(Panic())
	})
})

type directAgent struct {
	*TickingComponent

	msgsOut []Msg
	msgsIn  []Msg

	OutPort Port
}

func newDirectAgent(engine Engine, freq Freq, name string) *directAgent {
	a := new(directAgent)
	a.TickingComponent = NewTickingComponent(name, engine, freq, a)
	a.OutPort = NewPort(a, 4, 4, name+".OutPort")
	a.AddPort(name+".OutPort", a.OutPort)

	return a
}

func (a *directAgent) Tick() bool {
	madeProgress := false

	msgIn := a.OutPort.RetrieveIncoming()
	if msgIn != nil {
		a.msgsIn = append(a.msgsIn, msgIn)
		madeProgress = true
	}

	if len(a.msgsOut) > 0 {
		err := a.OutPort.Send(a.msgsOut[0])
		if err == nil {
			madeProgress = true
			a.msgsOut = a.msgsOut[1:]
		}
	}

	return madeProgress
}

var _ = Describe("Direct Connection Integration", func() {
	It("should deliver all messages between agents", func() {
		numAgents := 10
		numMsgsPerAgent := 100

		engine := NewSerialEngine()
		connection := NewDirectConnection("Conn", engine, 1)

		agents := make([]*directAgent, 0, numAgents)
		for i := 0; i < numAgents; i++ {
			a := newDirectAgent(engine, 1, fmt.Sprintf("Agent%d", i))
			agents = append(agents, a)
			connection.PlugIn(a.OutPort)
		}

		for _, agent := range agents {
			for i := 0; i < numMsgsPerAgent; i++ {
				msg := &sampleMsg{}
				msg.Src = agent.OutPort.AsRemote()
				dst := agents[rand.Intn(len(agents))]
				for dst == agent {
					dst = agents[rand.Intn(len(agents))]
				}
				msg.Dst = dst.OutPort.AsRemote()
				msg.ID = fmt.Sprintf("%s(%d)", agent.Name(), i)
				agent.msgsOut = append(agent.msgsOut, msg)
			}
			agent.TickLater()
		}

		engine.Run()

		totalRecvd := 0
		for _, agent := range agents {
			totalRecvd += len(agent.msgsIn)
		}

		Expect(totalRecvd).To(Equal(numAgents * numMsgsPerAgent))
	})
})
