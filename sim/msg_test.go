package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("msg", func() {
	It("should return a clone with the same metadata but a fresh ID", func() {
		rsp := GeneralRspBuilder{}.
			WithSrc("GPU.Port").
			WithDst("CPU.Port").
			Build()

		cloneMsg := rsp.Clone()

		Expect(cloneMsg.Meta().Src).To(Equal(rsp.Meta().Src))
		Expect(cloneMsg.Meta().Dst).To(Equal(rsp.Meta().Dst))
		Expect(cloneMsg.Meta().ID).NotTo(Equal(rsp.Meta().ID))
	})
})
