package worker_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/manager-dashboard/internal/worker"
)

var _ = Describe("Status", func() {
	DescribeTable("CanTransitionTo",
		func(from, to worker.Status, allowed bool) {
			Expect(from.CanTransitionTo(to)).To(Equal(allowed))
		},
		Entry("pending to active", worker.StatusPending, worker.StatusActive, true),
		Entry("pending to rejected", worker.StatusPending, worker.StatusRejected, true),
		Entry("pending stays pending", worker.StatusPending, worker.StatusPending, true),
		Entry("pending to on leave", worker.StatusPending, worker.StatusOnLeave, false),
		Entry("active to pending", worker.StatusActive, worker.StatusPending, false),
		Entry("rejected to active", worker.StatusRejected, worker.StatusActive, false),
		Entry("on leave to active", worker.StatusOnLeave, worker.StatusActive, false),
	)

	It("should parse only known statuses", func() {
		s, err := worker.ParseStatus("On Leave")
		Expect(err).ToNot(HaveOccurred())
		Expect(s).To(Equal(worker.StatusOnLeave))

		_, err = worker.ParseStatus("on leave")
		Expect(err).To(HaveOccurred())
	})

	It("should validate the status payload", func() {
		Expect(worker.SetStatusDTO{Status: "Active"}.Validate()).To(Succeed())
		Expect(worker.SetStatusDTO{Status: ""}.Validate()).ToNot(Succeed())
		Expect(worker.SetStatusDTO{Status: "Retired"}.Validate()).ToNot(Succeed())
	})
})
