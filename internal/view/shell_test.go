package view_test

import (
	"context"
	"errors"
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	apperrors "github.com/frahmantamala/manager-dashboard/internal"
	"github.com/frahmantamala/manager-dashboard/internal/metrics"
	"github.com/frahmantamala/manager-dashboard/internal/settings"
	"github.com/frahmantamala/manager-dashboard/internal/view"
	"github.com/frahmantamala/manager-dashboard/internal/worker"
	"github.com/frahmantamala/manager-dashboard/internal/worker/memory"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// countingOpener hands out memory repositories and counts how many are live.
type countingOpener struct {
	opened   int
	released int
}

func (o *countingOpener) open(context.Context) (worker.Repository, func() error, error) {
	o.opened++
	return memory.NewWorkerRepository(), func() error {
		o.released++
		return nil
	}, nil
}

func workerIDs(ws []*worker.Worker) []int64 {
	out := make([]int64, len(ws))
	for i, w := range ws {
		out[i] = w.ID
	}
	return out
}

func withWorkers(ctx context.Context, s *view.Shell, fn func(v *view.WorkersView)) {
	err := view.With(ctx, s, view.RouteWorkers, func(v *view.WorkersView) error {
		fn(v)
		return nil
	})
	Expect(err).NotTo(HaveOccurred())
}

var _ = Describe("Shell", func() {
	var (
		ctx    context.Context
		opener *countingOpener
		m      *metrics.Metrics
		shell  *view.Shell
	)

	BeforeEach(func() {
		ctx = context.Background()
		opener = &countingOpener{}
		m = metrics.NewMetrics(prometheus.NewRegistry())

		var err error
		shell, err = view.NewShell(ctx, view.Dependencies{
			OpenRepository: opener.open,
			Metrics:        m,
			Logger:         quietLogger(),
		})
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(shell.Close)
	})

	It("starts on the dashboard with every nav item", func() {
		state := shell.State()
		Expect(state.Route).To(Equal(view.RouteDashboard))
		Expect(state.Items).To(HaveLen(5))
		Expect(state.Items[0].Label).To(Equal("Dashboard"))
	})

	It("keeps the mounted view when the current route is entered again", func() {
		_, err := shell.Enter(ctx, view.RouteWorkers)
		Expect(err).NotTo(HaveOccurred())
		_, err = shell.Enter(ctx, view.RouteWorkers)
		Expect(err).NotTo(HaveOccurred())

		Expect(opener.opened).To(Equal(1))
		Expect(testutil.ToFloat64(m.ViewMounts.WithLabelValues("workers"))).To(Equal(1.0))
	})

	It("reseeds the workers collection after navigating away and back", func() {
		withWorkers(ctx, shell, func(v *view.WorkersView) {
			_, err := v.Delete(ctx, 1, true)
			Expect(err).NotTo(HaveOccurred())
			state, err := v.State(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(workerIDs(state.Directory)).NotTo(ContainElement(int64(1)))
		})

		_, err := shell.Enter(ctx, view.RouteReports)
		Expect(err).NotTo(HaveOccurred())
		Expect(opener.released).To(Equal(1))

		withWorkers(ctx, shell, func(v *view.WorkersView) {
			state, err := v.State(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(workerIDs(state.Directory)).To(Equal([]int64{1, 2, 3}))
			Expect(workerIDs(state.Pending)).To(Equal([]int64{4, 5}))
		})
		Expect(opener.opened).To(Equal(2))
	})

	It("fails to mount when the repository cannot be opened", func() {
		broken, err := view.NewShell(ctx, view.Dependencies{
			OpenRepository: func(context.Context) (worker.Repository, func() error, error) {
				return nil, nil, errors.New("disk full")
			},
			Logger: quietLogger(),
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = broken.Enter(ctx, view.RouteWorkers)
		Expect(err).To(MatchError(ContainSubstring("disk full")))
		Expect(broken.State().Route).To(Equal(view.RouteDashboard))
	})

	It("resets dashboard search when navigating away", func() {
		q := "alice"
		err := view.With(ctx, shell, view.RouteDashboard, func(v *view.DashboardView) error {
			v.Activities(&q, nil)
			return v.Modals().Open(view.ModalBills)
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = shell.Enter(ctx, view.RouteProfile)
		Expect(err).NotTo(HaveOccurred())

		err = view.With(ctx, shell, view.RouteDashboard, func(v *view.DashboardView) error {
			Expect(v.State().Query).To(BeEmpty())
			Expect(v.Modals().IsOpen(view.ModalBills)).To(BeFalse())
			return nil
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects unknown routes", func() {
		_, err := view.ParseRoute("billing")
		Expect(err).To(MatchError(apperrors.ErrUnknownRoute))
	})
})

var _ = Describe("WorkersView", func() {
	var (
		ctx   context.Context
		shell *view.Shell
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		shell, err = view.NewShell(ctx, view.Dependencies{
			OpenRepository: (&countingOpener{}).open,
			Logger:         quietLogger(),
		})
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(shell.Close)
	})

	It("requires confirmation before deleting", func() {
		withWorkers(ctx, shell, func(v *view.WorkersView) {
			_, err := v.Delete(ctx, 2, false)
			Expect(err).To(MatchError(apperrors.ErrConfirmationRequired))

			state, err := v.State(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(workerIDs(state.Directory)).To(ContainElement(int64(2)))
		})
	})

	It("reports a missing id as not deleted", func() {
		withWorkers(ctx, shell, func(v *view.WorkersView) {
			result, err := v.Delete(ctx, 99, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Deleted).To(BeFalse())
		})
	})

	It("closes the detail view when the selected worker is deleted", func() {
		withWorkers(ctx, shell, func(v *view.WorkersView) {
			_, err := v.Select(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.OpenModal(view.ModalWorkerBills)).To(Succeed())

			_, err = v.Delete(ctx, 1, true)
			Expect(err).NotTo(HaveOccurred())

			state, err := v.State(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.SelectedID).To(BeNil())
			Expect(state.Modals[view.ModalWorkerBills]).To(BeFalse())
		})
	})

	It("keeps the detail view when another worker is deleted", func() {
		withWorkers(ctx, shell, func(v *view.WorkersView) {
			_, err := v.Select(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			_, err = v.Delete(ctx, 2, true)
			Expect(err).NotTo(HaveOccurred())

			state, err := v.State(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.SelectedID).NotTo(BeNil())
			Expect(*state.SelectedID).To(Equal(int64(1)))
		})
	})

	It("closes the detail view when the selected worker's status changes", func() {
		withWorkers(ctx, shell, func(v *view.WorkersView) {
			_, err := v.Select(ctx, 4)
			Expect(err).NotTo(HaveOccurred())

			result, err := v.SetStatus(ctx, 4, worker.StatusRejected)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Changed).To(BeTrue())

			state, err := v.State(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.SelectedID).To(BeNil())
			Expect(workerIDs(state.Directory)).To(ContainElement(int64(4)))
			Expect(workerIDs(state.Pending)).To(Equal([]int64{5}))
		})
	})

	It("keeps the detail view when another worker's status changes", func() {
		withWorkers(ctx, shell, func(v *view.WorkersView) {
			_, err := v.Select(ctx, 1)
			Expect(err).NotTo(HaveOccurred())

			_, err = v.SetStatus(ctx, 4, worker.StatusActive)
			Expect(err).NotTo(HaveOccurred())

			state, err := v.State(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.SelectedID).NotTo(BeNil())
			Expect(*state.SelectedID).To(Equal(int64(1)))
		})
	})

	It("approves a pending worker and ignores a missing one", func() {
		withWorkers(ctx, shell, func(v *view.WorkersView) {
			result, err := v.SetStatus(ctx, 4, worker.StatusActive)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Changed).To(BeTrue())
			Expect(result.Worker.Status).To(Equal(worker.StatusActive))

			result, err = v.SetStatus(ctx, 42, worker.StatusActive)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Worker).To(BeNil())

			state, err := v.State(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(workerIDs(state.Pending)).To(Equal([]int64{5}))
		})
	})

	It("closes the add modal only after a successful add", func() {
		withWorkers(ctx, shell, func(v *view.WorkersView) {
			Expect(v.OpenModal(view.ModalAddWorker)).To(Succeed())

			_, err := v.Add(ctx, worker.AddWorkerDTO{FirstName: "Jane"})
			Expect(err).To(HaveOccurred())
			Expect(v.Modals()[view.ModalAddWorker]).To(BeTrue())

			w, err := v.Add(ctx, worker.AddWorkerDTO{FirstName: "Jane", LastName: "Roe", Role: "Driver"})
			Expect(err).NotTo(HaveOccurred())
			Expect(w.ID).To(Equal(int64(6)))
			Expect(v.Modals()[view.ModalAddWorker]).To(BeFalse())
		})
	})

	It("needs a selection before the bills modal opens", func() {
		withWorkers(ctx, shell, func(v *view.WorkersView) {
			Expect(v.OpenModal(view.ModalWorkerBills)).To(MatchError(apperrors.ErrNoWorkerSelected))
			Expect(v.OpenModal(view.ModalBills)).To(MatchError(apperrors.ErrUnknownModal))

			_, err := v.SelectedBills(ctx)
			Expect(err).To(MatchError(apperrors.ErrNoWorkerSelected))

			_, err = v.Select(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			bills, err := v.SelectedBills(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(bills).To(HaveLen(3))
		})
	})
})

var _ = Describe("SettingsView", func() {
	It("keeps the current section when an unknown one is picked", func() {
		ctx := context.Background()
		shell, err := view.NewShell(ctx, view.Dependencies{
			OpenRepository: (&countingOpener{}).open,
			Logger:         quietLogger(),
		})
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(shell.Close)

		err = view.With(ctx, shell, view.RouteSettings, func(v *view.SettingsView) error {
			_, err := v.SelectSection("billing")
			Expect(err).To(MatchError(apperrors.ErrUnknownSection))
			Expect(v.State().Section).To(Equal(settings.DefaultSection))
			return nil
		})
		Expect(err).NotTo(HaveOccurred())
	})
})
