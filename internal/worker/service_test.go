package worker_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/frahmantamala/manager-dashboard/internal"
	"github.com/frahmantamala/manager-dashboard/internal/core/events"
	"github.com/frahmantamala/manager-dashboard/internal/worker"
	"github.com/frahmantamala/manager-dashboard/internal/worker/memory"
)

type recordingPublisher struct {
	mu         sync.Mutex
	published  []events.Event
	shouldFail bool
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shouldFail {
		return errors.New("bus unavailable")
	}
	p.published = append(p.published, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.published))
	for i, e := range p.published {
		out[i] = e.EventType()
	}
	return out
}

// failingRepository wraps a real repository and fails the selected calls.
type failingRepository struct {
	worker.Repository
	failMaxID  bool
	failUpdate bool
	failError  error
}

func (r *failingRepository) MaxID(ctx context.Context) (int64, error) {
	if r.failMaxID {
		return 0, r.failError
	}
	return r.Repository.MaxID(ctx)
}

func (r *failingRepository) UpdateStatus(ctx context.Context, id int64, status worker.Status) error {
	if r.failUpdate {
		return r.failError
	}
	return r.Repository.UpdateStatus(ctx, id, status)
}

func fixtureWorkers() []*worker.Worker {
	return []*worker.Worker{
		{ID: 4, Name: "Sarah Connor", Role: "Apprentice", Status: worker.StatusPending, Events: []worker.Event{}},
		{ID: 5, Name: "James Cameron", Role: "Site Manager", Status: worker.StatusPending, Events: []worker.Event{}},
		{ID: 1, Name: "John Doe", Role: "Field Technician", Status: worker.StatusActive, Spent: 450, BillsUploaded: 3,
			Events: []worker.Event{
				{ID: 101, Name: "Site Visit: Downtown", Date: "Feb 10", Cost: 120},
				{ID: 102, Name: "Fuel Refill", Date: "Feb 12", Cost: 55},
				{ID: 103, Name: "Tools Maintenance", Date: "Feb 15", Cost: 275},
			}},
		{ID: 2, Name: "Alice Smith", Role: "Logistics", Status: worker.StatusActive, Spent: 1200, BillsUploaded: 5, Events: []worker.Event{}},
		{ID: 3, Name: "Mike Johnson", Role: "Driver", Status: worker.StatusOnLeave, Spent: 200, BillsUploaded: 2,
			Events: []worker.Event{
				{ID: 301, Name: "Fuel", Date: "Jan 28", Cost: 80},
				{ID: 302, Name: "Parking Fees", Date: "Jan 29", Cost: 120},
			}},
	}
}

func ids(workers []*worker.Worker) []int64 {
	out := make([]int64, len(workers))
	for i, w := range workers {
		out[i] = w.ID
	}
	return out
}

var _ = Describe("Service", func() {
	var (
		ctx       context.Context
		repo      worker.Repository
		publisher *recordingPublisher
		service   *worker.Service
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = memory.NewWorkerRepository()
		publisher = &recordingPublisher{}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = worker.NewService(repo, publisher, logger)
		Expect(service.Seed(ctx, fixtureWorkers())).To(Succeed())
	})

	Describe("Pending and Directory", func() {
		It("should partition workers by pending status in display order", func() {
			pending, err := service.Pending(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(ids(pending)).To(Equal([]int64{4, 5}))

			directory, err := service.Directory(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(ids(directory)).To(Equal([]int64{1, 2, 3}))
		})
	})

	Describe("SetStatus", func() {
		It("should move an approved worker from pending to the directory", func() {
			w, changed, err := service.SetStatus(ctx, 4, worker.StatusActive)
			Expect(err).ToNot(HaveOccurred())
			Expect(changed).To(BeTrue())
			Expect(w.Status).To(Equal(worker.StatusActive))

			pending, _ := service.Pending(ctx)
			Expect(ids(pending)).To(Equal([]int64{5}))

			directory, _ := service.Directory(ctx)
			Expect(ids(directory)).To(ConsistOf(int64(1), int64(2), int64(3), int64(4)))
			Expect(publisher.types()).To(Equal([]string{events.EventTypeWorkerStatusChanged}))
		})

		It("should reject a pending worker", func() {
			w, changed, err := service.SetStatus(ctx, 5, worker.StatusRejected)
			Expect(err).ToNot(HaveOccurred())
			Expect(changed).To(BeTrue())
			Expect(w.Status).To(Equal(worker.StatusRejected))

			directory, _ := service.Directory(ctx)
			Expect(ids(directory)).To(ContainElement(int64(5)))
		})

		It("should change only the status field", func() {
			before, err := service.Get(ctx, 4)
			Expect(err).ToNot(HaveOccurred())

			_, _, err = service.SetStatus(ctx, 4, worker.StatusActive)
			Expect(err).ToNot(HaveOccurred())

			after, err := service.Get(ctx, 4)
			Expect(err).ToNot(HaveOccurred())
			before.Status = worker.StatusActive
			Expect(after).To(Equal(before))
		})

		It("should treat the current status as an unchanged success", func() {
			_, changed, err := service.SetStatus(ctx, 1, worker.StatusActive)
			Expect(err).ToNot(HaveOccurred())
			Expect(changed).To(BeFalse())
			Expect(publisher.types()).To(BeEmpty())
		})

		It("should refuse transitions out of a steady state", func() {
			_, _, err := service.SetStatus(ctx, 1, worker.StatusPending)
			Expect(errors.Is(err, apperrors.ErrInvalidStatusTransition)).To(BeTrue())

			w, _ := service.Get(ctx, 1)
			Expect(w.Status).To(Equal(worker.StatusActive))
		})

		It("should refuse an unknown status", func() {
			_, _, err := service.SetStatus(ctx, 4, worker.Status("Fired"))
			Expect(errors.Is(err, apperrors.ErrInvalidWorkerStatus)).To(BeTrue())
		})

		It("should return not found for a missing id", func() {
			_, _, err := service.SetStatus(ctx, 99, worker.StatusActive)
			Expect(errors.Is(err, apperrors.ErrWorkerNotFound)).To(BeTrue())
		})

		It("should surface repository failures", func() {
			failing := &failingRepository{Repository: repo, failUpdate: true, failError: errors.New("database error")}
			svc := worker.NewService(failing, publisher, slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})))

			_, _, err := svc.SetStatus(ctx, 4, worker.StatusActive)
			Expect(err).To(MatchError("database error"))
			Expect(publisher.types()).To(BeEmpty())
		})
	})

	Describe("Add", func() {
		It("should create an active worker with the next id at the front", func() {
			w, err := service.Add(ctx, worker.AddWorkerDTO{FirstName: "Jane", LastName: "Roe", Role: "Tech"})
			Expect(err).ToNot(HaveOccurred())
			Expect(w.ID).To(Equal(int64(6)))
			Expect(w.Name).To(Equal("Jane Roe"))
			Expect(w.Role).To(Equal("Tech"))
			Expect(w.Status).To(Equal(worker.StatusActive))
			Expect(w.Spent).To(BeZero())
			Expect(w.BillsUploaded).To(BeZero())
			Expect(w.Events).To(BeEmpty())
			Expect(w.Email).To(BeEmpty())

			all, _ := service.List(ctx)
			Expect(all[0].ID).To(Equal(int64(6)))
			Expect(publisher.types()).To(Equal([]string{events.EventTypeWorkerAdded}))
		})

		It("should trim whitespace around the name parts", func() {
			w, err := service.Add(ctx, worker.AddWorkerDTO{FirstName: "  Jane ", LastName: " Roe", Role: " Tech "})
			Expect(err).ToNot(HaveOccurred())
			Expect(w.Name).To(Equal("Jane Roe"))
			Expect(w.Role).To(Equal("Tech"))
		})

		It("should only check that required fields are present", func() {
			long := strings.Repeat("a", 250)
			w, err := service.Add(ctx, worker.AddWorkerDTO{FirstName: long, LastName: "Roe", Role: long})
			Expect(err).ToNot(HaveOccurred())
			Expect(w.Role).To(Equal(long))
		})

		It("should assign strictly increasing ids", func() {
			var last int64
			for i := 0; i < 5; i++ {
				w, err := service.Add(ctx, worker.AddWorkerDTO{FirstName: "New", LastName: "Hire", Role: "Tech"})
				Expect(err).ToNot(HaveOccurred())
				Expect(w.ID).To(BeNumerically(">", last))
				last = w.ID
			}
			Expect(last).To(Equal(int64(10)))
		})

		It("should start at id 1 for an empty collection", func() {
			Expect(service.Seed(ctx, nil)).To(Succeed())
			w, err := service.Add(ctx, worker.AddWorkerDTO{FirstName: "First", LastName: "One", Role: "Tech"})
			Expect(err).ToNot(HaveOccurred())
			Expect(w.ID).To(Equal(int64(1)))
		})

		It("should assign distinct ids to concurrent adds", func() {
			var wg sync.WaitGroup
			results := make(chan int64, 20)
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					w, err := service.Add(ctx, worker.AddWorkerDTO{FirstName: "Par", LastName: "Allel", Role: "Tech"})
					Expect(err).ToNot(HaveOccurred())
					results <- w.ID
				}()
			}
			wg.Wait()
			close(results)

			seen := map[int64]bool{}
			for id := range results {
				Expect(seen).ToNot(HaveKey(id))
				seen[id] = true
			}
			Expect(seen).To(HaveLen(20))
		})

		It("should reject whitespace-only required fields and create nothing", func() {
			_, err := service.Add(ctx, worker.AddWorkerDTO{FirstName: "   ", LastName: "Roe", Role: "Tech"})
			Expect(err).To(HaveOccurred())

			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(apperrors.ErrCodeValidationFailed))

			all, _ := service.List(ctx)
			Expect(all).To(HaveLen(5))
			Expect(publisher.types()).To(BeEmpty())
		})

		It("should report every missing field", func() {
			_, err := service.Add(ctx, worker.AddWorkerDTO{})
			appErr, ok := apperrors.IsAppError(err)
			Expect(ok).To(BeTrue())

			details, ok := appErr.Details.(apperrors.ValidationErrors)
			Expect(ok).To(BeTrue())
			fields := []string{}
			for _, e := range details.Errors {
				fields = append(fields, e.Field)
			}
			Expect(fields).To(ConsistOf("first_name", "last_name", "role"))
		})

		It("should surface repository failures", func() {
			failing := &failingRepository{Repository: repo, failMaxID: true, failError: errors.New("database error")}
			svc := worker.NewService(failing, publisher, slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})))

			_, err := svc.Add(ctx, worker.AddWorkerDTO{FirstName: "Jane", LastName: "Roe", Role: "Tech"})
			Expect(err).To(MatchError("database error"))
		})

		It("should still add the worker when publishing fails", func() {
			publisher.shouldFail = true
			w, err := service.Add(ctx, worker.AddWorkerDTO{FirstName: "Jane", LastName: "Roe", Role: "Tech"})
			Expect(err).ToNot(HaveOccurred())
			Expect(w.ID).To(Equal(int64(6)))
		})
	})

	Describe("Delete", func() {
		It("should remove exactly one worker", func() {
			Expect(service.Delete(ctx, 2)).To(Succeed())

			all, _ := service.List(ctx)
			Expect(ids(all)).To(Equal([]int64{4, 5, 1, 3}))
			Expect(publisher.types()).To(Equal([]string{events.EventTypeWorkerDeleted}))
		})

		It("should report not found when deleting twice", func() {
			Expect(service.Delete(ctx, 2)).To(Succeed())
			err := service.Delete(ctx, 2)
			Expect(errors.Is(err, apperrors.ErrWorkerNotFound)).To(BeTrue())

			all, _ := service.List(ctx)
			Expect(all).To(HaveLen(4))
		})
	})

	Describe("Search", func() {
		It("should match names case-insensitively", func() {
			found, err := service.Search(ctx, "JOHN")
			Expect(err).ToNot(HaveOccurred())
			Expect(ids(found)).To(Equal([]int64{1, 3}))
		})

		It("should match the id's digits", func() {
			found, err := service.Search(ctx, "4")
			Expect(err).ToNot(HaveOccurred())
			Expect(ids(found)).To(Equal([]int64{4}))
		})

		It("should return an empty slice when nothing matches", func() {
			found, err := service.Search(ctx, "zzz")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeEmpty())
		})
	})

	Describe("Detail", func() {
		It("should group events by month and scale to the largest cost", func() {
			detail, err := service.Detail(ctx, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(detail.Worker.Name).To(Equal("John Doe"))
			Expect(detail.MonthGroups).To(HaveLen(1))
			Expect(detail.MonthGroups[0].Month).To(Equal("Feb"))
			Expect(detail.MonthGroups[0].Events).To(HaveLen(3))
			Expect(detail.MaxCost).To(Equal(275.0))
		})

		It("should floor the scale for a worker without events", func() {
			detail, err := service.Detail(ctx, 4)
			Expect(err).ToNot(HaveOccurred())
			Expect(detail.MonthGroups).To(BeEmpty())
			Expect(detail.MaxCost).To(Equal(float64(worker.MinGraphScale)))
		})

		It("should return not found for a missing id", func() {
			_, err := service.Detail(ctx, 42)
			Expect(errors.Is(err, apperrors.ErrWorkerNotFound)).To(BeTrue())
		})
	})
})
