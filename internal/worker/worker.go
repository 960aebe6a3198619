package worker

import (
	workerDatamodel "github.com/frahmantamala/manager-dashboard/internal/core/datamodel/worker"
)

type Worker struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	Spent         float64 `json:"spent"`
	Status        Status  `json:"status"`
	BillsUploaded int     `json:"bills_uploaded"`
	Events        []Event `json:"events"`
}

// Event is an expense line item attached to a worker. Date is a display
// string such as "Feb 10".
type Event struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Date string  `json:"date"`
	Cost float64 `json:"cost"`
}

// NewWorker builds a freshly added worker: Active, nothing spent, no bills
// and no events.
func NewWorker(id int64, dto AddWorkerDTO) *Worker {
	return &Worker{
		ID:            id,
		Name:          dto.FullName(),
		Role:          dto.Role,
		Email:         dto.Email,
		Phone:         dto.Phone,
		Address:       dto.Address,
		Spent:         0,
		Status:        StatusActive,
		BillsUploaded: 0,
		Events:        []Event{},
	}
}

func (w *Worker) IsPending() bool {
	return w.Status.IsPending()
}

// Clone returns a deep copy so callers never share the events slice.
func (w *Worker) Clone() *Worker {
	cp := *w
	cp.Events = make([]Event, len(w.Events))
	copy(cp.Events, w.Events)
	return &cp
}

func ToDataModel(w *Worker, position int64) *workerDatamodel.Worker {
	events := make([]workerDatamodel.WorkerEvent, len(w.Events))
	for i, e := range w.Events {
		events[i] = workerDatamodel.WorkerEvent{
			ID:       e.ID,
			WorkerID: w.ID,
			Seq:      i,
			Name:     e.Name,
			Date:     e.Date,
			Cost:     e.Cost,
		}
	}
	return &workerDatamodel.Worker{
		ID:            w.ID,
		Position:      position,
		Name:          w.Name,
		Role:          w.Role,
		Email:         w.Email,
		Phone:         w.Phone,
		Address:       w.Address,
		Spent:         w.Spent,
		Status:        string(w.Status),
		BillsUploaded: w.BillsUploaded,
		Events:        events,
	}
}

// FromDataModel expects row.Events already sorted by Seq.
func FromDataModel(row *workerDatamodel.Worker) *Worker {
	events := make([]Event, len(row.Events))
	for i, e := range row.Events {
		events[i] = Event{ID: e.ID, Name: e.Name, Date: e.Date, Cost: e.Cost}
	}
	return &Worker{
		ID:            row.ID,
		Name:          row.Name,
		Role:          row.Role,
		Email:         row.Email,
		Phone:         row.Phone,
		Address:       row.Address,
		Spent:         row.Spent,
		Status:        Status(row.Status),
		BillsUploaded: row.BillsUploaded,
		Events:        events,
	}
}

func FromDataModelSlice(rows []*workerDatamodel.Worker) []*Worker {
	result := make([]*Worker, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
