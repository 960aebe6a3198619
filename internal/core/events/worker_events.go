package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeWorkerAdded         = "worker.added"
	EventTypeWorkerStatusChanged = "worker.status_changed"
	EventTypeWorkerDeleted       = "worker.deleted"
)

type WorkerAddedEvent struct {
	BaseEvent
	WorkerID int64  `json:"worker_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

func NewWorkerAddedEvent(workerID int64, name, role, status string) *WorkerAddedEvent {
	return &WorkerAddedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeWorkerAdded,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"worker_id": workerID,
				"name":      name,
				"role":      role,
				"status":    status,
			},
		},
		WorkerID: workerID,
		Name:     name,
		Role:     role,
		Status:   status,
	}
}

type WorkerStatusChangedEvent struct {
	BaseEvent
	WorkerID int64  `json:"worker_id"`
	From     string `json:"from"`
	To       string `json:"to"`
}

func NewWorkerStatusChangedEvent(workerID int64, from, to string) *WorkerStatusChangedEvent {
	return &WorkerStatusChangedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeWorkerStatusChanged,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"worker_id": workerID,
				"from":      from,
				"to":        to,
			},
		},
		WorkerID: workerID,
		From:     from,
		To:       to,
	}
}

type WorkerDeletedEvent struct {
	BaseEvent
	WorkerID int64  `json:"worker_id"`
	Status   string `json:"status"`
}

func NewWorkerDeletedEvent(workerID int64, status string) *WorkerDeletedEvent {
	return &WorkerDeletedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeWorkerDeleted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"worker_id": workerID,
				"status":    status,
			},
		},
		WorkerID: workerID,
		Status:   status,
	}
}
