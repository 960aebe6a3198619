package worker

import (
	errors "github.com/frahmantamala/manager-dashboard/internal"
)

// Status drives which section of the workers page a worker appears in.
type Status string

const (
	StatusActive   Status = "Active"
	StatusOnLeave  Status = "On Leave"
	StatusPending  Status = "Pending"
	StatusRejected Status = "Rejected"
)

var allStatuses = []Status{StatusActive, StatusOnLeave, StatusPending, StatusRejected}

// transitions lists every modeled status change. Active and On Leave are
// steady states entered only through seeding or creation; Rejected is terminal.
var transitions = map[Status][]Status{
	StatusPending: {StatusActive, StatusRejected},
}

func ParseStatus(s string) (Status, error) {
	for _, st := range allStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", errors.ErrInvalidWorkerStatus
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

// CanTransitionTo reports whether s may change to target. Staying put is
// always allowed.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
