package models

import dErrors "cafepos/pkg/domain-errors"

// Status is the order lifecycle state, stored as its short code.
type Status string

const (
	StatusPending       Status = "P"
	StatusReceived      Status = "R"
	StatusInPreparation Status = "IP"
	StatusFinished      Status = "F"
	StatusCanceled      Status = "C"
)

// transitions lists the allowed next states. Orders only move forward;
// cancellation is reachable from PENDING alone.
var transitions = map[Status][]Status{
	StatusPending:       {StatusReceived, StatusCanceled},
	StatusReceived:      {StatusInPreparation},
	StatusInPreparation: {StatusFinished},
}

// ParseStatus validates a stored or requested status code.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalid, "invalid order status: %q", s)
	}
	return st, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusReceived, StatusInPreparation, StatusFinished, StatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusFinished || s == StatusCanceled
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Label is the human-readable name used in messages and notifications.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusReceived:
		return "RECEIVED"
	case StatusInPreparation:
		return "IN_PREPARATION"
	case StatusFinished:
		return "FINISHED"
	case StatusCanceled:
		return "CANCELED"
	}
	return string(s)
}
