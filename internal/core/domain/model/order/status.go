package order

import (
	"fmt"

	"github.com/RomanElektrik/musorok-bot/internal/pkg/errs"
)

// Status represents the lifecycle state of a pickup order.
// It implements a state machine that only moves forward:
//
//	created ──> assigned ──> inProgress ──> completed
//	   │            │             │
//	   └────────────┴─────────────┴──> cancelled
//
// The string values are the persisted representation, matching the order
// document shape.
type Status string

const (
	// StatusCreated is the initial status of a paid order waiting for a courier.
	StatusCreated Status = "created"

	// StatusAssigned indicates a courier has been bound to the order.
	StatusAssigned Status = "assigned"

	// StatusInProgress indicates the courier started working on the order.
	StatusInProgress Status = "inProgress"

	// StatusCompleted indicates the pickup was performed. Terminal.
	StatusCompleted Status = "completed"

	// StatusCancelled indicates the order was abandoned. Terminal.
	StatusCancelled Status = "cancelled"
)

func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusCreated:    {},
		StatusAssigned:   {},
		StatusInProgress: {},
		StatusCompleted:  {},
		StatusCancelled:  {},
	}
}

// Validate checks that the Status holds one of the known values.
// Used when reconstructing orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Assign transitions the status to assigned.
// Only valid from created.
func (s Status) Assign() (Status, error) {
	if s != StatusCreated {
		return "", errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s))
	}

	return StatusAssigned, nil
}

// Start transitions the status to inProgress.
// Only valid from assigned.
func (s Status) Start() (Status, error) {
	if s != StatusAssigned {
		return "", errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to start", s))
	}

	return StatusInProgress, nil
}

// Complete transitions the status to completed.
// Only valid from inProgress.
func (s Status) Complete() (Status, error) {
	if s != StatusInProgress {
		return "", errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s))
	}

	return StatusCompleted, nil
}

// Cancel transitions the status to cancelled.
// Valid from any non-terminal status.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	if s.IsTerminal() {
		return "", errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s))
	}

	return StatusCancelled, nil
}
