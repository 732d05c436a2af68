package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrGroupInactive rejects membership changes on a deactivated group.
var ErrGroupInactive = errors.New("group is not active")

// CapacityExceededError rejects an enrollment batch that would overflow the
// group. FreeSeats is exactly max_students - current_students at check time;
// no part of the batch is applied.
type CapacityExceededError struct {
	FreeSeats int
	Requested int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity exceeded: %d student(s) requested, only %d seat(s) free", e.Requested, e.FreeSeats)
}

// InvalidCapacityError rejects shrinking max_students below the current
// occupancy.
type InvalidCapacityError struct {
	NewMax          int
	CurrentStudents int
}

func (e *InvalidCapacityError) Error() string {
	return fmt.Sprintf("cannot set capacity to %d: group currently holds %d student(s)", e.NewMax, e.CurrentStudents)
}

// UnknownStudentsError rejects an enrollment batch naming student ids the
// teacher does not own. The whole batch is refused, not silently shrunk.
type UnknownStudentsError struct {
	StudentIDs []uuid.UUID
}

func (e *UnknownStudentsError) Error() string {
	return fmt.Sprintf("unknown student id(s): %d of the requested students do not belong to this teacher", len(e.StudentIDs))
}
