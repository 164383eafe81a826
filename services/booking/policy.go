package booking

import (
	"fmt"

	"trimly/models"
)

// AssignmentPolicy decides which staff member fulfills a slot booked in "any
// professional" mode. The decision is made at time-pick, not deferred to the
// appointment store.
type AssignmentPolicy interface {
	Resolve(slot models.Slot) (string, error)
}

// FirstAvailable assigns the first employee listed on the slot. It is the
// default policy; alternatives (e.g. load-balanced assignment) can be swapped
// in without touching the selection state machine.
type FirstAvailable struct{}

func (FirstAvailable) Resolve(slot models.Slot) (string, error) {
	if len(slot.EmployeeIDs) == 0 {
		return "", fmt.Errorf("slot %s has no eligible employees", slot.Time)
	}
	return slot.EmployeeIDs[0], nil
}
