package availability

import (
	"sort"

	"trimly/models"
)

// MergeSlots combines per-employee slot lists for one day into a single list
// for "any professional" mode. Slots are grouped by their time label; each
// distinct time appears once, annotated with the union of employees who offer
// it, in order of first appearance.
//
// Output order is insertion order of first occurrence across the inputs, not
// chronological. Callers that need chronological order must apply SortSlots.
func MergeSlots(lists ...[]models.Slot) []models.Slot {
	var merged []models.Slot
	index := make(map[string]int)

	for _, list := range lists {
		for _, slot := range list {
			key := slot.Time.String()
			at, seen := index[key]
			if !seen {
				index[key] = len(merged)
				merged = append(merged, models.Slot{Time: slot.Time})
				at = len(merged) - 1
			}
			for _, id := range slot.EmployeeIDs {
				if !merged[at].HasEmployee(id) {
					merged[at].EmployeeIDs = append(merged[at].EmployeeIDs, id)
				}
			}
		}
	}
	return merged
}

// SortSlots orders slots chronologically by minute of day, in place.
func SortSlots(slots []models.Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Time < slots[j].Time
	})
}
