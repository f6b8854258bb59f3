package booking

import "github.com/google/uuid"

// Slot is an existing booking's occupation of a space.
type Slot struct {
	BookingID uuid.UUID
	Interval  Interval
	Status    Status
}

// FindConflict returns the first slot that holds its window and overlaps candidate.
// The slot with id exclude is skipped; pass uuid.Nil when creating.
func FindConflict(candidate Interval, existing []Slot, exclude uuid.UUID) (Slot, bool) {
	for _, s := range existing {
		if exclude != uuid.Nil && s.BookingID == exclude {
			continue
		}
		if !s.Status.HoldsSlot() {
			continue
		}
		if candidate.Overlaps(s.Interval) {
			return s, true
		}
	}
	return Slot{}, false
}

func EnsureNoConflict(candidate Interval, existing []Slot, exclude uuid.UUID) error {
	if _, found := FindConflict(candidate, existing, exclude); found {
		return ErrConflict
	}
	return nil
}
