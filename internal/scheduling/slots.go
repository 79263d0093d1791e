// Package scheduling holds the slot-availability rules shared by clinic and
// spa/grooming appointments: a fixed daily grid of 30-minute slots, occupancy
// derived from non-terminal appointments, and the subtraction of one from the
// other.
package scheduling

import (
	"fmt"

	"github.com/google/uuid"
)

// Daily grid bounds. Slots run from opening up to (not including) closing.
const (
	OpeningHour         = 9
	ClosingHour         = 18
	SlotDurationMinutes = 30

	// TimeFormat is the HH:MM layout used for slot labels
	TimeFormat = "15:04"
	// DateFormat is the YYYY-MM-DD layout used for appointment dates
	DateFormat = "2006-01-02"
)

// SlotHolder is the view of an appointment the availability rules need.
// Both clinic and spa/grooming appointments satisfy it.
type SlotHolder interface {
	SlotDate() string
	SlotTime() string
	SlotBranchID() uuid.UUID
	// BlocksSlot reports whether the appointment claims its slot;
	// cancelled and completed appointments do not.
	BlocksSlot() bool
}

// SlotGrid returns the ordered daily grid of bookable time labels,
// "09:00" through "17:30" in 30-minute steps.
func SlotGrid() []string {
	grid := make([]string, 0, (ClosingHour-OpeningHour)*60/SlotDurationMinutes)
	for hour := OpeningHour; hour < ClosingHour; hour++ {
		for minute := 0; minute < 60; minute += SlotDurationMinutes {
			grid = append(grid, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return grid
}

// InGrid reports whether t is one of the grid's slot labels
func InGrid(t string) bool {
	for _, slot := range SlotGrid() {
		if slot == t {
			return true
		}
	}
	return false
}

// OccupiedTimes returns the set of slot labels claimed on the given date at
// the given branch. Only pending and confirmed appointments block a slot.
// Pure function of its arguments.
func OccupiedTimes(appointments []SlotHolder, date string, branchID uuid.UUID) map[string]bool {
	occupied := make(map[string]bool)
	for _, appt := range appointments {
		if !appt.BlocksSlot() {
			continue
		}
		if appt.SlotDate() != date || appt.SlotBranchID() != branchID {
			continue
		}
		occupied[appt.SlotTime()] = true
	}
	return occupied
}

// AvailableSlots returns the grid minus occupancy for the date and branch,
// grid order preserved. A nil branch id yields no availability.
func AvailableSlots(appointments []SlotHolder, date string, branchID uuid.UUID) []string {
	if branchID == uuid.Nil {
		return []string{}
	}

	occupied := OccupiedTimes(appointments, date, branchID)
	available := make([]string, 0, len(SlotGrid()))
	for _, slot := range SlotGrid() {
		if !occupied[slot] {
			available = append(available, slot)
		}
	}
	return available
}

// HasAvailability reports whether at least one slot is open on the date at
// any of the given branches. Used to disable fully-booked dates in calendar
// pickers. No branches means no availability.
func HasAvailability(appointments []SlotHolder, date string, branchIDs []uuid.UUID) bool {
	for _, branchID := range branchIDs {
		if len(AvailableSlots(appointments, date, branchID)) > 0 {
			return true
		}
	}
	return false
}
