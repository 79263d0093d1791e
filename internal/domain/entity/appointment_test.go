package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidAppointmentStatus(t *testing.T) {
	assert.True(t, ValidAppointmentStatus(AppointmentStatusPending))
	assert.True(t, ValidAppointmentStatus(AppointmentStatusConfirmed))
	assert.True(t, ValidAppointmentStatus(AppointmentStatusCompleted))
	assert.True(t, ValidAppointmentStatus(AppointmentStatusCancelled))
	assert.False(t, ValidAppointmentStatus("rescheduled"))
	assert.False(t, ValidAppointmentStatus(""))
}

func TestAppointmentBlocksSlot(t *testing.T) {
	cases := []struct {
		status AppointmentStatus
		blocks bool
	}{
		{AppointmentStatusPending, true},
		{AppointmentStatusConfirmed, true},
		{AppointmentStatusCompleted, false},
		{AppointmentStatusCancelled, false},
	}

	for _, tc := range cases {
		a := &Appointment{Status: tc.status}
		assert.Equal(t, tc.blocks, a.BlocksSlot(), "status %s", tc.status)
	}
}

func TestAppointmentSlotAccessors(t *testing.T) {
	branchID := uuid.New()
	day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	a := &Appointment{BranchID: branchID, Date: day, Time: "10:30"}

	assert.Equal(t, "2024-06-15", a.SlotDate())
	assert.Equal(t, "10:30", a.SlotTime())
	assert.Equal(t, branchID, a.SlotBranchID())
}

func TestAppointmentApply(t *testing.T) {
	vetID := uuid.New()
	newDate := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	newTime := "14:00"
	newStatus := AppointmentStatusConfirmed
	notes := "bring vaccination card"

	a := &Appointment{
		Date:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		Time:   "10:30",
		Reason: "annual checkup",
		Status: AppointmentStatusPending,
	}

	a.Apply(AppointmentPatch{
		VeterinarianID: &vetID,
		Date:           &newDate,
		Time:           &newTime,
		Status:         &newStatus,
		Notes:          &notes,
	})

	assert.Equal(t, &vetID, a.VeterinarianID)
	assert.Equal(t, newDate, a.Date)
	assert.Equal(t, "14:00", a.Time)
	assert.Equal(t, AppointmentStatusConfirmed, a.Status)
	assert.Equal(t, notes, a.Notes)
	// untouched fields survive
	assert.Equal(t, "annual checkup", a.Reason)
}

func TestAppointmentApplyEmptyPatch(t *testing.T) {
	a := &Appointment{
		Time:   "10:30",
		Reason: "annual checkup",
		Status: AppointmentStatusPending,
	}

	a.Apply(AppointmentPatch{})

	assert.Equal(t, "10:30", a.Time)
	assert.Equal(t, "annual checkup", a.Reason)
	assert.Equal(t, AppointmentStatusPending, a.Status)
	assert.Nil(t, a.VeterinarianID)
}

func TestAppointmentIsCancelled(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusCancelled}
	assert.True(t, a.IsCancelled())

	a.Status = AppointmentStatusPending
	assert.False(t, a.IsCancelled())
}

func TestSpaServiceType(t *testing.T) {
	assert.True(t, ValidSpaServiceType(SpaServiceSpa))
	assert.True(t, ValidSpaServiceType(SpaServiceGrooming))
	assert.False(t, ValidSpaServiceType("massage"))

	assert.Equal(t, ServiceSpa, SpaServiceSpa.BranchService())
	assert.Equal(t, ServiceGrooming, SpaServiceGrooming.BranchService())
}
