package scheduling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetclinic-backend/internal/domain/entity"
)

var (
	branch1 = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	branch2 = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

func appt(date, t string, branchID uuid.UUID, status entity.AppointmentStatus) SlotHolder {
	day, _ := time.Parse(DateFormat, date)
	return &entity.Appointment{
		ID:       uuid.New(),
		BranchID: branchID,
		Date:     day,
		Time:     t,
		Status:   status,
	}
}

func TestSlotGrid(t *testing.T) {
	grid := SlotGrid()

	require.Len(t, grid, 18)
	assert.Equal(t, "09:00", grid[0])
	assert.Equal(t, "09:30", grid[1])
	assert.Equal(t, "17:30", grid[len(grid)-1])

	// 30-minute spacing throughout
	for i := 1; i < len(grid); i++ {
		prev, err := time.Parse(TimeFormat, grid[i-1])
		require.NoError(t, err)
		cur, err := time.Parse(TimeFormat, grid[i])
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, cur.Sub(prev))
	}
}

func TestInGrid(t *testing.T) {
	assert.True(t, InGrid("09:00"))
	assert.True(t, InGrid("17:30"))
	assert.False(t, InGrid("18:00"))
	assert.False(t, InGrid("08:30"))
	assert.False(t, InGrid("10:15"))
}

func TestAvailableSlots_EmptySchedule(t *testing.T) {
	slots := AvailableSlots(nil, "2024-06-01", branch1)
	assert.Equal(t, SlotGrid(), slots)
}

func TestAvailableSlots_NilBranch(t *testing.T) {
	slots := AvailableSlots(nil, "2024-06-01", uuid.Nil)
	assert.Empty(t, slots)
}

func TestAvailableSlots_BlockingStatuses(t *testing.T) {
	tests := []struct {
		status entity.AppointmentStatus
		blocks bool
	}{
		{entity.AppointmentStatusPending, true},
		{entity.AppointmentStatusConfirmed, true},
		{entity.AppointmentStatusCompleted, false},
		{entity.AppointmentStatusCancelled, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			appts := []SlotHolder{appt("2024-06-01", "10:00", branch1, tc.status)}
			slots := AvailableSlots(appts, "2024-06-01", branch1)
			if tc.blocks {
				assert.NotContains(t, slots, "10:00")
				assert.Len(t, slots, 17)
			} else {
				assert.Contains(t, slots, "10:00")
				assert.Len(t, slots, 18)
			}
		})
	}
}

func TestAvailableSlots_OtherDateAndBranchIgnored(t *testing.T) {
	appts := []SlotHolder{
		appt("2024-06-02", "10:00", branch1, entity.AppointmentStatusPending),
		appt("2024-06-01", "11:00", branch2, entity.AppointmentStatusConfirmed),
	}

	slots := AvailableSlots(appts, "2024-06-01", branch1)
	assert.Len(t, slots, 18)
}

func TestAvailableSlots_OrderPreserved(t *testing.T) {
	appts := []SlotHolder{
		appt("2024-06-01", "09:00", branch1, entity.AppointmentStatusPending),
		appt("2024-06-01", "13:30", branch1, entity.AppointmentStatusConfirmed),
	}

	slots := AvailableSlots(appts, "2024-06-01", branch1)
	require.Len(t, slots, 16)
	assert.Equal(t, "09:30", slots[0])

	grid := SlotGrid()
	gi := 0
	for _, slot := range slots {
		for gi < len(grid) && grid[gi] != slot {
			gi++
		}
		require.Less(t, gi, len(grid), "slot %s out of grid order", slot)
	}
}

func TestOccupiedTimes_Idempotent(t *testing.T) {
	appts := []SlotHolder{
		appt("2024-06-01", "10:00", branch1, entity.AppointmentStatusPending),
		appt("2024-06-01", "15:00", branch1, entity.AppointmentStatusConfirmed),
	}

	first := OccupiedTimes(appts, "2024-06-01", branch1)
	second := OccupiedTimes(appts, "2024-06-01", branch1)
	assert.Equal(t, first, second)
	assert.Len(t, first, 2)
}

func TestCancellationRestoresSlot(t *testing.T) {
	booking := &entity.Appointment{
		ID:       uuid.New(),
		BranchID: branch1,
		Date:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:     "10:00",
		Status:   entity.AppointmentStatusPending,
	}
	appts := []SlotHolder{booking}

	slots := AvailableSlots(appts, "2024-06-01", branch1)
	assert.NotContains(t, slots, "10:00")
	assert.Len(t, slots, 17)

	booking.Status = entity.AppointmentStatusCancelled

	slots = AvailableSlots(appts, "2024-06-01", branch1)
	assert.Contains(t, slots, "10:00")
	assert.Len(t, slots, 18)
}

func TestHasAvailability(t *testing.T) {
	// branch1 fully booked, branch2 open
	var appts []SlotHolder
	for _, slot := range SlotGrid() {
		appts = append(appts, appt("2024-06-01", slot, branch1, entity.AppointmentStatusConfirmed))
	}

	assert.False(t, HasAvailability(appts, "2024-06-01", []uuid.UUID{branch1}))
	assert.True(t, HasAvailability(appts, "2024-06-01", []uuid.UUID{branch1, branch2}))
	assert.False(t, HasAvailability(appts, "2024-06-01", nil))
}

func TestSpaAppointmentsShareSlotRules(t *testing.T) {
	spa := &entity.SpaGroomingAppointment{
		ID:          uuid.New(),
		BranchID:    branch1,
		ServiceType: entity.SpaServiceGrooming,
		Date:        time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:        "12:00",
		Status:      entity.AppointmentStatusPending,
	}

	slots := AvailableSlots([]SlotHolder{spa}, "2024-06-01", branch1)
	assert.NotContains(t, slots, "12:00")
	assert.Len(t, slots, 17)
}
