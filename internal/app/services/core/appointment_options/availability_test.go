package appointmentOptions

import (
	"testing"

	"doctors-portal-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeAvailability(t *testing.T) {
	options := []models.AppointmentOption{{Name: "Dental", Slots: []string{"9am", "10am"}}}
	bookings := []models.Booking{{Treatment: "Dental", AppointmentDate: "2023-01-01", Slot: "9am"}}

	t.Run("booked slot removed on its date", func(t *testing.T) {
		got := ComputeAvailability("2023-01-01", options, bookings)
		assert.Equal(t, []models.AppointmentOption{{Name: "Dental", Slots: []string{"10am"}}}, got)
	})

	t.Run("other date keeps every slot", func(t *testing.T) {
		got := ComputeAvailability("2023-01-02", options, bookings)
		assert.Equal(t, []models.AppointmentOption{{Name: "Dental", Slots: []string{"9am", "10am"}}}, got)
	})

	t.Run("empty date matches no booking", func(t *testing.T) {
		undated := append(bookings, models.Booking{Treatment: "Dental", Slot: "10am"})
		got := ComputeAvailability("", options, undated)
		assert.Equal(t, []string{"9am", "10am"}, got[0].Slots)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		ComputeAvailability("2023-01-01", options, bookings)
		assert.Equal(t, []string{"9am", "10am"}, options[0].Slots)
	})
}

func TestComputeAvailabilityFullyBookedOptionKeepsEmptySlots(t *testing.T) {
	options := []models.AppointmentOption{
		{ID: "a", Name: "Cavity Protection", Slots: []string{"08.00 AM - 08.30 AM"}},
		{ID: "b", Name: "Teeth Cleaning", Slots: []string{"08.00 AM - 08.30 AM", "09.00 AM - 09.30 AM"}},
	}
	bookings := []models.Booking{
		{Treatment: "Cavity Protection", AppointmentDate: "Oct 15, 2026", Slot: "08.00 AM - 08.30 AM"},
		{Treatment: "Teeth Cleaning", AppointmentDate: "Oct 16, 2026", Slot: "08.00 AM - 08.30 AM"},
	}

	got := ComputeAvailability("Oct 15, 2026", options, bookings)

	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.NotNil(t, got[0].Slots)
	assert.Empty(t, got[0].Slots)
	assert.Equal(t, options[1].Slots, got[1].Slots)
}

func TestComputeAvailabilityPreservesOrder(t *testing.T) {
	options := []models.AppointmentOption{
		{Name: "Z", Slots: []string{"c", "a", "b", "d"}},
		{Name: "A", Slots: []string{"x"}},
	}
	bookings := []models.Booking{{Treatment: "Z", AppointmentDate: "d1", Slot: "a"}}

	got := ComputeAvailability("d1", options, bookings)

	assert.Equal(t, "Z", got[0].Name)
	assert.Equal(t, "A", got[1].Name)
	assert.Equal(t, []string{"c", "b", "d"}, got[0].Slots)
}

func TestComputeAvailabilityIsIdempotent(t *testing.T) {
	options := []models.AppointmentOption{{Name: "Dental", Slots: []string{"9am", "10am", "11am"}}}
	bookings := []models.Booking{
		{Treatment: "Dental", AppointmentDate: "d", Slot: "10am"},
		{Treatment: "Dental", AppointmentDate: "d", Slot: "10am"},
	}

	first := ComputeAvailability("d", options, bookings)
	second := ComputeAvailability("d", options, bookings)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"9am", "11am"}, first[0].Slots)
}

func TestComputeAvailabilityEmptyCatalog(t *testing.T) {
	got := ComputeAvailability("d", nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBuildAvailabilityPipeline(t *testing.T) {
	t.Run("dated pipeline looks up bookings", func(t *testing.T) {
		pipeline := BuildAvailabilityPipeline("Oct 15, 2026")
		assert.Len(t, pipeline, 3)
		assert.Equal(t, "$lookup", pipeline[0][0].Key)
		assert.Equal(t, "$project", pipeline[1][0].Key)
		assert.Equal(t, "$project", pipeline[2][0].Key)
	})

	t.Run("empty date skips the lookup", func(t *testing.T) {
		pipeline := BuildAvailabilityPipeline("")
		assert.Len(t, pipeline, 1)
		assert.Equal(t, "$project", pipeline[0][0].Key)
	})
}
