package appointmentOptions

import (
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ComputeAvailability returns a copy of options where every option's slots
// exclude the slots of bookings made for that treatment on date. Slot order is
// preserved and an option with nothing left keeps an empty, non-nil list.
// An empty date matches no booking.
func ComputeAvailability(date string, options []models.AppointmentOption, bookings []models.Booking) []models.AppointmentOption {
	booked := make(map[string]map[string]struct{})
	if date != "" {
		for _, booking := range bookings {
			if booking.AppointmentDate != date {
				continue
			}
			slots, ok := booked[booking.Treatment]
			if !ok {
				slots = make(map[string]struct{})
				booked[booking.Treatment] = slots
			}
			slots[booking.Slot] = struct{}{}
		}
	}

	result := make([]models.AppointmentOption, 0, len(options))
	for _, option := range options {
		taken := booked[option.Name]
		remaining := make([]string, 0, len(option.Slots))
		for _, slot := range option.Slots {
			if _, ok := taken[slot]; ok {
				continue
			}
			remaining = append(remaining, slot)
		}
		result = append(result, models.AppointmentOption{
			ID:    option.ID,
			Name:  option.Name,
			Slots: remaining,
		})
	}
	return result
}

// BuildAvailabilityPipeline computes the same result as ComputeAvailability
// inside MongoDB. $setDifference has set semantics so the order of the
// remaining slots is not guaranteed.
func BuildAvailabilityPipeline(date string) mongo.Pipeline {
	if date == "" {
		return mongo.Pipeline{
			{{Key: "$project", Value: bson.D{
				{Key: "name", Value: 1},
				{Key: "slots", Value: 1},
			}}},
		}
	}

	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: constvars.MongoCollectionBookings},
			{Key: "localField", Value: "name"},
			{Key: "foreignField", Value: "treatment"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{
						{Key: "$eq", Value: bson.A{"$appointmentDate", bson.D{{Key: "$literal", Value: date}}}},
					}},
				}}},
			}},
			{Key: "as", Value: "booked"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "slots", Value: 1},
			{Key: "booked", Value: bson.D{{Key: "$map", Value: bson.D{
				{Key: "input", Value: "$booked"},
				{Key: "as", Value: "book"},
				{Key: "in", Value: "$$book.slot"},
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "slots", Value: bson.D{{Key: "$setDifference", Value: bson.A{"$slots", "$booked"}}}},
		}}},
	}
}
