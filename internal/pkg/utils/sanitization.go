package utils

import (
	"doctors-portal-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SanitizeCreateBookingRequest trims the booking keys. Date, treatment and slot
// keep their case because they are matched exactly against the catalog.
func SanitizeCreateBookingRequest(input *requests.CreateBooking) {
	input.AppointmentDate = strings.TrimSpace(input.AppointmentDate)
	input.Treatment = strings.TrimSpace(input.Treatment)
	input.Slot = strings.TrimSpace(input.Slot)
	input.Email = SanitizeEmail(input.Email)
	input.Patient = strings.TrimSpace(input.Patient)
	input.Phone = strings.TrimSpace(input.Phone)
}

func SanitizeCreateUserRequest(input *requests.CreateUser) {
	input.Email = SanitizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
}

func SanitizeCreateDoctorRequest(input *requests.CreateDoctor) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = SanitizeEmail(input.Email)
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.Image = strings.TrimSpace(input.Image)
}
