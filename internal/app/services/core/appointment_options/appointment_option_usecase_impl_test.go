package appointmentOptions

import (
	"context"
	"errors"
	"testing"

	"doctors-portal-service/internal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAppointmentOptionRepository struct {
	mock.Mock
}

func (m *MockAppointmentOptionRepository) FindAll(ctx context.Context) ([]models.AppointmentOption, error) {
	args := m.Called(ctx)
	options, _ := args.Get(0).([]models.AppointmentOption)
	return options, args.Error(1)
}

func (m *MockAppointmentOptionRepository) FindByName(ctx context.Context, name string) (*models.AppointmentOption, error) {
	args := m.Called(ctx, name)
	option, _ := args.Get(0).(*models.AppointmentOption)
	return option, args.Error(1)
}

func (m *MockAppointmentOptionRepository) FindSpecialities(ctx context.Context) ([]models.Speciality, error) {
	args := m.Called(ctx)
	specialities, _ := args.Get(0).([]models.Speciality)
	return specialities, args.Error(1)
}

func (m *MockAppointmentOptionRepository) AggregateAvailability(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	args := m.Called(ctx, date)
	options, _ := args.Get(0).([]models.AppointmentOption)
	return options, args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	args := m.Called(ctx, date)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *MockBookingRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	args := m.Called(ctx, email)
	bookings, _ := args.Get(0).([]models.Booking)
	return bookings, args.Error(1)
}

func (m *MockBookingRepository) ExistsForRequester(ctx context.Context, date, email, treatment string) (bool, error) {
	args := m.Called(ctx, date, email, treatment)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) IsSlotTaken(ctx context.Context, date, treatment, slot string) (bool, error) {
	args := m.Called(ctx, date, treatment, slot)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

func TestGetAvailableOptions(t *testing.T) {
	catalog := []models.AppointmentOption{
		{ID: "1", Name: "Dental", Slots: []string{"9am", "10am"}},
		{ID: "2", Name: "Eye", Slots: []string{"9am"}},
	}

	t.Run("subtracts bookings for the date", func(t *testing.T) {
		optionRepo := new(MockAppointmentOptionRepository)
		bookingRepo := new(MockBookingRepository)
		optionRepo.On("FindAll", mock.Anything).Return(catalog, nil)
		bookingRepo.On("FindByDate", mock.Anything, "2023-01-01").Return([]models.Booking{
			{Treatment: "Dental", AppointmentDate: "2023-01-01", Slot: "9am"},
		}, nil)

		uc := NewAppointmentOptionUsecase(optionRepo, bookingRepo, nil, zap.NewNop())
		got, err := uc.GetAvailableOptions(context.Background(), "2023-01-01")
		require.NoError(t, err)

		assert.Equal(t, []string{"10am"}, got[0].Slots)
		assert.Equal(t, []string{"9am"}, got[1].Slots)
		optionRepo.AssertExpectations(t)
		bookingRepo.AssertExpectations(t)
	})

	t.Run("empty date does not query bookings", func(t *testing.T) {
		optionRepo := new(MockAppointmentOptionRepository)
		bookingRepo := new(MockBookingRepository)
		optionRepo.On("FindAll", mock.Anything).Return(catalog, nil)

		uc := NewAppointmentOptionUsecase(optionRepo, bookingRepo, nil, zap.NewNop())
		got, err := uc.GetAvailableOptions(context.Background(), "")
		require.NoError(t, err)

		assert.Equal(t, catalog, got)
		bookingRepo.AssertNotCalled(t, "FindByDate", mock.Anything, mock.Anything)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		optionRepo := new(MockAppointmentOptionRepository)
		bookingRepo := new(MockBookingRepository)
		optionRepo.On("FindAll", mock.Anything).Return(nil, errors.New("connection refused"))

		uc := NewAppointmentOptionUsecase(optionRepo, bookingRepo, nil, zap.NewNop())
		_, err := uc.GetAvailableOptions(context.Background(), "2023-01-01")
		assert.Error(t, err)
	})
}

func TestGetAvailableOptionsByPipeline(t *testing.T) {
	optionRepo := new(MockAppointmentOptionRepository)
	expected := []models.AppointmentOption{{Name: "Dental", Slots: []string{"10am"}}}
	optionRepo.On("AggregateAvailability", mock.Anything, "2023-01-01").Return(expected, nil)

	uc := NewAppointmentOptionUsecase(optionRepo, new(MockBookingRepository), nil, zap.NewNop())
	got, err := uc.GetAvailableOptionsByPipeline(context.Background(), "2023-01-01")
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestGetSpecialities(t *testing.T) {
	optionRepo := new(MockAppointmentOptionRepository)
	optionRepo.On("FindSpecialities", mock.Anything).Return([]models.Speciality{{ID: "1", Name: "Dental"}}, nil)

	uc := NewAppointmentOptionUsecase(optionRepo, new(MockBookingRepository), nil, zap.NewNop())
	got, err := uc.GetSpecialities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Dental", got[0].Name)
}
