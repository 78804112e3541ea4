package routers

import (
	"bytes"
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/delivery/http/controllers"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockBookingUsecase struct {
	mock.Mock
}

func (m *MockBookingUsecase) SubmitBooking(ctx context.Context, request *requests.CreateBooking) (*responses.SubmitBooking, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.SubmitBooking)
	return result, args.Error(1)
}

func (m *MockBookingUsecase) GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	args := m.Called(ctx, email)
	result, _ := args.Get(0).([]models.Booking)
	return result, args.Error(1)
}

func newBookingRouter(bookingUsecase *MockBookingUsecase) *chi.Mux {
	router := chi.NewRouter()
	attachBookingRoutes(router, newTestMiddlewares(newAuthMock(), nil), controllers.NewBookingController(zap.NewNop(), bookingUsecase))
	return router
}

func TestBookingRouter_CreateBooking(t *testing.T) {
	t.Run("Accepted booking keeps extra fields", func(t *testing.T) {
		bookingUsecase := new(MockBookingUsecase)
		bookingUsecase.On("SubmitBooking", mock.Anything, mock.MatchedBy(func(request *requests.CreateBooking) bool {
			return request.Email == "patient@example.com" &&
				request.Treatment == "Teeth Orthodontics" &&
				request.Extra["price"] == float64(25)
		})).Return(&responses.SubmitBooking{Acknowledged: true, InsertedID: "65f0c1"}, nil).Once()

		body := []byte(`{"appointmentDate":"Oct 15, 2026","treatment":" Teeth Orthodontics ","slot":"08.00 AM - 08.30 AM","email":"Patient@Example.com","price":25}`)
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		newBookingRouter(bookingUsecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var result responses.SubmitBooking
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.True(t, result.Acknowledged)
		assert.Equal(t, "65f0c1", result.InsertedID)
		bookingUsecase.AssertExpectations(t)
	})

	t.Run("Rejected booking is still 200", func(t *testing.T) {
		bookingUsecase := new(MockBookingUsecase)
		bookingUsecase.On("SubmitBooking", mock.Anything, mock.Anything).
			Return(&responses.SubmitBooking{Acknowledged: false, Message: "You already have a booking on Oct 15, 2026"}, nil).Once()

		body := []byte(`{"appointmentDate":"Oct 15, 2026","treatment":"Cavity Protection","slot":"09.00 AM - 09.30 AM","email":"patient@example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		newBookingRouter(bookingUsecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"acknowledged":false`)
		assert.Contains(t, rr.Body.String(), "You already have a booking on Oct 15, 2026")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		bookingUsecase := new(MockBookingUsecase)
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader([]byte(`{"treatment":`)))
		rr := httptest.NewRecorder()
		newBookingRouter(bookingUsecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		bookingUsecase.AssertNotCalled(t, "SubmitBooking", mock.Anything, mock.Anything)
	})

	t.Run("Body over the limit maps to 413", func(t *testing.T) {
		bookingUsecase := new(MockBookingUsecase)
		internalConfig := &config.InternalConfig{App: config.App{RequestBodyLimitInMegabyte: 1}}
		router := chi.NewRouter()
		router.Use(newTestMiddlewares(newAuthMock(), internalConfig).BodyLimit)
		attachBookingRoutes(router, newTestMiddlewares(newAuthMock(), internalConfig), controllers.NewBookingController(zap.NewNop(), bookingUsecase))

		padding := strings.Repeat("a", 2<<20)
		body := []byte(`{"appointmentDate":"Oct 15, 2026","treatment":"Cavity Protection","slot":"09.00 AM - 09.30 AM","email":"patient@example.com","note":"` + padding + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
		assert.Contains(t, rr.Body.String(), "the request body is too large")
		bookingUsecase.AssertNotCalled(t, "SubmitBooking", mock.Anything, mock.Anything)
	})

	t.Run("Missing slot fails validation", func(t *testing.T) {
		bookingUsecase := new(MockBookingUsecase)
		body := []byte(`{"appointmentDate":"Oct 15, 2026","treatment":"Cavity Protection","email":"patient@example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		newBookingRouter(bookingUsecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "slot")
	})

	t.Run("Lock busy maps to 409", func(t *testing.T) {
		bookingUsecase := new(MockBookingUsecase)
		bookingUsecase.On("SubmitBooking", mock.Anything, mock.Anything).Return(nil, exceptions.ErrBookingLockBusy(nil)).Once()

		body := []byte(`{"appointmentDate":"Oct 15, 2026","treatment":"Cavity Protection","slot":"09.00 AM - 09.30 AM","email":"patient@example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		newBookingRouter(bookingUsecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestBookingRouter_GetBookingsByEmail(t *testing.T) {
	t.Run("Missing token", func(t *testing.T) {
		bookingUsecase := new(MockBookingUsecase)
		req := httptest.NewRequest(http.MethodGet, "/bookings?email=patient@example.com", nil)
		rr := httptest.NewRecorder()
		newBookingRouter(bookingUsecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Invalid token", func(t *testing.T) {
		bookingUsecase := new(MockBookingUsecase)
		req := httptest.NewRequest(http.MethodGet, "/bookings?email=patient@example.com", nil)
		req.Header.Set("Authorization", "Bearer forged")
		rr := httptest.NewRecorder()
		newBookingRouter(bookingUsecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Email of someone else", func(t *testing.T) {
		bookingUsecase := new(MockBookingUsecase)
		req := httptest.NewRequest(http.MethodGet, "/bookings?email=other@example.com", nil)
		req.Header.Set("Authorization", "Bearer patient-token")
		rr := httptest.NewRecorder()
		newBookingRouter(bookingUsecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		bookingUsecase.AssertNotCalled(t, "GetBookingsByEmail", mock.Anything, mock.Anything)
	})

	t.Run("Own bookings", func(t *testing.T) {
		bookingUsecase := new(MockBookingUsecase)
		bookingUsecase.On("GetBookingsByEmail", mock.Anything, "patient@example.com").Return([]models.Booking{
			{ID: "b1", AppointmentDate: "Oct 15, 2026", Treatment: "Cavity Protection", Slot: "09.00 AM - 09.30 AM", Email: "patient@example.com"},
		}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/bookings?email=Patient@Example.com", nil)
		req.Header.Set("Authorization", "Bearer patient-token")
		rr := httptest.NewRecorder()
		newBookingRouter(bookingUsecase).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var bookings []map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &bookings))
		require.Len(t, bookings, 1)
		assert.Equal(t, "Cavity Protection", bookings[0]["treatment"])
		bookingUsecase.AssertExpectations(t)
	})
}
