package reservation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/reservation/model/dto"
	"hotel/internal/domains/reservation/service/mocks"
	"hotel/internal/handlers/reservation"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const roomID = "a3c1f9e2-0b5d-4f2e-8f1a-6d7e9c0b1a22"

func newRouter(t *testing.T) (*mocks.MockReservation, http.Handler) {
	t.Helper()

	svc := mocks.NewMockReservation(gomock.NewController(t))
	handler := reservation.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestBook(t *testing.T) {
	body := `{"room_id":"` + roomID + `","start_date":"2025-03-01","end_date":"2025-03-04","party_size":2}`

	t.Run("created", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Book(gomock.Any(), dto.BookRequest{
			RoomID:    roomID,
			StartDate: "2025-03-01",
			EndDate:   "2025-03-04",
			PartySize: 2,
		}).Return(dto.ReservationResponse{ID: "r-1", RoomID: roomID, TotalAmount: 270}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reservations/book", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)

		var res struct {
			Data dto.ReservationResponse `json:"data"`
		}

		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, "r-1", res.Data.ID)
		assert.InDelta(t, 270, res.Data.TotalAmount, 0.001)
	})

	t.Run("room taken", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Book(gomock.Any(), gomock.Any()).Return(dto.ReservationResponse{}, failure.Conflict("room is not available"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reservations/book", strings.NewReader(body)))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "room is not available")
	})

	t.Run("invalid body", func(t *testing.T) {
		_, router := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reservations/book",
			strings.NewReader(`{"room_id":"not-a-uuid","start_date":"2025-03-01","end_date":"2025-03-04","party_size":0}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, router := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/reservations/book", strings.NewReader(`{`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetReservations(t *testing.T) {
	t.Run("filters and sorting", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error) {
				assert.Equal(t, "reservations.start_date", params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)
				assert.Len(t, filter.Filters, 1)

				return dto.GetReservationsResponse{TotalData: 1, TotalPage: 1}, nil
			})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reservations/?sort_by=start_date&sort_dir=asc&status=confirmed", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown sort column", func(t *testing.T) {
		_, router := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reservations/?sort_by=password", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, router := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reservations/?status=archived", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteReservation(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), "r-9").Return(failure.NotFound("reservation not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/reservations/r-9", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
