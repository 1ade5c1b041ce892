package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	otelMocks "hotel/infras/otel/mocks"
	pgMocks "hotel/infras/postgres/mocks"
	clientMocks "hotel/internal/domains/client/mocks"
	clientDto "hotel/internal/domains/client/model/dto"
	clientSvcMocks "hotel/internal/domains/client/service/mocks"
	"hotel/internal/domains/reservation/mocks"
	"hotel/internal/domains/reservation/model"
	"hotel/internal/domains/reservation/model/dto"
	"hotel/internal/domains/reservation/service"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	userID   = "6f1c8a34-3c8e-4a43-9d1e-8db5a1a3c0f1"
	clientID = "1b0d9f5e-7e43-4d7c-9a6b-2c2f6c1e9a10"
	roomID   = "a3c1f9e2-0b5d-4f2e-8f1a-6d7e9c0b1a22"
)

type fixture struct {
	repo       *mocks.MockReservation
	roomRepo   *roomMocks.MockRoom
	clientRepo *clientMocks.MockClient
	client     *clientSvcMocks.MockClient
	db         *pgMocks.MockTransactor
	kafka      *kafkaMocks.MockClient
	svc        service.Reservation
}

func setup(t *testing.T, kafkaEnabled bool) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Kafka.Enable = kafkaEnabled
	cfg.Kafka.Topics.Reservation = "hotel.reservations"

	cache := cacheMocks.NewMockRedisCache(ctrl)
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil")).AnyTimes()

	f := fixture{
		repo:       mocks.NewMockReservation(ctrl),
		roomRepo:   roomMocks.NewMockRoom(ctrl),
		clientRepo: clientMocks.NewMockClient(ctrl),
		client:     clientSvcMocks.NewMockClient(ctrl),
		db:         pgMocks.NewMockTransactor(ctrl),
		kafka:      kafkaMocks.NewMockClient(ctrl),
	}

	f.svc = service.New(f.repo, f.roomRepo, f.clientRepo, f.client, f.db, f.kafka, cfg, cache, otelMocks.NewOtel())

	return f
}

func userContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserEmail, "ana@example.com")
}

func runTx(f fixture) {
	f.db.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
		return fn(nil)
	})
}

func availableRoom() roomModel.Room {
	return roomModel.Room{ID: roomID, Number: "204", Type: "Deluxe", Capacity: 2, Rate: 100, Available: true}
}

func bookRequest() dto.BookRequest {
	return dto.BookRequest{RoomID: roomID, StartDate: "2026-03-10", EndDate: "2026-03-13", PartySize: 2}
}

func TestReservationService_Book(t *testing.T) {
	t.Run("success publishes the confirmation", func(t *testing.T) {
		f := setup(t, true)

		published := make(chan kafka.Message, 1)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		f.client.EXPECT().Ensure(gomock.Any(), userID, "ana@example.com").
			Return(clientDto.ClientResponse{ID: clientID, Name: "Ana", LoyaltyPoints: 500}, nil)
		runTx(f)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, r model.Reservation) error {
			assert.Equal(t, clientID, r.ClientID)
			assert.Equal(t, model.StatusConfirmed, r.Status)
			assert.InDelta(t, 270.0, r.TotalAmount, 0.001)
			assert.InDelta(t, 30.0, r.DiscountApplied, 0.001)

			return nil
		})
		f.clientRepo.EXPECT().AddPointsTx(gomock.Any(), gomock.Any(), clientID, 270, userID).Return(nil)
		f.roomRepo.EXPECT().ReserveTx(gomock.Any(), gomock.Any(), roomID, userID).Return(true, nil)
		f.kafka.EXPECT().SendMessages(gomock.Any(), "hotel.reservations", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				published <- messages[0]

				return nil
			})

		res, err := f.svc.Book(userContext(), bookRequest())
		assert.NoError(t, err)
		assert.Equal(t, 3, res.Nights)
		assert.Equal(t, "2026-03-10", res.StartDate)
		assert.Equal(t, 270, res.PointsEarned)
		assert.Equal(t, "204", *res.RoomNumber)

		select {
		case msg := <-published:
			event, ok := msg.Value.(dto.ConfirmedEvent)
			assert.True(t, ok)
			assert.Equal(t, res.ID, msg.Key)
			assert.Equal(t, model.EventConfirmed, event.Type)
			assert.Equal(t, userID, event.UserID)
		case <-time.After(time.Second):
			t.Fatal("confirmation was not published")
		}
	})

	t.Run("room already taken", func(t *testing.T) {
		f := setup(t, false)

		room := availableRoom()
		room.Available = false

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)

		_, err := f.svc.Book(userContext(), bookRequest())
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("unknown room", func(t *testing.T) {
		f := setup(t, false)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		_, err := f.svc.Book(userContext(), bookRequest())
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("party larger than the room", func(t *testing.T) {
		f := setup(t, false)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)

		req := bookRequest()
		req.PartySize = 3

		_, err := f.svc.Book(userContext(), req)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("end date not after start date", func(t *testing.T) {
		f := setup(t, false)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		f.client.EXPECT().Ensure(gomock.Any(), gomock.Any(), gomock.Any()).Return(clientDto.ClientResponse{ID: clientID}, nil)

		req := bookRequest()
		req.EndDate = req.StartDate

		_, err := f.svc.Book(userContext(), req)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("malformed date", func(t *testing.T) {
		f := setup(t, false)

		req := bookRequest()
		req.StartDate = "10/03/2026"

		_, err := f.svc.Book(userContext(), req)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("room taken inside the transaction", func(t *testing.T) {
		f := setup(t, true)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		f.client.EXPECT().Ensure(gomock.Any(), gomock.Any(), gomock.Any()).Return(clientDto.ClientResponse{ID: clientID}, nil)
		runTx(f)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.clientRepo.EXPECT().AddPointsTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.roomRepo.EXPECT().ReserveTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Book(userContext(), bookRequest())
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("insert failure aborts the booking", func(t *testing.T) {
		f := setup(t, true)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		f.client.EXPECT().Ensure(gomock.Any(), gomock.Any(), gomock.Any()).Return(clientDto.ClientResponse{ID: clientID}, nil)
		runTx(f)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := f.svc.Book(userContext(), bookRequest())
		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestReservationService_Quote(t *testing.T) {
	tests := []struct {
		name      string
		endDate   string
		wantTotal float64
		wantPct   int
	}{
		{name: "three nights with silver discount", endDate: "2026-03-13", wantTotal: 285, wantPct: 5},
		{name: "empty range", endDate: "2026-03-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t, false)

			f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
			f.client.EXPECT().Ensure(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(clientDto.ClientResponse{ID: clientID, LoyaltyPoints: 300}, nil)

			res, err := f.svc.Quote(userContext(), dto.QuoteRequest{RoomID: roomID, StartDate: "2026-03-10", EndDate: tt.endDate})
			assert.NoError(t, err)
			assert.InDelta(t, tt.wantTotal, res.Total, 0.001)
			assert.Equal(t, tt.wantPct, res.DiscountPct)
			assert.Equal(t, 300, res.LoyaltyPoints)
		})
	}
}

func TestReservationService_Create(t *testing.T) {
	req := dto.CreateReservationRequest{
		ClientID:    clientID,
		RoomID:      roomID,
		StartDate:   "2026-03-10",
		EndDate:     "2026-03-12",
		PartySize:   1,
		TotalAmount: 150,
	}

	t.Run("stored as given", func(t *testing.T) {
		f := setup(t, false)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r model.Reservation) error {
			assert.InDelta(t, 150.0, r.TotalAmount, 0.001)
			assert.Equal(t, model.StatusConfirmed, r.Status)

			return nil
		})

		res, err := f.svc.Create(context.Background(), req)
		assert.NoError(t, err)
		assert.Equal(t, 2, res.Nights)
	})

	t.Run("unknown client or room", func(t *testing.T) {
		f := setup(t, false)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeFkViolation})

		_, err := f.svc.Create(context.Background(), req)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("inverted range", func(t *testing.T) {
		f := setup(t, false)

		inverted := req
		inverted.EndDate = "2026-03-01"

		_, err := f.svc.Create(context.Background(), inverted)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestReservationService_Update(t *testing.T) {
	current := model.Reservation{
		ID:        "res-1",
		StartDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
	}

	t.Run("new end date keeps the stay valid", func(t *testing.T) {
		f := setup(t, false)

		end := "2026-03-15"
		status := model.StatusCancelled

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(current, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, &end, fields[model.FieldEndDate])
			assert.Equal(t, &status, fields[model.FieldStatus])
			assert.NotContains(t, fields, model.FieldStartDate)

			return nil
		})

		err := f.svc.Update(context.Background(), dto.UpdateReservationRequest{EndDate: &end, Status: &status}, "res-1")
		assert.NoError(t, err)
	})

	t.Run("start moved past the end", func(t *testing.T) {
		f := setup(t, false)

		start := "2026-03-20"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(current, nil)

		err := f.svc.Update(context.Background(), dto.UpdateReservationRequest{StartDate: &start}, "res-1")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := setup(t, false)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)

		err := f.svc.Update(context.Background(), dto.UpdateReservationRequest{}, "res-1")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("unknown client or room", func(t *testing.T) {
		f := setup(t, false)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(current, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeFkViolation})

		err := f.svc.Update(context.Background(), dto.UpdateReservationRequest{}, "res-1")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.EqualError(t, err, "client or room does not exist")
	})

	t.Run("database failure", func(t *testing.T) {
		f := setup(t, false)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(current, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		err := f.svc.Update(context.Background(), dto.UpdateReservationRequest{}, "res-1")
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestReservationService_Delete(t *testing.T) {
	f := setup(t, false)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := f.svc.Delete(context.Background(), "res-1")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
