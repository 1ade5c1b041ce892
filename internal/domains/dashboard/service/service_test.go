package service_test

import (
	"context"
	"errors"
	"testing"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	clientMocks "hotel/internal/domains/client/mocks"
	"hotel/internal/domains/dashboard/model/dto"
	"hotel/internal/domains/dashboard/service"
	reservationMocks "hotel/internal/domains/reservation/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	clients      *clientMocks.MockClient
	rooms        *roomMocks.MockRoom
	reservations *reservationMocks.MockReservation
	cache        *cacheMocks.MockRedisCache
	svc          service.Dashboard
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f := fixture{
		clients:      clientMocks.NewMockClient(ctrl),
		rooms:        roomMocks.NewMockRoom(ctrl),
		reservations: reservationMocks.NewMockReservation(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.clients, f.rooms, f.reservations, cfg, f.cache, otelMocks.NewOtel())

	return f
}

func (f fixture) expectCounts() {
	f.clients.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
	f.rooms.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
		if len(filter.Filters) == 0 {
			return 20, nil
		}

		return 7, nil
	}).Times(2)
	f.reservations.EXPECT().Count(gomock.Any(), gomock.Any()).Return(31, nil)
	f.reservations.EXPECT().SumTotal(gomock.Any(), gomock.Any()).Return(10450.5, nil)
}

func TestDashboardService_Stats(t *testing.T) {
	want := dto.StatsResponse{Clients: 12, Rooms: 20, AvailableRooms: 7, Reservations: 31, ConfirmedRevenue: 10450.5}

	t.Run("computed on cache miss", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), "dashboard:stats", gomock.Any()).Return(errors.New("redis: nil"))
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		f.expectCounts()

		res, err := f.svc.Stats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, want, res)
	})

	t.Run("served from cache", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), "dashboard:stats", gomock.Any()).Return(nil)

		_, err := f.svc.Stats(context.Background())
		assert.NoError(t, err)
	})

	t.Run("count failure", func(t *testing.T) {
		f := setup(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		f.clients.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

		_, err := f.svc.Stats(context.Background())
		assert.Error(t, err)
	})
}

func TestDashboardService_Warm(t *testing.T) {
	f := setup(t)

	f.expectCounts()
	f.cache.EXPECT().Save(gomock.Any(), "dashboard:stats", gomock.Any(), 60).Return(nil)

	assert.NoError(t, f.svc.Warm(context.Background()))
}
