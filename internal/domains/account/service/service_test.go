package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/account/service"
	clientDto "hotel/internal/domains/client/model/dto"
	clientSvcMocks "hotel/internal/domains/client/service/mocks"
	reservationMocks "hotel/internal/domains/reservation/mocks"
	"hotel/internal/domains/reservation/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const userID = "6f1c8a34-3c8e-4a43-9d1e-8db5a1a3c0f1"

func userContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserEmail, "ana@example.com")
}

func TestAccountService_Get(t *testing.T) {
	t.Run("history of the calling client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := clientSvcMocks.NewMockClient(ctrl)
		reservations := reservationMocks.NewMockReservation(ctrl)

		client.EXPECT().Ensure(gomock.Any(), userID, "ana@example.com").
			Return(clientDto.ClientResponse{ID: "client-1", Name: "Ana", LoyaltyPoints: 1200}, nil)
		reservations.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Reservation, error) {
				assert.Equal(t, "reservations.reserved_at", params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)
				assert.Zero(t, params.Limit)
				assert.Equal(t, "client-1", filter.Filters[0].(gDto.Filter).Value)

				return []model.Reservation{{ID: "res-1", TotalAmount: 90, DiscountApplied: 10}}, nil
			})

		svc := service.New(client, reservations, otelMocks.NewOtel())

		res, err := svc.Get(userContext())
		assert.NoError(t, err)
		assert.Equal(t, "Gold", res.Tier.Name)
		assert.Equal(t, 1, res.Stats.ReservationCount)
		assert.InDelta(t, 90.0, res.Stats.TotalSpent, 0.001)
		assert.InDelta(t, 10.0, res.Stats.TotalSavings, 0.001)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := service.New(clientSvcMocks.NewMockClient(ctrl), reservationMocks.NewMockReservation(ctrl), otelMocks.NewOtel())

		_, err := svc.Get(context.Background())
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("reservation lookup fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := clientSvcMocks.NewMockClient(ctrl)
		reservations := reservationMocks.NewMockReservation(ctrl)

		client.EXPECT().Ensure(gomock.Any(), gomock.Any(), gomock.Any()).Return(clientDto.ClientResponse{ID: "client-1"}, nil)
		reservations.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		svc := service.New(client, reservations, otelMocks.NewOtel())

		_, err := svc.Get(userContext())
		assert.Error(t, err)
	})
}
