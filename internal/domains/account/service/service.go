package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/internal/domains/account/model/dto"
	clientService "hotel/internal/domains/client/service"
	reservationModel "hotel/internal/domains/reservation/model"
	reservationRepo "hotel/internal/domains/reservation/repository"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Account interface {
	Get(ctx context.Context) (dto.AccountResponse, error)
}

type serviceImpl struct {
	client       clientService.Client
	reservations reservationRepo.Reservation
	otel         otel.Otel
}

func New(client clientService.Client, reservations reservationRepo.Reservation, otel otel.Otel) Account {
	return &serviceImpl{
		client:       client,
		reservations: reservations,
		otel:         otel,
	}
}

// Get assembles the account page of the calling user.
func (s *serviceImpl) Get(ctx context.Context) (res dto.AccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Account.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	if userID == constant.Empty {
		return res, failure.Unauthorized("missing user") // nolint:wrapcheck
	}

	profile, err := s.client.Ensure(ctx, userID, email)
	if err != nil {
		return res, fmt.Errorf("failed to get client: %w", err)
	}

	params := gDto.QueryParams{
		SortBy:  reservationModel.TableName + "." + reservationModel.FieldReservedAt,
		SortDir: gDto.SortDirDesc,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    reservationModel.FieldClientID,
				Operator: gDto.FilterOperatorEq,
				Value:    profile.ID,
				Table:    reservationModel.TableName,
			},
		},
	}

	reservations, err := s.reservations.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("client_id", profile.ID).Msg("failed to get client reservations")

		return res, fmt.Errorf("failed to get client reservations: %w", err)
	}

	res.FromModels(email, profile, reservations, timezone.Now())

	return res, nil
}
