package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	clientRepo "hotel/internal/domains/client/repository"
	"hotel/internal/domains/dashboard/model/dto"
	reservationModel "hotel/internal/domains/reservation/model"
	reservationRepo "hotel/internal/domains/reservation/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheStats = constant.CachePrefixDashboard + "stats"

type Dashboard interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
	Warm(ctx context.Context) error
}

type serviceImpl struct {
	clients      clientRepo.Client
	rooms        roomRepo.Room
	reservations reservationRepo.Reservation
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	clients clientRepo.Client,
	rooms roomRepo.Room,
	reservations reservationRepo.Reservation,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		clients:      clients,
		rooms:        rooms,
		reservations: reservations,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, cacheStats, &res); err == nil {
		log.Debug().Msg("cache hit for dashboard stats")

		return res, nil
	}

	res, err = s.compute(ctx)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheStats, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard stats to cache")
		}
	}()

	return res, nil
}

// Warm recomputes the stats and stores them so the next dashboard read is served from cache.
func (s *serviceImpl) Warm(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard.Warm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err := s.compute(ctx)
	if err != nil {
		return err
	}

	if err = s.cache.Save(ctx, cacheStats, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save dashboard stats to cache")

		return fmt.Errorf("failed to save dashboard stats: %w", err)
	}

	return nil
}

func (s *serviceImpl) compute(ctx context.Context) (res dto.StatsResponse, err error) {
	if res.Clients, err = s.clients.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count clients")

		return res, fmt.Errorf("failed to count clients: %w", err)
	}

	if res.Rooms, err = s.rooms.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	available := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldAvailable,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    roomModel.TableName,
			},
		},
	}

	if res.AvailableRooms, err = s.rooms.Count(ctx, available); err != nil {
		log.Error().Err(err).Msg("failed to count available rooms")

		return res, fmt.Errorf("failed to count available rooms: %w", err)
	}

	if res.Reservations, err = s.reservations.Count(ctx, gDto.FilterGroup{}); err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	confirmed := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    reservationModel.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    reservationModel.StatusConfirmed,
				Table:    reservationModel.TableName,
			},
		},
	}

	if res.ConfirmedRevenue, err = s.reservations.SumTotal(ctx, confirmed); err != nil {
		log.Error().Err(err).Msg("failed to sum confirmed revenue")

		return res, fmt.Errorf("failed to sum confirmed revenue: %w", err)
	}

	return res, nil
}
