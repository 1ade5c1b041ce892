package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	clientModel "hotel/internal/domains/client/model"
	clientRepo "hotel/internal/domains/client/repository"
	clientService "hotel/internal/domains/client/service"
	"hotel/internal/domains/pricing"
	"hotel/internal/domains/reservation/model"
	"hotel/internal/domains/reservation/model/dto"
	"hotel/internal/domains/reservation/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = model.CachePrefix + "get"
	cacheGetAllReservation = model.CachePrefix + "gets"
	cacheCountReservation  = model.CachePrefix + "count"

	errReservationNotFound = "reservation not found"
	errRoomNotFound        = "room not found"
	errInvalidDates        = "dates must use the YYYY-MM-DD format"
	errInvalidRange        = "end date must be after start date"
	errUnknownParty        = "client or room does not exist"
)

var errRoomTaken = failure.Conflict("room is not available")

type Reservation interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
	Book(ctx context.Context, req dto.BookRequest) (dto.ReservationResponse, error)
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Reservation
	roomRepo   roomRepo.Room
	clientRepo clientRepo.Client
	client     clientService.Client
	db         postgres.Transactor
	kafka      kafka.Client
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Reservation,
	roomRepo roomRepo.Room,
	clientRepo clientRepo.Client,
	client clientService.Client,
	db postgres.Transactor,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		clientRepo: clientRepo,
		client:     client,
		db:         db,
		kafka:      kafka,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// Quote prices a stay for the calling user. An empty date range yields a zero quote.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, end, err := dto.ParseStay(req.StartDate, req.EndDate)
	if err != nil {
		return res, failure.BadRequestFromString(errInvalidDates) // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound(errRoomNotFound) // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	client, err := s.client.Ensure(ctx, userID, email)
	if err != nil {
		return res, fmt.Errorf("failed to get client: %w", err)
	}

	res.RoomID = room.ID
	res.Rate = room.Rate
	res.LoyaltyPoints = client.LoyaltyPoints
	res.Quote = pricing.Calculate(room.Rate, start, end, client.LoyaltyPoints)

	return res, nil
}

// Book confirms a stay for the calling user. The reservation, the points credit and the room
// hold are written in one transaction.
func (s *serviceImpl) Book(ctx context.Context, req dto.BookRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, end, err := dto.ParseStay(req.StartDate, req.EndDate)
	if err != nil {
		return res, failure.BadRequestFromString(errInvalidDates) // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound(errRoomNotFound) // nolint:wrapcheck
	}

	if !room.Available {
		return res, errRoomTaken
	}

	if req.PartySize > room.Capacity {
		return res, failure.BadRequestFromString(fmt.Sprintf("party size cannot exceed %d", room.Capacity)) // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	client, err := s.client.Ensure(ctx, userID, email)
	if err != nil {
		return res, fmt.Errorf("failed to get client: %w", err)
	}

	quote := pricing.Calculate(room.Rate, start, end, client.LoyaltyPoints)
	if quote.IsEmpty() {
		return res, failure.BadRequestFromString(errInvalidRange) // nolint:wrapcheck
	}

	reservation := req.ToModel(client.ID, start, end, quote, userID)

	err = s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, reservation); err != nil {
			return fmt.Errorf("failed to insert reservation: %w", err)
		}

		if err := s.clientRepo.AddPointsTx(ctx, tx, client.ID, quote.PointsEarned, userID); err != nil {
			return fmt.Errorf("failed to credit points: %w", err)
		}

		reserved, err := s.roomRepo.ReserveTx(ctx, tx, room.ID, userID)
		if err != nil {
			return fmt.Errorf("failed to hold room: %w", err)
		}

		if !reserved {
			return errRoomTaken
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, errRoomTaken) {
			log.Warn().Str("room_id", room.ID).Msg("room was booked by another request")

			return res, errRoomTaken
		}

		log.Error().Err(err).Msg("failed to book room")

		return res, fmt.Errorf("failed to book room: %w", err)
	}

	reservation.ClientName = &client.Name
	reservation.RoomNumber = &room.Number
	reservation.RoomType = &room.Type

	res.FromModel(reservation)

	s.publishConfirmed(ctx, reservation, userID)
	s.invalidateAfterBooking(ctx)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequestFromString(errInvalidDates) // nolint:wrapcheck
	}

	if pricing.Nights(reservation.StartDate, reservation.EndDate) == 0 {
		return res, failure.BadRequestFromString(errInvalidRange) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		if shared.IsPqErrorCode(err, constant.PqErrorCodeFkViolation) {
			return res, failure.BadRequestFromString(errUnknownParty) // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	res.FromModel(reservation)

	s.invalidateLists(ctx)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, gDto.QueryParams{}, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound(errReservationNotFound) // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter, model.FieldID, model.FieldStartDate, model.FieldEndDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound(errReservationNotFound) // nolint:wrapcheck
	}

	if req.StartDate != nil || req.EndDate != nil {
		start := current.StartDate.Format(constant.DateOnlyFormat)
		end := current.EndDate.Format(constant.DateOnlyFormat)

		if req.StartDate != nil {
			start = *req.StartDate
		}

		if req.EndDate != nil {
			end = *req.EndDate
		}

		startDate, endDate, err := dto.ParseStay(start, end)
		if err != nil {
			return failure.BadRequestFromString(errInvalidDates) // nolint:wrapcheck
		}

		if pricing.Nights(startDate, endDate) == 0 {
			return failure.BadRequestFromString(errInvalidRange) // nolint:wrapcheck
		}
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		if shared.IsPqErrorCode(err, constant.PqErrorCodeFkViolation) {
			return failure.BadRequestFromString(errUnknownParty) // nolint:wrapcheck
		}

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	s.invalidateReservation(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check reservation existence")

		return fmt.Errorf("failed to check reservation existence: %w", err)
	}

	if !exist {
		return failure.NotFound(errReservationNotFound) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.invalidateReservation(ctx, id)

	return nil
}

func (s *serviceImpl) publishConfirmed(ctx context.Context, reservation model.Reservation, userID string) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := dto.ConfirmedEvent{}
	event.FromModel(reservation, userID)

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Reservation, kafka.Message{
			Key:   reservation.ID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("reservation_id", reservation.ID).Msg("failed to publish reservation event")
		}
	}()
}

func (s *serviceImpl) invalidateAfterBooking(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		for _, prefix := range []string{model.CachePrefix, roomModel.CachePrefix, clientModel.CachePrefix, constant.CachePrefixDashboard} {
			shared.InvalidateCaches(c, s.cache, prefix)
		}
	}()
}

func (s *serviceImpl) invalidateReservation(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixDashboard)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixDashboard)
	}()
}
