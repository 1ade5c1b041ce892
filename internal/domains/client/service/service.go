package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/client/model"
	"hotel/internal/domains/client/model/dto"
	"hotel/internal/domains/client/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetClient    = model.CachePrefix + "get"
	cacheGetAllClient = model.CachePrefix + "gets"
	cacheCountClient  = model.CachePrefix + "count"

	errClientNotFound = "client not found"
)

type Client interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (dto.ClientResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetClientsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ClientResponse, error)
	Update(ctx context.Context, req dto.UpdateClientRequest, id string) error
	Delete(ctx context.Context, id string) error
	Ensure(ctx context.Context, userID, fallbackName string) (dto.ClientResponse, error)
}

type serviceImpl struct {
	repo  repository.Client
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Client, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Client {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateClientRequest) (res dto.ClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	client := req.ToModel(user)

	if client.UserID != nil {
		exist, err := s.repo.Exist(ctx, userFilter(*client.UserID))
		if err != nil {
			log.Error().Err(err).Msg("failed to check client account")

			return res, fmt.Errorf("failed to check client account: %w", err)
		}

		if exist {
			return res, failure.Conflict("account already has a client record") // nolint:wrapcheck
		}
	}

	if err = s.repo.Insert(ctx, client); err != nil {
		log.Error().Err(err).Msg("failed to create client")

		if shared.IsPqErrorCode(err, constant.PqErrorCodeUniqueViolation) {
			return res, failure.Conflict("account already has a client record") // nolint:wrapcheck
		}

		if shared.IsPqErrorCode(err, constant.PqErrorCodeFkViolation) {
			return res, failure.BadRequestFromString("user does not exist") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to create client: %w", err)
	}

	res.FromModel(client)

	s.invalidateLists(ctx)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetClientsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllClient, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count clients: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get clients")

		return res, fmt.Errorf("failed to get clients: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save clients to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountClient, gDto.QueryParams{}, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count clients")

		return res, fmt.Errorf("failed to count clients: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save client count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetClient, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	client, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get client")

		return res, fmt.Errorf("failed to get client: %w", err)
	}

	if client.ID == constant.Empty {
		return res, failure.NotFound(errClientNotFound) // nolint:wrapcheck
	}

	res.FromModel(client)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save client to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateClientRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check client existence")

		return fmt.Errorf("failed to check client existence: %w", err)
	}

	if !exist {
		return failure.NotFound(errClientNotFound) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update client")

		return fmt.Errorf("failed to update client: %w", err)
	}

	s.invalidateClient(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check client existence")

		return fmt.Errorf("failed to check client existence: %w", err)
	}

	if !exist {
		return failure.NotFound(errClientNotFound) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete client")

		if shared.IsPqErrorCode(err, constant.PqErrorCodeFkViolation) {
			return failure.Conflict("client still has reservations") // nolint:wrapcheck
		}

		return fmt.Errorf("failed to delete client: %w", err)
	}

	s.invalidateClient(ctx, id)

	return nil
}

// Ensure returns the client attached to userID, creating a zero-point record on first use.
func (s *serviceImpl) Ensure(ctx context.Context, userID, fallbackName string) (res dto.ClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Ensure")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	client, err := s.repo.Get(ctx, userFilter(userID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get client of user")

		return res, fmt.Errorf("failed to get client of user: %w", err)
	}

	if client.ID != constant.Empty {
		res.FromModel(client)

		return res, nil
	}

	client = model.Client{
		ID:     uuid.NewString(),
		UserID: &userID,
		Name:   fallbackName,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}

	if err = s.repo.Insert(ctx, client); err != nil {
		if !shared.IsPqErrorCode(err, constant.PqErrorCodeUniqueViolation) {
			log.Error().Err(err).Msg("failed to create client of user")

			return res, fmt.Errorf("failed to create client of user: %w", err)
		}

		// another request created it first
		client, err = s.repo.Get(ctx, userFilter(userID))
		if err != nil {
			log.Error().Err(err).Msg("failed to reload client of user")

			return res, fmt.Errorf("failed to reload client of user: %w", err)
		}

		if client.ID == constant.Empty {
			return res, failure.NotFound(errClientNotFound) // nolint:wrapcheck
		}
	} else {
		s.invalidateLists(ctx)
	}

	res.FromModel(client)

	return res, nil
}

func (s *serviceImpl) invalidateClient(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetClient, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete client cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllClient)
		shared.InvalidateCaches(c, s.cache, cacheCountClient)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixDashboard)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllClient)
		shared.InvalidateCaches(c, s.cache, cacheCountClient)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixDashboard)
	}()
}

func userFilter(userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}
}
