package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ReserveTx(ctx context.Context, tx *sqlx.Tx, id, user string) (bool, error)
	AppendPhoto(ctx context.Context, id, url, user string) error
	RemovePhoto(ctx context.Context, id, url, user string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ReserveTx flips the room to unavailable. It reports false when the room was already taken.
func (repo *repositoryImpl) ReserveTx(ctx context.Context, tx *sqlx.Tx, id, user string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.ReserveTx")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = false, %s = :modified_at, %s = :modified_by WHERE %s = :id AND %s = true",
		model.TableName, model.FieldAvailable, constant.FieldModifiedAt, constant.FieldModifiedBy, model.FieldID, model.FieldAvailable,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.NamedExecContext(ctx, query, map[string]any{
		"id":          id,
		"modified_at": timezone.Now(),
		"modified_by": user,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to reserve room: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read reserved rows: %w", err)
	}

	return affected == 1, nil
}

func (repo *repositoryImpl) AppendPhoto(ctx context.Context, id, url, user string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.AppendPhoto")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = array_append(%s, :url), %s = :modified_at, %s = :modified_by WHERE %s = :id",
		model.TableName, model.FieldPhotos, model.FieldPhotos, constant.FieldModifiedAt, constant.FieldModifiedBy, model.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, map[string]any{
		"id":          id,
		"url":         url,
		"modified_at": timezone.Now(),
		"modified_by": user,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to append room photo: %w", err)
	}

	return nil
}

// RemovePhoto drops url from the room photos and reports whether it was present.
func (repo *repositoryImpl) RemovePhoto(ctx context.Context, id, url, user string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.RemovePhoto")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = array_remove(%s, :url), %s = :modified_at, %s = :modified_by WHERE %s = :id AND :url = ANY(%s)",
		model.TableName, model.FieldPhotos, model.FieldPhotos, constant.FieldModifiedAt, constant.FieldModifiedBy, model.FieldID, model.FieldPhotos,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, map[string]any{
		"id":          id,
		"url":         url,
		"modified_at": timezone.Now(),
		"modified_by": user,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to remove room photo: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read updated rows: %w", err)
	}

	return affected > 0, nil
}
