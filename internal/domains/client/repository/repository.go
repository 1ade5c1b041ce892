package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/client/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type Client interface {
	Insert(ctx context.Context, model model.Client) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Client) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Client, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Client, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	AddPointsTx(ctx context.Context, tx *sqlx.Tx, id string, points int, user string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Client]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Client {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Client](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// AddPointsTx credits points in place so concurrent bookings never lose an update.
func (repo *repositoryImpl) AddPointsTx(ctx context.Context, tx *sqlx.Tx, id string, points int, user string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".client.AddPointsTx")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = %s + :points, %s = :modified_at, %s = :modified_by WHERE %s = :id",
		model.TableName, model.FieldLoyaltyPoints, model.FieldLoyaltyPoints, constant.FieldModifiedAt, constant.FieldModifiedBy, model.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.NamedExecContext(ctx, query, map[string]any{
		"id":          id,
		"points":      points,
		"modified_at": timezone.Now(),
		"modified_by": user,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to add loyalty points: %w", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("failed to add loyalty points: client %s not found", id)
	}

	return nil
}
