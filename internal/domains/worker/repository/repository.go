package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/otel"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/postgres"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/worker/model"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/constant"
	gDto "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/dto"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/logger"
	gRepo "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/repository"
)

type Worker interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Worker, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Worker, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	GetActive(ctx context.Context) ([]model.Worker, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Worker]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Worker {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Worker](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetActive returns every active worker ordered by creation time. The order
// is the assignment engine's tie-break, so it must be stable.
func (repo *repositoryImpl) GetActive(ctx context.Context) ([]model.Worker, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".worker.GetActive")
	defer scope.End()

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = TRUE ORDER BY %s ASC", model.TableName, model.FieldIsActive, constant.FieldCreatedAt)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var workers []model.Worker

	if err := repo.db.Read.SelectContext(ctx, &workers, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get active workers: %w", err)
	}

	return workers, nil
}
