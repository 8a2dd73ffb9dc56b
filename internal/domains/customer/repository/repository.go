package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/otel"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/postgres"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/customer/model"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/constant"
	gDto "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/dto"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/logger"
	gRepo "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/repository"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/timezone"
)

const scopePrefix = constant.OtelRepositoryScopeName + ".customer"

type Customer interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)

	// RecordCompletion bumps the customer's overall usage counter and the
	// per-worker completed count in one transaction, promoting the customer
	// to VIP atomically when the per-worker count reaches the threshold.
	// It returns the new per-worker count and the resulting loyalty level.
	RecordCompletion(ctx context.Context, customerID, workerID string) (int, string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) RecordCompletion(ctx context.Context, customerID, workerID string) (count int, loyalty string, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopePrefix+".RecordCompletion")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, "", fmt.Errorf("failed to begin completion tx (%s): %w", customerID, err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	statsQuery := fmt.Sprintf(`INSERT INTO %s (customer_id, worker_id, completed_count)
		VALUES ($1, $2, 1)
		ON CONFLICT (customer_id, worker_id)
		DO UPDATE SET completed_count = %s.completed_count + 1
		RETURNING completed_count`, model.StatsTableName, model.StatsTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, statsQuery)

	if err = tx.GetContext(ctx, &count, statsQuery, customerID, workerID); err != nil {
		logger.ErrorWithStack(err)

		return 0, "", fmt.Errorf("failed to record completion (%s/%s): %w", customerID, workerID, err)
	}

	loyalty = model.LoyaltyNormal
	if count >= constant.VIPCompletedThreshold {
		loyalty = model.LoyaltyVIP
	}

	customerQuery := fmt.Sprintf(`UPDATE %s
		SET usage_count = usage_count + 1,
		    loyalty_level = CASE WHEN $2 = '%s' THEN '%s' ELSE loyalty_level END,
		    modified_at = $3
		WHERE id = $1`, model.TableName, model.LoyaltyVIP, model.LoyaltyVIP)

	if _, err = tx.ExecContext(ctx, customerQuery, customerID, loyalty, timezone.Now()); err != nil {
		logger.ErrorWithStack(err)

		return 0, "", fmt.Errorf("failed to update customer usage (%s): %w", customerID, err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return 0, "", fmt.Errorf("failed to commit completion (%s): %w", customerID, err)
	}

	return count, loyalty, nil
}
