package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/otel"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/postgres"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/booking/model"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/constant"
	gDto "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/dto"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/logger"
	gRepo "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/repository"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/timezone"
)

const scopePrefix = constant.OtelRepositoryScopeName + ".booking"

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	ListActiveByWorker(ctx context.Context, workerID string, from, to time.Time) ([]model.Booking, error)
	CountActiveOnDay(ctx context.Context, workerID string, day time.Time) (int, error)
	UpdateStatusIf(ctx context.Context, bookingID, expected string, fields map[string]any) (bool, error)
	AssignWorkerIfUnassigned(ctx context.Context, bookingID, workerID string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ListActiveByWorker returns the worker's pending and confirmed bookings
// with a requested time inside [from, to), ordered ascending. The conflict
// detector and the gap walk both depend on this ordering.
func (repo *repositoryImpl) ListActiveByWorker(ctx context.Context, workerID string, from, to time.Time) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopePrefix+".ListActiveByWorker")
	defer scope.End()

	query := fmt.Sprintf(`SELECT * FROM %s
		WHERE worker_id = $1 AND status IN ($2, $3) AND requested_time >= $4 AND requested_time < $5
		ORDER BY requested_time ASC`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var bookings []model.Booking

	err := repo.db.Read.SelectContext(ctx, &bookings, query, workerID, model.StatusPending, model.StatusConfirmed, from, to)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list active bookings (%s): %w", workerID, err)
	}

	return bookings, nil
}

func (repo *repositoryImpl) CountActiveOnDay(ctx context.Context, workerID string, day time.Time) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopePrefix+".CountActiveOnDay")
	defer scope.End()

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := fmt.Sprintf(`SELECT COUNT(id) FROM %s
		WHERE worker_id = $1 AND status IN ($2, $3) AND requested_time >= $4 AND requested_time < $5`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	err := repo.db.Read.GetContext(ctx, &count, query, workerID, model.StatusPending, model.StatusConfirmed, dayStart, dayEnd)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count active bookings (%s): %w", workerID, err)
	}

	return count, nil
}

// UpdateStatusIf applies the fields only while the booking still holds the
// expected status. Returns false when the status moved underneath the
// caller, which the state machine surfaces as an illegal transition.
func (repo *repositoryImpl) UpdateStatusIf(ctx context.Context, bookingID, expected string, fields map[string]any) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopePrefix+".UpdateStatusIf")
	defer scope.End()

	query := updateStatusQuery(fields)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"id":              bookingID,
		"expected_status": expected,
	}
	for column, value := range fields {
		args[column] = value
	}

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to update booking status (%s): %w", bookingID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read booking update result (%s): %w", bookingID, err)
	}

	return affected > 0, nil
}

// updateStatusQuery builds the conditional update from the caller's field
// map. Each column is assigned exactly once; callers own modified_at and
// modified_by, the template never re-adds them.
func updateStatusQuery(fields map[string]any) string {
	setClause := ""
	for column := range fields {
		if setClause != "" {
			setClause += ", "
		}

		setClause += fmt.Sprintf("%s = :%s", column, column)
	}

	return fmt.Sprintf(`UPDATE %s SET %s
		WHERE id = :id AND status = :expected_status`, model.TableName, setClause)
}

// AssignWorkerIfUnassigned claims a pending booking for a worker only while
// no other worker holds it. First claim wins; later claims see false.
func (repo *repositoryImpl) AssignWorkerIfUnassigned(ctx context.Context, bookingID, workerID string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopePrefix+".AssignWorkerIfUnassigned")
	defer scope.End()

	query := fmt.Sprintf(`UPDATE %s SET worker_id = $2, modified_at = $3
		WHERE id = $1 AND worker_id IS NULL AND status = $4`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query, bookingID, workerID, timezone.Now(), model.StatusPending)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to assign worker to booking (%s): %w", bookingID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read assignment result (%s): %w", bookingID, err)
	}

	return affected > 0, nil
}
