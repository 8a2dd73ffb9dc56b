package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/otel"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/postgres"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/schedule/model"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/constant"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/logger"
	gRepo "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/repository"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/timezone"
)

const scopePrefix = constant.OtelRepositoryScopeName + ".schedule"

type Schedule interface {
	GetCalendarByWorker(ctx context.Context, workerID string) (model.Calendar, error)
	InsertCalendar(ctx context.Context, calendar model.Calendar) error
	UpdateCalendar(ctx context.Context, fields map[string]any, workerID string, version int64) (bool, error)

	GetSlot(ctx context.Context, slotID string) (model.Slot, error)
	ListSlots(ctx context.Context, workerID string, from, to time.Time) ([]model.Slot, error)
	ListSlotsByBooking(ctx context.Context, bookingID string) ([]model.Slot, error)
	InsertSlots(ctx context.Context, slots []model.Slot) error
	DeleteSlot(ctx context.Context, slotID string) error
	DeleteUnbookedBetween(ctx context.Context, workerID string, from, to time.Time) error
	DeleteUnbookedAfter(ctx context.Context, workerID string, after time.Time) error
	MarkSlotBooked(ctx context.Context, slotID, bookingID string) (bool, error)
	ReleaseByBooking(ctx context.Context, bookingID string) error
}

type repositoryImpl struct {
	slots gRepo.Repository[model.Slot]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Schedule {
	return &repositoryImpl{
		slots: gRepo.NewRepository[model.Slot](model.SlotEntityName, model.SlotTableName, model.FieldID, db, otel),
		db:    db,
		otel:  otel,
	}
}

// GetCalendarByWorker returns the worker's calendar, or a zero-ID calendar
// when none exists yet.
func (repo *repositoryImpl) GetCalendarByWorker(ctx context.Context, workerID string) (model.Calendar, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopePrefix+".GetCalendarByWorker")
	defer scope.End()

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1", model.CalendarTableName, model.FieldWorkerID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var calendar model.Calendar

	err := repo.db.Read.GetContext(ctx, &calendar, query, workerID)
	if errors.Is(err, sql.ErrNoRows) {
		return calendar, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return calendar, fmt.Errorf("failed to get calendar (%s): %w", workerID, err)
	}

	return calendar, nil
}

func (repo *repositoryImpl) InsertCalendar(ctx context.Context, calendar model.Calendar) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopePrefix+".InsertCalendar")
	defer scope.End()

	query := fmt.Sprintf(`INSERT INTO %s
		(id, worker_id, working_days, day_start, day_end, morning_slots, afternoon_slots, evening_slots,
		 current_status, current_booking_id, estimated_completion, actual_start, version, last_updated,
		 created_at, modified_at, created_by, modified_by)
		VALUES
		(:id, :worker_id, :working_days, :day_start, :day_end, :morning_slots, :afternoon_slots, :evening_slots,
		 :current_status, :current_booking_id, :estimated_completion, :actual_start, :version, :last_updated,
		 :created_at, :modified_at, :created_by, :modified_by)`, model.CalendarTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, calendar); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert calendar (%s): %w", calendar.WorkerID, err)
	}

	return nil
}

// UpdateCalendar applies the fields only when the stored version still
// matches. It returns false when another writer got there first.
func (repo *repositoryImpl) UpdateCalendar(ctx context.Context, fields map[string]any, workerID string, version int64) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopePrefix+".UpdateCalendar")
	defer scope.End()

	setClause := ""
	for column := range fields {
		if setClause != "" {
			setClause += ", "
		}

		setClause += fmt.Sprintf("%s = :%s", column, column)
	}

	query := fmt.Sprintf(`UPDATE %s SET %s, version = version + 1, last_updated = :now
		WHERE worker_id = :worker_id AND version = :version`, model.CalendarTableName, setClause)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"worker_id": workerID,
		"version":   version,
		"now":       timezone.Now(),
	}
	for column, value := range fields {
		args[column] = value
	}

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to update calendar (%s): %w", workerID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read calendar update result (%s): %w", workerID, err)
	}

	return affected > 0, nil
}

func (repo *repositoryImpl) GetSlot(ctx context.Context, slotID string) (model.Slot, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopePrefix+".GetSlot")
	defer scope.End()

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1", model.SlotTableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var slot model.Slot

	err := repo.db.Read.GetContext(ctx, &slot, query, slotID)
	if errors.Is(err, sql.ErrNoRows) {
		return slot, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return slot, fmt.Errorf("failed to get slot (%s): %w", slotID, err)
	}

	return slot, nil
}

func (repo *repositoryImpl) ListSlots(ctx context.Context, workerID string, from, to time.Time) ([]model.Slot, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopePrefix+".ListSlots")
	defer scope.End()

	query := fmt.Sprintf(`SELECT * FROM %s
		WHERE worker_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time ASC`, model.SlotTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var slots []model.Slot

	if err := repo.db.Read.SelectContext(ctx, &slots, query, workerID, from, to); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list slots (%s): %w", workerID, err)
	}

	return slots, nil
}

func (repo *repositoryImpl) ListSlotsByBooking(ctx context.Context, bookingID string) ([]model.Slot, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopePrefix+".ListSlotsByBooking")
	defer scope.End()

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1 ORDER BY start_time ASC", model.SlotTableName, model.FieldBookingID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var slots []model.Slot

	if err := repo.db.Read.SelectContext(ctx, &slots, query, bookingID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list slots for booking (%s): %w", bookingID, err)
	}

	return slots, nil
}

func (repo *repositoryImpl) InsertSlots(ctx context.Context, slots []model.Slot) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopePrefix+".InsertSlots")
	defer scope.End()

	if len(slots) == 0 {
		return nil
	}

	return repo.slots.InsertBulk(ctx, slots) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeleteSlot(ctx context.Context, slotID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopePrefix+".DeleteSlot")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", model.SlotTableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.ExecContext(ctx, query, slotID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete slot (%s): %w", slotID, err)
	}

	return nil
}

// DeleteUnbookedBetween removes open slots starting inside [from, to).
// Booked slots are never touched.
func (repo *repositoryImpl) DeleteUnbookedBetween(ctx context.Context, workerID string, from, to time.Time) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopePrefix+".DeleteUnbookedBetween")
	defer scope.End()

	query := fmt.Sprintf(`DELETE FROM %s
		WHERE worker_id = $1 AND is_booked = FALSE AND start_time >= $2 AND start_time < $3`, model.SlotTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.ExecContext(ctx, query, workerID, from, to); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete unbooked slots (%s): %w", workerID, err)
	}

	return nil
}

func (repo *repositoryImpl) DeleteUnbookedAfter(ctx context.Context, workerID string, after time.Time) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopePrefix+".DeleteUnbookedAfter")
	defer scope.End()

	query := fmt.Sprintf(`DELETE FROM %s
		WHERE worker_id = $1 AND is_booked = FALSE AND start_time > $2`, model.SlotTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.ExecContext(ctx, query, workerID, after); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete stale slots (%s): %w", workerID, err)
	}

	return nil
}

// MarkSlotBooked transitions a slot from open to booked only if it is still
// open. Returns false when the slot was already taken, which is how two
// racing bookings are arbitrated at the storage layer.
func (repo *repositoryImpl) MarkSlotBooked(ctx context.Context, slotID, bookingID string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopePrefix+".MarkSlotBooked")
	defer scope.End()

	query := fmt.Sprintf(`UPDATE %s SET is_booked = TRUE, booking_id = $2, modified_at = $3
		WHERE id = $1 AND is_booked = FALSE`, model.SlotTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query, slotID, bookingID, timezone.Now())
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to book slot (%s): %w", slotID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read slot booking result (%s): %w", slotID, err)
	}

	return affected > 0, nil
}

// ReleaseByBooking reopens every slot a booking was holding.
func (repo *repositoryImpl) ReleaseByBooking(ctx context.Context, bookingID string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, scopePrefix+".ReleaseByBooking")
	defer scope.End()

	query := fmt.Sprintf(`UPDATE %s SET is_booked = FALSE, booking_id = NULL, modified_at = $2
		WHERE booking_id = $1`, model.SlotTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.ExecContext(ctx, query, bookingID, timezone.Now()); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to release slots for booking (%s): %w", bookingID, err)
	}

	return nil
}
