package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/config"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/otel"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/schedule/model"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/schedule/model/dto"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/schedule/repository"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/cache"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/constant"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/failure"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/lock"
	gModel "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/model"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/timezone"
)

const (
	cacheGetSchedule = "schedule:day"

	calendarLockPrefix = "calendar:"
	casAttempts        = 3
)

// ConflictChecker answers whether a worker already has an active booking too
// close to the candidate time. The schedule service applies it on slot adds
// so the buffer rule is identical to the one booking creation enforces.
type ConflictChecker interface {
	HasConflict(ctx context.Context, workerID string, at time.Time, buffer time.Duration) (bool, *time.Time, error)
}

type Schedule interface {
	GetCalendar(ctx context.Context, workerID string) (model.Calendar, error)
	GetDaySchedule(ctx context.Context, workerID string, day time.Time) (dto.ScheduleResponse, error)
	Generate(ctx context.Context, workerID string, days int) error
	AddSlot(ctx context.Context, req dto.AddSlotRequest, workerID, actor string) error
	RemoveSlot(ctx context.Context, workerID, slotID string) error
	BookSlot(ctx context.Context, workerID, slotID, bookingID string) (model.Slot, error)
	ClaimWindow(ctx context.Context, workerID, bookingID string, start, end time.Time) error
	BlockHours(ctx context.Context, workerID, bookingID string, from time.Time, hours int) error
	ReleaseBooking(ctx context.Context, workerID, bookingID string) error
	MarkBusy(ctx context.Context, workerID, bookingID string, estimatedCompletion *time.Time) error
	RegenerateAfterCompletion(ctx context.Context, workerID string, estimatedCompletion time.Time) error
}

type serviceImpl struct {
	repo    repository.Schedule
	checker ConflictChecker
	locks   *lock.Keyed
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(repo repository.Schedule, checker ConflictChecker, locks *lock.Keyed, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Schedule {
	return &serviceImpl{
		repo:    repo,
		checker: checker,
		locks:   locks,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

// GetCalendar returns the worker's calendar, creating it from the default
// template on first access.
func (s *serviceImpl) GetCalendar(ctx context.Context, workerID string) (model.Calendar, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.GetCalendar")
	defer scope.End()

	calendar, err := s.repo.GetCalendarByWorker(ctx, workerID)
	if err != nil {
		return calendar, fmt.Errorf("failed to load calendar: %w", err)
	}

	if calendar.ID != constant.Empty {
		return calendar, nil
	}

	calendar = s.defaultCalendar(workerID)

	if err := s.repo.InsertCalendar(ctx, calendar); err != nil {
		return calendar, fmt.Errorf("failed to create calendar: %w", err)
	}

	log.Info().Str("workerId", workerID).Msg("created calendar from default template")

	return calendar, nil
}

func (s *serviceImpl) defaultCalendar(workerID string) model.Calendar {
	template := s.cfg.Schedule
	now := timezone.Now()

	days := make([]int64, len(template.WorkingDays))
	for i, d := range template.WorkingDays {
		days[i] = int64(d)
	}

	return model.Calendar{
		ID:             uuid.NewString(),
		WorkerID:       workerID,
		WorkingDays:    days,
		DayStart:       template.WorkingDayStart,
		DayEnd:         template.WorkingDayEnd,
		MorningSlots:   append([]string{}, template.MorningSlots...),
		AfternoonSlots: append([]string{}, template.AfternoonSlots...),
		EveningSlots:   append([]string{}, template.EveningSlots...),
		CurrentStatus:  model.StatusAvailable,
		Version:        1,
		LastUpdated:    now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

func (s *serviceImpl) GetDaySchedule(ctx context.Context, workerID string, day time.Time) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.GetDaySchedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSchedule, workerID, day.Format(constant.DayFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for day schedule")

		return res, nil
	}

	calendar, err := s.GetCalendar(ctx, workerID)
	if err != nil {
		return res, err
	}

	dayStart := startOfDay(day)

	slots, err := s.repo.ListSlots(ctx, workerID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return res, fmt.Errorf("failed to list day slots: %w", err)
	}

	res.FromModels(calendar, slots, dayStart)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save day schedule to cache")
		}
	}()

	return res, nil
}

// Generate expands the calendar's slot templates over the next `days`
// working days. Generation is keyed by (worker, day): each covered day has
// its open slots replaced, never appended, so repeated calls are idempotent.
// Booked slots are left alone and template times colliding with them are
// skipped.
func (s *serviceImpl) Generate(ctx context.Context, workerID string, days int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if days <= 0 {
		days = s.cfg.Schedule.GenerateDaysSpan
	}

	calendar, err := s.GetCalendar(ctx, workerID)
	if err != nil {
		return err
	}

	release := s.locks.Acquire(calendarLockPrefix + workerID)
	defer release()

	now := timezone.Now()

	for offset := range days {
		day := startOfDay(now.AddDate(0, 0, offset))
		if !calendar.WorksOn(day.Weekday()) {
			continue
		}

		if err = s.regenerateDay(ctx, &calendar, day, now); err != nil {
			return err
		}
	}

	if err = s.bumpCalendar(ctx, workerID, map[string]any{}); err != nil {
		return err
	}

	s.invalidateSchedule(ctx, workerID)

	return nil
}

func (s *serviceImpl) regenerateDay(ctx context.Context, calendar *model.Calendar, day, now time.Time) error {
	dayEnd := day.AddDate(0, 0, 1)

	if err := s.repo.DeleteUnbookedBetween(ctx, calendar.WorkerID, day, dayEnd); err != nil {
		return fmt.Errorf("failed to clear open slots for day: %w", err)
	}

	booked, err := s.repo.ListSlots(ctx, calendar.WorkerID, day, dayEnd)
	if err != nil {
		return fmt.Errorf("failed to list remaining slots for day: %w", err)
	}

	var slots []model.Slot

	for _, clock := range calendar.TemplateTimes() {
		start, err := clockOnDay(day, clock)
		if err != nil {
			log.Warn().Str("clock", clock).Str("workerId", calendar.WorkerID).Msg("skipping malformed template time")

			continue
		}

		if !start.After(now) {
			continue
		}

		end := start.Add(time.Duration(constant.SlotDurationMinutes) * time.Minute)

		if overlapsAny(booked, start, end) {
			continue
		}

		slots = append(slots, s.newSlot(calendar.WorkerID, start, end, constant.Empty))
	}

	if err := s.repo.InsertSlots(ctx, slots); err != nil {
		return fmt.Errorf("failed to insert generated slots: %w", err)
	}

	return nil
}

func (s *serviceImpl) AddSlot(ctx context.Context, req dto.AddSlotRequest, workerID, actor string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.AddSlot")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := req.Window()
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid time format: %v", err)) //nolint:wrapcheck
	}

	if !start.Before(end) {
		return failure.BadRequestFromString("slot start must be before slot end") //nolint:wrapcheck
	}

	if !start.After(timezone.Now()) {
		return failure.BadRequestFromString("slot start must be in the future") //nolint:wrapcheck
	}

	if _, err = s.GetCalendar(ctx, workerID); err != nil {
		return err
	}

	release := s.locks.Acquire(calendarLockPrefix + workerID)
	defer release()

	existing, err := s.repo.ListSlots(ctx, workerID, start.Add(-24*time.Hour), end.Add(24*time.Hour))
	if err != nil {
		return fmt.Errorf("failed to list slots for overlap check: %w", err)
	}

	for i := range existing {
		if existing[i].Overlaps(start, end) {
			return failure.Conflict(fmt.Sprintf("slot overlaps existing window %s - %s", //nolint:wrapcheck
				timezone.Format(existing[i].StartTime, constant.DateFormat),
				timezone.Format(existing[i].EndTime, constant.DateFormat)))
		}
	}

	conflict, conflictAt, err := s.checker.HasConflict(ctx, workerID, start, constant.ConflictBufferMinutes*time.Minute)
	if err != nil {
		return fmt.Errorf("failed to check booking conflicts: %w", err)
	}

	if conflict {
		message := "slot is too close to an existing booking"
		if conflictAt != nil {
			message = fmt.Sprintf("%s at %s", message, timezone.Format(*conflictAt, constant.DateFormat))
		}

		return failure.Conflict(message) //nolint:wrapcheck
	}

	slot := s.newSlot(workerID, start, end, req.Note)
	slot.CreatedBy = actor
	slot.ModifiedBy = actor

	if err = s.repo.InsertSlots(ctx, []model.Slot{slot}); err != nil {
		return fmt.Errorf("failed to insert slot: %w", err)
	}

	if err = s.bumpCalendar(ctx, workerID, map[string]any{}); err != nil {
		return err
	}

	s.invalidateSchedule(ctx, workerID)

	return nil
}

func (s *serviceImpl) RemoveSlot(ctx context.Context, workerID, slotID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.RemoveSlot")
	defer scope.End()
	defer scope.TraceIfError(err)

	release := s.locks.Acquire(calendarLockPrefix + workerID)
	defer release()

	slot, err := s.repo.GetSlot(ctx, slotID)
	if err != nil {
		return fmt.Errorf("failed to get slot: %w", err)
	}

	if slot.ID == constant.Empty || slot.WorkerID != workerID {
		return failure.NotFound("slot not found") //nolint:wrapcheck
	}

	if slot.IsBooked {
		return failure.Conflict("slot is booked and cannot be removed until released") //nolint:wrapcheck
	}

	if err = s.repo.DeleteSlot(ctx, slotID); err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}

	if err = s.bumpCalendar(ctx, workerID, map[string]any{}); err != nil {
		return err
	}

	s.invalidateSchedule(ctx, workerID)

	return nil
}

// BookSlot links a slot to a booking. The storage layer transitions the slot
// open -> booked atomically, so of two racing bookings exactly one wins.
func (s *serviceImpl) BookSlot(ctx context.Context, workerID, slotID, bookingID string) (slot model.Slot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.BookSlot")
	defer scope.End()
	defer scope.TraceIfError(err)

	release := s.locks.Acquire(calendarLockPrefix + workerID)
	defer release()

	slot, err = s.repo.GetSlot(ctx, slotID)
	if err != nil {
		return slot, fmt.Errorf("failed to get slot: %w", err)
	}

	if slot.ID == constant.Empty || slot.WorkerID != workerID {
		return slot, failure.NotFound("slot not found") //nolint:wrapcheck
	}

	if slot.IsBooked {
		return slot, failure.Conflict("slot is already booked") //nolint:wrapcheck
	}

	if !slot.StartTime.After(timezone.Now()) {
		return slot, failure.BadRequestFromString("slot has already started") //nolint:wrapcheck
	}

	if err = s.claimSlot(ctx, workerID, slotID, bookingID); err != nil {
		return slot, err
	}

	return slot, nil
}

// ClaimWindow links a committed booking to whichever open slot covers the
// start of its window. Bookings may land on times no slot was generated
// for, so finding nothing to claim is not an error.
func (s *serviceImpl) ClaimWindow(ctx context.Context, workerID, bookingID string, start, end time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.ClaimWindow")
	defer scope.End()
	defer scope.TraceIfError(err)

	release := s.locks.Acquire(calendarLockPrefix + workerID)
	defer release()

	slots, err := s.repo.ListSlots(ctx, workerID, start.Add(-24*time.Hour), end)
	if err != nil {
		return fmt.Errorf("failed to list slots for claim: %w", err)
	}

	for i := range slots {
		if slots[i].IsBooked || !slots[i].Covers(start) {
			continue
		}

		return s.claimSlot(ctx, workerID, slots[i].ID, bookingID)
	}

	return nil
}

// claimSlot transitions the slot open -> booked through the storage layer's
// conditional update, then bumps the calendar.
func (s *serviceImpl) claimSlot(ctx context.Context, workerID, slotID, bookingID string) error {
	booked, err := s.repo.MarkSlotBooked(ctx, slotID, bookingID)
	if err != nil {
		return fmt.Errorf("failed to book slot: %w", err)
	}

	if !booked {
		return failure.Conflict("slot is already booked") //nolint:wrapcheck
	}

	if err := s.bumpCalendar(ctx, workerID, map[string]any{}); err != nil {
		return err
	}

	s.invalidateSchedule(ctx, workerID)

	return nil
}

// BlockHours appends contiguous one-hour booked slots from the given time,
// displacing any open slots they would overlap. Used by booking extension.
func (s *serviceImpl) BlockHours(ctx context.Context, workerID, bookingID string, from time.Time, hours int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.BlockHours")
	defer scope.End()
	defer scope.TraceIfError(err)

	release := s.locks.Acquire(calendarLockPrefix + workerID)
	defer release()

	until := from.Add(time.Duration(hours) * time.Hour)

	if err = s.repo.DeleteUnbookedBetween(ctx, workerID, from, until); err != nil {
		return fmt.Errorf("failed to clear displaced slots: %w", err)
	}

	slots := make([]model.Slot, 0, hours)

	for cursor := from; cursor.Before(until); cursor = cursor.Add(time.Hour) {
		slot := s.newSlot(workerID, cursor, cursor.Add(time.Hour), "extension")
		slot.IsBooked = true
		slot.BookingID = &bookingID
		slots = append(slots, slot)
	}

	if err = s.repo.InsertSlots(ctx, slots); err != nil {
		return fmt.Errorf("failed to insert extension slots: %w", err)
	}

	if err = s.bumpCalendar(ctx, workerID, map[string]any{}); err != nil {
		return err
	}

	s.invalidateSchedule(ctx, workerID)

	return nil
}

func (s *serviceImpl) ReleaseBooking(ctx context.Context, workerID, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.ReleaseBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	release := s.locks.Acquire(calendarLockPrefix + workerID)
	defer release()

	if err = s.repo.ReleaseByBooking(ctx, bookingID); err != nil {
		return fmt.Errorf("failed to release booked slots: %w", err)
	}

	fields := map[string]any{
		"current_status":       model.StatusAvailable,
		"current_booking_id":   nil,
		"estimated_completion": nil,
		"actual_start":         nil,
	}

	if err = s.bumpCalendar(ctx, workerID, fields); err != nil {
		return err
	}

	s.invalidateSchedule(ctx, workerID)

	return nil
}

func (s *serviceImpl) MarkBusy(ctx context.Context, workerID, bookingID string, estimatedCompletion *time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.MarkBusy")
	defer scope.End()
	defer scope.TraceIfError(err)

	release := s.locks.Acquire(calendarLockPrefix + workerID)
	defer release()

	fields := map[string]any{
		"current_status":       model.StatusBusy,
		"current_booking_id":   bookingID,
		"estimated_completion": estimatedCompletion,
		"actual_start":         timezone.Now(),
	}

	if err = s.bumpCalendar(ctx, workerID, fields); err != nil {
		return err
	}

	s.invalidateSchedule(ctx, workerID)

	return nil
}

// RegenerateAfterCompletion rebuilds the worker's open windows around a
// committed finish time: open slots past the previous estimate are stale and
// dropped, then two-hour windows are laid down from the cool-down after the
// new estimate to the end of the working day. When less than one full window
// remains in the day, the next working day is seeded from its configured
// start, so a worker finishing very late is only bookable again tomorrow.
func (s *serviceImpl) RegenerateAfterCompletion(ctx context.Context, workerID string, estimatedCompletion time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".schedule.RegenerateAfterCompletion")
	defer scope.End()
	defer scope.TraceIfError(err)

	calendar, err := s.GetCalendar(ctx, workerID)
	if err != nil {
		return err
	}

	release := s.locks.Acquire(calendarLockPrefix + workerID)
	defer release()

	staleAfter := estimatedCompletion
	if calendar.EstimatedCompletion != nil && calendar.EstimatedCompletion.Before(staleAfter) {
		staleAfter = *calendar.EstimatedCompletion
	}

	if err = s.repo.DeleteUnbookedAfter(ctx, workerID, staleAfter); err != nil {
		return fmt.Errorf("failed to drop stale slots: %w", err)
	}

	blockLength := time.Duration(constant.PostCompletionBlockHours) * time.Hour
	cursor := estimatedCompletion.Add(time.Duration(constant.PostCompletionCooldownMin) * time.Minute)

	dayEnd, err := clockOnDay(startOfDay(estimatedCompletion), calendar.DayEnd)
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("calendar has malformed working hours: %v", err)) //nolint:wrapcheck
	}

	var slots []model.Slot

	for !cursor.Add(blockLength).After(dayEnd) {
		slots = append(slots, s.newSlot(workerID, cursor, cursor.Add(blockLength), "post-completion"))
		cursor = cursor.Add(blockLength)
	}

	if dayEnd.Sub(estimatedCompletion) < blockLength {
		nextSlots, err := s.seedNextWorkingDay(&calendar, estimatedCompletion)
		if err != nil {
			return err
		}

		slots = append(slots, nextSlots...)
	}

	if err = s.repo.InsertSlots(ctx, slots); err != nil {
		return fmt.Errorf("failed to insert regenerated slots: %w", err)
	}

	fields := map[string]any{
		"estimated_completion": estimatedCompletion,
	}

	if err = s.bumpCalendar(ctx, workerID, fields); err != nil {
		return err
	}

	s.invalidateSchedule(ctx, workerID)

	return nil
}

func (s *serviceImpl) seedNextWorkingDay(calendar *model.Calendar, after time.Time) ([]model.Slot, error) {
	day := startOfDay(after)

	for range 7 {
		day = day.AddDate(0, 0, 1)
		if calendar.WorksOn(day.Weekday()) {
			break
		}
	}

	dayStart, err := clockOnDay(day, calendar.DayStart)
	if err != nil {
		return nil, failure.BadRequestFromString(fmt.Sprintf("calendar has malformed working hours: %v", err)) //nolint:wrapcheck
	}

	dayEnd, err := clockOnDay(day, calendar.DayEnd)
	if err != nil {
		return nil, failure.BadRequestFromString(fmt.Sprintf("calendar has malformed working hours: %v", err)) //nolint:wrapcheck
	}

	blockLength := time.Duration(constant.PostCompletionBlockHours) * time.Hour

	var slots []model.Slot

	for cursor := dayStart; !cursor.Add(blockLength).After(dayEnd); cursor = cursor.Add(blockLength) {
		slots = append(slots, s.newSlot(calendar.WorkerID, cursor, cursor.Add(blockLength), "next-day"))
	}

	return slots, nil
}

func (s *serviceImpl) newSlot(workerID string, start, end time.Time, note string) model.Slot {
	now := timezone.Now()

	return model.Slot{
		ID:        uuid.NewString(),
		WorkerID:  workerID,
		StartTime: start,
		EndTime:   end,
		Note:      note,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

// bumpCalendar applies the fields under compare-and-swap, re-reading the
// calendar when another writer raced in between.
func (s *serviceImpl) bumpCalendar(ctx context.Context, workerID string, fields map[string]any) error {
	if len(fields) == 0 {
		fields = map[string]any{"current_status": nil}
		// version and last_updated always move; reuse the current status so
		// the SET clause is never empty.
		calendar, err := s.repo.GetCalendarByWorker(ctx, workerID)
		if err != nil {
			return fmt.Errorf("failed to reload calendar: %w", err)
		}

		fields["current_status"] = calendar.CurrentStatus
	}

	for range casAttempts {
		calendar, err := s.repo.GetCalendarByWorker(ctx, workerID)
		if err != nil {
			return fmt.Errorf("failed to reload calendar: %w", err)
		}

		if calendar.ID == constant.Empty {
			return failure.NotFound("calendar not found") //nolint:wrapcheck
		}

		ok, err := s.repo.UpdateCalendar(ctx, fields, workerID, calendar.Version)
		if err != nil {
			return fmt.Errorf("failed to update calendar: %w", err)
		}

		if ok {
			return nil
		}
	}

	return failure.Conflict("calendar was modified concurrently, retry the request") //nolint:wrapcheck
}

func (s *serviceImpl) invalidateSchedule(ctx context.Context, workerID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetSchedule, workerID))
	}()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// clockOnDay anchors a wall-clock string like "08:00" onto a calendar day.
func clockOnDay(day time.Time, clock string) (time.Time, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid clock format: %s", clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid hour: %w", err)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid minute: %w", err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}

func overlapsAny(slots []model.Slot, start, end time.Time) bool {
	for i := range slots {
		if slots[i].Overlaps(start, end) {
			return true
		}
	}

	return false
}
