package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/config"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/otel"
	assignmentService "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/assignment/service"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/booking/model"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/booking/model/dto"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/booking/repository"
	customerModel "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/customer/model"
	customerRepo "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/customer/repository"
	scheduleService "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/schedule/service"
	workerModel "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/worker/model"
	workerRepo "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/worker/repository"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/external/ledger"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/external/notifier"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/external/pricing"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/cache"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/constant"
	gDto "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/dto"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/failure"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/lock"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"

	workerLockPrefix = "worker:"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, bookingID string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	UpdateStatus(ctx context.Context, bookingID string, req dto.UpdateStatusRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, bookingID string) (dto.BookingResponse, error)
	Extend(ctx context.Context, bookingID string, req dto.ExtendBookingRequest) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	customers  customerRepo.Customer
	workers    workerRepo.Worker
	schedule   scheduleService.Schedule
	assignment assignmentService.Assignment
	pricing    pricing.Service
	ledger     ledger.Service
	notifier   notifier.Service
	locks      *lock.Keyed
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	customers customerRepo.Customer,
	workers workerRepo.Worker,
	schedule scheduleService.Schedule,
	assignment assignmentService.Assignment,
	pricing pricing.Service,
	ledger ledger.Service,
	notifier notifier.Service,
	locks *lock.Keyed,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		customers:  customers,
		workers:    workers,
		schedule:   schedule,
		assignment: assignment,
		pricing:    pricing,
		ledger:     ledger,
		notifier:   notifier,
		locks:      locks,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// Create validates the request, snapshots the price, picks a worker when none
// was requested, and commits the booking as pending. Both the requested-worker
// path and the auto-assign path run the same conflict check before the commit.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	requestedAt, err := req.RequestedAt()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid requested time: %v", err)) //nolint:wrapcheck
	}

	now := timezone.Now()

	if requestedAt.Before(now.Add(constant.BookingMinLeadMinutes * time.Minute)) {
		return res, failure.BadRequestFromString("requested time must be in the future") //nolint:wrapcheck
	}

	if requestedAt.After(now.AddDate(0, 0, constant.BookingHorizonDays)) {
		return res, failure.BadRequestFromString(fmt.Sprintf("requested time is more than %d days ahead", constant.BookingHorizonDays)) //nolint:wrapcheck
	}

	if err = s.ensureCustomer(ctx, req.CustomerID); err != nil {
		return res, err
	}

	quote, err := s.pricing.Quote(ctx, req.ServiceID, req.CustomerID)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(requestedAt, user)
	booking.BasePrice = quote.BasePrice
	booking.Discount = quote.Discount
	booking.FinalPrice = quote.FinalPrice

	var worker workerModel.Worker

	if req.WorkerID != constant.Empty {
		worker, err = s.getWorker(ctx, req.WorkerID)
		if err != nil {
			return res, err
		}

		if !worker.IsActive {
			return res, failure.BadRequestFromString("requested worker is not active") //nolint:wrapcheck
		}
	} else {
		worker, err = s.assignment.AssignOptimal(ctx, req.ServiceID, requestedAt)
		if err != nil {
			// Leave the booking unassigned and let the retry loop raise a
			// manual-assignment signal if it cannot find anyone either.
			if failure.GetCode(err) != 409 {
				return res, err
			}

			booking.WorkerID = nil
		}
	}

	if worker.ID != constant.Empty {
		workerID := worker.ID
		booking.WorkerID = &workerID

		if err = s.commitWithWorker(ctx, &booking, workerID, requestedAt); err != nil {
			return res, err
		}
	} else {
		if err = s.repo.Insert(ctx, booking); err != nil {
			return res, fmt.Errorf("failed to insert booking: %w", err)
		}

		go s.assignment.AssignPending(context.WithoutCancel(ctx), booking.ID)
	}

	s.publish(ctx, notifier.EventBookingCreated, &booking)

	res.FromModel(booking)

	return res, nil
}

// commitWithWorker runs the conflict and capacity checks and the insert under
// the worker's lock, so two racing requests for the same worker serialize and
// the loser sees the winner's booking.
func (s *serviceImpl) commitWithWorker(ctx context.Context, booking *model.Booking, workerID string, requestedAt time.Time) error {
	release := s.locks.Acquire(workerLockPrefix + workerID)
	defer release()

	conflict, conflictAt, err := s.assignment.HasConflict(ctx, workerID, requestedAt, constant.ConflictBufferMinutes*time.Minute)
	if err != nil {
		return err
	}

	if conflict {
		message := "worker already has a booking too close to the requested time"
		if conflictAt != nil {
			message = fmt.Sprintf("%s (%s)", message, timezone.Format(*conflictAt, constant.DateFormat))
		}

		return failure.Conflict(message) //nolint:wrapcheck
	}

	workload, err := s.assignment.Workload(ctx, workerID, requestedAt)
	if err != nil {
		return err
	}

	if workload >= constant.MaxBookingsPerDay {
		return failure.Conflict("worker has reached the daily booking limit") //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, *booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	s.claimScheduleSlot(ctx, booking)

	return nil
}

// claimScheduleSlot links the booking to the open slot covering its window,
// so the worker's published schedule shows the time as taken. The booking
// row stays the source of truth, a missing or raced slot is only logged.
func (s *serviceImpl) claimScheduleSlot(ctx context.Context, booking *model.Booking) {
	if booking.WorkerID == nil {
		return
	}

	if err := s.schedule.ClaimWindow(ctx, *booking.WorkerID, booking.ID, booking.RequestedTime, booking.EndTime()); err != nil {
		log.Error().Err(err).Str("bookingId", booking.ID).Msg("failed to link booking to a schedule slot")
	}
}

func (s *serviceImpl) Get(ctx context.Context, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, bookingID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// UpdateStatus drives the lifecycle. The transition table is the single
// authority on legal moves; each branch then runs its own side effects.
func (s *serviceImpl) UpdateStatus(ctx context.Context, bookingID string, req dto.UpdateStatusRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if !model.CanTransition(booking.Status, req.Status) {
		return res, failure.BadRequestFromString(fmt.Sprintf("illegal transition from %s to %s", booking.Status, req.Status)) //nolint:wrapcheck
	}

	switch req.Status {
	case model.StatusConfirmed:
		booking, err = s.confirm(ctx, booking, req)
	case model.StatusInProgress:
		booking, err = s.start(ctx, booking)
	case model.StatusDone:
		booking, err = s.complete(ctx, booking)
	case model.StatusCancelled:
		booking, err = s.cancel(ctx, booking)
	default:
		err = failure.BadRequestFromString(fmt.Sprintf("unknown status %s", req.Status)) //nolint:wrapcheck
	}

	if err != nil {
		return res, err
	}

	s.invalidateBooking(ctx, bookingID)

	res.FromModel(booking)

	return res, nil
}

// confirm moves pending -> confirmed. A worker confirming an unassigned
// booking claims it with a conditional write, so of two racing workers
// exactly one becomes the assignee.
func (s *serviceImpl) confirm(ctx context.Context, booking model.Booking, req dto.UpdateStatusRequest) (model.Booking, error) {
	actorID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	actorRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	estimatedAt, err := req.EstimatedAt()
	if err != nil {
		return booking, failure.BadRequestFromString(fmt.Sprintf("invalid estimated completion: %v", err)) //nolint:wrapcheck
	}

	claimedNow := booking.WorkerID == nil

	if booking.WorkerID == nil {
		if actorRole != constant.RoleWorker {
			return booking, failure.BadRequestFromString("booking has no assigned worker yet") //nolint:wrapcheck
		}

		claimed, err := s.repo.AssignWorkerIfUnassigned(ctx, booking.ID, actorID)
		if err != nil {
			return booking, fmt.Errorf("failed to claim booking: %w", err)
		}

		if !claimed {
			return booking, failure.Conflict("booking was just claimed by another worker") //nolint:wrapcheck
		}

		booking.WorkerID = &actorID
	} else if actorRole == constant.RoleWorker && actorID != *booking.WorkerID {
		return booking, failure.Forbidden("booking is assigned to another worker") //nolint:wrapcheck
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldStatus:      model.StatusConfirmed,
		"confirmed_at":         now,
		"estimated_completion": estimatedAt,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actorID,
	}

	ok, err := s.repo.UpdateStatusIf(ctx, booking.ID, model.StatusPending, fields)
	if err != nil {
		return booking, fmt.Errorf("failed to confirm booking: %w", err)
	}

	if !ok {
		return booking, failure.Conflict("booking is no longer pending") //nolint:wrapcheck
	}

	booking.Status = model.StatusConfirmed
	booking.ConfirmedAt = &now
	booking.EstimatedCompletion = estimatedAt

	if claimedNow {
		s.claimScheduleSlot(ctx, &booking)
	}

	if estimatedAt != nil {
		if err := s.schedule.RegenerateAfterCompletion(ctx, *booking.WorkerID, *estimatedAt); err != nil {
			log.Error().Err(err).Str("bookingId", booking.ID).Msg("failed to regenerate schedule on confirm")
		}
	}

	s.publish(ctx, notifier.EventBookingConfirmed, &booking)

	return booking, nil
}

func (s *serviceImpl) start(ctx context.Context, booking model.Booking) (model.Booking, error) {
	if err := s.ensureActorOwnsWork(ctx, &booking); err != nil {
		return booking, err
	}

	actorID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	now := timezone.Now()
	fields := map[string]any{
		model.FieldStatus:      model.StatusInProgress,
		"started_at":           now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actorID,
	}

	ok, err := s.repo.UpdateStatusIf(ctx, booking.ID, model.StatusConfirmed, fields)
	if err != nil {
		return booking, fmt.Errorf("failed to start booking: %w", err)
	}

	if !ok {
		return booking, failure.Conflict("booking is no longer confirmed") //nolint:wrapcheck
	}

	booking.Status = model.StatusInProgress
	booking.StartedAt = &now

	if err := s.schedule.MarkBusy(ctx, *booking.WorkerID, booking.ID, booking.EstimatedCompletion); err != nil {
		log.Error().Err(err).Str("bookingId", booking.ID).Msg("failed to mark worker busy")
	}

	s.publish(ctx, notifier.EventBookingStarted, &booking)

	return booking, nil
}

// complete commits the terminal done state, then runs the completion side
// effects. The loyalty bump is part of completing; ledger and schedule
// failures are logged and swallowed, never rolling back the transition.
func (s *serviceImpl) complete(ctx context.Context, booking model.Booking) (model.Booking, error) {
	if err := s.ensureActorOwnsWork(ctx, &booking); err != nil {
		return booking, err
	}

	actorID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	now := timezone.Now()
	fields := map[string]any{
		model.FieldStatus:      model.StatusDone,
		"completed_at":         now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actorID,
	}

	ok, err := s.repo.UpdateStatusIf(ctx, booking.ID, booking.Status, fields)
	if err != nil {
		return booking, fmt.Errorf("failed to complete booking: %w", err)
	}

	if !ok {
		return booking, failure.Conflict("booking state changed, reload and retry") //nolint:wrapcheck
	}

	previous := booking.Status
	booking.Status = model.StatusDone
	booking.CompletedAt = &now

	workerID := *booking.WorkerID

	count, loyalty, err := s.customers.RecordCompletion(ctx, booking.CustomerID, workerID)
	if err != nil {
		log.Error().Err(err).Str("bookingId", booking.ID).Msg("failed to record completion for loyalty")
	} else if loyalty == customerModel.LoyaltyVIP && count == constant.VIPCompletedThreshold {
		log.Info().Str("customerId", booking.CustomerID).Str("workerId", workerID).Msg("customer promoted to vip")
	}

	if err := s.ledger.DeductPlatformFee(ctx, workerID, booking.ID, booking.FinalPrice); err != nil {
		log.Error().Err(err).Str("bookingId", booking.ID).Msg("failed to deduct platform fee")
	}

	if err := s.schedule.ReleaseBooking(ctx, workerID, booking.ID); err != nil {
		log.Error().Err(err).Str("bookingId", booking.ID).Msg("failed to release worker schedule")
	}

	if previous == model.StatusInProgress || booking.EstimatedCompletion != nil {
		estimate := now
		if booking.EstimatedCompletion != nil && booking.EstimatedCompletion.After(now) {
			estimate = *booking.EstimatedCompletion
		}

		if err := s.schedule.RegenerateAfterCompletion(ctx, workerID, estimate); err != nil {
			log.Error().Err(err).Str("bookingId", booking.ID).Msg("failed to regenerate schedule after completion")
		}
	}

	s.publish(ctx, notifier.EventBookingCompleted, &booking)

	return booking, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	booking, err = s.cancel(ctx, booking)
	if err != nil {
		return res, err
	}

	s.invalidateBooking(ctx, bookingID)

	res.FromModel(booking)

	return res, nil
}

// cancel applies one rule for both pending and confirmed bookings: the owner
// may cancel with more than the notice period remaining, the assigned worker
// and admins may cancel any time before the job starts.
func (s *serviceImpl) cancel(ctx context.Context, booking model.Booking) (model.Booking, error) {
	actorID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	actorRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if !model.CanTransition(booking.Status, model.StatusCancelled) {
		return booking, failure.BadRequestFromString(fmt.Sprintf("booking in status %s cannot be cancelled", booking.Status)) //nolint:wrapcheck
	}

	switch actorRole {
	case constant.RoleCustomer:
		if actorID != booking.CustomerID {
			return booking, failure.Forbidden("booking belongs to another customer") //nolint:wrapcheck
		}

		notice := time.Duration(constant.CancellationNoticeHours) * time.Hour
		if booking.RequestedTime.Sub(timezone.Now()) <= notice {
			return booking, failure.BadRequestFromString(fmt.Sprintf("cancellation requires more than %d hours notice", constant.CancellationNoticeHours)) //nolint:wrapcheck
		}
	case constant.RoleWorker:
		if booking.WorkerID == nil || actorID != *booking.WorkerID {
			return booking, failure.Forbidden("booking is assigned to another worker") //nolint:wrapcheck
		}
	case constant.RoleAdmin:
	default:
		return booking, failure.Forbidden("actor may not cancel this booking") //nolint:wrapcheck
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldStatus:      model.StatusCancelled,
		"cancelled_at":         now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actorID,
	}

	ok, err := s.repo.UpdateStatusIf(ctx, booking.ID, booking.Status, fields)
	if err != nil {
		return booking, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if !ok {
		return booking, failure.Conflict("booking state changed, reload and retry") //nolint:wrapcheck
	}

	booking.Status = model.StatusCancelled
	booking.CancelledAt = &now

	if booking.WorkerID != nil {
		if err := s.schedule.ReleaseBooking(ctx, *booking.WorkerID, booking.ID); err != nil {
			log.Error().Err(err).Str("bookingId", booking.ID).Msg("failed to release worker schedule on cancel")
		}
	}

	s.publish(ctx, notifier.EventBookingCancelled, &booking)

	return booking, nil
}

// Extend blocks additional contiguous hours on the worker's calendar beyond
// the booking's current end. Repeated extensions accumulate, each capped to
// the per-call range.
func (s *serviceImpl) Extend(ctx context.Context, bookingID string, req dto.ExtendBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Extend")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.AdditionalHours < constant.ExtensionMinHours || req.AdditionalHours > constant.ExtensionMaxHours {
		return res, failure.BadRequestFromString(fmt.Sprintf("additional hours must be between %d and %d", constant.ExtensionMinHours, constant.ExtensionMaxHours)) //nolint:wrapcheck
	}

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if booking.Status != model.StatusConfirmed && booking.Status != model.StatusInProgress {
		return res, failure.BadRequestFromString(fmt.Sprintf("booking in status %s cannot be extended", booking.Status)) //nolint:wrapcheck
	}

	if err = s.ensureActorMayExtend(ctx, &booking); err != nil {
		return res, err
	}

	from := booking.EndTime()
	extendedEnd := from.Add(time.Duration(req.AdditionalHours) * time.Hour)

	if err = s.schedule.BlockHours(ctx, *booking.WorkerID, booking.ID, from, req.AdditionalHours); err != nil {
		return res, err
	}

	actorID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	now := timezone.Now()
	fields := map[string]any{
		"extra_hours":       booking.ExtraHours + req.AdditionalHours,
		"extended_end_time": extendedEnd,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actorID,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: bookingID},
		},
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		return res, fmt.Errorf("failed to record extension: %w", err)
	}

	booking.ExtraHours += req.AdditionalHours
	booking.ExtendedEndTime = &extendedEnd

	s.invalidateBooking(ctx, bookingID)
	s.publish(ctx, notifier.EventBookingExtended, &booking)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) ensureActorOwnsWork(ctx context.Context, booking *model.Booking) error {
	actorID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	actorRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if booking.WorkerID == nil {
		return failure.BadRequestFromString("booking has no assigned worker") //nolint:wrapcheck
	}

	if actorRole == constant.RoleWorker && actorID != *booking.WorkerID {
		return failure.Forbidden("booking is assigned to another worker") //nolint:wrapcheck
	}

	if actorRole == constant.RoleCustomer {
		return failure.Forbidden("only the assigned worker may perform this transition") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) ensureActorMayExtend(ctx context.Context, booking *model.Booking) error {
	actorID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	actorRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	switch actorRole {
	case constant.RoleAdmin:
		return nil
	case constant.RoleWorker:
		if booking.WorkerID != nil && actorID == *booking.WorkerID {
			return nil
		}
	case constant.RoleCustomer:
		if actorID == booking.CustomerID {
			return nil
		}
	}

	return failure.Forbidden("actor may not extend this booking") //nolint:wrapcheck
}

func (s *serviceImpl) ensureCustomer(ctx context.Context, customerID string) error {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: customerModel.FieldID, Operator: gDto.FilterOperatorEq, Value: customerID},
		},
	}

	exists, err := s.customers.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to check customer: %w", err)
	}

	if !exists {
		return failure.NotFound("customer not found") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) getWorker(ctx context.Context, workerID string) (workerModel.Worker, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: workerModel.FieldID, Operator: gDto.FilterOperatorEq, Value: workerID},
		},
	}

	worker, err := s.workers.Get(ctx, filter)
	if err != nil {
		return worker, fmt.Errorf("failed to get worker: %w", err)
	}

	if worker.ID == constant.Empty {
		return worker, failure.NotFound("worker not found") //nolint:wrapcheck
	}

	return worker, nil
}

func (s *serviceImpl) getBooking(ctx context.Context, bookingID string) (model.Booking, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: bookingID},
		},
	}

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, booking *model.Booking) {
	event := notifier.Event{
		Type:       eventType,
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		Status:     booking.Status,
		OccurredAt: timezone.Now().Format(constant.DateFormat),
	}

	if booking.WorkerID != nil {
		event.WorkerID = *booking.WorkerID
	}

	go s.notifier.Publish(context.WithoutCancel(ctx), event)
}

func (s *serviceImpl) invalidateBooking(ctx context.Context, bookingID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetBooking, bookingID))
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()
}
