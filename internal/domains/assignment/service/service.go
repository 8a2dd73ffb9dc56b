package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/otel"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/assignment/model/dto"
	bookingModel "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/booking/model"
	bookingRepo "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/booking/repository"
	workerModel "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/worker/model"
	workerRepo "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/worker/repository"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/external/notifier"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/constant"
	gDto "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/dto"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/failure"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/timezone"
)

const (
	defaultTopN = 5

	baseScore = 100

	serviceDuration = time.Duration(constant.SlotDurationMinutes) * time.Minute
)

type Assignment interface {
	HasConflict(ctx context.Context, workerID string, at time.Time, buffer time.Duration) (bool, *time.Time, error)
	Workload(ctx context.Context, workerID string, day time.Time) (int, error)
	CheckAvailability(ctx context.Context, workerID string, at time.Time) (dto.Availability, error)
	AssignOptimal(ctx context.Context, serviceID string, at time.Time) (workerModel.Worker, error)
	RankCandidates(ctx context.Context, req dto.RankRequest) ([]dto.Candidate, error)
	AssignPending(ctx context.Context, bookingID string)
}

type serviceImpl struct {
	workers  workerRepo.Worker
	bookings bookingRepo.Booking
	notifier notifier.Service
	otel     otel.Otel
}

func New(workers workerRepo.Worker, bookings bookingRepo.Booking, notifier notifier.Service, otel otel.Otel) Assignment {
	return &serviceImpl{
		workers:  workers,
		bookings: bookings,
		notifier: notifier,
		otel:     otel,
	}
}

// HasConflict reports whether the worker has an active booking whose occupied
// window, widened by the buffer on both sides, contains the candidate time.
// The same buffer gates booking creation and slot adds.
func (s *serviceImpl) HasConflict(ctx context.Context, workerID string, at time.Time, buffer time.Duration) (conflict bool, conflictAt *time.Time, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".assignment.HasConflict")
	defer scope.End()
	defer scope.TraceIfError(err)

	// An extension can push a booking's end out by up to the maximum, so the
	// lookback has to cover the longest possible occupied window.
	lookback := time.Duration(constant.ExtensionMaxHours)*time.Hour + serviceDuration + buffer

	bookings, err := s.bookings.ListActiveByWorker(ctx, workerID, at.Add(-lookback), at.Add(buffer))
	if err != nil {
		return false, nil, fmt.Errorf("failed to list active bookings: %w", err)
	}

	for i := range bookings {
		from := bookings[i].RequestedTime.Add(-buffer)
		until := bookings[i].EndTime().Add(buffer)

		if !at.Before(from) && !at.After(until) {
			conflictTime := bookings[i].RequestedTime

			return true, &conflictTime, nil
		}
	}

	return false, nil, nil
}

// Workload counts the worker's active bookings on the given day.
func (s *serviceImpl) Workload(ctx context.Context, workerID string, day time.Time) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".assignment.Workload")
	defer scope.End()
	defer scope.TraceIfError(err)

	count, err = s.bookings.CountActiveOnDay(ctx, workerID, day)
	if err != nil {
		return 0, fmt.Errorf("failed to count day workload: %w", err)
	}

	return count, nil
}

// CheckAvailability combines workload, capacity, and conflict detection into
// one diagnostic answer. When the worker is unavailable it also computes the
// next gap long enough for a service visit.
func (s *serviceImpl) CheckAvailability(ctx context.Context, workerID string, at time.Time) (res dto.Availability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".assignment.CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = dto.Availability{
		WorkerID:  workerID,
		Available: true,
		Capacity:  constant.MaxBookingsPerDay,
	}

	worker, err := s.getWorker(ctx, workerID)
	if err != nil {
		return res, err
	}

	if !worker.IsActive {
		res.Available = false
		res.Reasons = append(res.Reasons, "worker is not active")
	}

	res.Workload, err = s.Workload(ctx, workerID, at)
	if err != nil {
		return res, err
	}

	if res.Workload >= constant.MaxBookingsPerDay {
		res.Available = false
		res.Reasons = append(res.Reasons, fmt.Sprintf("daily capacity reached (%d/%d)", res.Workload, constant.MaxBookingsPerDay))
	}

	res.HasConflict, _, err = s.HasConflict(ctx, workerID, at, constant.ConflictBufferMinutes*time.Minute)
	if err != nil {
		return res, err
	}

	if res.HasConflict {
		res.Available = false
		res.Reasons = append(res.Reasons, "conflicts with an existing booking")
	}

	if !res.Available {
		next, err := s.nextFreeGap(ctx, workerID, at)
		if err != nil {
			return res, err
		}

		res.NextAvailable = &next
	}

	return res, nil
}

// nextFreeGap walks the worker's future active bookings in time order,
// advancing a cursor past each one until the gap to the next booking can fit
// a minimum free window.
func (s *serviceImpl) nextFreeGap(ctx context.Context, workerID string, from time.Time) (time.Time, error) {
	horizon := from.AddDate(0, 0, constant.BookingHorizonDays)

	bookings, err := s.bookings.ListActiveByWorker(ctx, workerID, from, horizon)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to list future bookings: %w", err)
	}

	minGap := time.Duration(constant.MinFreeGapHours) * time.Hour
	cursor := from

	for i := range bookings {
		if bookings[i].RequestedTime.Sub(cursor) >= minGap {
			return cursor, nil
		}

		cursor = bookings[i].RequestedTime.Add(serviceDuration)
	}

	return cursor, nil
}

// AssignOptimal picks the active worker with the lowest workload on the
// requested day, excluding anyone the conflict check rejects. Ties keep the
// pool's stable ordering.
func (s *serviceImpl) AssignOptimal(ctx context.Context, serviceID string, at time.Time) (best workerModel.Worker, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".assignment.AssignOptimal")
	defer scope.End()
	defer scope.TraceIfError(err)

	pool, err := s.workers.GetActive(ctx)
	if err != nil {
		return best, fmt.Errorf("failed to load worker pool: %w", err)
	}

	found := false
	bestWorkload := 0

	for i := range pool {
		conflict, _, err := s.HasConflict(ctx, pool[i].ID, at, constant.ConflictBufferMinutes*time.Minute)
		if err != nil {
			return best, err
		}

		if conflict {
			continue
		}

		workload, err := s.Workload(ctx, pool[i].ID, at)
		if err != nil {
			return best, err
		}

		if workload >= constant.MaxBookingsPerDay {
			continue
		}

		if !found || workload < bestWorkload {
			best = pool[i]
			bestWorkload = workload
			found = true
		}
	}

	if !found {
		return best, failure.Conflict("no worker is available for the requested time") //nolint:wrapcheck
	}

	log.Info().
		Str("workerId", best.ID).
		Str("serviceId", serviceID).
		Int("workload", bestWorkload).
		Time("requestedTime", at).
		Msg("assigned worker with lowest workload")

	return best, nil
}

// RankCandidates scores every active worker against the request attributes
// and returns the top candidates in descending score order. Workers scoring
// zero or below, or beyond the distance limit, are dropped.
func (s *serviceImpl) RankCandidates(ctx context.Context, req dto.RankRequest) (candidates []dto.Candidate, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".assignment.RankCandidates")
	defer scope.End()
	defer scope.TraceIfError(err)

	pool, err := s.workers.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load worker pool: %w", err)
	}

	topN := req.TopN
	if topN <= 0 {
		topN = defaultTopN
	}

	now := timezone.Now()

	for i := range pool {
		conflict, _, err := s.HasConflict(ctx, pool[i].ID, req.RequestedTime, constant.ConflictBufferMinutes*time.Minute)
		if err != nil {
			return nil, err
		}

		if conflict {
			continue
		}

		score, distanceKm, ok := scoreWorker(&pool[i], req, now)
		if !ok {
			continue
		}

		workload, err := s.Workload(ctx, pool[i].ID, req.RequestedTime)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, dto.NewCandidate(pool[i], score, distanceKm, workload))
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].Score > candidates[b].Score
	})

	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	return candidates, nil
}

// scoreWorker computes the composite fitness score for one candidate. The
// boolean is false when the candidate must be excluded outright.
func scoreWorker(worker *workerModel.Worker, req dto.RankRequest, now time.Time) (score int, distanceKm float64, ok bool) {
	score = baseScore

	if req.HasLocation {
		distanceKm = haversineKm(req.Latitude, req.Longitude, worker.Latitude, worker.Longitude)
		if distanceKm > constant.MaxAssignDistanceKm {
			return 0, distanceKm, false
		}

		score += distanceBonus(distanceKm)
	}

	if req.District != constant.Empty && worker.ServesDistrict(req.District) {
		score += 30
	}

	exact, wildcard := worker.HasSpecialization(req.ServiceCategory)

	switch {
	case exact:
		score += 40
	case wildcard:
		score += 20
	}

	score += ratingBonus(worker.Rating)
	score += completionRateBonus(worker.CompletionRate)
	score += responseTimeBonus(worker.AvgResponseMinutes)
	score += urgencyBonus(req.Urgency, worker.OnlineSince, now)

	score += 5 * len(worker.Certifications)

	// Cold-start boost so brand-new workers get their first jobs.
	if worker.LifetimeJobs < 5 {
		score += 10
	}

	if score <= 0 {
		return score, distanceKm, false
	}

	return score, distanceKm, true
}

func distanceBonus(km float64) int {
	switch {
	case km <= 2:
		return 50
	case km <= 5:
		return 40
	case km <= 10:
		return 30
	case km <= 15:
		return 20
	default:
		return 10
	}
}

func ratingBonus(rating float64) int {
	switch {
	case rating >= 4.5:
		return 25
	case rating >= 4.0:
		return 15
	case rating >= 3.5:
		return 5
	case rating >= 3.0:
		return 0
	default:
		return -20
	}
}

func completionRateBonus(rate float64) int {
	switch {
	case rate >= 0.95:
		return 20
	case rate >= 0.85:
		return 10
	case rate >= 0.75:
		return 0
	default:
		return -15
	}
}

func responseTimeBonus(minutes int) int {
	switch {
	case minutes <= 5:
		return 15
	case minutes <= 15:
		return 8
	case minutes <= 30:
		return 0
	default:
		return -10
	}
}

func urgencyBonus(urgency string, onlineSince *time.Time, now time.Time) int {
	if onlineSince == nil {
		return 0
	}

	onlineFor := now.Sub(*onlineSince)

	if urgency == dto.UrgencyEmergency && onlineFor <= 5*time.Minute {
		return 30
	}

	if (urgency == dto.UrgencyEmergency || urgency == dto.UrgencyUrgent) && onlineFor <= 15*time.Minute {
		return 15
	}

	return 0
}

// haversineKm is the great-circle distance between two coordinates.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// AssignPending retries auto-assignment for a booking that entered the queue
// unassigned. Each attempt re-checks that the booking is still pending and
// claims the worker with a conditional write, so a racing manual confirm
// simply wins. After the attempts run out an operator-facing manual
// assignment signal is raised and the booking stays pending.
func (s *serviceImpl) AssignPending(ctx context.Context, bookingID string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".assignment.AssignPending")
	defer scope.End()

	for attempt := range constant.AssignMaxRetries {
		if attempt > 0 {
			backoff := constant.AssignRetryBaseBackoff << attempt

			select {
			case <-ctx.Done():
				log.Warn().Str("bookingId", bookingID).Msg("assignment retry cancelled")

				return
			case <-time.After(backoff):
			}
		}

		booking, err := s.getBooking(ctx, bookingID)
		if err != nil {
			log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to reload booking for assignment")

			continue
		}

		if booking.Status != bookingModel.StatusPending {
			log.Info().Str("bookingId", bookingID).Str("status", booking.Status).Msg("booking left pending state, stopping assignment")

			return
		}

		if booking.WorkerID != nil {
			return
		}

		worker, err := s.AssignOptimal(ctx, booking.ServiceID, booking.RequestedTime)
		if err != nil {
			log.Warn().Err(err).Str("bookingId", bookingID).Int("attempt", attempt+1).Msg("assignment attempt failed")

			continue
		}

		claimed, err := s.bookings.AssignWorkerIfUnassigned(ctx, bookingID, worker.ID)
		if err != nil {
			log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to claim worker for booking")

			continue
		}

		if claimed {
			log.Info().Str("bookingId", bookingID).Str("workerId", worker.ID).Msg("auto-assigned worker")

			return
		}
	}

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Str("bookingId", bookingID).Msg("failed to reload booking after assignment retries")

		return
	}

	s.notifier.Publish(ctx, notifier.Event{
		Type:       notifier.EventManualAssignment,
		BookingID:  bookingID,
		CustomerID: booking.CustomerID,
		Status:     booking.Status,
		OccurredAt: timezone.Now().Format(constant.DateFormat),
	})

	log.Warn().Str("bookingId", bookingID).Msg("assignment retries exhausted, manual assignment needed")
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

func (s *serviceImpl) getBooking(ctx context.Context, bookingID string) (bookingModel.Booking, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: bookingModel.FieldID, Operator: gDto.FilterOperatorEq, Value: bookingID},
		},
	}

	booking, err := s.bookings.Get(ctx, filter)
	if err != nil {
		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return booking, nil
}
