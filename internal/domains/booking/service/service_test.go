package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/config"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/otel/mocks"
	assignmentMocks "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/assignment/service/mocks"
	repoMocks "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/booking/mocks"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/booking/model"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/booking/model/dto"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/booking/service"
	customerMocks "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/customer/mocks"
	customerModel "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/customer/model"
	scheduleMocks "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/schedule/service/mocks"
	workerMocks "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/worker/mocks"
	workerModel "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/worker/model"
	ledgerMocks "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/external/ledger/mocks"
	notifierMocks "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/external/notifier/mocks"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/external/pricing"
	pricingMocks "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/external/pricing/mocks"
	cacheMocks "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/cache/mocks"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/constant"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/failure"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/lock"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/timezone"
)

type fixture struct {
	repo       *repoMocks.MockBooking
	customers  *customerMocks.MockCustomer
	workers    *workerMocks.MockWorker
	schedule   *scheduleMocks.MockSchedule
	assignment *assignmentMocks.MockAssignment
	pricing    *pricingMocks.MockService
	ledger     *ledgerMocks.MockService
	notifier   *notifierMocks.MockService
	cache      *cacheMocks.MockRedisCache
	svc        service.Booking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		repo:       repoMocks.NewMockBooking(ctrl),
		customers:  customerMocks.NewMockCustomer(ctrl),
		workers:    workerMocks.NewMockWorker(ctrl),
		schedule:   scheduleMocks.NewMockSchedule(ctrl),
		assignment: assignmentMocks.NewMockAssignment(ctrl),
		pricing:    pricingMocks.NewMockService(ctrl),
		ledger:     ledgerMocks.NewMockService(ctrl),
		notifier:   notifierMocks.NewMockService(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.svc = service.New(
		f.repo, f.customers, f.workers, f.schedule, f.assignment,
		f.pricing, f.ledger, f.notifier, lock.NewKeyed(), cfg, f.cache, mocks.NewOtel(),
	)

	// Events and cache invalidation run on background goroutines.
	f.notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func actorCtx(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func strPtr(s string) *string { return &s }

func TestBookingService_Create(t *testing.T) {
	requestedAt := timezone.Now().Add(48 * time.Hour).Truncate(time.Minute)

	validReq := dto.CreateBookingRequest{
		ServiceID:     "service-1",
		CustomerID:    "customer-1",
		RequestedTime: timezone.Format(requestedAt, constant.DateFormat),
		Address:       "12 Nguyen Hue, District 1",
	}

	quote := pricing.Quote{BasePrice: 300000, Discount: 30000, FinalPrice: 270000}

	t.Run("rejects malformed requested time", func(t *testing.T) {
		f := newFixture(t)

		req := validReq
		req.RequestedTime = "soon"

		_, err := f.svc.Create(actorCtx("customer-1", constant.RoleCustomer), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("rejects times inside the minimum lead window", func(t *testing.T) {
		f := newFixture(t)

		req := validReq
		req.RequestedTime = timezone.Format(timezone.Now().Add(time.Minute), constant.DateFormat)

		_, err := f.svc.Create(actorCtx("customer-1", constant.RoleCustomer), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("rejects times past the booking horizon", func(t *testing.T) {
		f := newFixture(t)

		req := validReq
		req.RequestedTime = timezone.Format(timezone.Now().AddDate(0, 0, constant.BookingHorizonDays+1), constant.DateFormat)

		_, err := f.svc.Create(actorCtx("customer-1", constant.RoleCustomer), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newFixture(t)

		f.customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(actorCtx("customer-1", constant.RoleCustomer), validReq)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("requested worker path snapshots the quote", func(t *testing.T) {
		f := newFixture(t)

		req := validReq
		req.WorkerID = "worker-1"

		f.customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.pricing.EXPECT().Quote(gomock.Any(), "service-1", "customer-1").Return(quote, nil)
		f.workers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(workerModel.Worker{ID: "worker-1", IsActive: true}, nil)
		f.assignment.EXPECT().
			HasConflict(gomock.Any(), "worker-1", gomock.Any(), constant.ConflictBufferMinutes*time.Minute).
			Return(false, nil, nil)
		f.assignment.EXPECT().Workload(gomock.Any(), "worker-1", gomock.Any()).Return(3, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Equal(t, model.StatusPending, booking.Status)
				assert.Equal(t, quote.FinalPrice, booking.FinalPrice)
				assert.Equal(t, quote.BasePrice, booking.BasePrice)

				if assert.NotNil(t, booking.WorkerID) {
					assert.Equal(t, "worker-1", *booking.WorkerID)
				}

				return nil
			})
		f.schedule.EXPECT().
			ClaimWindow(gomock.Any(), "worker-1", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, start, end time.Time) error {
				assert.True(t, start.Equal(requestedAt))
				assert.True(t, end.Equal(requestedAt.Add(time.Hour)))

				return nil
			})

		res, err := f.svc.Create(actorCtx("customer-1", constant.RoleCustomer), req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)
		assert.Equal(t, quote.FinalPrice, res.PricingSnapshot.FinalPrice)
	})

	t.Run("requested worker is inactive", func(t *testing.T) {
		f := newFixture(t)

		req := validReq
		req.WorkerID = "worker-1"

		f.customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.pricing.EXPECT().Quote(gomock.Any(), "service-1", "customer-1").Return(quote, nil)
		f.workers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(workerModel.Worker{ID: "worker-1"}, nil)

		_, err := f.svc.Create(actorCtx("customer-1", constant.RoleCustomer), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("requested worker has a conflicting booking", func(t *testing.T) {
		f := newFixture(t)

		req := validReq
		req.WorkerID = "worker-1"

		conflictAt := requestedAt.Add(-15 * time.Minute)

		f.customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.pricing.EXPECT().Quote(gomock.Any(), "service-1", "customer-1").Return(quote, nil)
		f.workers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(workerModel.Worker{ID: "worker-1", IsActive: true}, nil)
		f.assignment.EXPECT().
			HasConflict(gomock.Any(), "worker-1", gomock.Any(), gomock.Any()).
			Return(true, &conflictAt, nil)

		_, err := f.svc.Create(actorCtx("customer-1", constant.RoleCustomer), req)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("requested worker at daily capacity", func(t *testing.T) {
		f := newFixture(t)

		req := validReq
		req.WorkerID = "worker-1"

		f.customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.pricing.EXPECT().Quote(gomock.Any(), "service-1", "customer-1").Return(quote, nil)
		f.workers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(workerModel.Worker{ID: "worker-1", IsActive: true}, nil)
		f.assignment.EXPECT().
			HasConflict(gomock.Any(), "worker-1", gomock.Any(), gomock.Any()).
			Return(false, nil, nil)
		f.assignment.EXPECT().Workload(gomock.Any(), "worker-1", gomock.Any()).Return(constant.MaxBookingsPerDay, nil)

		_, err := f.svc.Create(actorCtx("customer-1", constant.RoleCustomer), req)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("auto-assignment picks a worker", func(t *testing.T) {
		f := newFixture(t)

		f.customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.pricing.EXPECT().Quote(gomock.Any(), "service-1", "customer-1").Return(quote, nil)
		f.assignment.EXPECT().
			AssignOptimal(gomock.Any(), "service-1", gomock.Any()).
			Return(workerModel.Worker{ID: "worker-2", IsActive: true}, nil)
		f.assignment.EXPECT().
			HasConflict(gomock.Any(), "worker-2", gomock.Any(), gomock.Any()).
			Return(false, nil, nil)
		f.assignment.EXPECT().Workload(gomock.Any(), "worker-2", gomock.Any()).Return(0, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.schedule.EXPECT().
			ClaimWindow(gomock.Any(), "worker-2", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Create(actorCtx("customer-1", constant.RoleCustomer), validReq)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)

		if assert.NotNil(t, res.WorkerID) {
			assert.Equal(t, "worker-2", *res.WorkerID)
		}
	})

	t.Run("no worker available leaves the booking pending", func(t *testing.T) {
		f := newFixture(t)

		f.customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.pricing.EXPECT().Quote(gomock.Any(), "service-1", "customer-1").Return(quote, nil)
		f.assignment.EXPECT().
			AssignOptimal(gomock.Any(), "service-1", gomock.Any()).
			Return(workerModel.Worker{}, failure.Conflict("no worker is available for the requested time"))
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Nil(t, booking.WorkerID)

				return nil
			})
		f.assignment.EXPECT().AssignPending(gomock.Any(), gomock.Any()).AnyTimes()

		res, err := f.svc.Create(actorCtx("customer-1", constant.RoleCustomer), validReq)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Nil(t, res.WorkerID)
		assert.Equal(t, model.StatusPending, res.Status)
	})

	t.Run("assignment infrastructure failure is not swallowed", func(t *testing.T) {
		f := newFixture(t)

		f.customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.pricing.EXPECT().Quote(gomock.Any(), "service-1", "customer-1").Return(quote, nil)
		f.assignment.EXPECT().
			AssignOptimal(gomock.Any(), "service-1", gomock.Any()).
			Return(workerModel.Worker{}, errors.New("db down"))

		_, err := f.svc.Create(actorCtx("customer-1", constant.RoleCustomer), validReq)

		assert.Error(t, err)
	})

	t.Run("slot linkage failure never fails creation", func(t *testing.T) {
		f := newFixture(t)

		req := validReq
		req.WorkerID = "worker-1"

		f.customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.pricing.EXPECT().Quote(gomock.Any(), "service-1", "customer-1").Return(quote, nil)
		f.workers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(workerModel.Worker{ID: "worker-1", IsActive: true}, nil)
		f.assignment.EXPECT().HasConflict(gomock.Any(), "worker-1", gomock.Any(), gomock.Any()).Return(false, nil, nil)
		f.assignment.EXPECT().Workload(gomock.Any(), "worker-1", gomock.Any()).Return(0, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.schedule.EXPECT().
			ClaimWindow(gomock.Any(), "worker-1", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("no matching slot row"))

		_, err := f.svc.Create(actorCtx("customer-1", constant.RoleCustomer), req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("urgent note derives urgent priority", func(t *testing.T) {
		f := newFixture(t)

		req := validReq
		req.WorkerID = "worker-1"
		req.Note = "nước tràn khắp nhà, cần gấp"

		f.customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.pricing.EXPECT().Quote(gomock.Any(), "service-1", "customer-1").Return(quote, nil)
		f.workers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(workerModel.Worker{ID: "worker-1", IsActive: true}, nil)
		f.assignment.EXPECT().HasConflict(gomock.Any(), "worker-1", gomock.Any(), gomock.Any()).Return(false, nil, nil)
		f.assignment.EXPECT().Workload(gomock.Any(), "worker-1", gomock.Any()).Return(0, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.schedule.EXPECT().
			ClaimWindow(gomock.Any(), "worker-1", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Create(actorCtx("customer-1", constant.RoleCustomer), req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.PriorityUrgent, res.Priority)
	})
}

func TestBookingService_UpdateStatus_Confirm(t *testing.T) {
	requestedAt := timezone.Now().Add(48 * time.Hour)

	pendingUnassigned := model.Booking{
		ID:            "booking-1",
		CustomerID:    "customer-1",
		ServiceID:     "service-1",
		RequestedTime: requestedAt,
		Status:        model.StatusPending,
	}

	pendingAssigned := pendingUnassigned
	pendingAssigned.WorkerID = strPtr("worker-1")

	confirmReq := dto.UpdateStatusRequest{Status: model.StatusConfirmed}

	t.Run("worker claims an unassigned booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingUnassigned, nil)
		f.repo.EXPECT().AssignWorkerIfUnassigned(gomock.Any(), "booking-1", "worker-1").Return(true, nil)
		f.repo.EXPECT().
			UpdateStatusIf(gomock.Any(), "booking-1", model.StatusPending, gomock.Any()).
			Return(true, nil)
		f.schedule.EXPECT().
			ClaimWindow(gomock.Any(), "worker-1", "booking-1", gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.UpdateStatus(actorCtx("worker-1", constant.RoleWorker), "booking-1", confirmReq)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)

		if assert.NotNil(t, res.WorkerID) {
			assert.Equal(t, "worker-1", *res.WorkerID)
		}
	})

	t.Run("second worker loses the claim race", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingUnassigned, nil)
		f.repo.EXPECT().AssignWorkerIfUnassigned(gomock.Any(), "booking-1", "worker-2").Return(false, nil)

		_, err := f.svc.UpdateStatus(actorCtx("worker-2", constant.RoleWorker), "booking-1", confirmReq)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("worker cannot confirm another worker's booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingAssigned, nil)

		_, err := f.svc.UpdateStatus(actorCtx("worker-2", constant.RoleWorker), "booking-1", confirmReq)

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("estimated completion triggers schedule regeneration", func(t *testing.T) {
		f := newFixture(t)

		estimate := requestedAt.Add(2 * time.Hour)
		req := dto.UpdateStatusRequest{
			Status:              model.StatusConfirmed,
			EstimatedCompletion: timezone.Format(estimate, constant.DateFormat),
		}

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingAssigned, nil)
		f.repo.EXPECT().
			UpdateStatusIf(gomock.Any(), "booking-1", model.StatusPending, gomock.Any()).
			Return(true, nil)
		f.schedule.EXPECT().
			RegenerateAfterCompletion(gomock.Any(), "worker-1", gomock.Any()).
			Return(nil)

		res, err := f.svc.UpdateStatus(actorCtx("worker-1", constant.RoleWorker), "booking-1", req)

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.NotNil(t, res.EstimatedCompletion)
	})

	t.Run("illegal transition", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingAssigned, nil)

		_, err := f.svc.UpdateStatus(actorCtx("worker-1", constant.RoleWorker), "booking-1", dto.UpdateStatusRequest{Status: model.StatusDone})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("booking not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.UpdateStatus(actorCtx("worker-1", constant.RoleWorker), "missing", confirmReq)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_UpdateStatus_StartAndComplete(t *testing.T) {
	confirmed := model.Booking{
		ID:            "booking-1",
		CustomerID:    "customer-1",
		WorkerID:      strPtr("worker-1"),
		ServiceID:     "service-1",
		RequestedTime: timezone.Now().Add(time.Hour),
		Status:        model.StatusConfirmed,
		FinalPrice:    270000,
	}

	inProgress := confirmed
	inProgress.Status = model.StatusInProgress

	t.Run("assigned worker starts the job", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)
		f.repo.EXPECT().
			UpdateStatusIf(gomock.Any(), "booking-1", model.StatusConfirmed, gomock.Any()).
			Return(true, nil)
		f.schedule.EXPECT().MarkBusy(gomock.Any(), "worker-1", "booking-1", gomock.Any()).Return(nil)

		res, err := f.svc.UpdateStatus(actorCtx("worker-1", constant.RoleWorker), "booking-1", dto.UpdateStatusRequest{Status: model.StatusInProgress})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusInProgress, res.Status)
	})

	t.Run("customer cannot start the job", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)

		_, err := f.svc.UpdateStatus(actorCtx("customer-1", constant.RoleCustomer), "booking-1", dto.UpdateStatusRequest{Status: model.StatusInProgress})

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("completion runs loyalty, ledger, and schedule effects", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inProgress, nil)
		f.repo.EXPECT().
			UpdateStatusIf(gomock.Any(), "booking-1", model.StatusInProgress, gomock.Any()).
			Return(true, nil)
		f.customers.EXPECT().
			RecordCompletion(gomock.Any(), "customer-1", "worker-1").
			Return(constant.VIPCompletedThreshold, customerModel.LoyaltyVIP, nil)
		f.ledger.EXPECT().
			DeductPlatformFee(gomock.Any(), "worker-1", "booking-1", int64(270000)).
			Return(nil)
		f.schedule.EXPECT().ReleaseBooking(gomock.Any(), "worker-1", "booking-1").Return(nil)
		f.schedule.EXPECT().RegenerateAfterCompletion(gomock.Any(), "worker-1", gomock.Any()).Return(nil)

		res, err := f.svc.UpdateStatus(actorCtx("worker-1", constant.RoleWorker), "booking-1", dto.UpdateStatusRequest{Status: model.StatusDone})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusDone, res.Status)
	})

	t.Run("side effect failures never roll back completion", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inProgress, nil)
		f.repo.EXPECT().
			UpdateStatusIf(gomock.Any(), "booking-1", model.StatusInProgress, gomock.Any()).
			Return(true, nil)
		f.customers.EXPECT().
			RecordCompletion(gomock.Any(), "customer-1", "worker-1").
			Return(0, "", errors.New("loyalty service down"))
		f.ledger.EXPECT().
			DeductPlatformFee(gomock.Any(), "worker-1", "booking-1", int64(270000)).
			Return(errors.New("ledger unavailable"))
		f.schedule.EXPECT().ReleaseBooking(gomock.Any(), "worker-1", "booking-1").Return(errors.New("schedule busy"))
		f.schedule.EXPECT().RegenerateAfterCompletion(gomock.Any(), "worker-1", gomock.Any()).Return(errors.New("schedule busy"))

		res, err := f.svc.UpdateStatus(actorCtx("worker-1", constant.RoleWorker), "booking-1", dto.UpdateStatusRequest{Status: model.StatusDone})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusDone, res.Status)
	})

	t.Run("stale read loses the conditional write", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)
		f.repo.EXPECT().
			UpdateStatusIf(gomock.Any(), "booking-1", model.StatusConfirmed, gomock.Any()).
			Return(false, nil)

		_, err := f.svc.UpdateStatus(actorCtx("worker-1", constant.RoleWorker), "booking-1", dto.UpdateStatusRequest{Status: model.StatusInProgress})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	booking := model.Booking{
		ID:            "booking-1",
		CustomerID:    "customer-1",
		WorkerID:      strPtr("worker-1"),
		ServiceID:     "service-1",
		RequestedTime: timezone.Now().Add(72 * time.Hour),
		Status:        model.StatusConfirmed,
	}

	tests := []struct {
		name      string
		ctx       context.Context
		booking   model.Booking
		setupMock func(f *fixture)
		wantErr   bool
		wantCode  int
	}{
		{
			name:    "customer cancels with enough notice",
			ctx:     actorCtx("customer-1", constant.RoleCustomer),
			booking: booking,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().
					UpdateStatusIf(gomock.Any(), "booking-1", model.StatusConfirmed, gomock.Any()).
					Return(true, nil)
				f.schedule.EXPECT().ReleaseBooking(gomock.Any(), "worker-1", "booking-1").Return(nil)
			},
		},
		{
			name: "customer inside the notice window",
			ctx:  actorCtx("customer-1", constant.RoleCustomer),
			booking: func() model.Booking {
				b := booking
				b.RequestedTime = timezone.Now().Add(12 * time.Hour)

				return b
			}(),
			setupMock: func(f *fixture) {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:      "customer cannot cancel someone else's booking",
			ctx:       actorCtx("customer-2", constant.RoleCustomer),
			booking:   booking,
			setupMock: func(f *fixture) {},
			wantErr:   true,
			wantCode:  403,
		},
		{
			name:      "unassigned worker cannot cancel",
			ctx:       actorCtx("worker-2", constant.RoleWorker),
			booking:   booking,
			setupMock: func(f *fixture) {},
			wantErr:   true,
			wantCode:  403,
		},
		{
			name: "assigned worker cancels inside the notice window",
			ctx:  actorCtx("worker-1", constant.RoleWorker),
			booking: func() model.Booking {
				b := booking
				b.RequestedTime = timezone.Now().Add(2 * time.Hour)

				return b
			}(),
			setupMock: func(f *fixture) {
				f.repo.EXPECT().
					UpdateStatusIf(gomock.Any(), "booking-1", model.StatusConfirmed, gomock.Any()).
					Return(true, nil)
				f.schedule.EXPECT().ReleaseBooking(gomock.Any(), "worker-1", "booking-1").Return(nil)
			},
		},
		{
			name:    "admin cancels any time",
			ctx:     actorCtx("admin-1", constant.RoleAdmin),
			booking: booking,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().
					UpdateStatusIf(gomock.Any(), "booking-1", model.StatusConfirmed, gomock.Any()).
					Return(true, nil)
				f.schedule.EXPECT().ReleaseBooking(gomock.Any(), "worker-1", "booking-1").Return(nil)
			},
		},
		{
			name: "in-progress booking cannot be cancelled",
			ctx:  actorCtx("admin-1", constant.RoleAdmin),
			booking: func() model.Booking {
				b := booking
				b.Status = model.StatusInProgress

				return b
			}(),
			setupMock: func(f *fixture) {},
			wantErr:   true,
			wantCode:  400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.booking, nil)
			tt.setupMock(f)

			res, err := f.svc.Cancel(tt.ctx, "booking-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusCancelled, res.Status)
		})
	}
}

func TestBookingService_Extend(t *testing.T) {
	confirmed := model.Booking{
		ID:            "booking-1",
		CustomerID:    "customer-1",
		WorkerID:      strPtr("worker-1"),
		ServiceID:     "service-1",
		RequestedTime: timezone.Now().Add(time.Hour).Truncate(time.Minute),
		Status:        model.StatusConfirmed,
	}

	t.Run("blocks hours from the current end", func(t *testing.T) {
		f := newFixture(t)

		expectedFrom := confirmed.EndTime()

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)
		f.schedule.EXPECT().
			BlockHours(gomock.Any(), "worker-1", "booking-1", expectedFrom, 2).
			Return(nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, 2, fields["extra_hours"])
				assert.Equal(t, expectedFrom.Add(2*time.Hour), fields["extended_end_time"])

				return nil
			})

		res, err := f.svc.Extend(actorCtx("customer-1", constant.RoleCustomer), "booking-1", dto.ExtendBookingRequest{AdditionalHours: 2})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Extension.ExtraHours)

		if assert.NotNil(t, res.Extension.ExtendedEndTime) {
			assert.Equal(t, expectedFrom.Add(2*time.Hour), *res.Extension.ExtendedEndTime)
		}
	})

	t.Run("repeat extension accumulates from the extended end", func(t *testing.T) {
		f := newFixture(t)

		alreadyExtended := confirmed
		alreadyExtended.ExtraHours = 2
		extendedEnd := confirmed.RequestedTime.Add(3 * time.Hour)
		alreadyExtended.ExtendedEndTime = &extendedEnd

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(alreadyExtended, nil)
		f.schedule.EXPECT().
			BlockHours(gomock.Any(), "worker-1", "booking-1", extendedEnd, 1).
			Return(nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, 3, fields["extra_hours"])

				return nil
			})

		res, err := f.svc.Extend(actorCtx("admin-1", constant.RoleAdmin), "booking-1", dto.ExtendBookingRequest{AdditionalHours: 1})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, 3, res.Extension.ExtraHours)
	})

	t.Run("hours outside the allowed range", func(t *testing.T) {
		f := newFixture(t)

		for _, hours := range []int{0, constant.ExtensionMaxHours + 1} {
			_, err := f.svc.Extend(actorCtx("customer-1", constant.RoleCustomer), "booking-1", dto.ExtendBookingRequest{AdditionalHours: hours})

			assert.Error(t, err)
			assert.Equal(t, 400, failure.GetCode(err))
		}
	})

	t.Run("pending booking cannot be extended", func(t *testing.T) {
		f := newFixture(t)

		pending := confirmed
		pending.Status = model.StatusPending

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)

		_, err := f.svc.Extend(actorCtx("customer-1", constant.RoleCustomer), "booking-1", dto.ExtendBookingRequest{AdditionalHours: 2})

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unrelated customer cannot extend", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)

		_, err := f.svc.Extend(actorCtx("customer-2", constant.RoleCustomer), "booking-1", dto.ExtendBookingRequest{AdditionalHours: 2})

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	booking := model.Booking{
		ID:         "booking-1",
		CustomerID: "customer-1",
		Status:     model.StatusPending,
	}

	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil).AnyTimes()

		res, err := f.svc.Get(context.Background(), "booking-1")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.BookingResponse)
				if ok {
					res.ID = "booking-1"
				}

				return nil
			})

		res, err := f.svc.Get(context.Background(), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
