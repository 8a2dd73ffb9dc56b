package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/otel/mocks"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/assignment/model/dto"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/assignment/service"
	bookingMocks "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/booking/mocks"
	bookingModel "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/booking/model"
	workerMocks "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/worker/mocks"
	workerModel "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/worker/model"
	notifierMocks "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/external/notifier/mocks"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/constant"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/failure"
)

const buffer = constant.ConflictBufferMinutes * time.Minute

func TestAssignmentService_HasConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWorkerRepo := workerMocks.NewMockWorker(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockNotifier := notifierMocks.NewMockService(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockWorkerRepo, mockBookingRepo, mockNotifier, mockOtel)

	base := time.Date(2026, 9, 10, 10, 0, 0, 0, time.UTC)

	existing := func(at time.Time) []bookingModel.Booking {
		return []bookingModel.Booking{{
			ID:            "booking-1",
			RequestedTime: at,
			Status:        bookingModel.StatusConfirmed,
		}}
	}

	tests := []struct {
		name         string
		at           time.Time
		setupMock    func()
		wantConflict bool
	}{
		{
			name: "no active bookings",
			at:   base,
			setupMock: func() {
				mockBookingRepo.EXPECT().
					ListActiveByWorker(gomock.Any(), "worker-1", gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantConflict: false,
		},
		{
			name: "candidate inside occupied window",
			at:   base.Add(30 * time.Minute),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					ListActiveByWorker(gomock.Any(), "worker-1", gomock.Any(), gomock.Any()).
					Return(existing(base), nil)
			},
			wantConflict: true,
		},
		{
			// Booking 10:00-11:00, candidate 11:15 is still inside the
			// half-hour travel buffer after the end.
			name: "candidate inside trailing buffer",
			at:   base.Add(75 * time.Minute),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					ListActiveByWorker(gomock.Any(), "worker-1", gomock.Any(), gomock.Any()).
					Return(existing(base), nil)
			},
			wantConflict: true,
		},
		{
			name: "candidate exactly at buffer edge",
			at:   base.Add(90 * time.Minute),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					ListActiveByWorker(gomock.Any(), "worker-1", gomock.Any(), gomock.Any()).
					Return(existing(base), nil)
			},
			wantConflict: true,
		},
		{
			name: "candidate just past the buffer",
			at:   base.Add(91 * time.Minute),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					ListActiveByWorker(gomock.Any(), "worker-1", gomock.Any(), gomock.Any()).
					Return(existing(base), nil)
			},
			wantConflict: false,
		},
		{
			name: "candidate inside leading buffer",
			at:   base.Add(-20 * time.Minute),
			setupMock: func() {
				mockBookingRepo.EXPECT().
					ListActiveByWorker(gomock.Any(), "worker-1", gomock.Any(), gomock.Any()).
					Return(existing(base), nil)
			},
			wantConflict: true,
		},
		{
			name: "extended booking still blocks",
			at:   base.Add(4 * time.Hour),
			setupMock: func() {
				extendedEnd := base.Add(5 * time.Hour)
				mockBookingRepo.EXPECT().
					ListActiveByWorker(gomock.Any(), "worker-1", gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{{
						ID:              "booking-1",
						RequestedTime:   base,
						ExtendedEndTime: &extendedEnd,
						Status:          bookingModel.StatusConfirmed,
					}}, nil)
			},
			wantConflict: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			conflict, conflictAt, err := svc.HasConflict(context.Background(), "worker-1", tt.at, buffer)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantConflict, conflict)

			if tt.wantConflict {
				assert.NotNil(t, conflictAt)
			} else {
				assert.Nil(t, conflictAt)
			}
		})
	}
}

func TestAssignmentService_AssignOptimal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWorkerRepo := workerMocks.NewMockWorker(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockNotifier := notifierMocks.NewMockService(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockWorkerRepo, mockBookingRepo, mockNotifier, mockOtel)

	at := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)

	pool := []workerModel.Worker{
		{ID: "worker-1", IsActive: true},
		{ID: "worker-2", IsActive: true},
		{ID: "worker-3", IsActive: true},
	}

	tests := []struct {
		name       string
		setupMock  func()
		wantWorker string
		wantErr    bool
		wantCode   int
	}{
		{
			name: "lowest workload wins",
			setupMock: func() {
				mockWorkerRepo.EXPECT().GetActive(gomock.Any()).Return(pool, nil)

				for _, w := range pool {
					mockBookingRepo.EXPECT().
						ListActiveByWorker(gomock.Any(), w.ID, gomock.Any(), gomock.Any()).
						Return(nil, nil)
				}

				mockBookingRepo.EXPECT().CountActiveOnDay(gomock.Any(), "worker-1", gomock.Any()).Return(4, nil)
				mockBookingRepo.EXPECT().CountActiveOnDay(gomock.Any(), "worker-2", gomock.Any()).Return(1, nil)
				mockBookingRepo.EXPECT().CountActiveOnDay(gomock.Any(), "worker-3", gomock.Any()).Return(3, nil)
			},
			wantWorker: "worker-2",
		},
		{
			name: "tie keeps pool order",
			setupMock: func() {
				mockWorkerRepo.EXPECT().GetActive(gomock.Any()).Return(pool, nil)

				for _, w := range pool {
					mockBookingRepo.EXPECT().
						ListActiveByWorker(gomock.Any(), w.ID, gomock.Any(), gomock.Any()).
						Return(nil, nil)
					mockBookingRepo.EXPECT().
						CountActiveOnDay(gomock.Any(), w.ID, gomock.Any()).
						Return(2, nil)
				}
			},
			wantWorker: "worker-1",
		},
		{
			name: "conflicted worker is skipped",
			setupMock: func() {
				mockWorkerRepo.EXPECT().GetActive(gomock.Any()).Return(pool[:2], nil)

				mockBookingRepo.EXPECT().
					ListActiveByWorker(gomock.Any(), "worker-1", gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{{ID: "b", RequestedTime: at}}, nil)

				mockBookingRepo.EXPECT().
					ListActiveByWorker(gomock.Any(), "worker-2", gomock.Any(), gomock.Any()).
					Return(nil, nil)
				mockBookingRepo.EXPECT().CountActiveOnDay(gomock.Any(), "worker-2", gomock.Any()).Return(5, nil)
			},
			wantWorker: "worker-2",
		},
		{
			name: "worker at daily capacity is skipped",
			setupMock: func() {
				mockWorkerRepo.EXPECT().GetActive(gomock.Any()).Return(pool[:2], nil)

				for _, w := range pool[:2] {
					mockBookingRepo.EXPECT().
						ListActiveByWorker(gomock.Any(), w.ID, gomock.Any(), gomock.Any()).
						Return(nil, nil)
				}

				mockBookingRepo.EXPECT().CountActiveOnDay(gomock.Any(), "worker-1", gomock.Any()).Return(constant.MaxBookingsPerDay, nil)
				mockBookingRepo.EXPECT().CountActiveOnDay(gomock.Any(), "worker-2", gomock.Any()).Return(7, nil)
			},
			wantWorker: "worker-2",
		},
		{
			name: "nobody available",
			setupMock: func() {
				mockWorkerRepo.EXPECT().GetActive(gomock.Any()).Return(pool[:1], nil)

				mockBookingRepo.EXPECT().
					ListActiveByWorker(gomock.Any(), "worker-1", gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{{ID: "b", RequestedTime: at}}, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "empty pool",
			setupMock: func() {
				mockWorkerRepo.EXPECT().GetActive(gomock.Any()).Return(nil, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "pool load failure",
			setupMock: func() {
				mockWorkerRepo.EXPECT().GetActive(gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			worker, err := svc.AssignOptimal(context.Background(), "service-1", at)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantWorker, worker.ID)
		})
	}
}

func TestAssignmentService_CheckAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWorkerRepo := workerMocks.NewMockWorker(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockNotifier := notifierMocks.NewMockService(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockWorkerRepo, mockBookingRepo, mockNotifier, mockOtel)

	at := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)

	activeWorker := workerModel.Worker{ID: "worker-1", IsActive: true}

	t.Run("available worker", func(t *testing.T) {
		mockWorkerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeWorker, nil)
		mockBookingRepo.EXPECT().CountActiveOnDay(gomock.Any(), "worker-1", gomock.Any()).Return(2, nil)
		mockBookingRepo.EXPECT().
			ListActiveByWorker(gomock.Any(), "worker-1", gomock.Any(), gomock.Any()).
			Return(nil, nil)

		res, err := svc.CheckAvailability(context.Background(), "worker-1", at)

		assert.NoError(t, err)
		assert.True(t, res.Available)
		assert.Equal(t, 2, res.Workload)
		assert.Equal(t, constant.MaxBookingsPerDay, res.Capacity)
		assert.Empty(t, res.Reasons)
		assert.Nil(t, res.NextAvailable)
	})

	t.Run("at capacity with next gap after queue", func(t *testing.T) {
		queue := []bookingModel.Booking{
			{ID: "b1", RequestedTime: at},
			{ID: "b2", RequestedTime: at.Add(time.Hour)},
		}

		mockWorkerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeWorker, nil)
		mockBookingRepo.EXPECT().CountActiveOnDay(gomock.Any(), "worker-1", gomock.Any()).Return(constant.MaxBookingsPerDay, nil)
		// Conflict probe, then the gap walk.
		mockBookingRepo.EXPECT().
			ListActiveByWorker(gomock.Any(), "worker-1", gomock.Any(), gomock.Any()).
			Return(queue, nil)
		mockBookingRepo.EXPECT().
			ListActiveByWorker(gomock.Any(), "worker-1", gomock.Any(), gomock.Any()).
			Return(queue, nil)

		res, err := svc.CheckAvailability(context.Background(), "worker-1", at)

		assert.NoError(t, err)
		assert.False(t, res.Available)
		assert.True(t, res.HasConflict)
		assert.NotEmpty(t, res.Reasons)

		// Back-to-back bookings at 09:00 and 10:00 push the first free
		// window out to 11:00.
		if assert.NotNil(t, res.NextAvailable) {
			assert.Equal(t, at.Add(2*time.Hour), *res.NextAvailable)
		}
	})

	t.Run("inactive worker", func(t *testing.T) {
		mockWorkerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(workerModel.Worker{ID: "worker-1"}, nil)
		mockBookingRepo.EXPECT().CountActiveOnDay(gomock.Any(), "worker-1", gomock.Any()).Return(0, nil)
		mockBookingRepo.EXPECT().
			ListActiveByWorker(gomock.Any(), "worker-1", gomock.Any(), gomock.Any()).
			Return(nil, nil).
			Times(2)

		res, err := svc.CheckAvailability(context.Background(), "worker-1", at)

		assert.NoError(t, err)
		assert.False(t, res.Available)
		assert.Contains(t, res.Reasons, "worker is not active")
	})

	t.Run("unknown worker", func(t *testing.T) {
		mockWorkerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(workerModel.Worker{}, nil)

		_, err := svc.CheckAvailability(context.Background(), "missing", at)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestAssignmentService_RankCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWorkerRepo := workerMocks.NewMockWorker(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockNotifier := notifierMocks.NewMockService(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockWorkerRepo, mockBookingRepo, mockNotifier, mockOtel)

	at := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)

	// All in Ho Chi Minh City, so distances stay inside the service radius.
	strong := workerModel.Worker{
		ID:                 "worker-strong",
		District:           "District 1",
		ServiceAreas:       []string{"District 1", "District 3"},
		Specializations:    []string{"electrical"},
		Certifications:     []string{"cert-a", "cert-b"},
		Rating:             4.8,
		CompletionRate:     0.97,
		AvgResponseMinutes: 4,
		LifetimeJobs:       120,
		Latitude:           10.776,
		Longitude:          106.700,
		IsActive:           true,
	}

	weak := workerModel.Worker{
		ID:                 "worker-weak",
		District:           "District 7",
		ServiceAreas:       []string{"District 7"},
		Specializations:    []string{"plumbing"},
		Rating:             3.2,
		CompletionRate:     0.80,
		AvgResponseMinutes: 25,
		LifetimeJobs:       40,
		Latitude:           10.73,
		Longitude:          106.72,
		IsActive:           true,
	}

	farAway := workerModel.Worker{
		ID:       "worker-far",
		Rating:   5.0,
		Latitude: 21.028, // Hanoi
		Longitude: 105.854,
		IsActive: true,
	}

	req := dto.RankRequest{
		ServiceCategory: "electrical",
		RequestedTime:   at,
		District:        "District 1",
		Latitude:        10.776,
		Longitude:       106.701,
		HasLocation:     true,
		Urgency:         dto.UrgencyNormal,
		TopN:            10,
	}

	t.Run("orders by score and drops out-of-range workers", func(t *testing.T) {
		mockWorkerRepo.EXPECT().GetActive(gomock.Any()).Return([]workerModel.Worker{weak, strong, farAway}, nil)

		mockBookingRepo.EXPECT().
			ListActiveByWorker(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).
			Times(3)
		mockBookingRepo.EXPECT().
			CountActiveOnDay(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(0, nil).
			Times(2)

		candidates, err := svc.RankCandidates(context.Background(), req)

		assert.NoError(t, err)

		if assert.Len(t, candidates, 2) {
			assert.Equal(t, "worker-strong", candidates[0].WorkerID)
			assert.Equal(t, "worker-weak", candidates[1].WorkerID)
			assert.Greater(t, candidates[0].Score, candidates[1].Score)
		}
	})

	t.Run("conflicted worker excluded", func(t *testing.T) {
		mockWorkerRepo.EXPECT().GetActive(gomock.Any()).Return([]workerModel.Worker{strong}, nil)

		mockBookingRepo.EXPECT().
			ListActiveByWorker(gomock.Any(), strong.ID, gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{{ID: "b", RequestedTime: at}}, nil)

		candidates, err := svc.RankCandidates(context.Background(), req)

		assert.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("top n truncation", func(t *testing.T) {
		pool := make([]workerModel.Worker, 4)
		for i := range pool {
			pool[i] = strong
			pool[i].ID = string(rune('a' + i))
		}

		mockWorkerRepo.EXPECT().GetActive(gomock.Any()).Return(pool, nil)
		mockBookingRepo.EXPECT().
			ListActiveByWorker(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).
			Times(4)
		mockBookingRepo.EXPECT().
			CountActiveOnDay(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(0, nil).
			Times(4)

		smallReq := req
		smallReq.TopN = 2

		candidates, err := svc.RankCandidates(context.Background(), smallReq)

		assert.NoError(t, err)
		assert.Len(t, candidates, 2)
	})
}
