package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/booking/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "pending to confirmed", from: model.StatusPending, to: model.StatusConfirmed, want: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, want: true},
		{name: "pending to in_progress", from: model.StatusPending, to: model.StatusInProgress, want: false},
		{name: "pending to done", from: model.StatusPending, to: model.StatusDone, want: false},
		{name: "confirmed to in_progress", from: model.StatusConfirmed, to: model.StatusInProgress, want: true},
		{name: "confirmed to done", from: model.StatusConfirmed, to: model.StatusDone, want: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, want: true},
		{name: "confirmed to pending", from: model.StatusConfirmed, to: model.StatusPending, want: false},
		{name: "in_progress to done", from: model.StatusInProgress, to: model.StatusDone, want: true},
		{name: "in_progress to cancelled", from: model.StatusInProgress, to: model.StatusCancelled, want: false},
		{name: "done is terminal", from: model.StatusDone, to: model.StatusConfirmed, want: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusPending, want: false},
		{name: "unknown status", from: "unknown", to: model.StatusConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, status := range []string{
		model.StatusPending,
		model.StatusConfirmed,
		model.StatusInProgress,
		model.StatusDone,
		model.StatusCancelled,
	} {
		assert.True(t, model.ValidStatus(status), status)
	}

	assert.False(t, model.ValidStatus("archived"))
	assert.False(t, model.ValidStatus(""))
}

func TestDerivePriority(t *testing.T) {
	tests := []struct {
		name string
		note string
		want string
	}{
		{name: "empty note", note: "", want: model.PriorityNormal},
		{name: "plain note", note: "please ring the bell twice", want: model.PriorityNormal},
		{name: "urgent marker", note: "URGENT: water everywhere", want: model.PriorityUrgent},
		{name: "emergency marker", note: "this is an Emergency", want: model.PriorityUrgent},
		{name: "asap marker", note: "need this done asap", want: model.PriorityUrgent},
		{name: "vietnamese gap", note: "sửa gấp giúp em", want: model.PriorityUrgent},
		{name: "vietnamese khan cap", note: "trường hợp khẩn cấp", want: model.PriorityUrgent},
		{name: "marker inside word", note: "the gas boiler is broken", want: model.PriorityNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.DerivePriority(tt.note))
		})
	}
}

func TestBooking_EndTime(t *testing.T) {
	requested := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	booking := model.Booking{RequestedTime: requested}
	assert.Equal(t, requested.Add(time.Hour), booking.EndTime())

	extended := requested.Add(4 * time.Hour)
	booking.ExtendedEndTime = &extended
	assert.Equal(t, extended, booking.EndTime())
}

func TestBooking_Active(t *testing.T) {
	booking := model.Booking{Status: model.StatusPending}
	assert.True(t, booking.Active())

	booking.Status = model.StatusConfirmed
	assert.True(t, booking.Active())

	booking.Status = model.StatusInProgress
	assert.False(t, booking.Active())

	booking.Status = model.StatusDone
	assert.False(t, booking.Active())

	booking.Status = model.StatusCancelled
	assert.False(t, booking.Active())
}
