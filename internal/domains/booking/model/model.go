package model

import (
	"strings"
	"time"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldCustomerID    = "customer_id"
	FieldWorkerID      = "worker_id"
	FieldServiceID     = "service_id"
	FieldRequestedTime = "requested_time"
	FieldStatus        = "status"
	FieldPriority      = "priority"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
	StatusCancelled  = "cancelled"
)

const (
	PriorityNormal = "normal"
	PriorityUrgent = "urgent"
)

// transitions is the only authority on legal status moves. Terminal states
// have no entry.
var transitions = map[string][]string{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusDone, StatusCancelled},
	StatusInProgress: {StatusDone},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// ValidStatus reports whether the value is a known booking status.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusDone, StatusCancelled:
		return true
	}

	return false
}

// Booking is one appointment request moving through the lifecycle
// pending -> confirmed -> in_progress -> done, with cancellation branches.
// The pricing snapshot is captured at creation and never rewritten: a later
// price change must not retroactively alter a placed booking.
type Booking struct {
	ID            string    `db:"id"`
	CustomerID    string    `db:"customer_id"`
	WorkerID      *string   `db:"worker_id"`
	ServiceID     string    `db:"service_id"`
	RequestedTime time.Time `db:"requested_time"`
	Address       string    `db:"address"`
	Note          string    `db:"note"`
	Status        string    `db:"status"`
	Priority      string    `db:"priority"`

	BasePrice  int64 `db:"base_price"`
	Discount   int64 `db:"discount"`
	FinalPrice int64 `db:"final_price"`

	ExtraHours      int        `db:"extra_hours"`
	ExtendedEndTime *time.Time `db:"extended_end_time"`

	EstimatedCompletion *time.Time `db:"estimated_completion"`
	ConfirmedAt         *time.Time `db:"confirmed_at"`
	StartedAt           *time.Time `db:"started_at"`
	CompletedAt         *time.Time `db:"completed_at"`
	CancelledAt         *time.Time `db:"cancelled_at"`

	model.Metadata
}

// Active reports whether the booking still blocks its worker's time.
func (b *Booking) Active() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// EndTime returns when the booking releases the worker: one service hour
// after the requested time unless an extension pushed it out.
func (b *Booking) EndTime() time.Time {
	if b.ExtendedEndTime != nil {
		return *b.ExtendedEndTime
	}

	return b.RequestedTime.Add(time.Hour)
}

var urgentMarkers = []string{"urgent", "emergency", "asap", "gấp", "khẩn cấp"}

// DerivePriority classifies a booking once at creation from its note
// content. The priority never changes afterwards.
func DerivePriority(note string) string {
	lowered := strings.ToLower(note)
	for _, marker := range urgentMarkers {
		if strings.Contains(lowered, marker) {
			return PriorityUrgent
		}
	}

	return PriorityNormal
}
