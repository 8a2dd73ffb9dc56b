package model

import (
	"time"

	"github.com/lib/pq"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/model"
)

const (
	CalendarTableName  = "worker_calendars"
	CalendarEntityName = "calendar"

	SlotTableName  = "worker_slots"
	SlotEntityName = "slot"

	FieldID        = "id"
	FieldWorkerID  = "worker_id"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldIsBooked  = "is_booked"
	FieldBookingID = "booking_id"
)

const (
	StatusAvailable = "available"
	StatusBusy      = "busy"
	StatusOffline   = "offline"
)

// Calendar holds a worker's scheduling template and current-job state.
// One row per worker, created lazily on first access. Version is bumped on
// every mutation and checked by compare-and-swap writes.
type Calendar struct {
	ID                  string         `db:"id"`
	WorkerID            string         `db:"worker_id"`
	WorkingDays         pq.Int64Array  `db:"working_days"`
	DayStart            string         `db:"day_start"`
	DayEnd              string         `db:"day_end"`
	MorningSlots        pq.StringArray `db:"morning_slots"`
	AfternoonSlots      pq.StringArray `db:"afternoon_slots"`
	EveningSlots        pq.StringArray `db:"evening_slots"`
	CurrentStatus       string         `db:"current_status"`
	CurrentBookingID    *string        `db:"current_booking_id"`
	EstimatedCompletion *time.Time     `db:"estimated_completion"`
	ActualStart         *time.Time     `db:"actual_start"`
	Version             int64          `db:"version"`
	LastUpdated         time.Time      `db:"last_updated"`
	model.Metadata
}

// WorksOn reports whether the weekday is one of the calendar's working days.
func (c *Calendar) WorksOn(day time.Weekday) bool {
	for _, d := range c.WorkingDays {
		if time.Weekday(d) == day {
			return true
		}
	}

	return false
}

// TemplateTimes returns every seed time of the calendar's slot templates in
// wall-clock order.
func (c *Calendar) TemplateTimes() []string {
	times := make([]string, 0, len(c.MorningSlots)+len(c.AfternoonSlots)+len(c.EveningSlots))
	times = append(times, c.MorningSlots...)
	times = append(times, c.AfternoonSlots...)
	times = append(times, c.EveningSlots...)

	return times
}

// Slot is a contiguous time window on a worker's calendar, either open for
// booking or blocked by one.
type Slot struct {
	ID        string    `db:"id"`
	WorkerID  string    `db:"worker_id"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	IsBooked  bool      `db:"is_booked"`
	BookingID *string   `db:"booking_id"`
	Note      string    `db:"note"`
	model.Metadata
}

// Overlaps reports whether the slot intersects the [start, end) window.
func (s *Slot) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && start.Before(s.EndTime)
}

// Covers reports whether the instant falls inside the slot window.
func (s *Slot) Covers(at time.Time) bool {
	return !s.StartTime.After(at) && s.EndTime.After(at)
}
