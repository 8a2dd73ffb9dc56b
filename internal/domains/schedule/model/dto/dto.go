package dto

import (
	"time"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/schedule/model"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/constant"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/timezone"
)

type AddSlotRequest struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end"   validate:"required"`
	Note  string `json:"note"  validate:"omitempty,max=255"`
}

// Window parses the request times in the application timezone.
func (r *AddSlotRequest) Window() (start, end time.Time, err error) {
	start, err = timezone.Parse(constant.DateFormat, r.Start)
	if err != nil {
		return start, end, err
	}

	end, err = timezone.Parse(constant.DateFormat, r.End)

	return start, end, err
}

type GenerateRequest struct {
	Days int `json:"days" validate:"required,min=1,max=90"`
}

type SlotResponse struct {
	ID       string `json:"id"`
	Start    string `json:"start"`
	End      string `json:"end"`
	IsBooked bool   `json:"is_booked"`
	Note     string `json:"note,omitempty"`
}

func (r *SlotResponse) FromModel(slot model.Slot) {
	r.ID = slot.ID
	r.Start = timezone.Format(slot.StartTime, constant.DateFormat)
	r.End = timezone.Format(slot.EndTime, constant.DateFormat)
	r.IsBooked = slot.IsBooked
	r.Note = slot.Note
}

type ScheduleResponse struct {
	WorkerID      string         `json:"worker_id"`
	Date          string         `json:"date"`
	CurrentStatus string         `json:"current_status"`
	Slots         []SlotResponse `json:"slots"`
}

func (r *ScheduleResponse) FromModels(calendar model.Calendar, slots []model.Slot, day time.Time) {
	r.WorkerID = calendar.WorkerID
	r.Date = day.Format(constant.DayFormat)
	r.CurrentStatus = calendar.CurrentStatus

	r.Slots = make([]SlotResponse, len(slots))
	for i, slot := range slots {
		r.Slots[i].FromModel(slot)
	}
}
