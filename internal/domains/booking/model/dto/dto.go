package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/booking/model"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/constant"
	gModel "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/model"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/timezone"
)

type CreateBookingRequest struct {
	ServiceID     string `json:"service_id"     validate:"required"`
	CustomerID    string `json:"customer_id"    validate:"required"`
	WorkerID      string `json:"worker_id"      validate:"omitempty"`
	RequestedTime string `json:"requested_time" validate:"required"`
	Address       string `json:"address"        validate:"required,max=255"`
	Note          string `json:"note"           validate:"omitempty,max=500"`
}

// RequestedAt parses the requested time into the application timezone.
func (c *CreateBookingRequest) RequestedAt() (time.Time, error) {
	return timezone.Parse(constant.DateFormat, c.RequestedTime) //nolint:wrapcheck
}

func (c *CreateBookingRequest) ToModel(requestedAt time.Time, user string) model.Booking {
	now := timezone.Now()

	booking := model.Booking{
		ID:            uuid.NewString(),
		CustomerID:    c.CustomerID,
		ServiceID:     c.ServiceID,
		RequestedTime: requestedAt,
		Address:       c.Address,
		Note:          c.Note,
		Status:        model.StatusPending,
		Priority:      model.DerivePriority(c.Note),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if c.WorkerID != constant.Empty {
		workerID := c.WorkerID
		booking.WorkerID = &workerID
	}

	return booking
}

type UpdateStatusRequest struct {
	Status              string `json:"status"                         validate:"required,oneof=confirmed in_progress done cancelled"`
	EstimatedCompletion string `json:"estimated_completion,omitempty" validate:"omitempty"`
}

// EstimatedAt parses the optional committed finish time.
func (u *UpdateStatusRequest) EstimatedAt() (*time.Time, error) {
	if u.EstimatedCompletion == constant.Empty {
		return nil, nil
	}

	at, err := timezone.Parse(constant.DateFormat, u.EstimatedCompletion)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &at, nil
}

type ExtendBookingRequest struct {
	AdditionalHours int `json:"additional_hours" validate:"required,min=1,max=8"`
}

type PricingSnapshot struct {
	BasePrice  int64 `json:"base_price"`
	Discount   int64 `json:"discount"`
	FinalPrice int64 `json:"final_price"`
}

type ExtensionInfo struct {
	ExtraHours      int        `json:"extra_hours"`
	ExtendedEndTime *time.Time `json:"extended_end_time,omitempty"`
}

type BookingResponse struct {
	ID                  string          `json:"id"`
	CustomerID          string          `json:"customer_id"`
	WorkerID            *string         `json:"worker_id,omitempty"`
	ServiceID           string          `json:"service_id"`
	RequestedTime       time.Time       `json:"requested_time"`
	Address             string          `json:"address"`
	Note                string          `json:"note,omitempty"`
	Status              string          `json:"status"`
	Priority            string          `json:"priority"`
	PricingSnapshot     PricingSnapshot `json:"pricing_snapshot"`
	Extension           ExtensionInfo   `json:"extension"`
	EstimatedCompletion *time.Time      `json:"estimated_completion,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

func (b *BookingResponse) FromModel(booking model.Booking) {
	b.ID = booking.ID
	b.CustomerID = booking.CustomerID
	b.WorkerID = booking.WorkerID
	b.ServiceID = booking.ServiceID
	b.RequestedTime = booking.RequestedTime
	b.Address = booking.Address
	b.Note = booking.Note
	b.Status = booking.Status
	b.Priority = booking.Priority
	b.PricingSnapshot = PricingSnapshot{
		BasePrice:  booking.BasePrice,
		Discount:   booking.Discount,
		FinalPrice: booking.FinalPrice,
	}
	b.Extension = ExtensionInfo{
		ExtraHours:      booking.ExtraHours,
		ExtendedEndTime: booking.ExtendedEndTime,
	}
	b.EstimatedCompletion = booking.EstimatedCompletion
	b.CreatedAt = booking.CreatedAt
}
