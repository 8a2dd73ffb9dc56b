package dto

import (
	"time"

	workerModel "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/worker/model"
)

const (
	UrgencyNormal    = "normal"
	UrgencyUrgent    = "urgent"
	UrgencyEmergency = "emergency"
)

// Availability is the structured answer to "can this worker take a booking
// at this time", with enough detail for an operator to see why not.
type Availability struct {
	WorkerID      string     `json:"worker_id"`
	Available     bool       `json:"available"`
	Workload      int        `json:"workload"`
	Capacity      int        `json:"capacity"`
	HasConflict   bool       `json:"has_conflict"`
	Reasons       []string   `json:"reasons,omitempty"`
	NextAvailable *time.Time `json:"next_available,omitempty"`
}

// RankRequest carries the request attributes candidate scoring runs on.
// Latitude and longitude are optional; zero HasLocation skips distance
// scoring instead of treating (0, 0) as a real position.
type RankRequest struct {
	ServiceCategory string    `json:"service_category" validate:"required"`
	RequestedTime   time.Time `json:"requested_time"   validate:"required"`
	District        string    `json:"district"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	HasLocation     bool      `json:"has_location"`
	Urgency         string    `json:"urgency" validate:"omitempty,oneof=normal urgent emergency"`
	TopN            int       `json:"top_n"   validate:"omitempty,min=1,max=50"`
}

// Candidate is one ranked worker with its composite score.
type Candidate struct {
	WorkerID   string  `json:"worker_id"`
	Name       string  `json:"name"`
	Score      int     `json:"score"`
	DistanceKm float64 `json:"distance_km,omitempty"`
	Workload   int     `json:"workload"`
}

func NewCandidate(worker workerModel.Worker, score int, distanceKm float64, workload int) Candidate {
	return Candidate{
		WorkerID:   worker.ID,
		Name:       worker.Name,
		Score:      score,
		DistanceKm: distanceKm,
		Workload:   workload,
	}
}
