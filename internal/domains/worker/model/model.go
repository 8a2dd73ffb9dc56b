package model

import (
	"time"

	"github.com/lib/pq"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/model"
)

const (
	TableName  = "workers"
	EntityName = "worker"

	FieldID              = "id"
	FieldName            = "name"
	FieldDistrict        = "district"
	FieldServiceAreas    = "service_areas"
	FieldSpecializations = "specializations"
	FieldCertifications  = "certifications"
	FieldRating          = "rating"
	FieldCompletedJobs   = "completed_jobs"
	FieldLifetimeJobs    = "lifetime_jobs"
	FieldCompletionRate  = "completion_rate"
	FieldResponseMinutes = "avg_response_minutes"
	FieldLatitude        = "latitude"
	FieldLongitude       = "longitude"
	FieldIsActive        = "is_active"
	FieldOnlineSince     = "online_since"
)

// Worker is the profile the assignment engine ranks candidates from. The
// account service owns the source of truth; this table mirrors the fields
// scheduling needs.
type Worker struct {
	ID                 string         `db:"id"`
	Name               string         `db:"name"`
	District           string         `db:"district"`
	ServiceAreas       pq.StringArray `db:"service_areas"`
	Specializations    pq.StringArray `db:"specializations"`
	Certifications     pq.StringArray `db:"certifications"`
	Rating             float64        `db:"rating"`
	CompletedJobs      int            `db:"completed_jobs"`
	LifetimeJobs       int            `db:"lifetime_jobs"`
	CompletionRate     float64        `db:"completion_rate"`
	AvgResponseMinutes int            `db:"avg_response_minutes"`
	Latitude           float64        `db:"latitude"`
	Longitude          float64        `db:"longitude"`
	IsActive           bool           `db:"is_active"`
	OnlineSince        *time.Time     `db:"online_since"`
	model.Metadata
}

// HasSpecialization reports whether the worker covers the given service
// category, either exactly or through a wildcard entry.
func (w *Worker) HasSpecialization(category string) (exact, wildcard bool) {
	for _, spec := range w.Specializations {
		if spec == category {
			return true, false
		}

		if spec == "*" {
			wildcard = true
		}
	}

	return false, wildcard
}

// ServesDistrict reports whether the district is in the worker's service area.
func (w *Worker) ServesDistrict(district string) bool {
	for _, area := range w.ServiceAreas {
		if area == district {
			return true
		}
	}

	return false
}
