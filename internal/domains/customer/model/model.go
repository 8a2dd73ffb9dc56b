package model

import (
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	StatsTableName  = "customer_worker_stats"
	StatsEntityName = "customer_worker_stat"

	FieldID           = "id"
	FieldLoyaltyLevel = "loyalty_level"
	FieldUsageCount   = "usage_count"
)

const (
	LoyaltyNormal = "normal"
	LoyaltyVIP    = "vip"
)

// Customer mirrors the account-service fields the booking core reads and
// writes: the usage counter and the loyalty level derived from it.
type Customer struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	LoyaltyLevel string `db:"loyalty_level"`
	UsageCount   int    `db:"usage_count"`
	model.Metadata
}

// WorkerStat counts completed bookings between one customer and one worker.
// VIP loyalty flips when the count reaches the threshold.
type WorkerStat struct {
	CustomerID     string `db:"customer_id"`
	WorkerID       string `db:"worker_id"`
	CompletedCount int    `db:"completed_count"`
}
