package di

import (
	assignmentService "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/assignment/service"
	scheduleService "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/schedule/service"
)

// provideConflictChecker exposes the assignment engine to the schedule
// service through the narrow interface it consumes.
func provideConflictChecker(assignment assignmentService.Assignment) scheduleService.ConflictChecker {
	return assignment
}
