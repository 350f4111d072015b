package models

import "time"

// DefaultApplicationStatus is set at creation and never transitioned.
const DefaultApplicationStatus = "Pending"

// AppliedJob records a user's application to a job. The composite unique
// index backs the one-application-per-(user, job) invariant; handlers also
// run an existence check first so duplicates surface as a 400 rather than
// a driver error.
type AppliedJob struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	UserID            uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_applied_user_job"`
	JobID             uint      `json:"job_id" gorm:"not null;index;uniqueIndex:idx_applied_user_job"`
	AppliedAt         time.Time `json:"applied_at" gorm:"not null"`
	ApplicationStatus string    `json:"application_status" gorm:"not null;default:Pending"`
}
