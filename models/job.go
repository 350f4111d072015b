package models

import "time"

// Job represents a posting. Deleting a job removes its applications.
type Job struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Title           string     `json:"title" gorm:"not null"`
	Description     string     `json:"description" gorm:"not null"`
	Company         string     `json:"company"`
	Location        string     `json:"location" gorm:"not null"`
	MinSalary       int        `json:"min_salary" gorm:"not null"`
	MaxSalary       int        `json:"max_salary"`
	MedSalary       int        `json:"med_salary"`
	PayPeriod       string     `json:"pay_period"`
	Views           int        `json:"views" gorm:"not null;default:0"`
	ListedTime      time.Time  `json:"listed_time"`
	Expiry          *time.Time `json:"expiry"`
	RemoteAllowed   bool       `json:"remote_allowed"`
	ApplicationType string     `json:"application_type"`
	ExperienceLevel string     `json:"experience_level"`
	SkillsDesc      string     `json:"skills_desc" gorm:"not null"`
	Sponsored       bool       `json:"sponsored"`
	WorkType        string     `json:"work_type"`
	Currency        string     `json:"currency"`

	Applicants []AppliedJob `json:"-" gorm:"foreignKey:JobID"`
}

// JobRequest is the payload for creating or updating a job posting.
type JobRequest struct {
	Title           string     `json:"title" binding:"required,min=3"`
	Description     string     `json:"description" binding:"required,min=3"`
	Company         string     `json:"company" binding:"required,min=3"`
	Location        string     `json:"location" binding:"required,min=3"`
	MinSalary       int        `json:"min_salary" binding:"required,gt=0"`
	MaxSalary       int        `json:"max_salary" binding:"required,gt=0"`
	MedSalary       int        `json:"med_salary" binding:"required,gt=0"`
	PayPeriod       string     `json:"pay_period" binding:"required,min=3"`
	Views           int        `json:"views" binding:"gte=0"`
	ListedTime      *time.Time `json:"listed_time"`
	Expiry          *time.Time `json:"expiry" binding:"required"`
	RemoteAllowed   *bool      `json:"remote_allowed" binding:"required"`
	ApplicationType string     `json:"application_type" binding:"required,min=3"`
	ExperienceLevel string     `json:"experience_level" binding:"required,min=3"`
	SkillsDesc      string     `json:"skills_desc" binding:"required,min=3"`
	Sponsored       *bool      `json:"sponsored" binding:"required"`
	WorkType        string     `json:"work_type" binding:"required,min=3"`
	Currency        string     `json:"currency" binding:"required,min=3"`
}

// JobFilter holds the query parameters accepted by the job list endpoint.
// Pointer fields distinguish "absent" from zero values.
type JobFilter struct {
	Title         *string `form:"title" binding:"omitempty,min=3"`
	Company       *string `form:"company" binding:"omitempty,min=3"`
	Location      *string `form:"location" binding:"omitempty,min=3"`
	MinSalary     *int    `form:"min_salary"`
	MaxSalary     *int    `form:"max_salary"`
	RemoteAllowed *bool   `form:"remote_allowed"`
	Page          int     `form:"page,default=1" binding:"min=1"`
	PageSize      int     `form:"page_size,default=10" binding:"min=1,max=100"`
}

// PageQuery holds bare pagination parameters for list endpoints
// without filters.
type PageQuery struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"page_size,default=10" binding:"min=1,max=100"`
}
