package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/erickhangati/JobApplicationApp/models"
	"github.com/erickhangati/JobApplicationApp/utils"
)

// JobController handles job listings and applications.
type JobController struct {
	db *gorm.DB
}

func NewJobController(db *gorm.DB) *JobController {
	return &JobController{db: db}
}

// ListJobs returns a filtered, paginated page of job postings. Text
// filters match case-insensitive substrings; salary filters are range
// bounds; remote_allowed is an equality filter.
func (jc *JobController) ListJobs(c *gin.Context) {
	var filter models.JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	query := jc.db.Model(&models.Job{})
	if filter.Title != nil {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(*filter.Title)+"%")
	}
	if filter.Company != nil {
		query = query.Where("LOWER(company) LIKE ?", "%"+strings.ToLower(*filter.Company)+"%")
	}
	if filter.Location != nil {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(*filter.Location)+"%")
	}
	if filter.MinSalary != nil {
		query = query.Where("min_salary >= ?", *filter.MinSalary)
	}
	if filter.MaxSalary != nil {
		query = query.Where("max_salary <= ?", *filter.MaxSalary)
	}
	if filter.RemoteAllowed != nil {
		query = query.Where("remote_allowed = ?", *filter.RemoteAllowed)
	}

	var filteredCount int64
	if err := query.Count(&filteredCount).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}

	offset := (filter.Page - 1) * filter.PageSize
	var jobs []models.Job
	if err := query.Order("id").Limit(filter.PageSize).Offset(offset).
		Find(&jobs).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}

	var totalJobs int64
	if err := jc.db.Model(&models.Job{}).Count(&totalJobs).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}

	utils.Respond(c, http.StatusOK, "Jobs retrieved successfully", gin.H{
		"page":                filter.Page,
		"page_size":           filter.PageSize,
		"total_jobs":          totalJobs,
		"filtered_jobs_count": filteredCount,
		"total_pages":         totalPages(filteredCount, filter.PageSize),
		"jobs":                jobs,
	})
}

// GetJob returns a single job posting by id.
func (jc *JobController) GetJob(c *gin.Context) {
	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var job models.Job
	if err := jc.db.First(&job, jobID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Job not found")
		return
	}

	utils.Respond(c, http.StatusOK, "Job retrieved successfully", job)
}

// CreateJob creates a posting. Admin only.
func (jc *JobController) CreateJob(c *gin.Context) {
	if _, ok := requireAdmin(c, jc.db); !ok {
		return
	}

	var req models.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	job := jobFromRequest(&req)
	if err := jc.db.Create(job).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to create job")
		return
	}

	utils.Created(c, "Job created successfully", job, fmt.Sprintf("/jobs/%d", job.ID))
}

// UpdateJob overwrites a posting. Admin only.
func (jc *JobController) UpdateJob(c *gin.Context) {
	if _, ok := requireAdmin(c, jc.db); !ok {
		return
	}

	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var job models.Job
	if err := jc.db.First(&job, jobID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Job not found")
		return
	}

	var req models.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	updated := jobFromRequest(&req)
	updated.ID = job.ID
	if err := jc.db.Save(updated).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to update job")
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteJob removes a posting and cascades to its applications. Admin only.
func (jc *JobController) DeleteJob(c *gin.Context) {
	if _, ok := requireAdmin(c, jc.db); !ok {
		return
	}

	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var job models.Job
	if err := jc.db.First(&job, jobID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Job not found")
		return
	}

	err := jc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", job.ID).
			Delete(&models.AppliedJob{}).Error; err != nil {
			return err
		}
		return tx.Delete(&job).Error
	})
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to delete job")
		return
	}

	c.Status(http.StatusNoContent)
}

// ApplyJob records the authenticated user's application to a job. A user
// can apply to a given job at most once.
func (jc *JobController) ApplyJob(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	jobID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var job models.Job
	if err := jc.db.First(&job, jobID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Job not found")
		return
	}

	var user models.User
	if err := jc.db.First(&user, claims.UserID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User not found")
		return
	}

	var existing models.AppliedJob
	err := jc.db.Where("user_id = ? AND job_id = ?", user.ID, job.ID).
		First(&existing).Error
	if err == nil {
		utils.Error(c, http.StatusBadRequest, "You have already applied for this job")
		return
	}

	application := models.AppliedJob{
		UserID:            user.ID,
		JobID:             job.ID,
		AppliedAt:         time.Now().UTC(),
		ApplicationStatus: models.DefaultApplicationStatus,
	}

	// The unique (user_id, job_id) index catches the race between two
	// concurrent applications that both passed the existence check.
	if err := jc.db.Create(&application).Error; err != nil {
		utils.Error(c, http.StatusBadRequest, "You have already applied for this job")
		return
	}

	utils.Created(c, "Job applied successfully", application, "")
}

// AppliedJobs returns the postings the authenticated user has applied to.
func (jc *JobController) AppliedJobs(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		return
	}

	var page models.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		utils.Error(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var user models.User
	if err := jc.db.First(&user, claims.UserID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User not found")
		return
	}

	query := jc.db.Model(&models.Job{}).
		Joins("JOIN applied_jobs ON applied_jobs.job_id = jobs.id").
		Where("applied_jobs.user_id = ?", user.ID)

	var appliedCount int64
	if err := query.Count(&appliedCount).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch applied jobs")
		return
	}

	offset := (page.Page - 1) * page.PageSize
	var jobs []models.Job
	if err := query.Order("jobs.id").Limit(page.PageSize).Offset(offset).
		Find(&jobs).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch applied jobs")
		return
	}

	utils.Respond(c, http.StatusOK, "Applied jobs retrieved successfully", gin.H{
		"page":               page.Page,
		"page_size":          page.PageSize,
		"applied_jobs_count": appliedCount,
		"total_pages":        totalPages(appliedCount, page.PageSize),
		"jobs":               jobs,
	})
}

func jobFromRequest(req *models.JobRequest) *models.Job {
	listed := time.Now().UTC()
	if req.ListedTime != nil {
		listed = *req.ListedTime
	}

	return &models.Job{
		Title:           req.Title,
		Description:     req.Description,
		Company:         req.Company,
		Location:        req.Location,
		MinSalary:       req.MinSalary,
		MaxSalary:       req.MaxSalary,
		MedSalary:       req.MedSalary,
		PayPeriod:       req.PayPeriod,
		Views:           req.Views,
		ListedTime:      listed,
		Expiry:          req.Expiry,
		RemoteAllowed:   *req.RemoteAllowed,
		ApplicationType: req.ApplicationType,
		ExperienceLevel: req.ExperienceLevel,
		SkillsDesc:      req.SkillsDesc,
		Sponsored:       *req.Sponsored,
		WorkType:        req.WorkType,
		Currency:        req.Currency,
	}
}
