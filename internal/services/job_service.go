package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/qazimatch/qazimatch/internal/dtos"
	"github.com/qazimatch/qazimatch/internal/models"
)

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// List returns the public board: open, non-headhunted postings.
func (s *JobService) List() ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.
		Where("status = ? AND is_headhunted = ?", models.JobOpen, false).
		Order("created_at DESC").
		Preload("Employer").
		Find(&jobs).Error
	return jobs, err
}

func (s *JobService) MyJobs(employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (s *JobService) Get(id string) (*models.Job, error) {
	var job models.Job
	err := s.DB.Preload("Employer").First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: job", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobService) Create(employerID string, req *dtos.JobCreationRequest) (*models.Job, error) {
	job := &models.Job{
		ID:           uuid.NewString(),
		EmployerID:   employerID,
		Title:        req.Title,
		Description:  req.Description,
		Salary:       req.Salary,
		Duration:     req.Duration,
		ContractType: req.ContractType,
		Requirements: req.Requirements,
		Meta:         req.Meta,
		Status:       models.JobOpen,
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// UpdateDetails applies a partial update. Only the posting employer may
// edit a job.
func (s *JobService) UpdateDetails(employerID, jobID string, req *dtos.JobUpdateRequest) (*models.Job, error) {
	job, err := s.owned(employerID, jobID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}
	if req.Duration != nil {
		updates["duration"] = *req.Duration
	}
	if req.ContractType != nil {
		updates["contract_type"] = *req.ContractType
	}
	if req.Requirements != nil {
		updates["requirements"] = *req.Requirements
	}
	if req.Meta != nil {
		updates["meta"] = *req.Meta
	}
	if len(updates) == 0 {
		return job, nil
	}

	if err := s.DB.Model(job).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

func (s *JobService) UpdateStatus(employerID, jobID, status string) (*models.Job, error) {
	switch status {
	case models.JobOpen, models.JobClosed, models.JobFilled:
	default:
		return nil, fmt.Errorf("%w: unknown job status %q", ErrInvalid, status)
	}

	job, err := s.owned(employerID, jobID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(job).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update job status: %w", err)
	}
	return job, nil
}

func (s *JobService) Delete(employerID, jobID string) error {
	job, err := s.owned(employerID, jobID)
	if err != nil {
		return err
	}
	return s.DB.Delete(job).Error
}

func (s *JobService) owned(employerID, jobID string) (*models.Job, error) {
	var job models.Job
	err := s.DB.First(&job, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: job", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if job.EmployerID != employerID {
		return nil, fmt.Errorf("%w: job belongs to another employer", ErrForbidden)
	}
	return &job, nil
}
