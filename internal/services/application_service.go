package services

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/qazimatch/qazimatch/internal/models"
	"github.com/qazimatch/qazimatch/internal/storage"
)

type ApplicationService struct {
	DB      *gorm.DB
	Resumes storage.Store
}

func NewApplicationService(db *gorm.DB, resumes storage.Store) *ApplicationService {
	return &ApplicationService{DB: db, Resumes: resumes}
}

// JobWithApplications is the employer-dashboard aggregate: a job plus its
// nested applications.
type JobWithApplications struct {
	models.Job
	ApplicationsCount int                  `json:"applicationsCount"`
	Applications      []models.Application `json:"applications"`
}

// Apply files an application for jobID: the resume is persisted first, then
// the application row is created. One application per (job, applicant).
func (s *ApplicationService) Apply(jobID, applicantID, resumeName string, resume io.Reader, coverLetter string) (*models.Application, error) {
	var job models.Job
	err := s.DB.First(&job, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: job", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if job.Status != models.JobOpen {
		return nil, fmt.Errorf("%w: job is no longer accepting applications", ErrConflict)
	}

	var count int64
	s.DB.Model(&models.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("%w: you have already applied to this job", ErrConflict)
	}

	resumeURL, err := s.Resumes.Save(resumeName, resume)
	if err != nil {
		return nil, fmt.Errorf("store resume: %w", err)
	}

	app := &models.Application{
		ID:           uuid.NewString(),
		AppliedAt:    time.Now(),
		JobID:        jobID,
		ApplicantID:  applicantID,
		ResumeURL:    resumeURL,
		CoverLetter:  coverLetter,
		Status:       models.ApplicationPending,
		IsHeadhunted: job.IsHeadhunted,
	}
	if err := s.DB.Create(app).Error; err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return app, nil
}

// ForJob lists a job's applications for its posting employer.
func (s *ApplicationService) ForJob(employerID, jobID string) ([]models.Application, error) {
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

	var apps []models.Application
	err = s.DB.
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Preload("Applicant").
		Find(&apps).Error
	return apps, err
}

// Mine lists the applicant's own applications with the job attached.
func (s *ApplicationService) Mine(applicantID string) ([]models.Application, error) {
	var apps []models.Application
	err := s.DB.
		Where("applicant_id = ?", applicantID).
		Order("applied_at DESC").
		Preload("Job").
		Find(&apps).Error
	return apps, err
}

// OpenJobsWithApplications feeds the employer review dashboard: every open
// job of the employer together with its applications.
func (s *ApplicationService) OpenJobsWithApplications(employerID string) ([]JobWithApplications, error) {
	var jobs []models.Job
	err := s.DB.
		Where("employer_id = ? AND status = ?", employerID, models.JobOpen).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	out := make([]JobWithApplications, 0, len(jobs))
	for _, job := range jobs {
		var apps []models.Application
		err := s.DB.
			Where("job_id = ?", job.ID).
			Order("applied_at ASC").
			Preload("Applicant").
			Find(&apps).Error
		if err != nil {
			return nil, err
		}
		out = append(out, JobWithApplications{
			Job:               job,
			ApplicationsCount: len(apps),
			Applications:      apps,
		})
	}
	return out, nil
}

// Select accepts one application. In the same transaction the job is marked
// FILLED and every other application on it is rejected, so the stored state
// always matches what the dashboard mirrors locally.
func (s *ApplicationService) Select(employerID, jobID, applicationID string) (*models.Application, error) {
	app, err := s.mutable(employerID, jobID, applicationID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Application{}).
			Where("id = ?", applicationID).
			Update("status", models.ApplicationAccepted).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Application{}).
			Where("job_id = ? AND id <> ?", jobID, applicationID).
			Update("status", models.ApplicationRejected).Error; err != nil {
			return err
		}
		return tx.Model(&models.Job{}).
			Where("id = ?", jobID).
			Update("status", models.JobFilled).Error
	})
	if err != nil {
		return nil, fmt.Errorf("select applicant: %w", err)
	}

	app.Status = models.ApplicationAccepted
	return app, nil
}

func (s *ApplicationService) Reject(employerID, jobID, applicationID string) (*models.Application, error) {
	return s.setStatus(employerID, jobID, applicationID, models.ApplicationRejected)
}

// Review marks an application as looked-at. Terminal applications stay put.
func (s *ApplicationService) Review(employerID, jobID, applicationID string) (*models.Application, error) {
	app, err := s.mutable(employerID, jobID, applicationID)
	if err != nil {
		return nil, err
	}
	if app.Status != models.ApplicationPending {
		return nil, fmt.Errorf("%w: application is already %s", ErrConflict, app.Status)
	}
	return s.setStatus(employerID, jobID, applicationID, models.ApplicationReviewed)
}

func (s *ApplicationService) setStatus(employerID, jobID, applicationID, status string) (*models.Application, error) {
	app, err := s.mutable(employerID, jobID, applicationID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(app).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}
	return app, nil
}

// mutable loads an application and checks the caller owns the job and the
// application has not reached a terminal state.
func (s *ApplicationService) mutable(employerID, jobID, applicationID string) (*models.Application, error) {
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

	var app models.Application
	err = s.DB.First(&app, "id = ? AND job_id = ?", applicationID, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: application", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if app.Status == models.ApplicationAccepted || app.Status == models.ApplicationRejected {
		return nil, fmt.Errorf("%w: application is already %s", ErrConflict, app.Status)
	}
	return &app, nil
}
