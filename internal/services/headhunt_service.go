package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/qazimatch/qazimatch/internal/dtos"
	"github.com/qazimatch/qazimatch/internal/models"
)

type HeadhuntService struct {
	DB      *gorm.DB
	Matcher *MatchService // optional, nil when no Gemini key is configured
}

func NewHeadhuntService(db *gorm.DB, matcher *MatchService) *HeadhuntService {
	return &HeadhuntService{DB: db, Matcher: matcher}
}

// HeadhuntListing is a request plus (when the matcher is available) ranked
// candidate suggestions drawn from headhunted applications.
type HeadhuntListing struct {
	models.HeadhuntRequest
	SuggestedCandidates []models.Application `json:"suggestedCandidates,omitempty"`
}

// Create opens a talent-sourcing request. The backing job is created in the
// same transaction as a private (headhunted) posting so it never appears on
// the public board.
func (s *HeadhuntService) Create(employerID string, req *dtos.HeadhuntCreationRequest) (*models.HeadhuntRequest, error) {
	urgency := req.Urgency
	if urgency == "" {
		urgency = "MEDIUM"
	}
	contactMethod := req.PreferredContactMethod
	if contactMethod == "" {
		contactMethod = "EMAIL"
	}

	request := &models.HeadhuntRequest{
		ID:                     uuid.NewString(),
		EmployerID:             employerID,
		CompanyName:            req.CompanyName,
		ContactEmail:           req.ContactEmail,
		ContactPhone:           req.ContactPhone,
		OtherContacts:          req.OtherContacts,
		Urgency:                urgency,
		PreferredContactMethod: contactMethod,
		Notes:                  req.Notes,
		Status:                 models.HeadhuntOpen,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
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
			IsHeadhunted: true,
		}
		if err := tx.Create(job).Error; err != nil {
			return err
		}
		request.JobID = job.ID
		return tx.Create(request).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create headhunt request: %w", err)
	}
	return request, nil
}

// Mine lists the employer's requests. Candidate suggestions are best-effort:
// a matcher failure never fails the listing.
func (s *HeadhuntService) Mine(ctx context.Context, employerID string) ([]HeadhuntListing, error) {
	var requests []models.HeadhuntRequest
	err := s.DB.
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Preload("Job").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}

	out := make([]HeadhuntListing, 0, len(requests))
	for _, req := range requests {
		listing := HeadhuntListing{HeadhuntRequest: req}
		if s.Matcher != nil && req.Status != models.HeadhuntFulfilled {
			var apps []models.Application
			if err := s.DB.
				Where("job_id = ?", req.JobID).
				Preload("Applicant").
				Find(&apps).Error; err == nil && len(apps) > 0 {
				listing.SuggestedCandidates = s.Matcher.RankCandidates(ctx, req.Job, apps)
			}
		}
		out = append(out, listing)
	}
	return out, nil
}

func (s *HeadhuntService) Assign(employerID, requestID, assignedTo string) (*models.HeadhuntRequest, error) {
	req, err := s.owned(employerID, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status == models.HeadhuntFulfilled {
		return nil, fmt.Errorf("%w: request already fulfilled", ErrConflict)
	}
	updates := map[string]interface{}{
		"assigned_to": assignedTo,
		"status":      models.HeadhuntAssigned,
	}
	if err := s.DB.Model(req).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("assign recruiter: %w", err)
	}
	return req, nil
}

func (s *HeadhuntService) Fulfill(employerID, requestID string, payload *dtos.HeadhuntFulfillRequest) (*models.HeadhuntRequest, error) {
	req, err := s.owned(employerID, requestID)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"status":            models.HeadhuntFulfilled,
		"candidate_name":    payload.CandidateName,
		"application_id":    payload.ApplicationID,
		"fulfillment_notes": payload.Notes,
	}
	if err := s.DB.Model(req).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("fulfill request: %w", err)
	}
	return req, nil
}

// owned loads a request and checks the caller opened it. Assign and
// fulfill are employer actions on their own search, never on another
// employer's.
func (s *HeadhuntService) owned(employerID, id string) (*models.HeadhuntRequest, error) {
	var req models.HeadhuntRequest
	err := s.DB.First(&req, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: headhunt request", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if req.EmployerID != employerID {
		return nil, fmt.Errorf("%w: request belongs to another employer", ErrForbidden)
	}
	return &req, nil
}
