package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles. The role decides which parts of the marketplace a user can
// act on: employees browse and apply, employers post and review.
const (
	RoleEmployee = "EMPLOYEE"
	RoleEmployer = "EMPLOYER"
)

// Job statuses.
const (
	JobOpen   = "OPEN"
	JobClosed = "CLOSED"
	JobFilled = "FILLED"
)

// Application statuses.
const (
	ApplicationPending  = "PENDING"
	ApplicationReviewed = "REVIEWED"
	ApplicationAccepted = "ACCEPTED"
	ApplicationRejected = "REJECTED"
)

// Headhunt request statuses.
const (
	HeadhuntOpen      = "OPEN"
	HeadhuntAssigned  = "ASSIGNED"
	HeadhuntFulfilled = "FULFILLED"
)

type User struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string `json:"name,omitempty"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null" json:"role"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
}

type Job struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	EmployerID string `gorm:"index;not null" json:"employerId"`
	// 'omitempty' prevents infinite loops when fetching a Job -> Employer -> Jobs -> ...
	Employer *User `json:"employer,omitempty"`

	Title        string `gorm:"not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Salary       *int64 `json:"salary,omitempty"`
	Duration     string `json:"duration,omitempty"`
	ContractType string `json:"contractType,omitempty"`

	// The web client sends requirements/meta as JSON-encoded strings, so
	// they are stored and echoed back verbatim as text.
	Requirements string `gorm:"type:text" json:"requirements,omitempty"`
	Meta         string `gorm:"type:text" json:"meta,omitempty"`

	Status string `gorm:"default:'OPEN'" json:"status"`
	// Headhunted jobs are private postings backing a talent-sourcing
	// request; they never show up on the public board.
	IsHeadhunted bool `json:"isHeadhunted"`
}

type Application struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	AppliedAt time.Time `json:"appliedAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	JobID string `gorm:"index:idx_job_applicant,unique;not null" json:"jobId"`
	Job   *Job   `json:"job,omitempty"`

	ApplicantID string `gorm:"index:idx_job_applicant,unique;not null" json:"applicantId"`
	Applicant   *User  `json:"applicant,omitempty"`

	ResumeURL   string `json:"resumeUrl"`
	CoverLetter string `gorm:"type:text" json:"coverLetter,omitempty"`

	Status       string `gorm:"default:'PENDING'" json:"status"`
	IsHeadhunted bool   `json:"isHeadhunted"`
}

type HeadhuntRequest struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	EmployerID string `gorm:"index;not null" json:"employerId"`

	// The private job created alongside the request.
	JobID string `gorm:"index;not null" json:"jobId"`
	Job   *Job   `json:"job,omitempty"`

	CompanyName  string `gorm:"not null" json:"companyName"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	// JSON-encoded string, same convention as Job.Requirements.
	OtherContacts string `gorm:"type:text" json:"otherContacts,omitempty"`

	Urgency                string `gorm:"default:'MEDIUM'" json:"urgency"`
	PreferredContactMethod string `gorm:"default:'EMAIL'" json:"preferredContactMethod"`
	Notes                  string `gorm:"type:text" json:"notes,omitempty"`

	Status           string `gorm:"default:'OPEN'" json:"status"`
	AssignedTo       string `json:"assignedTo,omitempty"`
	CandidateName    string `json:"candidateName,omitempty"`
	ApplicationID    string `json:"applicationId,omitempty"`
	FulfillmentNotes string `gorm:"type:text" json:"fulfillmentNotes,omitempty"`
}
