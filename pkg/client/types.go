package client

import (
	"encoding/json"
	"time"
)

// Roles.
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

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Name        string    `json:"name,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// JobRequirements and JobMeta are the structured forms of the job's nested
// fields. On the wire they travel JSON-encoded inside a string; see
// EncodeNested.
type JobRequirements struct {
	Skills     []string `json:"skills,omitempty"`
	Education  string   `json:"education,omitempty"`
	Experience string   `json:"experience,omitempty"`
}

type JobMeta struct {
	Location   string `json:"location,omitempty"`
	Level      string `json:"level,omitempty"`
	Department string `json:"department,omitempty"`
}

type Job struct {
	ID           string    `json:"id"`
	EmployerID   string    `json:"employerId"`
	Employer     *User     `json:"employer,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Salary       *int64    `json:"salary,omitempty"`
	Duration     string    `json:"duration,omitempty"`
	ContractType string    `json:"contractType,omitempty"`
	Requirements string    `json:"requirements,omitempty"`
	Meta         string    `json:"meta,omitempty"`
	Status       string    `json:"status"`
	IsHeadhunted bool      `json:"isHeadhunted"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// DecodeRequirements parses the job's JSON-encoded requirements string.
// Jobs without requirements decode to the zero value.
func (j *Job) DecodeRequirements() (JobRequirements, error) {
	var out JobRequirements
	if j.Requirements == "" {
		return out, nil
	}
	err := json.Unmarshal([]byte(j.Requirements), &out)
	return out, err
}

// DecodeMeta parses the job's JSON-encoded meta string.
func (j *Job) DecodeMeta() (JobMeta, error) {
	var out JobMeta
	if j.Meta == "" {
		return out, nil
	}
	err := json.Unmarshal([]byte(j.Meta), &out)
	return out, err
}

type Application struct {
	ID           string    `json:"id"`
	JobID        string    `json:"jobId"`
	Job          *Job      `json:"job,omitempty"`
	ApplicantID  string    `json:"applicantId"`
	Applicant    *User     `json:"applicant,omitempty"`
	ResumeURL    string    `json:"resumeUrl"`
	CoverLetter  string    `json:"coverLetter,omitempty"`
	Status       string    `json:"status"`
	IsHeadhunted bool      `json:"isHeadhunted"`
	AppliedAt    time.Time `json:"appliedAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// JobWithApplications is the employer dashboard aggregate.
type JobWithApplications struct {
	Job
	ApplicationsCount int           `json:"applicationsCount"`
	Applications      []Application `json:"applications"`
}

type HeadhuntRequest struct {
	ID                     string    `json:"id"`
	EmployerID             string    `json:"employerId"`
	JobID                  string    `json:"jobId"`
	Job                    *Job      `json:"job,omitempty"`
	CompanyName            string    `json:"companyName"`
	ContactEmail           string    `json:"contactEmail,omitempty"`
	ContactPhone           string    `json:"contactPhone,omitempty"`
	OtherContacts          string    `json:"otherContacts,omitempty"`
	Urgency                string    `json:"urgency"`
	PreferredContactMethod string    `json:"preferredContactMethod"`
	Notes                  string    `json:"notes,omitempty"`
	Status                 string    `json:"status"`
	AssignedTo             string    `json:"assignedTo,omitempty"`
	CandidateName          string    `json:"candidateName,omitempty"`
	ApplicationID          string    `json:"applicationId,omitempty"`
	CreatedAt              time.Time `json:"createdAt"`
}

// EncodeNested JSON-encodes a nested object into the string form the
// backend expects. Nil input keeps the field absent.
func EncodeNested(v interface{}) (string, error) {
	if v == nil {
		return "", nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
