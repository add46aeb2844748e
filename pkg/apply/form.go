// Package apply implements the job-seeker's application form: local file
// validation, multipart submission, and the post-success countdown.
package apply

import (
	"context"
	"errors"
	"sync"

	"github.com/qazimatch/qazimatch/pkg/client"
)

// MaxResumeSize is the upload ceiling enforced before any network call.
const MaxResumeSize = 5 << 20

// AllowedResumeTypes are the accepted resume MIME types.
var AllowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// Validation failures. These never involve the network.
var (
	ErrNoResume     = errors.New("please upload your resume")
	ErrBadFileType  = errors.New("please upload a PDF, DOC, or DOCX file")
	ErrFileTooLarge = errors.New("file size must be less than 5MB")
)

// Submitter is the slice of the REST client the form needs.
type Submitter interface {
	Apply(ctx context.Context, jobID string, resume client.ResumeFile, coverLetter string) (*client.Application, error)
}

// Form is the view state of one application to one job.
type Form struct {
	mu sync.Mutex

	jobID string
	api   Submitter

	resume      *client.ResumeFile
	coverLetter string

	submitting bool
	lastErr    string
}

func NewForm(api Submitter, jobID string) *Form {
	return &Form{api: api, jobID: jobID}
}

// SelectResume validates and stages a file. A disallowed type or oversized
// file is rejected before any network activity, and any previously selected
// file is cleared.
func (f *Form) SelectResume(name, contentType string, size int64, content []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !AllowedResumeTypes[contentType] {
		f.resume = nil
		f.lastErr = ErrBadFileType.Error()
		return ErrBadFileType
	}
	if size > MaxResumeSize {
		f.resume = nil
		f.lastErr = ErrFileTooLarge.Error()
		return ErrFileTooLarge
	}

	f.resume = &client.ResumeFile{Name: name, ContentType: contentType, Content: content}
	f.lastErr = ""
	return nil
}

// SetCoverLetter stages the optional cover letter.
func (f *Form) SetCoverLetter(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.coverLetter = text
}

// Resume returns the staged file, nil when none survived validation.
func (f *Form) Resume() *client.ResumeFile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resume
}

// LastError is the inline form error, "" when clean.
func (f *Form) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit sends the application. On failure the form stays populated for a
// retry; on success the staged state is left alone and the caller starts
// the redirect countdown.
func (f *Form) Submit(ctx context.Context) (*client.Application, error) {
	f.mu.Lock()
	if f.resume == nil {
		f.lastErr = ErrNoResume.Error()
		f.mu.Unlock()
		return nil, ErrNoResume
	}
	if f.submitting {
		f.mu.Unlock()
		return nil, nil
	}
	f.submitting = true
	f.lastErr = ""
	resume := *f.resume
	coverLetter := f.coverLetter
	jobID := f.jobID
	f.mu.Unlock()

	app, err := f.api.Apply(ctx, jobID, resume, coverLetter)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.lastErr = err.Error()
		return nil, err
	}
	return app, nil
}
