package client

import (
	"context"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

// ResumeFile is an in-memory resume upload.
type ResumeFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// Apply submits an application as multipart form data: the resume file plus
// an optional cover letter.
func (c *Client) Apply(ctx context.Context, jobID string, resume ResumeFile, coverLetter string) (*Application, error) {
	var out struct {
		Message     string      `json:"message"`
		Application Application `json:"application"`
	}
	err := c.doMultipart(ctx, http.MethodPost, "/applications/"+jobID+"/apply", func(w *multipart.Writer) error {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="resume"; filename="`+escapeQuotes(resume.Name)+`"`)
		header.Set("Content-Type", resume.ContentType)
		part, err := w.CreatePart(header)
		if err != nil {
			return err
		}
		if _, err := part.Write(resume.Content); err != nil {
			return err
		}
		if coverLetter != "" {
			return w.WriteField("coverLetter", coverLetter)
		}
		return nil
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.Application, nil
}

func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

type applicationList struct {
	Count        int           `json:"count"`
	Applications []Application `json:"applications"`
}

// ApplicationsForJob lists applications on one of the employer's jobs.
func (c *Client) ApplicationsForJob(ctx context.Context, jobID string) ([]Application, error) {
	var out applicationList
	if err := c.doJSON(ctx, http.MethodGet, "/applications/job/"+jobID, nil, &out); err != nil {
		return nil, err
	}
	return out.Applications, nil
}

// MyApplications lists the caller's own applications.
func (c *Client) MyApplications(ctx context.Context) ([]Application, error) {
	var out applicationList
	if err := c.doJSON(ctx, http.MethodGet, "/applications/my", nil, &out); err != nil {
		return nil, err
	}
	return out.Applications, nil
}

// OpenJobsWithApplications feeds the employer review dashboard.
func (c *Client) OpenJobsWithApplications(ctx context.Context) ([]JobWithApplications, error) {
	var out struct {
		Jobs []JobWithApplications `json:"jobs"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/applications/employer/open", nil, &out); err != nil {
		return nil, err
	}
	return out.Jobs, nil
}

// SelectApplicant accepts an application; server-side this fills the job
// and rejects every other application on it.
func (c *Client) SelectApplicant(ctx context.Context, jobID, applicationID string) error {
	return c.doJSON(ctx, http.MethodPost, "/applications/job/"+jobID+"/select/"+applicationID, nil, nil)
}

func (c *Client) RejectApplicant(ctx context.Context, jobID, applicationID string) error {
	return c.doJSON(ctx, http.MethodPost, "/applications/job/"+jobID+"/reject/"+applicationID, nil, nil)
}

func (c *Client) ReviewApplicant(ctx context.Context, jobID, applicationID string) error {
	return c.doJSON(ctx, http.MethodPost, "/applications/job/"+jobID+"/review/"+applicationID, nil, nil)
}
