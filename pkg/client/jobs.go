package client

import (
	"context"
	"net/http"
)

// CreateJobParams carries structured requirements/meta; the client encodes
// them to strings on the wire (the backend expects JSON-encoded nested
// objects, not native nesting).
type CreateJobParams struct {
	Title        string
	Description  string
	Salary       *int64
	Duration     string
	ContractType string
	Requirements *JobRequirements
	Meta         *JobMeta
}

type jobPayload struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Salary       *int64 `json:"salary,omitempty"`
	Duration     string `json:"duration,omitempty"`
	ContractType string `json:"contractType,omitempty"`
	Requirements string `json:"requirements,omitempty"`
	Meta         string `json:"meta,omitempty"`
}

func (p CreateJobParams) payload() (jobPayload, error) {
	out := jobPayload{
		Title:        p.Title,
		Description:  p.Description,
		Salary:       p.Salary,
		Duration:     p.Duration,
		ContractType: p.ContractType,
	}
	var err error
	if p.Requirements != nil {
		if out.Requirements, err = EncodeNested(p.Requirements); err != nil {
			return out, err
		}
	}
	if p.Meta != nil {
		if out.Meta, err = EncodeNested(p.Meta); err != nil {
			return out, err
		}
	}
	return out, nil
}

// Jobs fetches the public board.
func (c *Client) Jobs(ctx context.Context) ([]Job, error) {
	var out []Job
	if err := c.doJSON(ctx, http.MethodGet, "/jobs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyJobs fetches the employer's own postings.
func (c *Client) MyJobs(ctx context.Context) ([]Job, error) {
	var out []Job
	if err := c.doJSON(ctx, http.MethodGet, "/jobs/my", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) JobByID(ctx context.Context, id string) (*Job, error) {
	var out Job
	if err := c.doJSON(ctx, http.MethodGet, "/jobs/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateJob(ctx context.Context, params CreateJobParams) (*Job, error) {
	body, err := params.payload()
	if err != nil {
		return nil, err
	}
	var out Job
	if err := c.doJSON(ctx, http.MethodPost, "/jobs", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateJobParams is a partial update; nil fields stay untouched.
// Requirements/Meta arrive pre-encoded strings here, mirroring the job edit
// form which round-trips the stored value.
type UpdateJobParams struct {
	Title        *string `json:"title,omitempty"`
	Description  *string `json:"description,omitempty"`
	Salary       *int64  `json:"salary,omitempty"`
	Duration     *string `json:"duration,omitempty"`
	ContractType *string `json:"contractType,omitempty"`
	Requirements *string `json:"requirements,omitempty"`
	Meta         *string `json:"meta,omitempty"`
}

func (c *Client) UpdateJob(ctx context.Context, id string, params UpdateJobParams) (*Job, error) {
	var out struct {
		Message string `json:"message"`
		Job     Job    `json:"job"`
	}
	if err := c.doJSON(ctx, http.MethodPatch, "/jobs/"+id, params, &out); err != nil {
		return nil, err
	}
	return &out.Job, nil
}

func (c *Client) UpdateJobStatus(ctx context.Context, id, status string) (*Job, error) {
	var out struct {
		Message string `json:"message"`
		Job     Job    `json:"job"`
	}
	body := map[string]string{"status": status}
	if err := c.doJSON(ctx, http.MethodPut, "/jobs/"+id+"/status", body, &out); err != nil {
		return nil, err
	}
	return &out.Job, nil
}

func (c *Client) DeleteJob(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/jobs/"+id, nil, nil)
}
