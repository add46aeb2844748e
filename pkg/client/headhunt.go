package client

import (
	"context"
	"mime/multipart"
	"net/http"
)

// CreateHeadhuntParams is a talent-sourcing request: job details for the
// private posting plus contact details for the search.
type CreateHeadhuntParams struct {
	Title        string
	Description  string
	Salary       *int64
	Duration     string
	ContractType string
	Requirements *JobRequirements
	Meta         *JobMeta

	CompanyName            string
	ContactEmail           string
	ContactPhone           string
	OtherContacts          map[string]string
	Urgency                string
	PreferredContactMethod string
	Notes                  string
}

type headhuntPayload struct {
	jobPayload
	CompanyName            string `json:"companyName"`
	ContactEmail           string `json:"contactEmail,omitempty"`
	ContactPhone           string `json:"contactPhone,omitempty"`
	OtherContacts          string `json:"otherContacts,omitempty"`
	Urgency                string `json:"urgency,omitempty"`
	PreferredContactMethod string `json:"preferredContactMethod,omitempty"`
	Notes                  string `json:"notes,omitempty"`
}

func (c *Client) CreateHeadhuntRequest(ctx context.Context, params CreateHeadhuntParams) (*HeadhuntRequest, error) {
	job, err := CreateJobParams{
		Title:        params.Title,
		Description:  params.Description,
		Salary:       params.Salary,
		Duration:     params.Duration,
		ContractType: params.ContractType,
		Requirements: params.Requirements,
		Meta:         params.Meta,
	}.payload()
	if err != nil {
		return nil, err
	}

	body := headhuntPayload{
		jobPayload:             job,
		CompanyName:            params.CompanyName,
		ContactEmail:           params.ContactEmail,
		ContactPhone:           params.ContactPhone,
		Urgency:                params.Urgency,
		PreferredContactMethod: params.PreferredContactMethod,
		Notes:                  params.Notes,
	}
	if len(params.OtherContacts) > 0 {
		if body.OtherContacts, err = EncodeNested(params.OtherContacts); err != nil {
			return nil, err
		}
	}

	var out struct {
		Message string          `json:"message"`
		Request HeadhuntRequest `json:"request"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/headhunt", body, &out); err != nil {
		return nil, err
	}
	return &out.Request, nil
}

func (c *Client) MyHeadhuntRequests(ctx context.Context) ([]HeadhuntRequest, error) {
	var out struct {
		Count    int               `json:"count"`
		Requests []HeadhuntRequest `json:"requests"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/headhunt/my", nil, &out); err != nil {
		return nil, err
	}
	return out.Requests, nil
}

func (c *Client) AssignHeadhunt(ctx context.Context, requestID, assignedTo string) error {
	body := map[string]string{"assignedTo": assignedTo}
	return c.doJSON(ctx, http.MethodPut, "/headhunt/"+requestID+"/assign", body, nil)
}

type FulfillHeadhuntParams struct {
	ApplicationID string `json:"applicationId,omitempty"`
	CandidateName string `json:"candidateName,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

func (c *Client) FulfillHeadhunt(ctx context.Context, requestID string, params FulfillHeadhuntParams) error {
	return c.doJSON(ctx, http.MethodPut, "/headhunt/"+requestID+"/fulfill", params, nil)
}

// SubmitResume is the standalone mail-relay submission: name, optional
// notes, a CV file and a confirmation address.
func (c *Client) SubmitResume(ctx context.Context, fullName, userEmail, notes string, cv ResumeFile) error {
	return c.doMultipart(ctx, http.MethodPost, "/submit-resume", func(w *multipart.Writer) error {
		if err := w.WriteField("fullName", fullName); err != nil {
			return err
		}
		if err := w.WriteField("userEmail", userEmail); err != nil {
			return err
		}
		if notes != "" {
			if err := w.WriteField("notes", notes); err != nil {
				return err
			}
		}
		part, err := w.CreateFormFile("cv", cv.Name)
		if err != nil {
			return err
		}
		_, err = part.Write(cv.Content)
		return err
	}, nil)
}
